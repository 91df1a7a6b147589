package data

import (
	"fmt"
	"strings"
)

// ParamID identifies one battler parameter in the standard param order.
// Slots 0-7 match the host's param table layout; HP and MP are extended
// slots for the battler's current resource values.
type ParamID int

const (
	ParamMaxHP ParamID = iota
	ParamMaxMP
	ParamAttack
	ParamDefense
	ParamMagicAttack
	ParamMagicDefense
	ParamAgility
	ParamLuck
	ParamHP // current HP
	ParamMP // current MP

	ParamCount
)

// BaseParamCount is the number of slots in a record's param table (0-7).
const BaseParamCount = 8

var paramNames = [ParamCount]string{
	"mhp", "mmp", "atk", "def", "mat", "mdf", "agi", "luk", "hp", "mp",
}

func (p ParamID) String() string {
	if p < 0 || p >= ParamCount {
		return fmt.Sprintf("param(%d)", int(p))
	}
	return paramNames[p]
}

// paramAliases maps a lowercase prefix (first three characters of a stat
// name, or the whole name when shorter) to its canonical parameter.
// Multiple aliases share a target on purpose: content authors write
// "attack", "power" or "strength" interchangeably.
var paramAliases = map[string]ParamID{
	"atk": ParamAttack,
	"pow": ParamAttack,
	"str": ParamAttack,
	"def": ParamDefense,
	"gua": ParamDefense,
	"mat": ParamMagicAttack,
	"mag": ParamMagicAttack,
	"int": ParamMagicAttack,
	"mdf": ParamMagicDefense,
	"res": ParamMagicDefense,
	"spi": ParamMagicDefense,
	"agi": ParamAgility,
	"spd": ParamAgility,
	"spe": ParamAgility,
	"dex": ParamAgility,
	"luk": ParamLuck,
	"lck": ParamLuck,
	"luc": ParamLuck,
	"hp":  ParamHP,
	"hea": ParamHP,
	"mp":  ParamMP,
	"man": ParamMP,
	"mhp": ParamMaxHP,
	"mmp": ParamMaxMP,
}

// ResolveParam maps a human-readable stat name to its canonical ParamID by
// its lowercase 3-letter prefix. An unknown name is a content error and
// must propagate: it should block data loading, not be defaulted away.
func ResolveParam(name string) (ParamID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if len(key) > 3 {
		key = key[:3]
	}
	id, ok := paramAliases[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedStat, name)
	}
	return id, nil
}
