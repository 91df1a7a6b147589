package data

import "fmt"

// RecordKind distinguishes the eight game-data record sets.
type RecordKind int

const (
	KindActor RecordKind = iota
	KindClass
	KindSkill
	KindItem
	KindWeapon
	KindArmor
	KindEnemy
	KindState
)

var kindNames = [...]string{
	"actor", "class", "skill", "item", "weapon", "armor", "enemy", "state",
}

func (k RecordKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// RecordRef identifies one record across all sets. Used as the key of the
// annotation side-table and as a battler's trait-source reference.
type RecordRef struct {
	Kind RecordKind
	ID   int
}

func (r RecordRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// DamageKind classifies what a skill or item does to the target's resources.
type DamageKind int

const (
	DamageNone DamageKind = iota
	DamageHP
	DamageMP
	RecoverHP
	RecoverMP
	DrainHP
	DrainMP
)

// Healing reports whether the kind restores a resource; healing values are
// negated in the damage pipeline's sign step.
func (k DamageKind) Healing() bool {
	return k == RecoverHP || k == RecoverMP
}

// MP reports whether the kind targets MP rather than HP.
func (k DamageKind) MP() bool {
	return k == DamageMP || k == RecoverMP || k == DrainMP
}

// HitType classifies how an action's accuracy is resolved.
type HitType int

const (
	// HitCertain bypasses hit and evasion checks entirely; the action
	// lands subject only to its success rate.
	HitCertain HitType = iota
	HitPhysical
	HitMagical
)

// Damage is the damage/healing specification of a skill or item.
type Damage struct {
	Kind      DamageKind `yaml:"kind"`
	ElementID int        `yaml:"element"`
	Formula   string     `yaml:"formula"`
	Variance  int        `yaml:"variance"` // percent
	Critical  bool       `yaml:"critical"`
}

// Skill is a usable skill record. Only battle-relevant fields are kept;
// everything else about a skill is the host's business.
type Skill struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	Note    string  `yaml:"note"`
	Success int     `yaml:"success_rate"` // percent
	Hit     HitType `yaml:"hit_type"`
	Damage  Damage  `yaml:"damage"`
}

func (s *Skill) RecordRef() RecordRef { return RecordRef{KindSkill, s.ID} }
func (s *Skill) RecordName() string   { return s.Name }
func (s *Skill) RecordNote() string   { return s.Note }
func (s *Skill) HitType() HitType     { return s.Hit }
func (s *Skill) SuccessRate() float64 { return float64(s.Success) / 100 }
func (s *Skill) DamageSpec() Damage   { return s.Damage }

// Item is a usable item record.
type Item struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	Note    string  `yaml:"note"`
	Success int     `yaml:"success_rate"` // percent
	Hit     HitType `yaml:"hit_type"`
	Damage  Damage  `yaml:"damage"`
}

func (i *Item) RecordRef() RecordRef { return RecordRef{KindItem, i.ID} }
func (i *Item) RecordName() string   { return i.Name }
func (i *Item) RecordNote() string   { return i.Note }
func (i *Item) HitType() HitType     { return i.Hit }
func (i *Item) SuccessRate() float64 { return float64(i.Success) / 100 }
func (i *Item) DamageSpec() Damage   { return i.Damage }

// Usable is the common view over skills and items, the two record kinds an
// action can carry.
type Usable interface {
	RecordRef() RecordRef
	RecordName() string
	RecordNote() string
	HitType() HitType
	SuccessRate() float64 // fraction in [0,1]
	DamageSpec() Damage
}

// Actor is a playable character record.
type Actor struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Note    string `yaml:"note"`
	ClassID int    `yaml:"class"`
	Level   int    `yaml:"level"`
}

// Class holds per-level parameter curves in the standard param order.
// Index into a curve is level-1; a curve shorter than the level extends
// its last element (compact single-element curves mean "flat").
type Class struct {
	ID     int                   `yaml:"id"`
	Name   string                `yaml:"name"`
	Note   string                `yaml:"note"`
	Params [BaseParamCount][]int `yaml:"params"`
}

// ParamAt returns the class curve value for one param slot at a level.
func (c *Class) ParamAt(p ParamID, level int) int {
	if p < 0 || int(p) >= BaseParamCount {
		return 0
	}
	curve := c.Params[p]
	if len(curve) == 0 {
		return 0
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(curve) {
		i = len(curve) - 1
	}
	return curve[i]
}

// Weapon is an equippable weapon record with flat param bonuses.
type Weapon struct {
	ID     int                 `yaml:"id"`
	Name   string              `yaml:"name"`
	Note   string              `yaml:"note"`
	Params [BaseParamCount]int `yaml:"params"`
}

// Armor is an equippable armor record with flat param bonuses.
type Armor struct {
	ID     int                 `yaml:"id"`
	Name   string              `yaml:"name"`
	Note   string              `yaml:"note"`
	Params [BaseParamCount]int `yaml:"params"`
}

// Enemy is an enemy record with a flat param table and optional elemental
// rate multipliers (rate 0 = total immunity to that element).
type Enemy struct {
	ID           int                 `yaml:"id"`
	Name         string              `yaml:"name"`
	Note         string              `yaml:"note"`
	Params       [BaseParamCount]int `yaml:"params"`
	ElementRates map[int]float64     `yaml:"element_rates"`
}

// State is a status-effect record. States are trait-contributing sources:
// their annotations and element rates apply while the state is active.
type State struct {
	ID           int             `yaml:"id"`
	Name         string          `yaml:"name"`
	Note         string          `yaml:"note"`
	ElementRates map[int]float64 `yaml:"element_rates"`
}
