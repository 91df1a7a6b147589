package model

import "github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"

// EnemyBattler is an enemy-backed combat participant with a flat param
// table and current HP/MP tracked on the instance.
type EnemyBattler struct {
	Enemy  *data.Enemy
	Lvl    int
	States []*data.State
	Rates  ExParams
	Guard  bool

	hp float64
	mp float64
}

// NewEnemyBattler builds a battler from an enemy record with current
// HP/MP at their maximums.
func NewEnemyBattler(enemy *data.Enemy, level int) *EnemyBattler {
	e := &EnemyBattler{Enemy: enemy, Lvl: level}
	e.hp = float64(enemy.Params[data.ParamMaxHP])
	e.mp = float64(enemy.Params[data.ParamMaxMP])
	return e
}

func (e *EnemyBattler) Name() string { return e.Enemy.Name }
func (e *EnemyBattler) Level() int   { return e.Lvl }

func (e *EnemyBattler) Param(p data.ParamID) float64 {
	switch p {
	case data.ParamHP:
		return e.hp
	case data.ParamMP:
		return e.mp
	}
	if p < 0 || int(p) >= data.BaseParamCount {
		return 0
	}
	value := e.Enemy.Params[p]
	if value < 0 {
		value = 0
	}
	return float64(value)
}

func (e *EnemyBattler) Ex() ExParams   { return e.Rates }
func (e *EnemyBattler) Guarding() bool { return e.Guard }

// TraitRefs: enemy record, then states in application order.
func (e *EnemyBattler) TraitRefs() []data.RecordRef {
	refs := []data.RecordRef{{Kind: data.KindEnemy, ID: e.Enemy.ID}}
	return stateRefs(refs, e.States)
}

// ElementRate multiplies the enemy's innate rate with every applied
// state's rate for the element.
func (e *EnemyBattler) ElementRate(elementID int) float64 {
	rate := elementRateProduct(elementID, e.Enemy.ElementRates)
	for _, s := range e.States {
		rate *= elementRateProduct(elementID, s.ElementRates)
	}
	return rate
}

// HP returns current HP.
func (e *EnemyBattler) HP() float64 { return e.hp }

// MP returns current MP.
func (e *EnemyBattler) MP() float64 { return e.mp }

// SetHP clamps to [0, max HP].
func (e *EnemyBattler) SetHP(hp float64) {
	e.hp = clampResource(hp, float64(e.Enemy.Params[data.ParamMaxHP]))
}

// SetMP clamps to [0, max MP].
func (e *EnemyBattler) SetMP(mp float64) {
	e.mp = clampResource(mp, float64(e.Enemy.Params[data.ParamMaxMP]))
}
