package model

import "github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"

// ActorBattler is an actor-backed combat participant: class curve params
// plus equipment bonuses, with current HP/MP tracked on the instance.
type ActorBattler struct {
	Actor   *data.Actor
	Class   *data.Class
	Lvl     int
	Weapons []*data.Weapon
	Armors  []*data.Armor
	States  []*data.State
	Rates   ExParams
	Guard   bool

	hp float64
	mp float64
}

// NewActorBattler builds a battler from its records at the given level,
// with current HP/MP at their maximums.
func NewActorBattler(actor *data.Actor, class *data.Class, level int) *ActorBattler {
	a := &ActorBattler{Actor: actor, Class: class, Lvl: level}
	a.hp = a.Param(data.ParamMaxHP)
	a.mp = a.Param(data.ParamMaxMP)
	return a
}

func (a *ActorBattler) Name() string { return a.Actor.Name }
func (a *ActorBattler) Level() int   { return a.Lvl }

// Param returns class curve value at level plus equipment bonuses,
// floored at 0. The extended HP/MP slots read the tracked current values.
func (a *ActorBattler) Param(p data.ParamID) float64 {
	switch p {
	case data.ParamHP:
		return a.hp
	case data.ParamMP:
		return a.mp
	}
	if p < 0 || int(p) >= data.BaseParamCount {
		return 0
	}

	value := a.Class.ParamAt(p, a.Lvl)
	for _, w := range a.Weapons {
		value += w.Params[p]
	}
	for _, ar := range a.Armors {
		value += ar.Params[p]
	}
	if value < 0 {
		value = 0
	}
	return float64(value)
}

func (a *ActorBattler) Ex() ExParams   { return a.Rates }
func (a *ActorBattler) Guarding() bool { return a.Guard }

// TraitRefs: actor, class, equipment in slot order, states in
// application order.
func (a *ActorBattler) TraitRefs() []data.RecordRef {
	refs := []data.RecordRef{
		{Kind: data.KindActor, ID: a.Actor.ID},
		{Kind: data.KindClass, ID: a.Class.ID},
	}
	for _, w := range a.Weapons {
		refs = append(refs, data.RecordRef{Kind: data.KindWeapon, ID: w.ID})
	}
	for _, ar := range a.Armors {
		refs = append(refs, data.RecordRef{Kind: data.KindArmor, ID: ar.ID})
	}
	return stateRefs(refs, a.States)
}

// ElementRate is the product over applied states carrying a rate for the
// element (actors have no innate rates).
func (a *ActorBattler) ElementRate(elementID int) float64 {
	rate := 1.0
	for _, s := range a.States {
		rate *= elementRateProduct(elementID, s.ElementRates)
	}
	return rate
}

// HP returns current HP.
func (a *ActorBattler) HP() float64 { return a.hp }

// MP returns current MP.
func (a *ActorBattler) MP() float64 { return a.mp }

// SetHP clamps to [0, max HP].
func (a *ActorBattler) SetHP(hp float64) {
	a.hp = clampResource(hp, a.Param(data.ParamMaxHP))
}

// SetMP clamps to [0, max MP].
func (a *ActorBattler) SetMP(mp float64) {
	a.mp = clampResource(mp, a.Param(data.ParamMaxMP))
}

func clampResource(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
