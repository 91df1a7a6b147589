package model

import "github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"

// ExParams are a battler's fractional combat rates. Hit and evasion feed
// the default hit/evade formulas; crit rate and crit evasion feed the
// default critical formula.
type ExParams struct {
	Hit          float64
	Evasion      float64
	MagicEvasion float64
	CritRate     float64
	CritEvasion  float64
}

// Battler is the engine's view of a combat participant. Actor- and
// enemy-backed implementations live in this package; the engine never
// cares which one it holds.
type Battler interface {
	Name() string
	Level() int

	// Param returns the battler's value for one parameter slot,
	// including equipment bonuses and resource clamping.
	Param(p data.ParamID) float64

	// Ex returns the battler's fractional combat rates.
	Ex() ExParams

	// TraitRefs returns the battler's trait-contributing sources in a
	// stable order: own record first, then class, equipment, states.
	TraitRefs() []data.RecordRef

	// ElementRate returns the battler's multiplier for one element,
	// the product across all sources carrying a rate. 1 means neutral;
	// exactly 0 means total immunity.
	ElementRate(elementID int) float64

	// Guarding reports whether the battler is in a guard stance
	// (incoming damage halved by the resolution driver).
	Guarding() bool
}

// elementRateProduct multiplies the rates a set of element-rate tables
// hold for one element. Tables without an entry are neutral.
func elementRateProduct(elementID int, tables ...map[int]float64) float64 {
	rate := 1.0
	for _, t := range tables {
		if r, ok := t[elementID]; ok {
			rate *= r
		}
	}
	return rate
}

// stateRefs appends the refs of applied states in application order.
func stateRefs(refs []data.RecordRef, states []*data.State) []data.RecordRef {
	for _, s := range states {
		refs = append(refs, data.RecordRef{Kind: data.KindState, ID: s.ID})
	}
	return refs
}
