package battle

import "github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"

// LuckEffectMultiplier returns the multiplier the host applies to
// state/debuff success rates for this action against this target.
// The configured luck formula is evaluated against the standard bindings
// and the result floored at 0 — never negative, no upper bound. A failed
// evaluation degrades to 0.
func (m *Mechanics) LuckEffectMultiplier(act *model.Action, target model.Battler) (float64, error) {
	value, err := m.evalRecovered(CategoryLuck, m.cfg.LuckFormula, m.binds(act, target))
	if err != nil {
		return 0, err
	}
	if value < 0 {
		value = 0
	}
	m.tracer.Trace(CategoryLuck, "luck effect multiplier",
		"action", act.Usable.RecordName(), "target", target.Name(), "multiplier", value)
	return value, nil
}
