package battle

import (
	"errors"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/game/formula"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// CriticalProbability returns the chance the action critically hits.
// Records with criticals disabled return exactly 0 without touching the
// formula. The crit-rate formula sees critMod bound: the record's own
// crit-mod annotation as a percentage-point offset. A failed evaluation
// degrades to 0.
func (m *Mechanics) CriticalProbability(act *model.Action, target model.Battler) (float64, error) {
	if !act.AllowsCritical() {
		return 0, nil
	}

	binds := m.binds(act, target)
	binds.Extra = map[string]float64{
		"critMod": m.Annotations().Get(act.Ref()).Modifier(data.ModCritMod),
	}
	p, err := m.evalRecovered(CategoryCritical, m.cfg.CritRateFormula, binds)
	if err != nil {
		return 0, err
	}
	m.tracer.Trace(CategoryCritical, "critical probability",
		"action", act.Usable.RecordName(), "target", target.Name(), "probability", p)
	return p, nil
}

// ApplyCriticalMultiplier runs the critical damage formula over a
// pre-critical damage value. The formula sees damage and critBoost bound;
// critBoost is the subject's crit-boost annotation summed across its
// trait sources plus the used record's own, a percentage-point offset to
// the base multiplier. A failed evaluation leaves the damage unchanged.
func (m *Mechanics) ApplyCriticalMultiplier(damage float64, act *model.Action) (float64, error) {
	ann := m.Annotations()
	boost := ann.SumModifier(act.Subject.TraitRefs(), data.ModCritBoost) +
		ann.Get(act.Ref()).Modifier(data.ModCritBoost)

	binds := m.binds(act, nil)
	binds.Extra = map[string]float64{
		"damage":    damage,
		"critBoost": boost,
	}
	value, err := m.eval.Eval(m.cfg.CritDamageFormula, binds)
	if err != nil {
		var evalErr *formula.EvalError
		if errors.As(err, &evalErr) {
			m.tracer.Fail(CategoryCritical, evalErr)
			return damage, nil
		}
		return 0, err
	}
	m.tracer.Trace(CategoryCritical, "critical damage",
		"action", act.Usable.RecordName(), "before", damage, "boost", boost, "after", value)
	return value, nil
}
