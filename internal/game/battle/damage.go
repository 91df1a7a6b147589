package battle

import (
	"math"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// ComputeDamage runs the damage pipeline for one action against one
// target and returns the signed pre-critical, pre-clamp value (healing
// negative).
//
// Stages: base formula → power/resist stat averaging → standard or
// high-resist function → sign application. Evaluation failures degrade to
// 0 and log; only a missing configured formula propagates.
func (m *Mechanics) ComputeDamage(act *model.Action, target model.Battler) (float64, error) {
	binds := m.binds(act, target)

	base, err := m.evalRecovered(CategoryDamage, act.Formula(), binds)
	if err != nil {
		return 0, err
	}
	m.tracer.Trace(CategoryDamage, "base damage",
		"action", act.Usable.RecordName(), "value", base)

	ann := m.Annotations().Get(act.Ref())
	power, hasPower := averageParams(act.Subject, ann.PowerStats)
	resist, hasResist := averageParams(target, ann.ResistStats)

	value := base
	if hasPower || hasResist {
		// A missing side participates as 0.
		text := m.cfg.DamageFormula
		if resist > power {
			text = m.cfg.HighResistDamageFormula
		}
		binds.Extra = map[string]float64{
			"damage": base,
			"power":  power,
			"resist": resist,
		}
		value, err = m.evalRecovered(CategoryDamage, text, binds)
		if err != nil {
			return 0, err
		}
		m.tracer.Trace(CategoryDamage, "damage function applied",
			"power", power, "resist", resist, "highResist", resist > power, "value", value)
	}

	// Magnitude floors at 0 before the sign goes on; healing negates.
	if value < 0 {
		value = 0
	}
	if act.DamageKind().Healing() {
		value = -value
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		m.tracer.Fail(CategoryDamage, errInvalidDamage(value))
		return 0, nil
	}

	m.tracer.Trace(CategoryDamage, "damage computed",
		"action", act.Usable.RecordName(), "target", target.Name(), "value", value)
	return value, nil
}

// ClampDamage applies the final range policy: |value| clamped into
// [MinDamage, MaxDamage] with the sign preserved — unless the elemental
// rate is exactly 0 (total immunity), which forces 0 past any minimum.
// Called by the host after its element/crit/variance/guard/rounding
// stages.
func (m *Mechanics) ClampDamage(value, elementRate float64) float64 {
	if elementRate == 0 {
		return 0
	}
	sign := 1.0
	if value < 0 {
		sign = -1
	}
	magnitude := math.Abs(value)
	if magnitude < m.cfg.MinDamage {
		magnitude = m.cfg.MinDamage
	}
	if magnitude > m.cfg.MaxDamage {
		magnitude = m.cfg.MaxDamage
	}
	return sign * magnitude
}

// averageParams averages a battler's values over a stat list. An empty
// list is "not applicable" — distinct from an average of 0.
func averageParams(b model.Battler, stats []data.ParamID) (float64, bool) {
	if len(stats) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, p := range stats {
		sum += b.Param(p)
	}
	return sum / float64(len(stats)), true
}
