package battle

import (
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// HitProbability returns the chance the action connects, in
// [0, successRate].
//
// Certain-hit actions return the raw success rate directly, bypassing
// formula evaluation and the rate window. Otherwise the physical or
// magical hit formula runs with the record's hit-mod annotation bound,
// the raw result is rescaled linearly into [MinHitRate, MaxHitRate],
// clamped into [0, 1], and multiplied by the success rate. The lower
// clamp is at 0, not MinHitRate: a window configured into negative
// territory means "can always miss", never a negative probability.
func (m *Mechanics) HitProbability(act *model.Action, target model.Battler) (float64, error) {
	if act.CertainHit() {
		return act.SuccessRate(), nil
	}

	text := m.cfg.PhysicalHitFormula
	if act.Magical() {
		text = m.cfg.MagicalHitFormula
	}

	binds := m.binds(act, target)
	binds.Extra = map[string]float64{
		"hitMod": m.Annotations().Get(act.Ref()).Modifier(data.ModHitMod),
	}
	raw, err := m.evalRecovered(CategoryHit, text, binds)
	if err != nil {
		return 0, err
	}

	adjusted := m.cfg.MinHitRate + raw*(m.cfg.MaxHitRate-m.cfg.MinHitRate)
	if adjusted > 1 {
		adjusted = 1
	}
	if adjusted < 0 {
		adjusted = 0
	}

	p := adjusted * act.SuccessRate()
	m.tracer.Trace(CategoryHit, "hit probability",
		"action", act.Usable.RecordName(), "target", target.Name(),
		"raw", raw, "adjusted", adjusted, "probability", p)
	return p, nil
}

// EvasionProbability returns the chance the target evades the action.
// Certain-hit actions are not evadable: always exactly 0. Otherwise the
// physical or magical evasion formula is evaluated directly, with no
// rescaling.
func (m *Mechanics) EvasionProbability(act *model.Action, target model.Battler) (float64, error) {
	if act.CertainHit() {
		return 0, nil
	}

	text := m.cfg.PhysicalEvadeFormula
	if act.Magical() {
		text = m.cfg.MagicalEvadeFormula
	}

	p, err := m.evalRecovered(CategoryEvasion, text, m.binds(act, target))
	if err != nil {
		return 0, err
	}
	m.tracer.Trace(CategoryEvasion, "evasion probability",
		"action", act.Usable.RecordName(), "target", target.Name(), "probability", p)
	return p, nil
}
