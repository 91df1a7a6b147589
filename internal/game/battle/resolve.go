package battle

import (
	"math"
	"math/rand/v2"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// Outcome is the result of resolving one action against one target.
type Outcome struct {
	Hit     bool
	Evaded  bool
	Crit    bool
	Damage  float64 // signed, healing negative; 0 on miss/evade
	Element float64 // target's elemental rate for the action

	HitChance   float64
	EvadeChance float64
	CritChance  float64
	Luck        float64 // state-success multiplier for the host
}

// Resolve drives one full action-against-target resolution: the dice for
// hit, evasion and critical, then the surrounding damage stages in host
// order — element rate, guard, critical multiplier, variance, rounding,
// final clamp. Randomness lives only here; the probability and damage
// methods themselves stay pure.
func (m *Mechanics) Resolve(act *model.Action, target model.Battler, rng *rand.Rand) (Outcome, error) {
	var out Outcome
	var err error

	if out.HitChance, err = m.HitProbability(act, target); err != nil {
		return out, err
	}
	if out.EvadeChance, err = m.EvasionProbability(act, target); err != nil {
		return out, err
	}
	if out.CritChance, err = m.CriticalProbability(act, target); err != nil {
		return out, err
	}
	if out.Luck, err = m.LuckEffectMultiplier(act, target); err != nil {
		return out, err
	}
	out.Element = target.ElementRate(act.ElementID())

	out.Hit = rng.Float64() < out.HitChance
	if !out.Hit {
		return out, nil
	}
	out.Evaded = rng.Float64() < out.EvadeChance
	if out.Evaded {
		return out, nil
	}

	damage, err := m.ComputeDamage(act, target)
	if err != nil {
		return out, err
	}

	damage *= out.Element

	if target.Guarding() && damage > 0 {
		damage /= 2
	}

	out.Crit = rng.Float64() < out.CritChance
	if out.Crit {
		if damage, err = m.ApplyCriticalMultiplier(damage, act); err != nil {
			return out, err
		}
	}

	damage = applyVariance(damage, act.Variance(), rng)
	damage = math.Round(damage)
	out.Damage = m.ClampDamage(damage, out.Element)
	return out, nil
}

// applyVariance spreads damage by ±variance percent, triangularly
// distributed (sum of two uniform rolls), the way the host's own variance
// stage does it. Variance 0 returns the damage unchanged.
func applyVariance(damage float64, variance int, rng *rand.Rand) float64 {
	if variance <= 0 {
		return damage
	}
	amp := math.Floor(math.Abs(damage) * float64(variance) / 100)
	if amp <= 0 {
		return damage
	}
	n := int(amp) + 1
	v := float64(rng.IntN(n)+rng.IntN(n)) - amp
	if damage >= 0 {
		return damage + v
	}
	return damage - v
}
