package battle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/config"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestResolveDeterministicUnderFixedSeed(t *testing.T) {
	skill := &data.Skill{
		ID: 1, Name: "Attack", Success: 90, Hit: data.HitPhysical,
		Damage: data.Damage{Kind: data.DamageHP, Formula: "a.atk * 4 - b.def * 2", Variance: 20, Critical: true},
	}
	db := &data.Database{Skills: []*data.Skill{skill}}

	run := func() Outcome {
		m := testMechanics(t, config.DefaultBattle(), db)
		subject := actorBattler("subject", params(map[data.ParamID]int{data.ParamAttack: 8}),
			model.ExParams{Hit: 0.95, CritRate: 0.04})
		target := enemyBattler("target", params(map[data.ParamID]int{data.ParamDefense: 7}),
			model.ExParams{Evasion: 0.05})
		out, err := m.Resolve(model.NewAction(subject, skill), target, testRNG(42))
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, run(), run())
}

func TestResolveCertainHitHealing(t *testing.T) {
	// Variance 0, certain hit, no crit: the outcome is exact.
	potion := &data.Item{
		ID: 1, Name: "Potion", Success: 100, Hit: data.HitCertain,
		Damage: data.Damage{Kind: data.RecoverHP, Formula: "50"},
	}
	m := testMechanics(t, config.DefaultBattle(), &data.Database{Items: []*data.Item{potion}})

	subject := actorBattler("subject", params(nil), model.ExParams{})
	target := enemyBattler("target", params(nil), model.ExParams{Evasion: 0.99})

	out, err := m.Resolve(model.NewAction(subject, potion), target, testRNG(7))
	require.NoError(t, err)

	assert.True(t, out.Hit)
	assert.False(t, out.Evaded)
	assert.False(t, out.Crit)
	assert.InDelta(t, 1.0, out.HitChance, 1e-9)
	assert.Zero(t, out.EvadeChance)
	assert.InDelta(t, -50, out.Damage, 1e-9)
}

func TestResolveGuardHalvesDamage(t *testing.T) {
	skill := &data.Skill{
		ID: 1, Name: "Strike", Success: 100, Hit: data.HitCertain,
		Damage: data.Damage{Kind: data.DamageHP, Formula: "10"},
	}
	m := testMechanics(t, config.DefaultBattle(), &data.Database{Skills: []*data.Skill{skill}})

	subject := actorBattler("subject", params(nil), model.ExParams{})
	target := enemyBattler("target", params(nil), model.ExParams{})
	target.Guard = true

	out, err := m.Resolve(model.NewAction(subject, skill), target, testRNG(7))
	require.NoError(t, err)
	assert.InDelta(t, 5, out.Damage, 1e-9)
}

func TestResolveElementImmunityForcesZero(t *testing.T) {
	// Fire skill against a fire-immune target: 0 despite a minimum
	// damage floor.
	cfg := config.DefaultBattle()
	cfg.MinDamage = 5

	skill := &data.Skill{
		ID: 1, Name: "Fireball", Success: 100, Hit: data.HitCertain,
		Damage: data.Damage{Kind: data.DamageHP, ElementID: 2, Formula: "30"},
	}
	m := testMechanics(t, cfg, &data.Database{Skills: []*data.Skill{skill}})

	subject := actorBattler("subject", params(nil), model.ExParams{})
	target := model.NewEnemyBattler(&data.Enemy{
		ID: 1, Name: "Wisp", ElementRates: map[int]float64{2: 0},
	}, 3)

	out, err := m.Resolve(model.NewAction(subject, skill), target, testRNG(7))
	require.NoError(t, err)
	assert.Zero(t, out.Element)
	assert.Zero(t, out.Damage)
}

func TestResolveVarianceBounds(t *testing.T) {
	// Base damage 10, variance 20% → every outcome lands in [8, 12].
	skill := &data.Skill{
		ID: 1, Name: "Strike", Success: 100, Hit: data.HitCertain,
		Damage: data.Damage{Kind: data.DamageHP, Formula: "10", Variance: 20},
	}
	m := testMechanics(t, config.DefaultBattle(), &data.Database{Skills: []*data.Skill{skill}})

	subject := actorBattler("subject", params(nil), model.ExParams{})
	target := enemyBattler("target", params(nil), model.ExParams{})

	for seed := uint64(1); seed <= 50; seed++ {
		out, err := m.Resolve(model.NewAction(subject, skill), target, testRNG(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, out.Damage, 8.0, "seed %d", seed)
		assert.LessOrEqual(t, out.Damage, 12.0, "seed %d", seed)
	}
}

func TestResolveMissOnLowHitChance(t *testing.T) {
	skill := &data.Skill{
		ID: 1, Name: "Wild Swing", Success: 0, Hit: data.HitPhysical,
		Damage: data.Damage{Kind: data.DamageHP, Formula: "10"},
	}
	m := testMechanics(t, config.DefaultBattle(), &data.Database{Skills: []*data.Skill{skill}})

	subject := actorBattler("subject", params(nil), model.ExParams{Hit: 0.95})
	target := enemyBattler("target", params(nil), model.ExParams{})

	out, err := m.Resolve(model.NewAction(subject, skill), target, testRNG(7))
	require.NoError(t, err)
	assert.False(t, out.Hit)
	assert.Zero(t, out.Damage)
}

func TestApplyVariance(t *testing.T) {
	rng := testRNG(1)

	// Zero variance and sub-percent amplitudes pass through.
	assert.Equal(t, 10.0, applyVariance(10, 0, rng))
	assert.Equal(t, 3.0, applyVariance(3, 10, rng))

	// Negative damage spreads symmetrically, staying negative-side.
	for i := 0; i < 20; i++ {
		v := applyVariance(-100, 20, rng)
		assert.GreaterOrEqual(t, v, -120.0)
		assert.LessOrEqual(t, v, -80.0)
	}
}
