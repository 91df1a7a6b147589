package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Battle holds all battle-mechanics configuration: formula texts, damage and
// hit-rate bounds, logging. Loaded once at startup and read-only afterwards.
type Battle struct {
	// Damage bounds. Applied to the damage magnitude in the final clamp;
	// an elemental rate of exactly 0 overrides the minimum (total immunity).
	MinDamage float64 `yaml:"min_damage"`
	MaxDamage float64 `yaml:"max_damage"`

	// Damage functions. The standard function applies when the subject's
	// power stat meets or exceeds the target's resist stat; the high-resist
	// function applies otherwise. Both see damage, power and resist bound.
	DamageFormula           string `yaml:"damage_formula"`
	HighResistDamageFormula string `yaml:"high_resist_damage_formula"`

	// Hit formulas, selected by the action's attack category. The raw result
	// is rescaled linearly into [min_hit_rate, max_hit_rate].
	PhysicalHitFormula string  `yaml:"physical_hit_formula"`
	MagicalHitFormula  string  `yaml:"magical_hit_formula"`
	MinHitRate         float64 `yaml:"min_hit_rate"`
	MaxHitRate         float64 `yaml:"max_hit_rate"`

	// Evasion formulas, selected by attack category. Evaluated directly,
	// no rescaling.
	PhysicalEvadeFormula string `yaml:"physical_evade_formula"`
	MagicalEvadeFormula  string `yaml:"magical_evade_formula"`

	// Critical hit chance and critical damage. The rate formula sees critMod
	// bound; the damage formula sees damage and critBoost bound.
	CritRateFormula   string `yaml:"crit_rate_formula"`
	CritDamageFormula string `yaml:"crit_damage_formula"`

	// Luck effect multiplier for state/debuff success rates. Floored at 0.
	LuckFormula string `yaml:"luck_formula"`

	// Logging. LogLevel is one of debug/info/warn/error. LogCategories
	// selects which trace categories emit: none, all, damage, hit, evasion,
	// critical, luck. "none" wins over everything else.
	LogLevel      string   `yaml:"log_level"`
	LogCategories []string `yaml:"log_categories"`

	// EvalTimeoutMs bounds a single formula evaluation. Zero disables the
	// budget; formulas are user-authored text, so long-running simulations
	// may want one.
	EvalTimeoutMs int `yaml:"eval_timeout_ms"` // milliseconds
}

// DefaultBattle returns Battle config with the reference formula set.
func DefaultBattle() Battle {
	return Battle{
		MinDamage:               0,
		MaxDamage:               99999999,
		DamageFormula:           "damage + power - resist",
		HighResistDamageFormula: "damage - math.sqrt(resist - power)",
		PhysicalHitFormula:      "a.hit + hitMod / 100",
		MagicalHitFormula:       "1 + hitMod / 100",
		MinHitRate:              0,
		MaxHitRate:              1,
		PhysicalEvadeFormula:    "b.eva",
		MagicalEvadeFormula:     "b.mev",
		CritRateFormula:         "(a.cri + critMod / 100) * (1 - b.cev)",
		CritDamageFormula:       "damage * (3 + critBoost / 100)",
		LuckFormula:             "1 + (a.luk - b.luk) * 0.001",
		LogLevel:                "info",
		LogCategories:           nil,
	}
}

// LoadBattle loads battle config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattle(path string) (Battle, error) {
	cfg := DefaultBattle()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
