package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// Scenario describes one pre-chosen action against one target: who acts,
// with what, against whom. Turn sequencing and action selection stay the
// host's business; the sim resolves exactly this.
type Scenario struct {
	Subject BattlerSpec `yaml:"subject"`
	Target  BattlerSpec `yaml:"target"`

	// Exactly one of Skill or Item must be set.
	Skill int `yaml:"skill"`
	Item  int `yaml:"item"`

	Seed      uint64          `yaml:"seed"`
	Variables map[int]float64 `yaml:"variables"`
}

// BattlerSpec builds either an actor- or enemy-backed battler by record ID.
type BattlerSpec struct {
	Actor    int       `yaml:"actor"`
	Enemy    int       `yaml:"enemy"`
	Level    int       `yaml:"level"`
	Weapons  []int     `yaml:"weapons"`
	Armors   []int     `yaml:"armors"`
	States   []int     `yaml:"states"`
	RatesRaw RatesSpec `yaml:"rates"`
	Guarding bool      `yaml:"guarding"`
}

// RatesSpec is the YAML shape of a battler's fractional rates.
type RatesSpec struct {
	Hit          float64 `yaml:"hit"`
	Evasion      float64 `yaml:"evasion"`
	MagicEvasion float64 `yaml:"magic_evasion"`
	CritRate     float64 `yaml:"crit_rate"`
	CritEvasion  float64 `yaml:"crit_evasion"`
}

func (r RatesSpec) ex() model.ExParams {
	return model.ExParams{
		Hit:          r.Hit,
		Evasion:      r.Evasion,
		MagicEvasion: r.MagicEvasion,
		CritRate:     r.CritRate,
		CritEvasion:  r.CritEvasion,
	}
}

// DefaultScenario: Harold attacks the slime.
func DefaultScenario() Scenario {
	return Scenario{
		Subject: BattlerSpec{
			Actor:    1,
			Level:    5,
			Weapons:  []int{1},
			Armors:   []int{1},
			RatesRaw: RatesSpec{Hit: 0.95, CritRate: 0.04},
		},
		Target: BattlerSpec{
			Enemy:    1,
			Level:    3,
			RatesRaw: RatesSpec{Evasion: 0.05},
		},
		Skill: 1,
		Seed:  1,
	}
}

// LoadScenario loads a scenario from a YAML file, defaults when absent.
func LoadScenario(path string) (Scenario, error) {
	sc := DefaultScenario()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sc, nil
		}
		return sc, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sc, nil
}

// buildBattler constructs the battler a spec names, resolving every
// record reference against the database.
func buildBattler(db *data.Database, spec BattlerSpec) (model.Battler, error) {
	states := make([]*data.State, 0, len(spec.States))
	for _, id := range spec.States {
		s := db.State(id)
		if s == nil {
			return nil, fmt.Errorf("unknown state %d", id)
		}
		states = append(states, s)
	}

	if spec.Actor != 0 {
		actor := db.Actor(spec.Actor)
		if actor == nil {
			return nil, fmt.Errorf("unknown actor %d", spec.Actor)
		}
		class := db.Class(actor.ClassID)
		if class == nil {
			return nil, fmt.Errorf("actor %d: unknown class %d", actor.ID, actor.ClassID)
		}
		level := spec.Level
		if level == 0 {
			level = actor.Level
		}
		b := model.NewActorBattler(actor, class, level)
		for _, id := range spec.Weapons {
			w := db.Weapon(id)
			if w == nil {
				return nil, fmt.Errorf("unknown weapon %d", id)
			}
			b.Weapons = append(b.Weapons, w)
		}
		for _, id := range spec.Armors {
			a := db.Armor(id)
			if a == nil {
				return nil, fmt.Errorf("unknown armor %d", id)
			}
			b.Armors = append(b.Armors, a)
		}
		b.States = states
		b.Rates = spec.RatesRaw.ex()
		b.Guard = spec.Guarding
		return b, nil
	}

	if spec.Enemy != 0 {
		enemy := db.Enemy(spec.Enemy)
		if enemy == nil {
			return nil, fmt.Errorf("unknown enemy %d", spec.Enemy)
		}
		b := model.NewEnemyBattler(enemy, spec.Level)
		b.States = states
		b.Rates = spec.RatesRaw.ex()
		b.Guard = spec.Guarding
		return b, nil
	}

	return nil, fmt.Errorf("battler spec names neither actor nor enemy")
}

// buildUsable resolves the scenario's skill or item.
func buildUsable(db *data.Database, sc Scenario) (data.Usable, error) {
	switch {
	case sc.Skill != 0 && sc.Item != 0:
		return nil, fmt.Errorf("scenario names both skill %d and item %d", sc.Skill, sc.Item)
	case sc.Skill != 0:
		s := db.Skill(sc.Skill)
		if s == nil {
			return nil, fmt.Errorf("unknown skill %d", sc.Skill)
		}
		return s, nil
	case sc.Item != 0:
		i := db.Item(sc.Item)
		if i == nil {
			return nil, fmt.Errorf("unknown item %d", sc.Item)
		}
		return i, nil
	}
	return nil, fmt.Errorf("scenario names neither skill nor item")
}
