package battle

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/config"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/game/formula"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// Mechanics is the battle-calculation core: damage pipeline, hit/evasion,
// critical and luck resolvers over one immutable configuration, one
// formula evaluator and the published annotation table.
//
// Single-goroutine like its evaluator; the annotation table alone is
// swapped atomically so a host that reloads game data from elsewhere
// still presents readers a fully-old or fully-new table.
type Mechanics struct {
	cfg    config.Battle
	eval   *formula.Evaluator
	vars   *model.Variables
	tracer *Tracer

	annotations atomic.Pointer[data.AnnotationTable]
}

// New wires the battle core together. The annotation table is empty until
// LoadAnnotations runs.
func New(cfg config.Battle, eval *formula.Evaluator, vars *model.Variables, tracer *Tracer) *Mechanics {
	return &Mechanics{cfg: cfg, eval: eval, vars: vars, tracer: tracer}
}

// LoadAnnotations parses the database's notetags and publishes the fresh
// table in one atomic step. Invoked once after game data becomes
// available; safe to invoke again on a data reload.
func (m *Mechanics) LoadAnnotations(ctx context.Context, db *data.Database) error {
	table, err := data.BuildAnnotations(ctx, db)
	if err != nil {
		return err
	}
	m.annotations.Store(table)
	return nil
}

// Annotations returns the published table; nil-safe before the first load
// (every lookup then reads defaults).
func (m *Mechanics) Annotations() *data.AnnotationTable {
	return m.annotations.Load()
}

// Config returns the battle configuration the core was built with.
func (m *Mechanics) Config() config.Battle { return m.cfg }

// binds assembles the fixed variable set for one action-against-target
// evaluation.
func (m *Mechanics) binds(act *model.Action, target model.Battler) formula.Bindings {
	return formula.Bindings{
		Subject: act.Subject,
		Target:  target,
		Action:  act,
		Vars:    m.vars,
	}
}

// evalRecovered evaluates a formula under the uniform recovery policy:
// a missing formula is a configuration error and propagates; an
// evaluation failure is logged and substituted with 0.
func (m *Mechanics) evalRecovered(c Category, text string, binds formula.Bindings) (float64, error) {
	value, err := m.eval.Eval(text, binds)
	if err != nil {
		var evalErr *formula.EvalError
		if errors.As(err, &evalErr) {
			m.tracer.Fail(c, evalErr)
			return 0, nil
		}
		return 0, err
	}
	return value, nil
}
