package battle

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/config"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/game/formula"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// testMechanics wires a quiet battle core over cfg and db.
func testMechanics(t *testing.T, cfg config.Battle, db *data.Database) *Mechanics {
	t.Helper()
	eval := formula.New()
	t.Cleanup(eval.Close)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := New(cfg, eval, model.NewVariables(), NewTracer(quiet, nil))
	if db != nil {
		require.NoError(t, m.LoadAnnotations(context.Background(), db))
	}
	return m
}

// actorBattler builds an actor-backed battler with flat param curves.
func actorBattler(name string, params [data.BaseParamCount]int, ex model.ExParams) *model.ActorBattler {
	class := &data.Class{ID: 1, Name: name + " class"}
	for i, v := range params {
		class.Params[i] = []int{v}
	}
	b := model.NewActorBattler(&data.Actor{ID: 1, Name: name, ClassID: 1}, class, 1)
	b.Rates = ex
	return b
}

// enemyBattler builds an enemy-backed battler with a flat param table.
func enemyBattler(name string, params [data.BaseParamCount]int, ex model.ExParams) *model.EnemyBattler {
	b := model.NewEnemyBattler(&data.Enemy{ID: 1, Name: name, Params: params}, 3)
	b.Rates = ex
	return b
}

// params fills only the slots named; everything else is 0.
func params(pairs map[data.ParamID]int) [data.BaseParamCount]int {
	var p [data.BaseParamCount]int
	for id, v := range pairs {
		p[id] = v
	}
	return p
}
