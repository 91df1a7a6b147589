package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/config"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/game/battle"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/game/formula"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "config/battle.yaml", "battle config file")
	dataDir := flag.String("data", "", "game-data overlay directory")
	scenarioPath := flag.String("scenario", "scenario.yaml", "scenario file")
	seed := flag.Uint64("seed", 0, "RNG seed (overrides scenario seed when non-zero)")
	flag.Parse()

	// Config first: it sets the log level.
	cfg, err := config.LoadBattle(*configPath)
	if err != nil {
		return fmt.Errorf("loading battle config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("battlesim starting", "log_level", cfg.LogLevel)

	db, err := data.Load(*dataDir)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	sc, err := LoadScenario(*scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	vars := model.NewVariables()
	for index, value := range sc.Variables {
		vars.Set(index, value)
	}

	var opts []formula.Option
	if cfg.EvalTimeoutMs > 0 {
		opts = append(opts, formula.WithTimeout(time.Duration(cfg.EvalTimeoutMs)*time.Millisecond))
	}
	eval := formula.New(opts...)
	defer eval.Close()

	tracer := battle.NewTracer(slog.Default(), cfg.LogCategories)
	mech := battle.New(cfg, eval, vars, tracer)
	if err := mech.LoadAnnotations(ctx, db); err != nil {
		return fmt.Errorf("building annotations: %w", err)
	}

	subject, err := buildBattler(db, sc.Subject)
	if err != nil {
		return fmt.Errorf("building subject: %w", err)
	}
	target, err := buildBattler(db, sc.Target)
	if err != nil {
		return fmt.Errorf("building target: %w", err)
	}
	usable, err := buildUsable(db, sc)
	if err != nil {
		return fmt.Errorf("resolving action: %w", err)
	}
	act := model.NewAction(subject, usable)

	s := sc.Seed
	if *seed != 0 {
		s = *seed
	}
	rng := rand.New(rand.NewPCG(s, s))

	out, err := mech.Resolve(act, target, rng)
	if err != nil {
		return fmt.Errorf("resolving action: %w", err)
	}

	fmt.Printf("%s uses %s on %s (seed %d)\n", subject.Name(), usable.RecordName(), target.Name(), s)
	fmt.Printf("  hit chance:    %.4f\n", out.HitChance)
	fmt.Printf("  evade chance:  %.4f\n", out.EvadeChance)
	fmt.Printf("  crit chance:   %.4f\n", out.CritChance)
	fmt.Printf("  luck effect:   %.4f\n", out.Luck)
	fmt.Printf("  element rate:  %.2f\n", out.Element)
	switch {
	case !out.Hit:
		fmt.Println("  result:        miss")
	case out.Evaded:
		fmt.Println("  result:        evaded")
	default:
		crit := ""
		if out.Crit {
			crit = " (critical)"
		}
		verb := "damage"
		if out.Damage < 0 {
			verb = "healing"
		}
		resource := "HP"
		if act.DamageKind().MP() {
			resource = "MP"
		}
		fmt.Printf("  result:        %.0f %s %s%s\n", absf(out.Damage), resource, verb, crit)
	}
	return nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
