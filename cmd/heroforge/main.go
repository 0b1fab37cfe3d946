// Package main runs the hero builder and stealing demonstrations.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/heroforge/internal/config"
	"github.com/cory-johannsen/heroforge/internal/dice"
	"github.com/cory-johannsen/heroforge/internal/hero"
	"github.com/cory-johannsen/heroforge/internal/observability"
	"github.com/cory-johannsen/heroforge/internal/report"
	"github.com/cory-johannsen/heroforge/internal/stealing"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults are used when empty)")
	rosterPath := flag.String("roster", "", "hero roster file or directory, overrides content.roster")
	reportTo := flag.String("report", "stdout", `where reported lines go: "stdout", "log", or "both"`)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *rosterPath != "" {
		cfg.Content.Roster = *rosterPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	r, err := newReporter(*reportTo, logger, os.Stdout)
	if err != nil {
		logger.Fatal("configuring reporter", zap.Error(err))
	}

	if err := run(cfg, logger, r); err != nil {
		logger.Fatal("demonstration failed", zap.Error(err))
	}
	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func newReporter(dest string, logger *zap.Logger, out io.Writer) (report.Reporter, error) {
	stdout := report.Func(func(line string) { fmt.Fprintln(out, line) })
	switch dest {
	case "stdout":
		return stdout, nil
	case "log":
		return report.NewZapReporter(logger), nil
	case "both":
		return report.Tee(stdout, report.NewZapReporter(logger)), nil
	default:
		return nil, fmt.Errorf("unknown report destination %q", dest)
	}
}

// run builds the demo heroes, then steals once with every configured method.
func run(cfg config.Config, logger *zap.Logger, r report.Reporter) error {
	heroes, err := demoHeroes()
	if err != nil {
		return err
	}
	if cfg.Content.Roster != "" {
		roster, err := loadRoster(cfg.Content.Roster)
		if err != nil {
			return err
		}
		logger.Info("roster loaded",
			zap.String("path", cfg.Content.Roster),
			zap.Int("heroes", len(roster)),
		)
		heroes = append(heroes, roster...)
	}
	for _, h := range heroes {
		r.Report(h.String())
	}

	methods, closeAll, err := buildMethods(cfg, r)
	if err != nil {
		return err
	}
	defer closeAll()

	thief := stealing.NewThief(methods[0], r, logger)
	for i, m := range methods {
		if i > 0 {
			thief.ChangeMethod(m)
		}
		if err := thief.Steal(); err != nil {
			return fmt.Errorf("stealing with %s: %w", stealing.Name(m), err)
		}
	}
	return nil
}

func demoHeroes() ([]hero.Hero, error) {
	mage, err := hero.NewBuilder(hero.Mage, "Riobard")
	if err != nil {
		return nil, err
	}
	warrior, err := hero.NewBuilder(hero.Warrior, "Amberjill")
	if err != nil {
		return nil, err
	}
	warrior.WithHairColor(hero.Blond).
		WithHairType(hero.LongCurly).
		WithArmor(hero.ChainMail).
		WithWeapon(hero.Sword)
	thief, err := hero.NewBuilder(hero.Thief, "Desmond")
	if err != nil {
		return nil, err
	}
	thief.WithHairType(hero.Bald).WithWeapon(hero.Bow)

	return []hero.Hero{mage.Build(), warrior.Build(), thief.Build()}, nil
}

func loadRoster(path string) ([]hero.Hero, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	if info.IsDir() {
		return hero.LoadRosters(path)
	}
	return hero.LoadRoster(path)
}

// buildMethods constructs the configured methods in order. The returned func
// releases any Lua states.
func buildMethods(cfg config.Config, r report.Reporter) ([]stealing.Method, func(), error) {
	var (
		methods []stealing.Method
		scripts []*stealing.ScriptedMethod
	)
	closeAll := func() {
		for _, s := range scripts {
			s.Close()
		}
	}

	for _, id := range cfg.Thief.Methods {
		switch id {
		case config.MethodHitAndRun:
			methods = append(methods, stealing.NewHitAndRunMethod(r))
		case config.MethodSubtle:
			methods = append(methods, stealing.NewSubtleMethod(r))
		case config.MethodRandom:
			src := dice.NewCryptoSource()
			if cfg.Thief.Seed != 0 {
				src = dice.NewSeededSource(cfg.Thief.Seed)
			}
			m, err := stealing.NewRandomMethod(cfg.Thief.Targets, src, r)
			if err != nil {
				closeAll()
				return nil, nil, err
			}
			methods = append(methods, m)
		case config.MethodScripted:
			paths, err := filepath.Glob(filepath.Join(cfg.Content.ScriptsDir, "*.lua"))
			if err != nil {
				closeAll()
				return nil, nil, fmt.Errorf("listing scripts in %s: %w", cfg.Content.ScriptsDir, err)
			}
			sort.Strings(paths)
			for _, path := range paths {
				m, err := stealing.LoadScriptedMethod(path, cfg.Thief.ScriptInstructionLimit, r)
				if err != nil {
					closeAll()
					return nil, nil, err
				}
				scripts = append(scripts, m)
				methods = append(methods, m)
			}
		default:
			closeAll()
			return nil, nil, fmt.Errorf("unknown stealing method %q", id)
		}
	}
	if len(methods) == 0 {
		closeAll()
		return nil, nil, fmt.Errorf("no stealing methods configured")
	}
	return methods, closeAll, nil
}
