package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/battlecity/engine/internal/config"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	coresys "github.com/battlecity/engine/internal/core/system"
	"github.com/battlecity/engine/internal/factory"
	"github.com/battlecity/engine/internal/game"
	"github.com/battlecity/engine/internal/level"
	"github.com/battlecity/engine/internal/scripting"
	"github.com/battlecity/engine/internal/system"
	"github.com/battlecity/engine/internal/view"
)

const defaultConfigPath = "config/battlecity.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            Battle City  engine            \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, value any) {
	s := fmt.Sprint(value)
	dotsLen := 42 - len(label) - len(s)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), s)
}

func run() error {
	cfgPath := os.Getenv("BATTLECITY_CONFIG")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if p := startProfile(cfg.Debug.Profile); p != nil {
		defer p.Stop()
	}

	printBanner()
	printSection("Config")
	printStat("Tick rate", cfg.Game.TickRate)
	printStat("Levels", len(cfg.Levels.Files))
	printStat("Player lives", cfg.Game.PlayerLives)
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	world := ecs.NewWorld()
	bus := event.NewBus()
	runner := coresys.NewRunner(world, cfg.Game.TickRate, log)

	logView := view.NewLogView(log.Named("view"), func(c coresys.Command) { runner.Send(c) })
	bridge := view.Connect(bus, logView)
	defer bridge.Disconnect()

	f := factory.New(world, factory.Images{Template: cfg.Assets.ImageTemplate})
	loader := level.NewLoader(f, cfg.Game, logView, log.Named("level"))
	session := game.NewSession(world, bus, loader, logView, cfg.Levels.Files, log.Named("session"))

	lua, err := scripting.NewEngine(cfg.Scripting.Dir, log.Named("lua"))
	if err != nil {
		return err
	}
	defer lua.Close()

	// Registration order is tick order.
	clock := system.NewClock(cfg.Game.TickRate)
	world.AddSystem(system.NewClockSystem(world, clock))
	world.AddSystem(system.NewEnemyAISystem(world, lua, f, clock, cfg.Game, log.Named("ai")))
	world.AddSystem(system.NewMovementSystem(world, bus, clock))
	world.AddSystem(system.NewCollisionSystem(world, bus, log.Named("collision")))
	world.AddSystem(system.NewReaperSystem(world, bus, f, clock, log.Named("reaper")))
	world.AddSystem(system.NewLevelSystem(world, bus, log.Named("level")))

	runner.OnLoadNextLevel(session.LoadNextLevel)
	if limit := cfg.Game.MaxTicks; limit > 0 {
		runner.AfterTick(func(ticks uint64) {
			if ticks >= limit {
				log.Info("tick limit reached", zap.Uint64("ticks", ticks))
				cancel()
			}
		})
	}
	event.Subscribe(bus, func(event.GameCompleted) { cancel() })
	event.Subscribe(bus, func(ev event.LevelCompleted) {
		if ev.Result == event.LevelLost {
			cancel()
		}
	})

	if err := session.LoadNextLevel(); err != nil {
		return err
	}
	printSection("Running")
	runner.Handle(coresys.CmdStart)
	if err := runner.Run(ctx); err != nil {
		return err
	}
	log.Info("game over", zap.Uint64("ticks", runner.Ticks()), zap.Int("levels_left", session.Remaining()))
	return nil
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return nil
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
