package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"streetsprint/internal/audio"
	"streetsprint/internal/config"
	"streetsprint/internal/desktop"
	"streetsprint/internal/game"
	"streetsprint/internal/scene"
	"streetsprint/internal/store"
	"streetsprint/internal/term"
)

// termLogFile keeps log lines off the terminal screen when -term is set.
const termLogFile = "streetsprint.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "settings file (default "+config.DefaultPath+" if present)")
	tierFlag := flag.String("tier", "", "difficulty tier id")
	seedFlag := flag.Uint64("seed", 0, "random seed (0 = from clock)")
	termMode := flag.Bool("term", false, "run in the terminal instead of a window")
	autopilot := flag.Bool("autopilot", false, "let the computer drive")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.LoadOptional(config.DefaultPath)
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		return err
	}
	if *tierFlag != "" {
		if cfg.TierIndex(*tierFlag) < 0 {
			return fmt.Errorf("%w: %q", game.ErrUnknownTier, *tierFlag)
		}
		cfg.Game.Tier = *tierFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
	if *termMode && cfg.Logging.File == "" {
		cfg.Logging.File = termLogFile
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	graph := scene.New()
	events := game.NewEventBus()
	opts := []game.Option{
		game.WithTuning(cfg.Tuning),
		game.WithTiers(cfg.Tiers),
		game.WithRand(game.NewRand(cfg.Game.Seed)),
		game.WithScene(graph),
		game.WithEvents(events),
		game.WithLogger(log.Named("sim")),
	}

	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Warn("best scores unavailable, continuing without persistence", zap.Error(err))
	} else {
		defer st.Close()
		opts = append(opts, game.WithStore(st))
		if slots, err := st.All(); err == nil {
			for _, s := range slots {
				log.Info("best score", zap.String("slot", s.Slot), zap.Float64("score", s.Score))
			}
		}
	}

	var player *audio.Player
	if cfg.Audio.Enabled {
		player, err = audio.New(audio.Options{
			SFXVolume:   cfg.Audio.SFXVolume,
			MusicVolume: cfg.Audio.MusicVolume,
		}, log.Named("audio"))
		if err != nil {
			log.Warn("audio init failed, continuing without sound", zap.Error(err))
		}
	}
	defer player.StopMusic()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("street sprint starting",
		zap.String("tier", cfg.Game.Tier),
		zap.Uint64("seed", cfg.Game.Seed),
		zap.Bool("term", *termMode),
		zap.Bool("autopilot", *autopilot),
	)

	if *termMode {
		hud := term.NewStatusHUD()
		sim, err := newSim(cfg, append(opts, game.WithHUD(hud)), player, events)
		if err != nil {
			return err
		}
		return term.Run(ctx, sim, graph, hud, term.Options{Autopilot: *autopilot}, log.Named("term"))
	}

	hud := desktop.NewTitleHUD(cfg.Window.Title)
	sim, err := newSim(cfg, append(opts, game.WithHUD(hud)), player, events)
	if err != nil {
		return err
	}
	return desktop.Run(ctx, sim, graph, hud, desktop.Options{
		Window:    cfg.Window,
		Autopilot: *autopilot,
		Seed:      cfg.Game.Seed,
	}, log.Named("desktop"))
}

// newSim builds the simulation on the configured tier and hooks audio up
// afterwards so the initial tier selection stays silent.
func newSim(cfg *config.Config, opts []game.Option, player *audio.Player, events *game.EventBus) (*game.Sim, error) {
	sim, err := game.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	if err := sim.SelectTier(cfg.Game.Tier); err != nil {
		return nil, err
	}
	player.Attach(events)
	player.StartMusic(audio.MusicMenu)
	return sim, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
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
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
		if cfg.Format != "json" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}

	return zapCfg.Build()
}
