package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"streetsprint/internal/game"
)

// DefaultPath is read when no -config flag is given. It may be absent.
const DefaultPath = "config/streetsprint.toml"

type Config struct {
	Game    GameConfig    `toml:"game"`
	Tiers   []game.Tier   `toml:"tiers"`
	Tuning  game.Tuning   `toml:"tuning"`
	Window  WindowConfig  `toml:"window"`
	Audio   AudioConfig   `toml:"audio"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Seed     uint64  `toml:"seed"` // 0 = seed from the clock
	Tier     string  `toml:"tier"`
	MaxDelta float64 `toml:"max_delta"` // overrides tuning.max_delta when positive
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type AudioConfig struct {
	Enabled     bool    `toml:"enabled"`
	SFXVolume   float64 `toml:"sfx_volume"`   // 0.0-1.0
	MusicVolume float64 `toml:"music_volume"` // 0.0-1.0
}

type StorageConfig struct {
	Path string `toml:"path"` // empty = in-memory, nothing persisted
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

// Load reads path over the defaults. The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.apply()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := defaults()
	cfg.apply()
	return cfg
}

func (c *Config) apply() {
	if len(c.Tiers) == 0 {
		c.Tiers = game.DefaultTiers()
	}
	if c.Game.MaxDelta > 0 {
		c.Tuning.MaxDelta = c.Game.MaxDelta
	}
}

// Validate checks cross-section consistency.
func (c *Config) Validate() error {
	if err := c.Tuning.Validate(); err != nil {
		return err
	}
	if err := game.ValidateTiers(c.Tiers); err != nil {
		return err
	}
	if c.Game.Tier != "" && c.TierIndex(c.Game.Tier) < 0 {
		return fmt.Errorf("game: tier %q is not defined", c.Game.Tier)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if !unit(c.Audio.SFXVolume) || !unit(c.Audio.MusicVolume) {
		return errors.New("audio: volumes must be within 0..1")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Logging.Format)
	}
	return nil
}

// TierIndex returns the position of tier id, or -1.
func (c *Config) TierIndex(id string) int {
	for i, t := range c.Tiers {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func unit(v float64) bool { return v >= 0 && v <= 1 }

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Tier: "normal",
		},
		Tuning: game.DefaultTuning(),
		Window: WindowConfig{
			Width:  405,
			Height: 720,
			Title:  "Street Sprint",
			VSync:  true,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SFXVolume:   0.8,
			MusicVolume: 0.5,
		},
		Storage: StorageConfig{
			Path: "data/streetsprint.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
