package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from SFDLG_* environment variables.
// Command-line flags override these in main.
type Config struct {
	DebugLog        string        `env:"DEBUG_LOG"`
	DefaultFilename string        `env:"DEFAULT_FILENAME" envDefault:"untitled.json"`
	LastDir         string        `env:"LAST_DIR"`
	NoticeDuration  time.Duration `env:"NOTICE_DURATION" envDefault:"2s"`
	OSC52Fallback   bool          `env:"OSC52_FALLBACK" envDefault:"true"`
}

const prefix = "SFDLG_"

func Load() (Config, error) {
	return parse(env.Options{Prefix: prefix})
}

// LoadFrom reads the same settings from an explicit map instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.NoticeDuration <= 0 {
		return Config{}, fmt.Errorf("config: %sNOTICE_DURATION must be positive, got %s", prefix, cfg.NoticeDuration)
	}
	return cfg, nil
}
