package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
)

// SettlementConfig configures the simulated ledger.
type SettlementConfig struct {
	Delay   time.Duration `toml:"delay" env:"DELAY"`
	Network string        `toml:"network" env:"NETWORK"`
}

// Config is the file + environment configuration of the platform.
// Precedence: defaults, then the TOML file, then BLUECARBON_* variables.
type Config struct {
	LogLevel   string           `toml:"log_level" env:"LOG_LEVEL"`
	LogPath    string           `toml:"log_path" env:"LOG_PATH"`
	Locale     string           `toml:"locale" env:"LOCALE"`
	DefaultApp string           `toml:"default_app" env:"APP"`
	Settlement SettlementConfig `toml:"settlement" envPrefix:"SETTLEMENT_"`

	// UnknownKeys lists file keys that matched no field. LoadConfig runs before
	// logging is configured, so callers log these.
	UnknownKeys []string `toml:"-"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel:   constants.DefaultLogLevel,
		Locale:     constants.DefaultLocale,
		DefaultApp: constants.AppMobile.String(),
		Settlement: SettlementConfig{
			Delay:   constants.DefaultSettlementDelay,
			Network: constants.DefaultSettlementNetwork,
		},
	}
}

// LoadConfig reads path (if it exists) over the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults plus environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		default:
			for _, key := range md.Undecoded() {
				cfg.UnknownKeys = append(cfg.UnknownKeys, key.String())
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "BLUECARBON_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if _, err := constants.ParseAppID(c.DefaultApp); err != nil {
		return fmt.Errorf("config default_app: %w", err)
	}
	if c.Settlement.Delay < 0 {
		return fmt.Errorf("config settlement.delay: must not be negative, got %s", c.Settlement.Delay)
	}
	return nil
}
