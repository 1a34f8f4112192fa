// Package bluecarbon wires the blue carbon registry platform: four independent
// apps (community mobile, registry admin, corporate marketplace and government
// portal), each with its own screen registry, route table and session, sharing
// configuration, logging, the message catalog and the settlement ledger.
//
// Call Init once at startup and Close before exit.
package bluecarbon

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/app"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/apps/admin"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/apps/government"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/apps/marketplace"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/apps/mobile"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/internal"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/settlement"
)

// Config is the file + environment configuration.
type Config = internal.Config

// Translator renders catalog messages in one language.
type Translator = internal.Translator

// Options configures platform initialization. Non-empty fields override the config file and environment.
type Options struct {
	ConfigPath     string // TOML config file; missing files are ignored
	LogPath        string // Full path for the log file including filename (creates parent directories)
	LogLevel       string // "debug", "info", "warn" or "error"
	Locale         string // BCP 47 tag, e.g. "hi"
	DefaultApp     string // App shown first, e.g. "admin"
	DisableConsole bool   // Keep logs off stdout, for terminal front ends
}

// Platform holds the running app instances. Apps share nothing but the
// catalog, the ledger and the logger.
type Platform struct {
	Config      Config
	Translator  *Translator
	Ledger      *settlement.Simulated
	Mobile      *mobile.App
	Admin       *admin.App
	Marketplace *marketplace.App
	Government  *government.App
}

// Init loads configuration, sets up logging, and composes every app.
// Composition errors in route tables panic; configuration and catalog
// failures are returned as *InfrastructureError.
func Init(options Options) (*Platform, error) {
	cfg, err := internal.LoadConfig(options.ConfigPath)
	if err != nil {
		return nil, NewInfrastructureError("load_config", err)
	}
	applyOverrides(&cfg, options)
	if err := cfg.Validate(); err != nil {
		return nil, NewInfrastructureError("load_config", err)
	}

	internal.SetLogConsole(!options.DisableConsole)
	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetRawLogLevel(cfg.LogLevel)
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	catalog, err := internal.DefaultCatalog()
	if err != nil {
		return nil, NewInfrastructureError("load_catalog", err)
	}
	translator := catalog.Translator(cfg.Locale)

	logger := internal.GetLogger()
	for _, key := range cfg.UnknownKeys {
		internal.GetInternalLogger().Warn("unknown config key", "path", options.ConfigPath, "key", key)
	}
	ledger := settlement.NewSimulated(cfg.Settlement.Delay, cfg.Settlement.Network).WithLogger(logger)
	opts := app.Options{Logger: logger, Translator: translator, Ledger: ledger}

	p := &Platform{
		Config:      cfg,
		Translator:  translator,
		Ledger:      ledger,
		Mobile:      mobile.New(opts),
		Admin:       admin.New(opts),
		Marketplace: marketplace.New(opts),
		Government:  government.New(opts),
	}

	logger.Info("platform initialized",
		"locale", translator.Language(),
		"default_app", cfg.DefaultApp,
		"network", cfg.Settlement.Network,
		"settlement_delay", cfg.Settlement.Delay.String(),
	)
	return p, nil
}

func applyOverrides(cfg *Config, options Options) {
	if options.LogPath != "" {
		cfg.LogPath = options.LogPath
	}
	if options.LogLevel != "" {
		cfg.LogLevel = options.LogLevel
	}
	if options.Locale != "" {
		cfg.Locale = options.Locale
	}
	if options.DefaultApp != "" {
		cfg.DefaultApp = options.DefaultApp
	}
}

// Surfaces returns every app in tab order.
func (p *Platform) Surfaces() []app.Surface {
	return []app.Surface{p.Mobile, p.Admin, p.Marketplace, p.Government}
}

// Surface returns the app with id.
func (p *Platform) Surface(id constants.AppID) (app.Surface, error) {
	for _, s := range p.Surfaces() {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no app %s", id)
}

// DefaultApp returns the configured starting app.
func (p *Platform) DefaultApp() constants.AppID {
	id, err := constants.ParseAppID(p.Config.DefaultApp)
	if err != nil {
		return constants.AppMobile
	}
	return id
}

// AppTitle returns the localized name of app.
func (p *Platform) AppTitle(id constants.AppID) string {
	return p.Translator.T("app." + id.String())
}

// Close flushes and closes the log file.
// Must be called before program exit.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// LoadConfig reads a config file and applies BLUECARBON_* environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		return Config{}, NewInfrastructureError("load_config", err)
	}
	return cfg, nil
}

// NewTranslator returns a translator for the closest bundled match of locale.
func NewTranslator(locale string) (*Translator, error) {
	catalog, err := internal.DefaultCatalog()
	if err != nil {
		return nil, NewInfrastructureError("load_catalog", err)
	}
	return catalog.Translator(locale), nil
}
