package app

import (
	"fmt"

	"ooctl/internal/catalogue"
	"ooctl/internal/color"
	"ooctl/internal/config"
	"ooctl/pkg/logging"
)

// Application is the composition root: it owns the loaded settings, the
// logger and the concept registry, and hands them to each mode.
type Application struct {
	config   *Config
	logger   *logging.Logger
	registry *catalogue.Registry
}

// NewApplication loads configuration and wires the catalogue.
func NewApplication(cfg *Config) (*Application, error) {
	settings, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ooctl configuration: %w", err)
	}
	cfg.Settings = &settings

	level, err := resolveLogLevel(cfg)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level, logging.Format(settings.LogFormat), cfg.Stderr)

	if cfg.ConfigPath != "" {
		logger.Info("Bootstrap", "Loaded configuration with explicit file: %s", cfg.ConfigPath)
	} else {
		logger.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	theme := color.Apply(settings.TUI.Theme)
	logger.Debug("Bootstrap", "Using %s color theme", theme)

	registry, err := catalogue.Default(logger)
	if err != nil {
		logger.Error("Bootstrap", err, "Failed to build concept catalogue")
		return nil, fmt.Errorf("failed to build concept catalogue: %w", err)
	}

	return &Application{
		config:   cfg,
		logger:   logger,
		registry: registry,
	}, nil
}

// resolveLogLevel applies --debug, then --log-level, then the config file.
func resolveLogLevel(cfg *Config) (logging.LogLevel, error) {
	if cfg.Debug {
		return logging.LevelDebug, nil
	}
	raw := cfg.Settings.LogLevel
	if cfg.LogLevel != "" {
		raw = cfg.LogLevel
	}
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return logging.LevelInfo, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// Logger returns the CLI logger.
func (a *Application) Logger() *logging.Logger { return a.logger }

// Registry returns the concept registry.
func (a *Application) Registry() *catalogue.Registry { return a.registry }

// Settings returns the loaded configuration.
func (a *Application) Settings() config.OoctlConfig { return *a.config.Settings }

func (a *Application) env() *catalogue.Env {
	return &catalogue.Env{Out: a.config.Stdout, Logger: a.logger, Config: *a.config.Settings}
}
