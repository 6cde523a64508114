package app

import (
	"io"
	"os"

	"ooctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Explicit config file, layered on top of user and project config
	ConfigPath string

	// Overrides the configured log level when set
	LogLevel string

	// Debug forces debug logging
	Debug bool

	// Command output and log output
	Stdout io.Writer
	Stderr io.Writer

	// Loaded settings, populated by NewApplication
	Settings *config.OoctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath, logLevel string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		Debug:      debug,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}
