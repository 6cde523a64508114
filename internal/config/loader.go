package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/ooctl"
	projectConfigDir = ".ooctl"
	configFileName   = "config.yaml"
)

var validate = validator.New()

// LoadConfig loads the configuration by layering default, user and project
// settings. explicitPath, when not empty, is applied last and must exist.
func LoadConfig(explicitPath string) (OoctlConfig, error) {
	config := GetDefaultConfig()

	paths := []string{}
	if p, err := getUserConfigPath(); err == nil {
		paths = append(paths, p)
	}
	if p, err := getProjectConfigPath(); err == nil {
		paths = append(paths, p)
	}

	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(p)
		if err != nil {
			return OoctlConfig{}, fmt.Errorf("error loading config from %s: %w", p, err)
		}
		config = mergeConfigs(config, overlay)
	}

	if explicitPath != "" {
		overlay, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return OoctlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, overlay)
	}

	if err := Validate(config); err != nil {
		return OoctlConfig{}, err
	}
	return config, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg OoctlConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an OoctlConfig from a YAML file, expanding
// environment variables first.
func loadConfigFromFile(filePath string) (OoctlConfig, error) {
	var config OoctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return OoctlConfig{}, err
	}
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), &config); err != nil {
		return OoctlConfig{}, err
	}
	return config, nil
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// expandEnv replaces ${VAR} and ${VAR:-default}.
func expandEnv(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := envPattern.FindStringSubmatch(m)
		if v, ok := os.LookupEnv(parts[1]); ok && v != "" {
			return v
		}
		return parts[2]
	})
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched.
func mergeConfigs(base, overlay OoctlConfig) OoctlConfig {
	merged := base

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.LogFormat != "" {
		merged.LogFormat = overlay.LogFormat
	}
	if overlay.Strategy.DefaultQuack != "" {
		merged.Strategy.DefaultQuack = overlay.Strategy.DefaultQuack
	}
	if overlay.Decorator.BaseCost != nil {
		merged.Decorator.BaseCost = overlay.Decorator.BaseCost
	}
	if overlay.Decorator.Surcharges != nil {
		merged.Decorator.Surcharges = overlay.Decorator.Surcharges
	}
	if overlay.Memento.UndoPolicy != "" {
		merged.Memento.UndoPolicy = overlay.Memento.UndoPolicy
	}
	if overlay.Remote.Slots != nil {
		merged.Remote.Slots = overlay.Remote.Slots
	}
	if overlay.TUI.ShowNotes != nil {
		merged.TUI.ShowNotes = overlay.TUI.ShowNotes
	}
	if overlay.TUI.Theme != "" {
		merged.TUI.Theme = overlay.TUI.Theme
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// BaseCost reports the effective decorator base cost.
func (c OoctlConfig) BaseCost() int {
	if c.Decorator.BaseCost == nil {
		return DefaultBaseCost
	}
	return *c.Decorator.BaseCost
}

// RemoteSlots reports the effective number of invoker slots.
func (c OoctlConfig) RemoteSlots() int {
	if c.Remote.Slots == nil {
		return DefaultRemoteSlots
	}
	return *c.Remote.Slots
}

// ShowNotes reports the effective TUI preference.
func (c OoctlConfig) ShowNotes() bool {
	return c.TUI.ShowNotes == nil || *c.TUI.ShowNotes
}
