package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content OoctlConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// isolatePaths points the user and project layers into tempDir.
func isolatePaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "home", userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolatePaths(t, t.TempDir())

	loaded, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.True(t, loaded.ShowNotes())
}

func TestLoadConfig_UserAndProjectLayers(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)
	slots := 7

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, OoctlConfig{
		LogLevel: "debug",
		Memento:  MementoConfig{UndoPolicy: "restore-previous"},
		Remote:   RemoteConfig{Slots: &slots},
	})
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, OoctlConfig{
		LogLevel:  "warn",
		Decorator: DecoratorConfig{Surcharges: []int{5}},
	})

	loaded, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", loaded.LogLevel, "project overrides user")
	assert.Equal(t, "restore-previous", loaded.Memento.UndoPolicy)
	assert.Equal(t, 7, loaded.RemoteSlots())
	assert.Equal(t, []int{5}, loaded.Decorator.Surcharges)
	assert.Equal(t, 100, loaded.BaseCost(), "untouched defaults survive")
}

func TestLoadConfig_OverlayCanSetZero(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	path := filepath.Join(tempDir, "zero.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decorator:\n  baseCost: 0\nremote:\n  slots: 0\n"), 0644))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.BaseCost())
	assert.Equal(t, 0, loaded.RemoteSlots())
	assert.Equal(t, []int{20, 40}, loaded.Decorator.Surcharges, "untouched defaults survive")
}

func TestMergeConfigs_UnsetKeepsBase(t *testing.T) {
	merged := mergeConfigs(GetDefaultConfig(), OoctlConfig{})
	assert.Equal(t, DefaultBaseCost, merged.BaseCost())
	assert.Equal(t, DefaultRemoteSlots, merged.RemoteSlots())

	var empty OoctlConfig
	assert.Equal(t, DefaultBaseCost, empty.BaseCost())
	assert.Equal(t, DefaultRemoteSlots, empty.RemoteSlots())
}

func TestLoadConfig_ExplicitPathWins(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	notes := false
	explicit := createTempConfigFile(t, tempDir, "custom.yaml", OoctlConfig{
		Strategy: StrategyConfig{DefaultQuack: "mute"},
		TUI:      TUIConfig{ShowNotes: &notes, Theme: "light"},
	})

	loaded, err := LoadConfig(explicit)
	require.NoError(t, err)
	assert.Equal(t, "mute", loaded.Strategy.DefaultQuack)
	assert.False(t, loaded.ShowNotes())
	assert.Equal(t, "light", loaded.TUI.Theme)
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	isolatePaths(t, t.TempDir())

	_, err := LoadConfig("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	explicit := createTempConfigFile(t, tempDir, "bad.yaml", OoctlConfig{
		Memento: MementoConfig{UndoPolicy: "redo-everything"},
	})

	_, err := LoadConfig(explicit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfig_EnvExpansion(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)
	t.Setenv("OOCTL_TEST_LEVEL", "error")

	path := filepath.Join(tempDir, "env.yaml")
	content := "logLevel: \"${OOCTL_TEST_LEVEL}\"\nlogFormat: \"${OOCTL_TEST_UNSET:-json}\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "error", loaded.LogLevel)
	assert.Equal(t, "json", loaded.LogFormat)
}

func TestValidate_Bounds(t *testing.T) {
	cfg := GetDefaultConfig()
	tooMany := 99
	cfg.Remote.Slots = &tooMany
	assert.Error(t, Validate(cfg))

	cfg = GetDefaultConfig()
	cfg.Decorator.Surcharges = []int{10, -1}
	assert.Error(t, Validate(cfg))

	assert.NoError(t, Validate(GetDefaultConfig()))
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/test", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/test", ".config/ooctl"), dir)
}
