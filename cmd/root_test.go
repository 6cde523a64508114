package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ooctl/internal/catalogue"
)

// executeRoot runs the shared root command and restores the global flag
// state it mutates.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootConfigPath, rootLogLevel, rootDebug = "", "", false
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	return execute(t, rootCmd, args...)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ooctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "ooctl", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "SOLID principles")
	assert.True(t, rootCmd.SilenceUsage)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"list", "show", "run", "browse", "serve", "call", "version", "self-update"})
}

func TestVersionTemplate(t *testing.T) {
	cmd := &cobra.Command{Use: "ooctl", Version: "1.0.0", Run: func(*cobra.Command, []string) {}}
	cmd.SetVersionTemplate(`{{printf "ooctl version %s\n" .Version}}`)

	out, _, err := execute(t, cmd, "--version")
	require.NoError(t, err)
	assert.Equal(t, "ooctl version 1.0.0\n", out)
}

func TestRoot_ConfigFlagReachesDemos(t *testing.T) {
	path := writeConfig(t, "decorator:\n  baseCost: 250\n  surcharges: [5]\nremote:\n  slots: 0\n")

	out, stderr, err := executeRoot(t, "--config", path, "run", "decorator", "command")
	require.NoError(t, err)

	assert.Contains(t, out, "Base = 250")
	assert.Contains(t, out, "after surcharge 1: Base, +5 = 255")
	assert.NotContains(t, out, "slot 0:")
	assert.Contains(t, stderr, "Loaded configuration with explicit file: "+path)
}

func TestRoot_ConfigFlagErrors(t *testing.T) {
	_, _, err := executeRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.ErrorContains(t, err, "missing.yaml")

	bad := writeConfig(t, "remote:\n  slots: 99\n")
	_, _, err = executeRoot(t, "--config", bad, "run", "command")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRoot_ShowUnknownConcept(t *testing.T) {
	out, _, err := executeRoot(t, "show", "visitor")
	assert.ErrorIs(t, err, catalogue.ErrUnknownConcept)
	assert.ErrorContains(t, err, `"visitor"`)
	assert.Empty(t, out)
}
