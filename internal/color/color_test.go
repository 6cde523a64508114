package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Setenv("OOCTL_THEME", "")

	assert.Equal(t, ThemeLight, Apply("light"))
	assert.False(t, lipgloss.HasDarkBackground())

	assert.Equal(t, ThemeDark, Apply("dark"))
	assert.True(t, lipgloss.HasDarkBackground())

	assert.Equal(t, ThemeAuto, Apply("sepia"))
}

func TestApply_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OOCTL_THEME", "LIGHT")
	assert.Equal(t, ThemeLight, Apply("dark"))
	assert.False(t, lipgloss.HasDarkBackground())

	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)

	t.Setenv("NO_COLOR", "1")
	Apply("auto")
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
