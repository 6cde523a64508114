package color

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Initialize forces the dark or light variants of adaptive colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Apply configures lipgloss from theme, honoring OOCTL_THEME and NO_COLOR.
// It returns the theme that was applied.
func Apply(theme string) string {
	if env := strings.ToLower(os.Getenv("OOCTL_THEME")); env != "" {
		theme = env
	}

	switch theme {
	case ThemeDark:
		Initialize(true)
	case ThemeLight:
		Initialize(false)
	default:
		theme = ThemeAuto
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return theme
}
