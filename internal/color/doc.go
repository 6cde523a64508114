// Package color selects the terminal color theme for ooctl.
//
// Styles in the design system use adaptive colors, so the only decisions
// left are whether the background is dark and whether color is wanted at
// all. Apply makes both from the configured theme and the environment:
//
//	color.Apply(settings.TUI.Theme)
//
// # Themes
//
//   - auto: keep lipgloss' own background detection
//   - dark: force the dark variants
//   - light: force the light variants
//
// # Environment Variables
//
//   - NO_COLOR: disable all color output
//   - OOCTL_THEME: overrides the configured theme
package color
