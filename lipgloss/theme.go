// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/textcompare"

// Compile-time interface verification.
var _ textcompare.Theme = (*Theme)(nil)

// Theme implements textcompare.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles textcompare.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() textcompare.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: textcompare.Styles{
			Frame: textcompare.ColorPair{
				Foreground: "#45475a", // Muted gray (subtle)
			},
			Header: textcompare.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Deleted: textcompare.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red - marker text stays readable
			},
			Added: textcompare.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green - marker text stays readable
			},
			Context: textcompare.ColorPair{
				Foreground: "#cdd6f4", // Catppuccin Mocha foreground
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: textcompare.Styles{
			Frame: textcompare.ColorPair{
				Foreground: "#bcc0cc", // Muted gray (subtle for light)
			},
			Header: textcompare.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Deleted: textcompare.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Added: textcompare.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Context: textcompare.ColorPair{
				Foreground: "#4c4f69", // Catppuccin Latte foreground
			},
		},
	}
}
