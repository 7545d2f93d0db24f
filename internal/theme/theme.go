// Package theme provides color themes and styling for the tabgrid deck.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup. If themeName is empty, theming is
// disabled and standard terminal colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// IDs returns all registered theme identifiers.
func IDs() []string {
	tint.NewDefaultRegistry()
	return tint.TintIDs()
}

// Cycle advances to the next registered theme and returns its id.
func Cycle() string {
	if !enabled {
		enabled = true
		tint.NewDefaultRegistry()
	}
	tint.NextTint()
	if t := tint.Current(); t != nil {
		return t.ID
	}
	return ""
}

// Fg returns the default foreground color for deck text.
func Fg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Bg returns the deck background color.
func Bg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// CardBorderFocused returns the border color of the focused card.
func CardBorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#4865f2")
	}
	return t.Blue
}

// CardBorderActive returns the border color of a card mid-swipe.
func CardBorderActive() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#fb923c")
	}
	return t.Yellow
}

// CardBorderUnfocused returns the border color of idle cards.
func CardBorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#4a4a4a")
	}
	return t.BrightBlack
}

// CardTitle returns the color for tab titles on cards.
func CardTitle() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffffff")
	}
	return t.BrightWhite
}

// CardURL returns the color for tab URLs on cards.
func CardURL() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// StatusBarFg returns the status bar foreground color.
func StatusBarFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// StatusBarBg returns the status bar background color.
func StatusBarBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1a1a2e")
	}
	return t.BrightBlack
}

// SearchPromptColor returns the color of the search prompt marker.
func SearchPromptColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#4ade80")
	}
	return t.Green
}

// NotificationColor returns the accent color for a notification type.
func NotificationColor(notifType string) color.Color {
	t := Current()
	switch notifType {
	case "error":
		if t == nil {
			return lipgloss.Color("#ef4444")
		}
		return t.Red
	case "warning":
		if t == nil {
			return lipgloss.Color("#f59e0b")
		}
		return t.Yellow
	case "success":
		if t == nil {
			return lipgloss.Color("#4ade80")
		}
		return t.Green
	default:
		if t == nil {
			return lipgloss.Color("#4865f2")
		}
		return t.Blue
	}
}
