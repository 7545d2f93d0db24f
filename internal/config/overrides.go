package config

import (
	"log"

	"github.com/Gaurav-Gosain/tabgrid/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// BorderStyle overrides the card border style
	BorderStyle string

	// HideStatusBar hides the status bar
	HideStatusBar bool

	// HideClock overrides hiding the clock
	HideClock bool

	// NoAnimations disables UI animations
	NoAnimations bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - simple flag override
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Hide Status Bar - OR of CLI flag and user config
	if userConfig != nil {
		HideStatusBar = overrides.HideStatusBar || userConfig.Appearance.HideStatusBar
	} else {
		HideStatusBar = overrides.HideStatusBar
	}

	// Hide Clock - OR of CLI flag and user config
	if userConfig != nil {
		HideClock = overrides.HideClock || userConfig.Appearance.HideClock
	} else {
		HideClock = overrides.HideClock
	}

	// Animations - flag disables, otherwise the user config decides
	if overrides.NoAnimations {
		AnimationsEnabled = false
	} else if userConfig != nil && userConfig.Appearance.AnimationsEnabled != nil {
		AnimationsEnabled = *userConfig.Appearance.AnimationsEnabled
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
