package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Startup     StartupConfig     `toml:"startup"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle       string `toml:"border_style"`       // Card border style: rounded, normal, thick, double, ascii
	AnimationsEnabled *bool  `toml:"animations_enabled"` // Enable UI animations (default: true). Set to false for instant transitions.
	HideStatusBar     bool   `toml:"hide_status_bar"`    // Hide the status bar (default: false)
	HideClock         bool   `toml:"hide_clock"`         // Hide the clock in the status bar (default: false)
	Theme             string `toml:"theme"`              // Color theme name (e.g., dracula, nord)
}

// StartupConfig holds the tabs seeded into a fresh deck.
type StartupConfig struct {
	Tabs []StartupTab `toml:"tabs"` // Tabs opened when the deck starts empty
}

// StartupTab is one seed tab entry in the config file.
type StartupTab struct {
	Title string `toml:"title"`
	URL   string `toml:"url"`
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Deck       map[string][]string `toml:"deck"`
	Search     map[string][]string `toml:"search"`
	Navigation map[string][]string `toml:"navigation"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle: "rounded",
		},
		Startup: StartupConfig{},
		Keybindings: KeybindingsConfig{
			Deck: map[string][]string{
				"new_tab":      {"n"},
				"close_tab":    {"x", "w"},
				"close_all":    {"X"},
				"copy_url":     {"y"},
				"search":       {"/"},
				"cycle_theme":  {"t"},
				"toggle_help":  {"?"},
				"toggle_logs":  {"ctrl+l"},
				"quit":         {"q", "ctrl+c"},
				"select_tab_1": {"1"},
				"select_tab_2": {"2"},
				"select_tab_3": {"3"},
				"select_tab_4": {"4"},
				"select_tab_5": {"5"},
				"select_tab_6": {"6"},
				"select_tab_7": {"7"},
				"select_tab_8": {"8"},
				"select_tab_9": {"9"},
			},
			Search: map[string][]string{
				"search_accept": {"enter"},
				"search_cancel": {"esc"},
			},
			Navigation: map[string][]string{
				"nav_up":    {"up", "k"},
				"nav_down":  {"down", "j"},
				"nav_left":  {"left", "h"},
				"nav_right": {"right", "l"},
				"nav_next":  {"tab"},
				"nav_prev":  {"shift+tab"},
			},
		},
	}
}

// LoadUserConfig loads the user configuration, creating a default config
// file on first run.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile("tabgrid/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in missing sections with defaults
	defaultCfg := DefaultConfig()
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Keybindings.Deck == nil {
		cfg.Keybindings.Deck = map[string][]string{}
	}
	if cfg.Keybindings.Search == nil {
		cfg.Keybindings.Search = map[string][]string{}
	}
	if cfg.Keybindings.Navigation == nil {
		cfg.Keybindings.Navigation = map[string][]string{}
	}
	fillMapDefaults(cfg.Keybindings.Deck, defaultCfg.Keybindings.Deck)
	fillMapDefaults(cfg.Keybindings.Search, defaultCfg.Keybindings.Search)
	fillMapDefaults(cfg.Keybindings.Navigation, defaultCfg.Keybindings.Navigation)

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("tabgrid/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# tabgrid Configuration File\n")
	sb.WriteString("# This file allows you to customize appearance, keybindings and startup tabs\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# For keybindings documentation, run: tabgrid keybinds list\n\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: Card border style\n")
	sb.WriteString("#   Options: rounded, normal, thick, double, ascii\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this.\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("#\n")
	sb.WriteString("# [[startup.tabs]] entries seed the deck on first launch, e.g.\n")
	sb.WriteString("#   [[startup.tabs]]\n")
	sb.WriteString("#   title = \"Hacker News\"\n")
	sb.WriteString("#   url = \"https://news.ycombinator.com\"\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// SaveDefaultConfig overwrites the config file with defaults.
func SaveDefaultConfig() error {
	configPath, err := xdg.ConfigFile("tabgrid/config.toml")
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	_, err = createDefaultConfig()
	return err
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("tabgrid/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("tabgrid/config.toml")
	}
	return path, nil
}
