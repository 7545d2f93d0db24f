// Package main implements tabgrid, a terminal card grid for browser tabs.
// Tabs render as cards in an adaptive grid; dragging a card off the leading
// edge closes its tab, in the manner of mobile tab switchers.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Gaurav-Gosain/tabgrid/internal/theme"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode     bool
	asciiOnly     bool
	themeName     string
	listThemes    bool
	previewTheme  string
	borderStyle   string
	noAnimations  bool
	hideStatusBar bool
	hideClock     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabgrid",
		Short: "A card grid for your browser tabs",
		Long: `tabgrid - a terminal card grid for browser tabs

Tabs render as cards in an adaptive grid. Drag a card off the leading edge
to close its tab, filter with live search, and copy URLs straight to the
system clipboard over OSC 52.`,
		Example: `  # Run tabgrid
  tabgrid

  # Run with a specific theme
  tabgrid --theme dracula

  # List all available themes
  tabgrid --list-themes

  # Preview a theme's colors
  tabgrid --preview-theme dracula

  # Run as SSH server
  tabgrid ssh --port 2222

  # Edit configuration
  tabgrid config edit

  # List all keybindings
  tabgrid keybinds list`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}

			if listThemes {
				for _, t := range theme.IDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use plain ASCII borders and icons")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's 16 ANSI colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Card border style: rounded, normal, thick, double, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Disable UI animations for instant transitions")
	rootCmd.PersistentFlags().BoolVar(&hideStatusBar, "hide-status-bar", false, "Hide the status bar")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the clock in the status bar")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run tabgrid as SSH server",
		Long: `Run tabgrid as an SSH server

Allows remote connections to tabgrid via SSH. The server will generate
a host key automatically if not specified. Each connection gets its own
independent deck.`,
		Example: `  # Start SSH server on default port
  tabgrid ssh

  # Start on custom port
  tabgrid ssh --port 2222

  # Specify custom host key
  tabgrid ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tabgrid configuration",
		Long:  `Manage tabgrid configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the tabgrid configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the tabgrid configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tabgrid configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect tabgrid keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
