package main

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/theme"
	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"
)

// printConfigPath prints the location of the config file.
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns the user's preferred editor, falling back through
// common ones found on PATH.
func findEditor() (string, error) {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor, nil
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor, nil
	}
	for _, candidate := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found; set $EDITOR or $VISUAL")
}

// editConfigFile opens the config file in the user's editor, creating a
// default config first if none exists.
func editConfigFile() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("config edit requires an interactive terminal")
	}

	// Ensure the file exists so the editor has something to open
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to prepare config file: %w", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, path) // #nosec G204 - editor comes from the user's own environment
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

// resetConfigToDefaults overwrites the config file with defaults after
// confirmation.
func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("Reset %s to defaults? [y/N] ", path)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := config.SaveDefaultConfig(); err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}

// listKeybindings prints all configured keybindings grouped by section.
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}
	registry, conflicts := config.NewKeybindRegistry(userConfig)

	for _, section := range config.GetKeybindings(registry) {
		fmt.Println(section.Title)
		for _, b := range section.Bindings {
			fmt.Printf("  %-24s %s\n", b.Key, b.Description)
		}
		fmt.Println()
	}

	for _, c := range conflicts {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", c)
	}
	return nil
}

// previewThemeColors prints the 16 ANSI colors of a theme as swatches,
// downsampled to the terminal's color profile.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to load theme %q: %w", name, err)
	}
	t := theme.Current()
	if t == nil {
		return fmt.Errorf("unknown theme %q", name)
	}

	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	swatch := func(label string, c color.Color) string {
		block := lipgloss.NewStyle().Background(c).Render("      ")
		return fmt.Sprintf("%-16s %s", label, block)
	}

	rows := []struct {
		label string
		color color.Color
	}{
		{"black", t.Black}, {"red", t.Red}, {"green", t.Green},
		{"yellow", t.Yellow}, {"blue", t.Blue}, {"purple", t.Purple},
		{"cyan", t.Cyan}, {"white", t.White},
		{"bright black", t.BrightBlack}, {"bright red", t.BrightRed},
		{"bright green", t.BrightGreen}, {"bright yellow", t.BrightYellow},
		{"bright blue", t.BrightBlue}, {"bright purple", t.BrightPurple},
		{"bright cyan", t.BrightCyan}, {"bright white", t.BrightWhite},
	}

	fmt.Fprintf(w, "%s\n\n", name)
	for _, row := range rows {
		fmt.Fprintln(w, swatch(row.label, row.color))
	}
	return nil
}
