package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/app"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/input"
	"github.com/Gaurav-Gosain/tabgrid/internal/server"
	"github.com/charmbracelet/colorprofile"
)

// filterMouseMotion filters out redundant mouse motion events to reduce CPU
// usage. Motion only matters while a drag is pending or active, or while the
// context menu tracks hover.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	deck, ok := model.(*app.Deck)
	if !ok {
		return msg
	}

	if deck.DragPending || deck.SwipeInProgress || deck.ContextMenu != nil {
		return msg
	}

	return nil
}

func runLocal() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:     asciiOnly,
		BorderStyle:   borderStyle,
		HideStatusBar: hideStatusBar,
		HideClock:     hideClock,
		NoAnimations:  noAnimations,
		ThemeName:     themeName,
	}, userConfig)

	app.SetInputHandler(input.HandleInput)

	keybindRegistry, conflicts := config.NewKeybindRegistry(userConfig)
	for _, c := range conflicts {
		log.Printf("Warning: keybinding conflict: %s", c)
	}

	if debugMode {
		configPath, _ := config.GetConfigPath()
		log.Printf("Configuration: %s", configPath)
		log.Printf("Color profile: %s", colorprofile.Detect(os.Stdout, os.Environ()))
	}

	deck := app.NewDeck(app.DeckOptions{
		KeybindRegistry: keybindRegistry,
		StartupTabs:     userConfig.Startup.Tabs,
	})

	p := tea.NewProgram(
		deck,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	config.ApplyOverrides(config.Overrides{
		ASCIIOnly: asciiOnly,
		ThemeName: themeName,
	}, nil)

	app.SetInputHandler(input.HandleInput)

	log.Printf("Starting tabgrid SSH server on %s:%s", sshHost, sshPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Shutting down SSH server...")
		cancel()
	}()

	cfg := &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Version: version,
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
