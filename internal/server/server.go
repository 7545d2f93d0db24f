// Package server implements the tabgrid SSH server using wish.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/Gaurav-Gosain/tabgrid/internal/app"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/charmbracelet/ssh"
)

// SSHServerConfig configures the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string
	Version string
}

// teaHandler creates a fresh deck for each SSH session. Sessions are
// independent: each gets its own tab collection, swipe lock, and config.
func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: failed to load config for %s, using defaults: %v", s.User(), err)
		userConfig = config.DefaultConfig()
	}

	registry, conflicts := config.NewKeybindRegistry(userConfig)
	for _, c := range conflicts {
		log.Printf("Keybinding conflict: %s", c)
	}

	deck := app.NewDeck(app.DeckOptions{
		KeybindRegistry: registry,
		StartupTabs:     userConfig.Startup.Tabs,
		SSHSession:      s,
	})

	pty, _, _ := s.Pty()
	deck.Width = pty.Window.Width
	deck.Height = pty.Window.Height

	return deck, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

// StartSSHServer starts the SSH server and blocks until the context is
// cancelled or the listener fails.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	keyPath := cfg.KeyPath
	if keyPath == "" {
		keyPath = ".ssh/tabgrid_ed25519"
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(keyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("tabgrid SSH server listening on %s:%s", cfg.Host, cfg.Port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen error: %w", err)
		}
		return nil
	}
}
