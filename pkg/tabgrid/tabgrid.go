// Package tabgrid provides a reusable browser tab card grid that can be
// embedded in other Bubble Tea applications or used as a standalone TUI.
//
// Tabs render as cards in an adaptive grid. Dragging a card off the leading
// edge closes its tab, in the manner of mobile tab switchers.
//
// # Basic Usage
//
// Create a new tabgrid instance with default options:
//
//	model := tabgrid.New()
//	p := tea.NewProgram(model, tabgrid.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize behavior:
//
//	model := tabgrid.New(
//		tabgrid.WithTheme("dracula"),
//		tabgrid.WithAnimations(false),
//		tabgrid.WithTabs(
//			tabgrid.Tab{Title: "Hacker News", URL: "https://news.ycombinator.com"},
//		),
//	)
package tabgrid

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/app"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/input"
	"github.com/Gaurav-Gosain/tabgrid/internal/theme"
)

// Model is the main tabgrid model that implements tea.Model.
// It wraps the internal Deck struct and provides a clean public API.
type Model = app.Deck

// Tab is a seed tab opened when the deck starts.
type Tab struct {
	Title string
	URL   string
}

// Options configures a tabgrid instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use standard terminal colors.
	Theme string

	// Animations enables/disables card animations.
	// When disabled, cards snap instantly to positions.
	Animations bool

	// ASCIIOnly uses plain ASCII borders and icons.
	ASCIIOnly bool

	// BorderStyle sets the card border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "ascii"
	BorderStyle string

	// HideStatusBar hides the status bar.
	HideStatusBar bool

	// HideClock hides the clock in the status bar.
	HideClock bool

	// Tabs are seeded into the deck on startup.
	Tabs []Tab

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// UserConfig is a custom user configuration. If nil, the user's config
	// file is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring tabgrid.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithAnimations enables or disables card animations.
func WithAnimations(enabled bool) Option {
	return func(o *Options) {
		o.Animations = enabled
	}
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the card border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithHideStatusBar hides the status bar.
func WithHideStatusBar(hide bool) Option {
	return func(o *Options) {
		o.HideStatusBar = hide
	}
}

// WithTabs seeds the deck with tabs on startup.
func WithTabs(tabs ...Tab) Option {
	return func(o *Options) {
		o.Tabs = append(o.Tabs, tabs...)
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Animations: true,
	}
}

// New creates a new tabgrid model with the given options.
// This is the main entry point for using tabgrid as a library.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	if options.ASCIIOnly {
		config.UseASCIIOnly = true
	}
	if options.BorderStyle != "" {
		config.BorderStyle = options.BorderStyle
	}
	if options.HideStatusBar {
		config.HideStatusBar = true
	}
	if options.HideClock {
		config.HideClock = true
	}
	if !options.Animations {
		config.AnimationsEnabled = false
	}

	if options.Theme != "" {
		_ = theme.Initialize(options.Theme)
	}

	var userConfig *config.UserConfig
	if options.UserConfig != nil {
		userConfig = options.UserConfig
	} else {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	registry, _ := config.NewKeybindRegistry(userConfig)

	startup := userConfig.Startup.Tabs
	for _, t := range options.Tabs {
		startup = append(startup, config.StartupTab{Title: t.Title, URL: t.URL})
	}

	deck := app.NewDeck(app.DeckOptions{
		KeybindRegistry: registry,
		StartupTabs:     startup,
	})
	deck.Width = options.Width
	deck.Height = options.Height

	return deck
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// tabgrid:
//
//	model := tabgrid.New()
//	p := tea.NewProgram(model, tabgrid.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that reduces CPU usage by
// filtering out redundant mouse motion events. Only passes through motion
// while a drag is pending or active, or while the context menu tracks hover.
//
// Usage:
//
//	p := tea.NewProgram(model, tea.WithFilter(tabgrid.FilterMouseMotion))
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	deck, ok := model.(*Model)
	if !ok {
		return msg
	}

	if deck.DragPending || deck.SwipeInProgress || deck.ContextMenu != nil {
		return msg
	}

	return nil
}

// Config re-exports the config package for customization.
// This allows users to access configuration types without importing internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
