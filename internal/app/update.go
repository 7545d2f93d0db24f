package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
)

// TickerMsg represents a periodic tick event for updating the UI.
// This is exported so it can be used by the input package.
type TickerMsg time.Time

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Deck) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer and delivers the initial tab state to the
// freshly appeared view.
func (d *Deck) Init() tea.Cmd {
	d.Tabs.Resync()
	return TickCmd()
}

// TickCmd creates a command that generates tick messages at 60 FPS.
// This drives the main update loop for animations.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd creates a command that generates tick messages at 30 FPS.
// Used during card drags to improve mouse responsiveness.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// IdleTickCmd creates a command that generates tick messages at 10 FPS.
// Used when nothing has changed for a sustained period to reduce CPU.
func IdleTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.IdleFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// drainClipboard converts queued clipboard writes into OSC 52 commands.
func (d *Deck) drainClipboard() tea.Cmd {
	if len(d.pendingClipboard) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(d.pendingClipboard))
	for _, text := range d.pendingClipboard {
		cmds = append(cmds, tea.SetClipboard(text))
	}
	d.pendingClipboard = nil
	return tea.Batch(cmds...)
}

// Update handles all incoming messages and updates the application state.
func (d *Deck) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Any non-tick message invalidates the render cache
	if _, isTick := msg.(TickerMsg); !isTick {
		d.renderSkipped = false
	}

	switch msg := msg.(type) {
	case TickerMsg:
		hasAnimations := d.UpdateAnimations(time.Time(msg))
		d.CleanupNotifications()

		if !config.HideStatusBar {
			d.UpdateCPUHistory()
			d.UpdateRAMUsage()
		}

		// Adaptive polling - slower during drags for better mouse
		// responsiveness, much slower when fully idle
		nextTick := TickCmd()
		if d.InteractionMode {
			nextTick = SlowTickCmd()
			d.idleFrames = 0
		} else if hasAnimations || len(d.Notifications) > 0 {
			d.idleFrames = 0
		} else {
			d.idleFrames++
			if d.idleFrames >= config.IdleThresholdFrames {
				nextTick = IdleTickCmd()
			}
		}

		// Frame skipping: reuse the cached view when nothing moved
		if !hasAnimations && !d.InteractionMode && len(d.Notifications) == 0 {
			d.renderSkipped = true
		} else {
			d.renderSkipped = false
		}

		if clipCmd := d.drainClipboard(); clipCmd != nil {
			return d, tea.Batch(nextTick, clipCmd)
		}
		return d, nextTick

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg, tea.ClipboardMsg:
		// Reset idle counter on any user input to restore full tick rate
		d.idleFrames = 0
		if inputHandler != nil {
			model, cmd := inputHandler(msg, d)
			if clipCmd := d.drainClipboard(); clipCmd != nil {
				return model, tea.Batch(cmd, clipCmd)
			}
			return model, cmd
		}
		return d, nil

	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		d.LayoutCards()
		return d, nil

	case tea.MouseMsg:
		// Catch-all for any other mouse events to prevent them from leaking
		return d, nil

	case tea.FocusMsg, tea.BlurMsg:
		return d, nil
	}

	return d, nil
}
