// Package input implements tabgrid keyboard and mouse handling.
//
// Mouse motion drives the card drag gesture: a press arms a pending drag,
// the first decisive motion classifies it, and every subsequent motion
// feeds the card's gesture controller until release.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/app"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, d *app.Deck) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, d)
	case tea.ClipboardMsg:
		// OSC 52 clipboard read response (from tea.ReadClipboard)
		d.ClipboardContent = msg.Content
		return d, nil
	default:
		return d, nil
	}
}
