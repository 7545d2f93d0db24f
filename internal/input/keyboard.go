package input

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/app"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/theme"
)

// HandleKeyPress handles all keyboard input and routes to mode-specific handlers
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Overlays intercept keys before the action registry
	if d.ShowLogs {
		return handleLogViewerKey(msg, d)
	}
	if d.ShowHelp {
		return handleHelpKey(msg, d)
	}
	if d.ContextMenu != nil {
		return handleContextMenuKey(msg, d)
	}
	if d.SearchMode {
		return handleSearchModeKey(msg, d)
	}

	if key == "ctrl+c" {
		return d, tea.Quit
	}

	action := ""
	if d.KeybindRegistry != nil {
		action = d.KeybindRegistry.GetAction(key)
	}

	switch action {
	case "new_tab":
		d.NewTab()
		return d, nil

	case "close_tab":
		if card := d.FocusedCardRef(); card != nil {
			if !d.CloseCard(card) {
				d.ShowNotification("Another card is mid-swipe", "warning", config.NotificationDuration)
			}
		}
		return d, nil

	case "close_all":
		if d.Tabs.Len() > 0 {
			n := d.Tabs.Len()
			d.Tabs.CloseAll()
			d.ShowNotification(closeAllMessage(n), "info", config.NotificationDuration)
		}
		return d, nil

	case "copy_url":
		if card := d.FocusedCardRef(); card != nil {
			if d.CanCopyURL(card.Tab.ID) {
				d.CopyURL(card.Tab.ID)
			} else {
				d.ShowNotification("Tab has no URL", "warning", config.NotificationDuration)
			}
		}
		return d, nil

	case "search":
		d.SearchMode = true
		d.SearchBuffer = d.Tabs.Query()
		d.LayoutCards()
		return d, nil

	case "cycle_theme":
		id := theme.Cycle()
		d.ShowNotification("Theme: "+id, "info", config.NotificationDuration)
		return d, nil

	case "toggle_help":
		d.ShowHelp = !d.ShowHelp
		d.HelpScrollOffset = 0
		return d, nil

	case "toggle_logs":
		d.ShowLogs = !d.ShowLogs
		d.LogScrollOffset = 0
		return d, nil

	case "quit":
		return d, tea.Quit

	case "nav_up":
		d.MoveFocus(-1, 0)
		return d, nil
	case "nav_down":
		d.MoveFocus(1, 0)
		return d, nil
	case "nav_left":
		d.MoveFocus(0, -1)
		return d, nil
	case "nav_right":
		d.MoveFocus(0, 1)
		return d, nil
	case "nav_next":
		d.CycleFocus(1)
		return d, nil
	case "nav_prev":
		d.CycleFocus(-1)
		return d, nil
	}

	if strings.HasPrefix(action, "select_tab_") {
		n := int(action[len(action)-1] - '0')
		d.FocusCard(n - 1)
		return d, nil
	}

	// Esc clears an applied filter even outside search mode
	if key == "esc" && d.Tabs.Query() != "" {
		d.SetSearchQuery("")
		d.LayoutCards()
		return d, nil
	}

	return d, nil
}

func closeAllMessage(n int) string {
	if n == 1 {
		return "Closed 1 tab"
	}
	return fmt.Sprintf("Closed %d tabs", n)
}

// handleSearchModeKey handles live filter text entry. The filter applies on
// every keystroke; enter keeps it, esc clears it.
func handleSearchModeKey(msg tea.KeyPressMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		d.SearchMode = false
		d.LayoutCards()
		return d, nil
	case "esc":
		d.SearchMode = false
		d.SetSearchQuery("")
		d.LayoutCards()
		return d, nil
	case "backspace":
		if len(d.SearchBuffer) > 0 {
			d.SetSearchQuery(d.SearchBuffer[:len(d.SearchBuffer)-1])
		}
		return d, nil
	default:
		key := msg.String()
		if len(key) == 1 && key[0] >= 32 && key[0] < 127 {
			d.SetSearchQuery(d.SearchBuffer + key)
		}
		return d, nil
	}
}

func handleHelpKey(msg tea.KeyPressMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		d.ShowHelp = false
		d.HelpScrollOffset = 0
	case "up", "k":
		if d.HelpScrollOffset > 0 {
			d.HelpScrollOffset--
		}
	case "down", "j":
		d.HelpScrollOffset++
	}
	return d, nil
}

func handleContextMenuKey(msg tea.KeyPressMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	menu := d.ContextMenu
	switch msg.String() {
	case "esc", "q":
		d.CloseContextMenu()
	case "up", "k":
		if menu.Selected > 0 {
			menu.Selected--
		}
	case "down", "j":
		if menu.Selected < len(menu.Items)-1 {
			menu.Selected++
		}
	case "enter":
		d.ExecuteContextMenuItem()
	}
	return d, nil
}

// handleLogViewerKey handles keyboard input when the log viewer overlay is active.
func handleLogViewerKey(msg tea.KeyPressMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Close log viewer with q or esc
	if key == "q" || key == "esc" || key == "ctrl+l" {
		d.ShowLogs = false
		d.LogScrollOffset = 0
		return d, nil
	}

	logsPerPage, maxScroll := logScrollBounds(d.Height, len(d.LogMessages))

	switch key {
	case "up", "k":
		if d.LogScrollOffset > 0 {
			d.LogScrollOffset--
		}
	case "down", "j":
		if d.LogScrollOffset < maxScroll {
			d.LogScrollOffset++
		}
	case "pgup", "ctrl+u":
		d.LogScrollOffset = max(d.LogScrollOffset-max(logsPerPage/2, 1), 0)
	case "pgdown", "ctrl+d":
		d.LogScrollOffset = min(d.LogScrollOffset+max(logsPerPage/2, 1), maxScroll)
	case "g", "home":
		d.LogScrollOffset = 0
	case "G", "end":
		d.LogScrollOffset = maxScroll
	}
	return d, nil
}

// logScrollBounds computes the scrollable range for the log viewer overlay.
// Returns logsPerPage (visible capacity) and maxScroll (maximum scroll offset).
func logScrollBounds(screenHeight, totalLogs int) (logsPerPage, maxScroll int) {
	maxDisplayHeight := max(screenHeight-8, 8)

	// Fixed overhead: title (1) + blank after title (1) + blank before hint (1) + hint (1) = 4
	fixedLines := 4
	// If scrollable, add scroll indicator: blank (1) + indicator (1) = 2
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	logsPerPage = max(maxDisplayHeight-fixedLines, 1)
	maxScroll = max(totalLogs-logsPerPage, 0)
	return logsPerPage, maxScroll
}
