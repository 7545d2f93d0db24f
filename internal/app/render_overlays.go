package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

func (d *Deck) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if d.SearchMode || d.Tabs.Query() != "" {
		layers = append(layers, d.renderSearchBar())
	}

	if !config.HideStatusBar {
		layers = append(layers, d.renderStatusBar())
	}

	if len(d.Cards) == 0 && !d.SearchMode && d.Tabs.Query() == "" {
		layers = append(layers, d.renderWelcome())
	}

	layers = append(layers, d.renderNotifications()...)

	if d.ContextMenu != nil {
		layers = append(layers, d.renderContextMenu())
	}

	if d.ShowHelp {
		layers = append(layers, d.renderHelpMenu())
	}

	if d.ShowLogs {
		layers = append(layers, d.renderLogs())
	}

	return layers
}

func (d *Deck) renderSearchBar() *lipgloss.Layer {
	prompt := lipgloss.NewStyle().
		Foreground(theme.SearchPromptColor()).
		Bold(true).
		Render("/")

	query := d.SearchBuffer
	if d.SearchMode {
		query += "_"
	}

	count := fmt.Sprintf("%d/%d", len(d.Cards), d.Tabs.Len())
	countStyled := lipgloss.NewStyle().
		Foreground(theme.CardURL()).
		Render(count)

	line := prompt + " " + query
	gap := d.Width - lipgloss.Width(line) - lipgloss.Width(countStyled) - 1
	if gap > 0 {
		line += strings.Repeat(" ", gap) + countStyled
	}

	bar := lipgloss.NewStyle().
		Width(d.Width).
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg()).
		Render(line)

	return lipgloss.NewLayer(bar).X(0).Y(0).Z(zSearchBar).ID("search-bar")
}

func (d *Deck) renderStatusBar() *lipgloss.Layer {
	left := fmt.Sprintf(" %d tabs", d.Tabs.Len())
	if q := d.Tabs.Query(); q != "" {
		left += fmt.Sprintf("  filter:%s (%d shown)", q, len(d.Cards))
	}
	if d.SwipeInProgress {
		left += "  swiping"
	}

	var rightParts []string
	if graph := d.CPUGraph(); graph != "" {
		rightParts = append(rightParts, "CPU "+graph)
	}
	if d.RAMUsage > 0 {
		rightParts = append(rightParts, fmt.Sprintf("RAM %.0f%%", d.RAMUsage))
	}
	if !config.HideClock {
		rightParts = append(rightParts, time.Now().Format("15:04:05"))
	}
	right := strings.Join(rightParts, "  ") + " "

	gap := d.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right

	hint := lipgloss.NewStyle().
		Foreground(theme.CardURL()).
		Width(d.Width).
		Render(" n:new  /:search  ?:help  q:quit")

	bar := lipgloss.NewStyle().
		Width(d.Width).
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg()).
		Render(line)

	content := lipgloss.JoinVertical(lipgloss.Left, bar, hint)

	return lipgloss.NewLayer(content).
		X(0).Y(d.Height - config.StatusBarHeight).Z(zStatusBar).ID("status-bar")
}

func (d *Deck) renderWelcome() *lipgloss.Layer {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Bold(true).
		Render("tabgrid")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Render("A card grid for your browser tabs")

	instruction := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7")).
		Render("Press 'n' to open a tab, '?' for help")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		subtitle,
		"",
		instruction,
	)

	boxStyle := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(1, 2)

	centered := lipgloss.Place(
		d.Width, d.UsableHeight(),
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(content),
	)

	return lipgloss.NewLayer(centered).X(0).Y(d.TopMargin()).Z(zCardBase).ID("welcome")
}

func notificationIcon(notifType string) string {
	switch notifType {
	case "error":
		return config.NotificationIconError
	case "warning":
		return config.NotificationIconWarning
	case "success":
		return config.NotificationIconSuccess
	default:
		return config.NotificationIconInfo
	}
}

func (d *Deck) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	shown := d.Notifications
	if len(shown) > config.MaxVisibleNotifications {
		shown = shown[len(shown)-config.MaxVisibleNotifications:]
	}

	y := 1
	for _, notif := range shown {
		accent := theme.NotificationColor(notif.Type)

		msg := ansi.Truncate(notif.Message, config.MaxNotificationWidth-8, "...")

		box := lipgloss.NewStyle().
			Border(getBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Render(notificationIcon(notif.Type) + " " + msg)

		x := max(d.Width-lipgloss.Width(box)-2, 0)
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).Z(zNotify).ID("notif-"+notif.ID))
		y += lipgloss.Height(box) + 1
	}
	return layers
}

func (d *Deck) renderContextMenu() *lipgloss.Layer {
	menu := d.ContextMenu

	var lines []string
	for i, item := range menu.Items {
		style := lipgloss.NewStyle().Width(config.ContextMenuWidth - 4)
		if i == menu.Selected {
			style = style.
				Background(theme.CardBorderFocused()).
				Foreground(lipgloss.Color("#ffffff")).
				Bold(true)
		}
		lines = append(lines, style.Render(" "+item))
	}

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.CardBorderFocused()).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewLayer(box).
		X(menu.X).Y(menu.Y).Z(zContextMenu).ID("context-menu")
}

func (d *Deck) renderHelpMenu() *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Bold(true)
	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true)
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	var lines []string
	lines = append(lines, titleStyle.Render("tabgrid keybindings"), "")

	for _, section := range config.GetKeybindings(d.KeybindRegistry) {
		if section.Title != "" {
			lines = append(lines, sectionStyle.Render(section.Title))
		}
		for _, b := range section.Bindings {
			lines = append(lines, fmt.Sprintf("  %s  %s",
				keyStyle.Render(fmt.Sprintf("%-22s", b.Key)), b.Description))
		}
		lines = append(lines, "")
	}
	lines = append(lines, hintStyle.Render("Press '?' or esc to close, j/k to scroll"))

	// Scroll window
	maxLines := max(d.Height-6, 4)
	maxScroll := max(len(lines)-maxLines, 0)
	d.HelpScrollOffset = max(0, min(d.HelpScrollOffset, maxScroll))
	visible := lines[d.HelpScrollOffset:min(d.HelpScrollOffset+maxLines, len(lines))]

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(lipgloss.Color("13")).
		Padding(1, 2).
		Render(strings.Join(visible, "\n"))

	centered := lipgloss.Place(d.Width, d.Height,
		lipgloss.Center, lipgloss.Center, box)

	return lipgloss.NewLayer(centered).X(0).Y(0).Z(zHelp).ID("help")
}

func (d *Deck) renderLogs() *lipgloss.Layer {
	logTitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Bold(true).
		Render("System Logs")

	maxDisplayHeight := max(d.Height-8, 8)
	totalLogs := len(d.LogMessages)

	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	logsPerPage := max(maxDisplayHeight-fixedLines, 1)
	maxScroll := max(totalLogs-logsPerPage, 0)
	d.LogScrollOffset = max(0, min(d.LogScrollOffset, maxScroll))

	var logLines []string
	logLines = append(logLines, logTitle, "")

	startIdx := d.LogScrollOffset
	displayCount := 0
	for i := startIdx; i < len(d.LogMessages) && displayCount < logsPerPage; i++ {
		msg := d.LogMessages[i]

		var levelColor string
		switch msg.Level {
		case "ERROR":
			levelColor = "9"
		case "WARN":
			levelColor = "11"
		default:
			levelColor = "10"
		}

		levelStr := lipgloss.NewStyle().
			Foreground(lipgloss.Color(levelColor)).
			Render(fmt.Sprintf("[%s]", msg.Level))

		logLines = append(logLines, fmt.Sprintf("%s %s %s",
			msg.Time.Format("15:04:05"), levelStr, msg.Message))
		displayCount++
	}

	if maxScroll > 0 {
		scrollInfo := fmt.Sprintf("Showing %d-%d of %d logs (↑/↓ to scroll)",
			startIdx+1, startIdx+displayCount, len(d.LogMessages))
		logLines = append(logLines, "", lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Render(scrollInfo))
	}

	logLines = append(logLines, "", lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render("Press 'q'/'esc' to exit, j/k or ↑/↓ to scroll"))

	logBox := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 2).
		Width(min(80, d.Width-2)).
		Render(strings.Join(logLines, "\n"))

	centered := lipgloss.Place(d.Width, d.Height,
		lipgloss.Center, lipgloss.Center, logBox)

	return lipgloss.NewLayer(centered).X(0).Y(0).Z(zLogs).ID("logs")
}
