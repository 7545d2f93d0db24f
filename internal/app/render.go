package app

import (
	"image/color"
	"math"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/theme"
)

// Z-order bands for composed layers.
const (
	zCardBase    = 1
	zCardRaised  = 100
	zStatusBar   = 200
	zSearchBar   = 210
	zNotify      = 300
	zContextMenu = 400
	zHelp        = 500
	zLogs        = 600
)

func getBorder() lipgloss.Border {
	return config.GetBorderForStyle()
}

// GetCanvas composes the card grid and overlays into a single canvas.
func (d *Deck) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas()

	var layers []*lipgloss.Layer

	viewTop := d.TopMargin()
	viewBottom := viewTop + d.UsableHeight()

	for i, card := range d.Cards {
		offsetCells := int(math.Round(card.Display.OffsetX / config.SwipeUnitsPerCell))
		x := card.X + offsetCells
		y := card.Y - d.ScrollOffset

		if y+card.Height <= viewTop || y >= viewBottom ||
			x+card.Width <= 0 || x >= d.Width {
			continue
		}

		z := zCardBase + i
		if card.Gesture.ZRaised() || card.Anim != nil {
			z = zCardRaised
		}

		content := d.renderCard(card, i == d.FocusedCard)
		layers = append(layers, lipgloss.NewLayer(content).
			X(x).Y(y).Z(z).ID(card.Tab.ID))
	}

	layers = append(layers, d.renderOverlays()...)

	canvas.AddLayers(layers...)
	return canvas
}

func (d *Deck) cardBorderColor(card *Card, focused bool) color.Color {
	if card.Gesture.Active() || card.Anim != nil {
		return theme.CardBorderActive()
	}
	if focused {
		return theme.CardBorderFocused()
	}
	return theme.CardBorderUnfocused()
}

// renderCard draws one card box. A fading card (alpha below 1) renders
// faint; a lifted card (scale above 1) renders with a bold border color.
func (d *Deck) renderCard(card *Card, focused bool) string {
	borderColor := d.cardBorderColor(card, focused)

	titleStyle := lipgloss.NewStyle().
		Foreground(theme.CardTitle()).
		Bold(focused).
		Width(max(card.Width-4, 1)).
		MaxHeight(1)
	urlStyle := lipgloss.NewStyle().
		Foreground(theme.CardURL()).
		Width(max(card.Width-4, 1)).
		MaxHeight(1)

	faded := card.Display.Alpha < 1
	if faded {
		titleStyle = titleStyle.Faint(true)
		urlStyle = urlStyle.Faint(true)
	}

	title := card.Tab.Title
	if title == "" {
		title = "Untitled"
	}
	url := card.Tab.URL
	if url == "" {
		url = "about:blank"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(truncateTitle(title)),
		urlStyle.Render(url),
	)

	box := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(card.Width-2, 1)).
		Height(max(card.Height-2, 1))
	if faded {
		box = box.Faint(true)
	}

	return box.Render(body)
}

// View renders the deck for bubbletea.
func (d *Deck) View() tea.View {
	var view tea.View

	// Fast path: return cached content when frame-skip determined nothing
	// changed since the last render.
	if d.renderSkipped && d.cachedViewContent != "" {
		view.SetContent(d.cachedViewContent)
	} else {
		content := lipgloss.Sprint(d.GetCanvas().Render())
		d.cachedViewContent = content
		view.SetContent(content)
	}

	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true

	return view
}
