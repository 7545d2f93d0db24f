package input

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tabgrid/internal/app"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/swipe"
)

// findCardAt performs hit testing against the laid-out grid, accounting for
// scroll and each card's display offset. The raised card wins ties; otherwise
// the topmost painted card (highest slot index) does.
func findCardAt(x, y int, d *app.Deck) *app.Card {
	var hit *app.Card
	for _, card := range d.Cards {
		offsetCells := int(math.Round(card.Display.OffsetX / config.SwipeUnitsPerCell))
		cx := card.X + offsetCells
		cy := card.Y - d.ScrollOffset
		if x < cx || x >= cx+card.Width || y < cy || y >= cy+card.Height {
			continue
		}
		if card.Gesture.ZRaised() || card.Anim != nil {
			return card
		}
		hit = card
	}
	return hit
}

// contextMenuRow returns the item index under the pointer, or -1 when the
// pointer is outside the menu.
func contextMenuRow(x, y int, menu *app.ContextMenu) int {
	// Border adds one cell on every side
	if x < menu.X || x >= menu.X+config.ContextMenuWidth {
		return -1
	}
	row := y - menu.Y - 1
	if row < 0 || row >= len(menu.Items) {
		return -1
	}
	return row
}

// handleMouseClick handles mouse press events
func handleMouseClick(msg tea.MouseClickMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	x, y := mouse.X, mouse.Y

	// An open context menu captures every click
	if d.ContextMenu != nil {
		if row := contextMenuRow(x, y, d.ContextMenu); row != -1 {
			d.ContextMenu.Selected = row
			d.ExecuteContextMenuItem()
		} else {
			d.CloseContextMenu()
		}
		return d, nil
	}

	// Overlays consume clicks so the grid underneath is not disturbed
	if d.ShowHelp || d.ShowLogs {
		return d, nil
	}

	card := findCardAt(x, y, d)
	if card == nil {
		return d, nil
	}

	switch mouse.Button {
	case tea.MouseLeft:
		d.FocusCard(d.CardIndex(card))

		// Arm a pending drag. Classification waits for the first decisive
		// motion so a plain click never starts a gesture.
		d.DragPending = true
		d.DragCardID = card.Tab.ID
		d.DragStartX = x
		d.DragStartY = y
		d.DragLastX = x
		d.DragLastTime = time.Now()
		d.DragVelocityX = 0
		d.DragVelocityY = 0

	case tea.MouseRight:
		d.FocusCard(d.CardIndex(card))
		d.OpenContextMenu(card, x, y)
	}

	return d, nil
}

// handleMouseMotion handles mouse motion events
func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	x, y := mouse.X, mouse.Y

	// Hover tracking for the context menu
	if d.ContextMenu != nil {
		if row := contextMenuRow(x, y, d.ContextMenu); row != -1 {
			d.ContextMenu.Selected = row
		}
		return d, nil
	}

	if d.DragPending {
		return classifyPendingDrag(x, y, d)
	}

	card := d.CardByID(d.DragCardID)
	if card == nil || card.Gesture.State() != swipe.Dragging {
		return d, nil
	}

	now := time.Now()
	dt := now.Sub(d.DragLastTime).Seconds()
	if dt > 0 {
		d.DragVelocityX = float64(x-d.DragLastX) * config.SwipeUnitsPerCell / dt
	}
	d.DragLastX = x
	d.DragLastTime = now

	card.Gesture.Update(swipe.Sample{
		TranslationX: float64(x-d.DragStartX) * config.SwipeUnitsPerCell,
		TranslationY: float64(y-d.DragStartY) * config.SwipeUnitsPerCell * 2,
		VelocityX:    d.DragVelocityX,
		Phase:        swipe.Changed,
	})
	d.StartDragAnimation(card)

	return d, nil
}

// classifyPendingDrag decides what an armed press becomes once the pointer
// moves. Horizontal travel past the threshold starts a gesture on the card;
// dominant vertical motion is rejected by the controller and the press is
// dropped so wheel scrolling stays the only vertical interaction.
func classifyPendingDrag(x, y int, d *app.Deck) (tea.Model, tea.Cmd) {
	dx := x - d.DragStartX
	dy := y - d.DragStartY
	if abs(dx) < config.DragClassifyThreshold && abs(dy) < config.DragClassifyThreshold {
		return d, nil
	}
	d.DragPending = false

	card := d.CardByID(d.DragCardID)
	if card == nil {
		d.DragCardID = ""
		return d, nil
	}

	now := time.Now()
	dt := now.Sub(d.DragLastTime).Seconds()
	vx, vy := float64(dx), float64(dy)*2
	if dt > 0 {
		vx = float64(dx) * config.SwipeUnitsPerCell / dt
		vy = float64(dy) * config.SwipeUnitsPerCell * 2 / dt
	}

	if !card.Gesture.Begin(swipe.Sample{VelocityX: vx, VelocityY: vy, Phase: swipe.Began}) {
		d.DragCardID = ""
		return d, nil
	}

	d.DragLastX = x
	d.DragLastTime = now
	d.DragVelocityX = vx

	card.Gesture.Update(swipe.Sample{
		TranslationX: float64(dx) * config.SwipeUnitsPerCell,
		TranslationY: float64(dy) * config.SwipeUnitsPerCell * 2,
		VelocityX:    vx,
		Phase:        swipe.Changed,
	})
	d.StartDragAnimation(card)

	return d, nil
}

// handleMouseRelease handles mouse button release events
func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	x := mouse.X

	if d.DragPending {
		// Never classified: it was a click, and focus already moved on press
		d.DragPending = false
		d.DragCardID = ""
		return d, nil
	}

	card := d.CardByID(d.DragCardID)
	d.DragCardID = ""
	if card == nil || card.Gesture.State() != swipe.Dragging {
		return d, nil
	}

	outcome := card.Gesture.End(swipe.Sample{
		TranslationX: float64(x-d.DragStartX) * config.SwipeUnitsPerCell,
		VelocityX:    d.DragVelocityX,
		Phase:        swipe.Ended,
	})

	switch outcome {
	case swipe.OutcomeDelete:
		d.StartExitAnimation(card)
	case swipe.OutcomeSnapBack:
		d.StartSnapBackAnimation(card)
	}

	return d, nil
}

// handleMouseWheel handles mouse wheel events
func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Deck) (tea.Model, tea.Cmd) {
	delta := 0
	switch msg.Button {
	case tea.MouseWheelUp:
		delta = -config.WheelScrollSpeed
	case tea.MouseWheelDown:
		delta = config.WheelScrollSpeed
	default:
		return d, nil
	}

	if d.ShowLogs {
		_, maxScroll := logScrollBounds(d.Height, len(d.LogMessages))
		d.LogScrollOffset = max(0, min(d.LogScrollOffset+delta, maxScroll))
		return d, nil
	}
	if d.ShowHelp {
		d.HelpScrollOffset = max(d.HelpScrollOffset+delta, 0)
		return d, nil
	}

	d.ScrollBy(delta)
	return d, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
