package app

import (
	"math"

	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/grid"
)

// UsableHeight returns the grid viewport height in cells, below the search
// bar and above the status bar.
func (d *Deck) UsableHeight() int {
	h := d.Height
	if !config.HideStatusBar {
		h -= config.StatusBarHeight
	}
	if d.SearchMode || d.Tabs.Query() != "" {
		h -= config.SearchBarHeight
	}
	return max(h, 1)
}

// TopMargin returns the first grid row, after any search bar.
func (d *Deck) TopMargin() int {
	if d.SearchMode || d.Tabs.Query() != "" {
		return config.SearchBarHeight
	}
	return 0
}

// LayoutCards recomputes card geometry from the sizing policy and the
// current viewport. Cards flow row by row in filtered order; the divisor
// decides how many share a row and the policy decides their size.
func (d *Deck) LayoutCards() {
	if d.Width <= 0 || d.Height <= 0 || len(d.Cards) == 0 {
		d.ContentH = 0
		d.ScrollOffset = 0
		return
	}

	usableH := d.UsableHeight()
	policy := grid.Policy{InsetPadding: config.GridCellPadding}

	// A terminal cell is roughly twice as tall as it is wide, so the
	// orientation test and the item aspect both run on width-normalized
	// dimensions.
	orientation := grid.OrientationFor(float64(d.Width), float64(usableH*2))
	divisor := policy.RowDivisor(orientation, len(d.Cards))

	size, err := policy.ItemSize(float64(d.Width), float64(usableH*2), float64(d.Width), len(d.Cards))
	if err != nil {
		d.LogWarn("Grid too small to lay out %d cards: %v", len(d.Cards), err)
		d.ContentH = 0
		return
	}

	cardW := max(int(size.Width), config.MinCardWidth)
	cardH := max(int(math.Round(size.Height/2)), config.MinCardHeight)

	perRow := max(int(divisor), 1)
	d.CardsPerRow = perRow

	pad := int(config.GridCellPadding)
	insets := policy.SectionInsets(grid.Insets{})
	top := d.TopMargin() + int(insets.Top)
	left := int(insets.Left)

	for i, c := range d.Cards {
		row := i / perRow
		col := i % perRow
		c.X = left + col*(cardW+pad*2)
		c.Y = top + row*(cardH+pad)
		c.Width = cardW
		c.Height = cardH
		c.Gesture.SetCardWidth(float64(cardW) * config.SwipeUnitsPerCell)
	}

	rows := (len(d.Cards) + perRow - 1) / perRow
	d.ContentH = top + rows*(cardH+pad)
	d.clampScroll()
}

func (d *Deck) clampScroll() {
	maxScroll := max(d.ContentH-d.UsableHeight()-d.TopMargin(), 0)
	d.ScrollOffset = max(0, min(d.ScrollOffset, maxScroll))
}

// ScrollBy scrolls the grid vertically. Scrolling is suspended while a
// swipe holds the lock.
func (d *Deck) ScrollBy(delta int) {
	if d.SwipeInProgress {
		return
	}
	d.ScrollOffset += delta
	d.clampScroll()
}

func (d *Deck) scrollCardIntoView(c *Card) {
	top := c.Y - d.ScrollOffset
	bottom := top + c.Height
	viewTop := d.TopMargin()
	viewBottom := viewTop + d.UsableHeight()

	if top < viewTop {
		d.ScrollOffset -= viewTop - top
	} else if bottom > viewBottom {
		d.ScrollOffset += bottom - viewBottom
	}
	d.clampScroll()
}

// MoveFocus moves the grid focus by rows and columns, clamped to the
// existing cards.
func (d *Deck) MoveFocus(dRow, dCol int) {
	if len(d.Cards) == 0 || d.CardsPerRow <= 0 {
		return
	}
	i := d.FocusedCard
	if i < 0 {
		d.FocusCard(0)
		return
	}
	row := i/d.CardsPerRow + dRow
	col := i%d.CardsPerRow + dCol

	rows := (len(d.Cards) + d.CardsPerRow - 1) / d.CardsPerRow
	row = max(0, min(row, rows-1))
	col = max(0, min(col, d.CardsPerRow-1))

	target := row*d.CardsPerRow + col
	if target >= len(d.Cards) {
		target = len(d.Cards) - 1
	}
	d.FocusCard(target)
}

// CycleFocus advances focus by delta slots, wrapping around.
func (d *Deck) CycleFocus(delta int) {
	n := len(d.Cards)
	if n == 0 {
		return
	}
	i := d.FocusedCard
	if i < 0 {
		i = 0
	}
	d.FocusCard(((i+delta)%n + n) % n)
}
