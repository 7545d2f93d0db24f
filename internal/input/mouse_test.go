package input

import (
	"testing"

	"github.com/Gaurav-Gosain/tabgrid/internal/app"
	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/swipe"
	"github.com/Gaurav-Gosain/tabgrid/internal/tabs"
)

func newTestDeck(t *testing.T, n int) *app.Deck {
	t.Helper()
	d := app.NewDeck(app.DeckOptions{})
	d.Width = 120
	d.Height = 40
	for i := 0; i < n; i++ {
		d.Tabs.Add(tabs.New("Tab", "https://example.com"))
	}
	return d
}

// placeCards assigns fixed geometry so hit testing is deterministic.
func placeCards(d *app.Deck) {
	for i, c := range d.Cards {
		c.X = i * 22
		c.Y = 0
		c.Width = 20
		c.Height = 6
	}
}

func TestFindCardAt(t *testing.T) {
	d := newTestDeck(t, 2)
	placeCards(d)

	tests := []struct {
		name string
		x, y int
		want *app.Card
	}{
		{"inside first card", 5, 2, d.Cards[0]},
		{"first card right edge exclusive", 20, 2, nil},
		{"inside second card", 23, 2, d.Cards[1]},
		{"gap between cards", 21, 2, nil},
		{"below all cards", 5, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findCardAt(tt.x, tt.y, d); got != tt.want {
				t.Errorf("findCardAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFindCardAtScrolled(t *testing.T) {
	d := newTestDeck(t, 1)
	placeCards(d)
	d.Cards[0].Y = 10
	d.ScrollOffset = 8

	if got := findCardAt(5, 3, d); got != d.Cards[0] {
		t.Error("expected hit on scrolled card at its on-screen position")
	}
	if got := findCardAt(5, 11, d); got != nil {
		t.Error("expected miss at the card's unscrolled position")
	}
}

func TestFindCardAtRaisedWins(t *testing.T) {
	d := newTestDeck(t, 2)
	placeCards(d)
	// Overlap both cards at the origin
	d.Cards[0].X = 0
	d.Cards[1].X = 0

	// Without a raised card the topmost painted slot wins
	if got := findCardAt(5, 2, d); got != d.Cards[1] {
		t.Error("expected highest slot index to win overlap")
	}

	// A mid-gesture card paints above everything and takes the hit
	if !d.Cards[0].Gesture.Begin(swipe.Sample{VelocityX: -1, Phase: swipe.Began}) {
		t.Fatal("Begin should be granted on an idle lock")
	}
	if got := findCardAt(5, 2, d); got != d.Cards[0] {
		t.Error("expected raised card to win overlap")
	}
}

func TestFindCardAtTracksDisplayOffset(t *testing.T) {
	d := newTestDeck(t, 1)
	placeCards(d)

	// Slide the card 5 cells left in point space
	d.Cards[0].Display.OffsetX = -5 * config.SwipeUnitsPerCell

	if got := findCardAt(17, 2, d); got != nil {
		t.Error("expected miss at vacated slot position")
	}
	if got := findCardAt(2, 2, d); got != d.Cards[0] {
		t.Error("expected hit at the displaced position")
	}
}

func TestContextMenuRow(t *testing.T) {
	menu := &app.ContextMenu{X: 10, Y: 5, Items: []string{"Copy URL", "Close Tab", "Cancel"}}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first item", 12, 6, 0},
		{"last item", 12, 8, 2},
		{"top border", 12, 5, -1},
		{"below items", 12, 9, -1},
		{"left of menu", 9, 6, -1},
		{"right of menu", 10 + config.ContextMenuWidth, 6, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contextMenuRow(tt.x, tt.y, menu); got != tt.want {
				t.Errorf("contextMenuRow(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLogScrollBounds(t *testing.T) {
	tests := []struct {
		name        string
		height      int
		totalLogs   int
		wantPerPage int
		wantMax     int
	}{
		{"fits without scrolling", 40, 10, 28, 0},
		{"scrollable", 40, 100, 26, 74},
		{"tiny screen", 10, 100, 2, 98},
		{"empty", 40, 0, 28, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perPage, maxScroll := logScrollBounds(tt.height, tt.totalLogs)
			if perPage != tt.wantPerPage || maxScroll != tt.wantMax {
				t.Errorf("logScrollBounds(%d, %d) = (%d, %d), want (%d, %d)",
					tt.height, tt.totalLogs, perPage, maxScroll, tt.wantPerPage, tt.wantMax)
			}
		})
	}
}
