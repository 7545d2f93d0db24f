// Package app provides the core tabgrid application logic and card deck state.
package app

import (
	"fmt"
	"time"

	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/swipe"
	"github.com/Gaurav-Gosain/tabgrid/internal/tabs"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"
)

// Card is one visual slot in the grid. It pairs a tab with the gesture
// controller that owns drags on it, plus the laid-out cell geometry. The
// Display transform is what the renderer draws; animations chase the
// controller's logical transform into it.
type Card struct {
	Tab     tabs.Tab
	Gesture *swipe.Controller

	X, Y          int
	Width, Height int

	Display swipe.Transform
	Anim    *CardAnimation
}

// ContextMenu is the right-click menu attached to a card.
type ContextMenu struct {
	CardID   string
	X, Y     int
	Selected int
	Items    []string
}

// Deck represents the main application state: the tab collection, its
// visual card grid, and every interactive surface layered on top.
type Deck struct {
	Tabs      *tabs.Collection
	Cards     []*Card
	SwipeLock *swipe.Lock

	FocusedCard int
	Width       int
	Height      int

	// Grid placement state, recomputed by LayoutCards
	ScrollOffset int
	ContentH     int
	CardsPerRow  int

	SwipeInProgress bool // True while a card drag holds the swipe lock
	InteractionMode bool // True when actively dragging (lowers tick rate)

	// Drag tracking, owned by the input package
	DragPending   bool // Mouse down on a card, not yet classified as a drag
	DragCardID    string
	DragStartX    int
	DragStartY    int
	DragLastX     int
	DragLastTime  time.Time
	DragVelocityX float64
	DragVelocityY float64

	SearchMode   bool
	SearchBuffer string

	ShowHelp         bool
	HelpScrollOffset int
	ShowLogs         bool
	LogMessages      []LogMessage
	LogScrollOffset  int
	Notifications    []Notification
	ContextMenu      *ContextMenu

	CPUHistory    []float64
	LastCPUUpdate time.Time
	RAMUsage      float64
	LastRAMUpdate time.Time

	idleFrames        int // Consecutive frames with no activity (for adaptive tick)
	cachedViewContent string
	renderSkipped     bool

	KeybindRegistry *config.KeybindRegistry

	// Clipboard writes queued by the gesture delegate, drained into
	// tea.SetClipboard commands by the update loop
	pendingClipboard []string
	ClipboardContent string

	// SSH mode fields
	SSHSession ssh.Session
	IsSSHMode  bool
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// DeckOptions configures deck creation.
type DeckOptions struct {
	KeybindRegistry *config.KeybindRegistry
	StartupTabs     []config.StartupTab
	SSHSession      ssh.Session
}

// NewDeck creates the deck, seeds startup tabs, and wires the collection
// observer so every mutation rebuilds the card grid.
func NewDeck(opts DeckOptions) *Deck {
	d := &Deck{
		Tabs:            tabs.NewCollection(),
		SwipeLock:       swipe.NewLockWithTimeout(config.SwipeLockTimeout),
		FocusedCard:     -1,
		KeybindRegistry: opts.KeybindRegistry,
		SSHSession:      opts.SSHSession,
		IsSSHMode:       opts.SSHSession != nil,
	}

	d.Tabs.SetObserver(func() {
		d.SyncCards()
		d.LayoutCards()
	})

	for _, st := range opts.StartupTabs {
		d.Tabs.Add(tabs.New(st.Title, st.URL))
	}

	return d
}

func createID() string {
	return uuid.New().String()
}

// SyncCards rebuilds the visual card list from the filtered tab view,
// preserving the gesture controller and in-flight animation of any card
// that survives the rebuild. Card order always matches the filtered
// subsequence of the tab list.
func (d *Deck) SyncCards() {
	existing := make(map[string]*Card, len(d.Cards))
	for _, c := range d.Cards {
		existing[c.Tab.ID] = c
	}

	visible := d.Tabs.Filtered()
	cards := make([]*Card, 0, len(visible))
	for _, t := range visible {
		if c, ok := existing[t.ID]; ok {
			c.Tab = t
			cards = append(cards, c)
			continue
		}
		c := &Card{Tab: t, Display: swipe.Identity()}
		c.Gesture = swipe.NewController(t.ID, d.SwipeLock, d)
		cards = append(cards, c)
	}
	d.Cards = cards

	if len(d.Cards) == 0 {
		d.FocusedCard = -1
	} else if d.FocusedCard < 0 || d.FocusedCard >= len(d.Cards) {
		d.FocusedCard = 0
	}
}

// CardByID returns the card backing a tab identity, or nil.
func (d *Deck) CardByID(id string) *Card {
	for _, c := range d.Cards {
		if c.Tab.ID == id {
			return c
		}
	}
	return nil
}

// CardIndex returns the slot index of a card, or -1.
func (d *Deck) CardIndex(card *Card) int {
	for i, c := range d.Cards {
		if c == card {
			return i
		}
	}
	return -1
}

// FocusCard moves focus to the card at index i and scrolls it into view.
func (d *Deck) FocusCard(i int) {
	if i < 0 || i >= len(d.Cards) {
		return
	}
	d.FocusedCard = i
	d.scrollCardIntoView(d.Cards[i])
}

// FocusedCardRef returns the focused card, or nil when the deck is empty.
func (d *Deck) FocusedCardRef() *Card {
	if d.FocusedCard < 0 || d.FocusedCard >= len(d.Cards) {
		return nil
	}
	return d.Cards[d.FocusedCard]
}

// NewTab opens a placeholder tab and focuses its card.
func (d *Deck) NewTab() {
	t := tabs.New(fmt.Sprintf("New Tab %d", d.Tabs.Len()+1), "")
	d.Tabs.Add(t)
	for i, c := range d.Cards {
		if c.Tab.ID == t.ID {
			d.FocusCard(i)
			break
		}
	}
	d.ShowNotification("New tab opened", "info", config.NotificationDuration)
}

// CloseCard closes a card through the gesture machine so the keyboard path
// shares the swipe path's ordering guarantees: lock acquisition, exit
// animation, then deletion. Reports false when another card's drag holds
// the lock.
func (d *Deck) CloseCard(card *Card) bool {
	g := card.Gesture
	if !g.Begin(swipe.Sample{VelocityX: -1, Phase: swipe.Began}) {
		return false
	}
	g.Update(swipe.Sample{TranslationX: -config.SwipeDeleteDistance, Phase: swipe.Changed})
	outcome := g.End(swipe.Sample{
		TranslationX: -config.SwipeDeleteDistance,
		VelocityX:    -config.SwipeDeleteSpeed,
		Phase:        swipe.Ended,
	})
	if outcome != swipe.OutcomeDelete {
		return false
	}
	d.StartExitAnimation(card)
	return true
}

// SetSearchQuery applies the live search buffer to the tab filter.
func (d *Deck) SetSearchQuery(q string) {
	d.SearchBuffer = q
	d.Tabs.SetQuery(q)
}

// CardDeleted implements swipe.Delegate. The card's slide-out finished, so
// the backing tab is removed by identity. The card handle must resolve to a
// tab here; a broken mapping means the visual set and the data set diverged.
func (d *Deck) CardDeleted(id string) {
	t := d.Tabs.MustResolve(id)
	d.Tabs.Remove(id)
	d.LogInfo("Closed tab: %s", t.Title)
	d.ShowNotification(fmt.Sprintf("Closed %s", truncateTitle(t.Title)), "info", config.NotificationDuration)
}

// SwipeActiveChanged implements swipe.Delegate. Grid scrolling is suspended
// for the duration of a drag so wheel events never fight the gesture.
func (d *Deck) SwipeActiveChanged(active bool) {
	d.SwipeInProgress = active
	d.InteractionMode = active
	d.idleFrames = 0
}

// CanCopyURL implements swipe.Delegate.
func (d *Deck) CanCopyURL(id string) bool {
	t, ok := d.Tabs.ByID(id)
	return ok && t.URL != ""
}

// CopyURL implements swipe.Delegate. The write is queued and drained into a
// tea.SetClipboard command on the next update.
func (d *Deck) CopyURL(id string) {
	t, ok := d.Tabs.ByID(id)
	if !ok || t.URL == "" {
		return
	}
	d.pendingClipboard = append(d.pendingClipboard, t.URL)
	d.ShowNotification("URL copied", "success", config.NotificationDuration)
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= config.MaxTitleLength {
		return title
	}
	return string(runes[:config.MaxTitleLength-3]) + "..."
}

// Log adds a new log message to the log buffer.
func (d *Deck) Log(level, format string, args ...any) {
	d.LogMessages = append(d.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}
}

// LogInfo logs an informational message.
func (d *Deck) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (d *Deck) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error message.
func (d *Deck) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification message.
func (d *Deck) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (d *Deck) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, notif := range d.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	d.Notifications = active
}

// OpenContextMenu opens the right-click menu for a card.
func (d *Deck) OpenContextMenu(card *Card, x, y int) {
	items := []string{"Close Tab"}
	if d.CanCopyURL(card.Tab.ID) {
		items = append([]string{"Copy URL"}, items...)
	}
	items = append(items, "Cancel")

	if x+config.ContextMenuWidth > d.Width {
		x = max(d.Width-config.ContextMenuWidth, 0)
	}
	if y+len(items)+2 > d.Height {
		y = max(d.Height-len(items)-2, 0)
	}

	d.ContextMenu = &ContextMenu{
		CardID: card.Tab.ID,
		X:      x,
		Y:      y,
		Items:  items,
	}
}

// CloseContextMenu dismisses the context menu.
func (d *Deck) CloseContextMenu() {
	d.ContextMenu = nil
}

// ExecuteContextMenuItem runs the selected menu entry and closes the menu.
func (d *Deck) ExecuteContextMenuItem() {
	menu := d.ContextMenu
	if menu == nil {
		return
	}
	d.ContextMenu = nil

	if menu.Selected < 0 || menu.Selected >= len(menu.Items) {
		return
	}
	card := d.CardByID(menu.CardID)
	if card == nil {
		return
	}

	switch menu.Items[menu.Selected] {
	case "Copy URL":
		d.CopyURL(card.Tab.ID)
	case "Close Tab":
		if !d.CloseCard(card) {
			d.ShowNotification("Another card is mid-swipe", "warning", config.NotificationDuration)
		}
	}
}
