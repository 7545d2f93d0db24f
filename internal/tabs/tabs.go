// Package tabs owns the tab collection backing the card grid.
//
// The collection is the only writer of the tab list: cards report deletions
// through their gesture delegate and the deck forwards them here by tab
// identity. Reads (filtering, count, lookup) happen freely between writes
// since everything runs on the single UI goroutine.
package tabs

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Tab is one browser tab. Identity is the ID, assigned at creation and
// never changed; two tabs are the same tab iff their IDs match, regardless
// of title or URL content.
type Tab struct {
	ID    string
	Title string
	URL   string
}

// New creates a tab with a fresh identity.
func New(title, url string) Tab {
	return Tab{ID: uuid.New().String(), Title: title, URL: url}
}

// Equal reports identity equality.
func (t Tab) Equal(other Tab) bool {
	return t.ID == other.ID
}

// Observer is invoked synchronously after every mutation of the collection.
type Observer func()

// Collection owns the ordered tab list and the active filter query.
//
// Mutators notify the registered observer explicitly after mutating instead
// of relying on implicit property observation; Resync covers the initial
// population, where an implicit observer would never have fired.
type Collection struct {
	tabs     []Tab
	query    string
	observer Observer
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// SetObserver registers the single observer. It does not fire; call Resync
// once the observer is ready to receive the current state.
func (c *Collection) SetObserver(fn Observer) {
	c.observer = fn
}

// Resync re-fires the observer with the current state. The deck calls this
// when its view first appears.
func (c *Collection) Resync() {
	c.notify()
}

func (c *Collection) notify() {
	if c.observer != nil {
		c.observer()
	}
}

// Add appends a tab and notifies.
func (c *Collection) Add(t Tab) {
	c.tabs = append(c.tabs, t)
	c.notify()
}

// Remove deletes the tab with the given identity and notifies. It reports
// whether a tab was removed.
func (c *Collection) Remove(id string) bool {
	for i, t := range c.tabs {
		if t.ID == id {
			c.tabs = append(c.tabs[:i], c.tabs[i+1:]...)
			c.notify()
			return true
		}
	}
	return false
}

// CloseAll drops every tab and notifies.
func (c *Collection) CloseAll() {
	if len(c.tabs) == 0 {
		return
	}
	c.tabs = nil
	c.notify()
}

// SetQuery updates the filter query and notifies.
func (c *Collection) SetQuery(q string) {
	if c.query == q {
		return
	}
	c.query = q
	c.notify()
}

// Query returns the active filter query.
func (c *Collection) Query() string {
	return c.query
}

// Len returns the total tab count, ignoring the filter.
func (c *Collection) Len() int {
	return len(c.tabs)
}

// All returns a copy of the full tab list in order.
func (c *Collection) All() []Tab {
	out := make([]Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}

// ByID looks a tab up by identity.
func (c *Collection) ByID(id string) (Tab, bool) {
	for _, t := range c.tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// Filtered returns the tabs matching the active query as an
// order-preserving subsequence of the full list. An empty query matches
// everything. Matching is a case-insensitive substring test against title
// and URL.
func (c *Collection) Filtered() []Tab {
	if c.query == "" {
		return c.All()
	}
	q := strings.ToLower(c.query)
	var out []Tab
	for _, t := range c.tabs {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.URL), q) {
			out = append(out, t)
		}
	}
	return out
}

// MustResolve maps a tab identity that is known to be on screen back to its
// tab. The mapping from a visual slot to its backing tab must always be
// resolvable while the card is part of the on-screen set; failure here
// means the visual set and the data set have diverged, which must not be
// papered over.
func (c *Collection) MustResolve(id string) Tab {
	t, ok := c.ByID(id)
	if !ok {
		panic(fmt.Sprintf("tabs: no tab backs on-screen card %s", id))
	}
	return t
}
