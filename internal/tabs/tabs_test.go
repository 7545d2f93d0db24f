package tabs

import "testing"

func collectionOf(titles ...string) (*Collection, []Tab) {
	c := NewCollection()
	created := make([]Tab, 0, len(titles))
	for _, title := range titles {
		t := New(title, "https://example.com/"+title)
		created = append(created, t)
		c.Add(t)
	}
	return c, created
}

func TestIdentityEquality(t *testing.T) {
	a := New("Wiki", "https://a")
	b := New("Wiki", "https://a")

	if a.Equal(b) {
		t.Error("tabs with identical content but distinct identity must not be equal")
	}
	if !a.Equal(Tab{ID: a.ID, Title: "renamed", URL: ""}) {
		t.Error("equality is by identity alone, not title/url content")
	}
}

func TestFilteredIsOrderPreservingSubsequence(t *testing.T) {
	c, created := collectionOf("Wiki", "Maps", "Wiki2", "News", "wikipedia")

	c.SetQuery("wiki")
	got := c.Filtered()

	wantIDs := []string{created[0].ID, created[2].ID, created[4].ID}
	if len(got) != len(wantIDs) {
		t.Fatalf("filtered len = %d, want %d", len(got), len(wantIDs))
	}
	for i, tab := range got {
		if tab.ID != wantIDs[i] {
			t.Errorf("filtered[%d] = %s, want %s", i, tab.Title, wantIDs[i])
		}
	}
}

// TestFilteredDeleteResolvesByIdentity deletes through a filtered view and
// verifies the correct underlying tab goes away: tabs [A("Wiki"), B("Maps"),
// C("Wiki2")] filtered by "Wiki" show [A, C]; removing filtered index 1 must
// remove C, never B.
func TestFilteredDeleteResolvesByIdentity(t *testing.T) {
	c, created := collectionOf("Wiki", "Maps", "Wiki2")
	a, b, cc := created[0], created[1], created[2]

	c.SetQuery("Wiki")
	filtered := c.Filtered()
	if len(filtered) != 2 || filtered[0].ID != a.ID || filtered[1].ID != cc.ID {
		t.Fatalf("filtered view = %v, want [A C]", filtered)
	}

	if !c.Remove(filtered[1].ID) {
		t.Fatal("remove by identity should succeed")
	}

	c.SetQuery("")
	remaining := c.All()
	if len(remaining) != 2 || remaining[0].ID != a.ID || remaining[1].ID != b.ID {
		titles := make([]string, len(remaining))
		for i, tab := range remaining {
			titles[i] = tab.Title
		}
		t.Fatalf("remaining = %v, want [Wiki Maps]", titles)
	}
}

func TestFilterMatchesURL(t *testing.T) {
	c := NewCollection()
	tab := New("Front page", "https://news.ycombinator.com")
	c.Add(tab)
	c.Add(New("Docs", "https://pkg.go.dev"))

	c.SetQuery("ycombinator")
	got := c.Filtered()
	if len(got) != 1 || got[0].ID != tab.ID {
		t.Fatalf("filtered = %v, want the news tab only", got)
	}
}

func TestObserverFiresAfterEveryMutation(t *testing.T) {
	c := NewCollection()
	fired := 0
	c.SetObserver(func() { fired++ })

	c.Add(New("A", ""))
	c.Add(New("B", ""))
	if fired != 2 {
		t.Fatalf("fired = %d after two adds, want 2", fired)
	}

	c.SetQuery("a")
	if fired != 3 {
		t.Fatalf("fired = %d after query change, want 3", fired)
	}
	// Setting the same query again is not a mutation.
	c.SetQuery("a")
	if fired != 3 {
		t.Fatalf("fired = %d after no-op query, want 3", fired)
	}

	c.CloseAll()
	if fired != 4 {
		t.Fatalf("fired = %d after close-all, want 4", fired)
	}
	// Closing an already-empty collection is a no-op.
	c.CloseAll()
	if fired != 4 {
		t.Fatalf("fired = %d after no-op close-all, want 4", fired)
	}
}

func TestResyncRefiresObserver(t *testing.T) {
	c, _ := collectionOf("A", "B")

	// Observer registered after population, as when the deck view first
	// appears: nothing has fired yet, Resync delivers the current state.
	fired := 0
	c.SetObserver(func() { fired++ })
	if fired != 0 {
		t.Fatalf("SetObserver must not fire, got %d", fired)
	}
	c.Resync()
	if fired != 1 {
		t.Fatalf("fired = %d after resync, want 1", fired)
	}
}

func TestRemoveUnknownID(t *testing.T) {
	c, _ := collectionOf("A")
	fired := 0
	c.SetObserver(func() { fired++ })

	if c.Remove("no-such-id") {
		t.Error("removing an unknown identity must report false")
	}
	if fired != 0 {
		t.Error("failed remove must not notify")
	}
}

func TestMustResolvePanicsOnBrokenMapping(t *testing.T) {
	c, created := collectionOf("A")

	if got := c.MustResolve(created[0].ID); got.ID != created[0].ID {
		t.Fatalf("MustResolve returned wrong tab %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustResolve on a stale identity must panic")
		}
	}()
	c.MustResolve("stale-card-id")
}
