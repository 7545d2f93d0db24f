package theme

import "testing"

func TestCycleReturnsRegisteredID(t *testing.T) {
	if err := Initialize("default"); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	id := Cycle()
	if id == "" {
		t.Fatal("Cycle returned an empty theme id")
	}

	found := false
	for _, known := range IDs() {
		if known == id {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Cycle returned %q, not a registered theme id", id)
	}

	cur := Current()
	if cur == nil {
		t.Fatal("Current() = nil after a cycle")
	}
	if cur.ID != id {
		t.Errorf("Current().ID = %q, want %q", cur.ID, id)
	}
}

func TestCycleEnablesTheming(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if IsEnabled() {
		t.Fatal("empty theme name should leave theming disabled")
	}

	if id := Cycle(); id == "" {
		t.Error("Cycle from the disabled state should activate a theme")
	}
	if !IsEnabled() {
		t.Error("Cycle should enable theming")
	}
}
