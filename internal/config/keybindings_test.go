package config

import "testing"

func TestKeybindRegistryDefaults(t *testing.T) {
	registry, conflicts := NewKeybindRegistry(DefaultConfig())
	if len(conflicts) != 0 {
		t.Fatalf("default config should have no conflicts, got %v", conflicts)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"n", "new_tab"},
		{"x", "close_tab"},
		{"w", "close_tab"},
		{"X", "close_all"},
		{"y", "copy_url"},
		{"/", "search"},
		{"tab", "nav_next"},
		{"shift+tab", "nav_prev"},
		{"1", "select_tab_1"},
		{"9", "select_tab_9"},
		{"z", ""},
	}

	for _, tt := range tests {
		if got := registry.GetAction(tt.key); got != tt.want {
			t.Errorf("GetAction(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeybindRegistryConflicts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Deck = map[string][]string{
		"aaa_first":  {"q"},
		"bbb_second": {"q"},
	}
	cfg.Keybindings.Search = map[string][]string{}
	cfg.Keybindings.Navigation = map[string][]string{}

	registry, conflicts := NewKeybindRegistry(cfg)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %v", len(conflicts), conflicts)
	}
	// Later action in sorted order wins the key
	if got := registry.GetAction("q"); got != "bbb_second" {
		t.Errorf("GetAction(%q) = %q, want %q", "q", got, "bbb_second")
	}
}

func TestGetKeysForDisplay(t *testing.T) {
	registry, _ := NewKeybindRegistry(DefaultConfig())

	tests := []struct {
		action string
		want   string
	}{
		{"close_tab", "x, w"},
		{"nav_up", "↑, k"},
		{"nav_prev", "Shift+Tab"},
		{"unbound_action", ""},
	}

	for _, tt := range tests {
		if got := registry.GetKeysForDisplay(tt.action); got != tt.want {
			t.Errorf("GetKeysForDisplay(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestGetKeybindingsSections(t *testing.T) {
	registry, _ := NewKeybindRegistry(DefaultConfig())
	sections := GetKeybindings(registry)
	if len(sections) == 0 {
		t.Fatal("expected keybinding sections")
	}

	titles := make(map[string]bool)
	for _, s := range sections {
		titles[s.Title] = true
		if len(s.Bindings) == 0 {
			t.Errorf("section %q has no bindings", s.Title)
		}
	}
	for _, want := range []string{"TABS", "SEARCH", "NAVIGATION", "SYSTEM"} {
		if !titles[want] {
			t.Errorf("missing section %q", want)
		}
	}

	// Nil registry falls back to the hard-coded defaults
	if fallback := GetKeybindings(nil); len(fallback) == 0 {
		t.Error("nil registry should return default sections")
	}
}
