package config

import (
	"fmt"
	"sort"
	"strings"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry maps pressed keys to configured actions. It is built once
// from the user config at startup and consulted on every key press.
type KeybindRegistry struct {
	keyToAction map[string]string
	actionKeys  map[string][]string
}

// NewKeybindRegistry builds a registry from the user's keybinding config.
// Later sections win on key conflicts, and a conflict is reported so the
// user can fix their config.
func NewKeybindRegistry(cfg *UserConfig) (*KeybindRegistry, []string) {
	r := &KeybindRegistry{
		keyToAction: make(map[string]string),
		actionKeys:  make(map[string][]string),
	}
	var conflicts []string

	register := func(bindings map[string][]string) {
		actions := make([]string, 0, len(bindings))
		for action := range bindings {
			actions = append(actions, action)
		}
		sort.Strings(actions)
		for _, action := range actions {
			for _, key := range bindings[action] {
				if existing, ok := r.keyToAction[key]; ok && existing != action {
					conflicts = append(conflicts,
						fmt.Sprintf("key %q bound to both %q and %q", key, existing, action))
				}
				r.keyToAction[key] = action
				r.actionKeys[action] = append(r.actionKeys[action], key)
			}
		}
	}

	register(cfg.Keybindings.Deck)
	register(cfg.Keybindings.Search)
	register(cfg.Keybindings.Navigation)

	return r, conflicts
}

// GetAction returns the action bound to key, or "" if unbound.
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[key]
}

// GetKeysForDisplay returns the keys bound to an action formatted for the
// help menu, e.g. "x, w". Returns "" if the action has no keys.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.actionKeys[action]
	if len(keys) == 0 {
		return ""
	}
	display := make([]string, len(keys))
	for i, k := range keys {
		display[i] = prettifyKey(k)
	}
	return strings.Join(display, ", ")
}

func prettifyKey(key string) string {
	switch key {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	case "esc":
		return "Esc"
	case "enter":
		return "Enter"
	case "tab":
		return "Tab"
	case "shift+tab":
		return "Shift+Tab"
	case "ctrl+c":
		return "Ctrl+C"
	case "ctrl+l":
		return "Ctrl+L"
	}
	return key
}

// GetKeybindings returns all keybinding sections for the help menu.
// If registry is provided, it generates bindings dynamically from user config.
// If registry is nil, it falls back to hard-coded defaults.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		return getDefaultKeybindings()
	}

	sections := []KeybindingSection{}

	deck := KeybindingSection{
		Title:    "TABS",
		Bindings: []Keybinding{},
	}
	addBinding(&deck, registry, "new_tab", "New tab")
	addBinding(&deck, registry, "close_tab", "Close focused tab")
	addBinding(&deck, registry, "close_all", "Close all tabs")
	addBinding(&deck, registry, "copy_url", "Copy tab URL")
	for i := 1; i <= 9; i++ {
		action := fmt.Sprintf("select_tab_%d", i)
		desc := fmt.Sprintf("Focus tab %d", i)
		addBinding(&deck, registry, action, desc)
	}
	if len(deck.Bindings) > 0 {
		sections = append(sections, deck)
	}

	search := KeybindingSection{
		Title:    "SEARCH",
		Bindings: []Keybinding{},
	}
	addBinding(&search, registry, "search", "Filter tabs")
	addBinding(&search, registry, "search_accept", "Keep filter")
	addBinding(&search, registry, "search_cancel", "Clear filter")
	if len(search.Bindings) > 0 {
		sections = append(sections, search)
	}

	nav := KeybindingSection{
		Title:    "NAVIGATION",
		Bindings: []Keybinding{},
	}
	addBinding(&nav, registry, "nav_up", "Focus card above")
	addBinding(&nav, registry, "nav_down", "Focus card below")
	addBinding(&nav, registry, "nav_left", "Focus card left")
	addBinding(&nav, registry, "nav_right", "Focus card right")
	addBinding(&nav, registry, "nav_next", "Next card")
	addBinding(&nav, registry, "nav_prev", "Previous card")
	if len(nav.Bindings) > 0 {
		sections = append(sections, nav)
	}

	misc := KeybindingSection{
		Title:    "SYSTEM",
		Bindings: []Keybinding{},
	}
	addBinding(&misc, registry, "cycle_theme", "Cycle theme")
	addBinding(&misc, registry, "toggle_logs", "Toggle log viewer")
	addBinding(&misc, registry, "toggle_help", "Toggle help")
	addBinding(&misc, registry, "quit", "Quit")
	if len(misc.Bindings) > 0 {
		sections = append(sections, misc)
	}

	sections = append(sections, getStaticHelpSections()...)
	return sections
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}

// getDefaultKeybindings returns the hard-coded keybindings (used as fallback)
func getDefaultKeybindings() []KeybindingSection {
	sections := []KeybindingSection{
		{
			Title: "TABS",
			Bindings: []Keybinding{
				{"n", "New tab"},
				{"x, w", "Close focused tab"},
				{"Shift+X", "Close all tabs"},
				{"y", "Copy tab URL"},
				{"1-9", "Focus tab"},
			},
		},
		{
			Title: "SEARCH",
			Bindings: []Keybinding{
				{"/", "Filter tabs"},
				{"Enter", "Keep filter"},
				{"Esc", "Clear filter"},
			},
		},
		{
			Title: "NAVIGATION",
			Bindings: []Keybinding{
				{"↑/↓/←/→, hjkl", "Focus card"},
				{"Tab/Shift+Tab", "Next/Previous card"},
			},
		},
		{
			Title: "SYSTEM",
			Bindings: []Keybinding{
				{"t", "Cycle theme"},
				{"Ctrl+L", "Toggle log viewer"},
				{"?", "Toggle help"},
				{"q, Ctrl+C", "Quit"},
			},
		},
	}
	sections = append(sections, getStaticHelpSections()...)
	return sections
}

// getStaticHelpSections returns help sections that don't need dynamic
// binding info (mouse gestures).
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE:",
			Bindings: []Keybinding{
				{"Drag card left", "Close tab (release past threshold)"},
				{"Drag card right", "Peek (card resists, snaps back)"},
				{"Click card", "Focus tab"},
				{"Right-click card", "Context menu"},
				{"Wheel ↑/↓", "Scroll the grid"},
			},
		},
	}
}
