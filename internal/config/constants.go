// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Swipe Gesture Tuning
// =============================================================================

const (
	// SwipeDampeningFactor divides rightward translation so the pointer must
	// travel five times the visual distance in the disallowed direction.
	SwipeDampeningFactor = 5.0

	// SwipeDeleteDistance is the leftward translation at release beyond
	// which a card is deleted.
	SwipeDeleteDistance = 125.0

	// SwipeDeleteSpeed is the leftward release velocity (units per second)
	// beyond which a card is deleted regardless of distance.
	SwipeDeleteSpeed = 1000.0

	// SwipeExitSpeed is the fixed speed at which a deleted card slides off
	// the leading edge. Exit duration scales with the remaining distance.
	SwipeExitSpeed = 5000.0

	// SwipeLiftScale is the uniform scale applied to a card while it is
	// being dragged, conveying the lifted affordance.
	SwipeLiftScale = 1.05

	// SwipeLockTimeout guards against a swipe lock that is never released
	// because a host animation callback was dropped. A lock held longer
	// than this may be reclaimed by the next gesture.
	SwipeLockTimeout = 5 * time.Second

	// SwipeUnitsPerCell maps terminal cells to the point space the gesture
	// thresholds are tuned in. The input layer scales mouse deltas up by
	// this factor and the renderer scales offsets back down.
	SwipeUnitsPerCell = 8.0
)

// =============================================================================
// Grid Layout
// =============================================================================

const (
	// GridCellPadding is the padding unit the deck passes to the sizing
	// policy, in terminal cells. The policy's own default (15) is for
	// point-based hosts.
	GridCellPadding = 1.0

	// MinCardWidth is the narrowest a card is allowed to render.
	MinCardWidth = 16

	// MinCardHeight is the shortest a card is allowed to render.
	MinCardHeight = 4

	// StatusBarHeight is the height of the status bar area.
	StatusBarHeight = 2

	// SearchBarHeight is the height of the search input line when active.
	SearchBarHeight = 1
)

// =============================================================================
// Mouse Interaction
// =============================================================================

const (
	// DragClassifyThreshold is the horizontal pointer travel in cells before
	// a pending press is classified as a card drag. Below it a release is a
	// plain click.
	DragClassifyThreshold = 2

	// WheelScrollSpeed is the number of grid rows scrolled per wheel notch.
	WheelScrollSpeed = 2
)

// =============================================================================
// Animation Durations
// =============================================================================

const (
	// DefaultAnimationDuration is the standard duration for snap-back and
	// per-update drag transforms.
	DefaultAnimationDuration = 200 * time.Millisecond

	// NotificationFadeOutDuration is the fade out duration for notifications
	NotificationFadeOutDuration = 500 * time.Millisecond

	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 1500 * time.Millisecond
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the normal refresh rate during regular operation
	NormalFPS = 60

	// InteractionFPS is the refresh rate during card drags.
	// Lower FPS during interactions improves mouse responsiveness.
	InteractionFPS = 30

	// IdleFPS is the refresh rate when nothing is animating or dragging.
	IdleFPS = 10

	// IdleThresholdFrames is the number of consecutive idle frames at
	// NormalFPS before switching to IdleFPS (~500ms at 60 FPS).
	IdleThresholdFrames = 30
)

// =============================================================================
// System Stats
// =============================================================================

const (
	// CPUUpdateInterval is the interval between CPU usage updates
	CPUUpdateInterval = 500 * time.Millisecond

	// RAMUpdateInterval is the interval between RAM usage updates
	RAMUpdateInterval = 2 * time.Second

	// CPUHistoryLen is the number of CPU samples kept for the status bar graph
	CPUHistoryLen = 10
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// MaxNotificationWidth is the maximum width of notification messages
	MaxNotificationWidth = 60

	// MinNotificationWidth is the minimum width of notification messages
	MinNotificationWidth = 20

	// NotificationMargin is the margin from screen edge for notifications
	NotificationMargin = 8

	// NotificationSpacing is the vertical spacing between notifications
	NotificationSpacing = 4

	// MaxVisibleNotifications is the maximum number of notifications shown at once
	MaxVisibleNotifications = 3

	// MaxLogMessages is the number of log entries kept in the in-app buffer
	MaxLogMessages = 500

	// MaxTitleLength is the longest tab title rendered on a card before truncation
	MaxTitleLength = 40

	// ContextMenuWidth is the width of the right-click card menu
	ContextMenuWidth = 24
)

// =============================================================================
// Notification Icons (ASCII-safe)
// =============================================================================

const (
	// NotificationIconError is the error notification icon
	NotificationIconError = "[X]"

	// NotificationIconWarning is the warning notification icon
	NotificationIconWarning = "[!]"

	// NotificationIconSuccess is the success notification icon
	NotificationIconSuccess = "[OK]"

	// NotificationIconInfo is the info notification icon
	NotificationIconInfo = "[i]"
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use plain ASCII border and icon characters.
// Set via --ascii-only command-line flag.
var UseASCIIOnly = false

// AnimationsEnabled controls whether UI animations are enabled.
// Set via --no-animations flag or appearance.animations_enabled config.
var AnimationsEnabled = true

// BorderStyle is the card border style: rounded, normal, thick, double, ascii.
var BorderStyle = "rounded"

// HideStatusBar hides the status bar at the bottom of the deck.
var HideStatusBar = false

// HideClock hides the clock in the status bar.
var HideClock = false

// GetAnimationDuration returns the animation duration for snap-back and drag
// transforms. Returns 0 if animations are disabled, causing instant
// transitions.
func GetAnimationDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return DefaultAnimationDuration
}

// GetBorderForStyle returns the lipgloss border for the configured style.
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}
