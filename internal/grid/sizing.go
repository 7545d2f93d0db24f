// Package grid computes per-card sizes and section insets for the adaptive
// tab grid. The policy is pure: the layout owner calls it on every layout
// pass (initial layout, rotation, tab count change) and applies the result
// to each card slot.
package grid

import (
	"errors"
	"fmt"
)

// DefaultInsetPadding is the standard padding unit between and around cards.
const DefaultInsetPadding = 15.0

// singleItemDivisor produces one enlarged card rather than a full-width one
// when only a single tab is open. Deliberately non-integral.
const singleItemDivisor = 1.33

// ErrDegenerateBounds is returned when the container is too narrow for the
// configured spacing and the computed card width would not be positive.
// Sizing for such containers is a caller precondition, not a clamp.
var ErrDegenerateBounds = errors.New("grid: container too small for inset padding")

// Orientation describes how the container bounds are oriented.
type Orientation int

const (
	// Portrait means the container is at least as tall as it is wide.
	Portrait Orientation = iota
	// Landscape means the container is wider than it is tall.
	Landscape
)

// String returns the orientation name for logs and test failures.
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// OrientationFor derives the orientation from container bounds.
// Landscape iff width > height; square bounds count as portrait.
func OrientationFor(width, height float64) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// Insets are edge distances around the card area, in the same units as the
// container bounds.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Size is a computed card size.
type Size struct {
	Width  float64
	Height float64
}

// Policy computes card sizes from container bounds and tab count.
// The zero value is unusable; use DefaultPolicy or set InsetPadding
// explicitly (the TUI host instantiates a cell-scaled policy).
type Policy struct {
	// InsetPadding is the padding unit. Each row slot reserves two units,
	// a leading and a trailing half-gap.
	InsetPadding float64
}

// DefaultPolicy returns the policy with the standard padding unit.
func DefaultPolicy() Policy {
	return Policy{InsetPadding: DefaultInsetPadding}
}

// RowDivisor returns the possibly-fractional number of card slots per row.
// It is a divisor for width computation, not a literal card count: a single
// tab divides the row by 1.33 so the lone card reads as enlarged, two tabs
// always split the row in half, and beyond that portrait fits two per row
// and landscape three.
func (p Policy) RowDivisor(orientation Orientation, itemCount int) float64 {
	switch {
	case itemCount == 1:
		return singleItemDivisor
	case itemCount == 2:
		return 2
	case orientation == Landscape:
		return 3
	default:
		return 2
	}
}

// ItemSize computes the size of one card given the container bounds, the
// horizontally safe width (container width minus unusable side areas) and
// the number of tabs. The same value applies to every card in the pass.
//
// The aspect ratio follows the container: in portrait the device ratio is
// blended halfway toward square so cards don't become needlessly tall, in
// landscape it is used as-is.
func (p Policy) ItemSize(containerWidth, containerHeight, safeAreaWidth float64, itemCount int) (Size, error) {
	if containerWidth <= 0 || containerHeight <= 0 {
		return Size{}, fmt.Errorf("grid: non-positive container %gx%g", containerWidth, containerHeight)
	}

	orientation := OrientationFor(containerWidth, containerHeight)
	divisor := p.RowDivisor(orientation, itemCount)

	interItemSpacing := p.InsetPadding * 2 * divisor
	width := (safeAreaWidth - interItemSpacing) / divisor
	if width <= 0 {
		return Size{}, fmt.Errorf("%w: safe width %g, spacing %g", ErrDegenerateBounds, safeAreaWidth, interItemSpacing)
	}

	aspect := containerHeight / containerWidth
	if orientation == Portrait {
		aspect = (1.0 + aspect) / 2
	}

	return Size{Width: width, Height: width * aspect}, nil
}

// SectionInsets returns the insets around the whole card section.
// Top and bottom use the padding unit alone; left and right add the
// container's safe-area inset on that side.
func (p Policy) SectionInsets(safeArea Insets) Insets {
	return Insets{
		Top:    p.InsetPadding,
		Bottom: p.InsetPadding,
		Left:   p.InsetPadding + safeArea.Left,
		Right:  p.InsetPadding + safeArea.Right,
	}
}
