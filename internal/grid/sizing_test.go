package grid

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestOrientationFor(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          Orientation
	}{
		{"wider than tall", 600, 300, Landscape},
		{"taller than wide", 300, 600, Portrait},
		{"square counts as portrait", 400, 400, Portrait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrientationFor(tt.width, tt.height); got != tt.want {
				t.Errorf("OrientationFor(%g, %g) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestRowDivisor(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name        string
		orientation Orientation
		itemCount   int
		want        float64
	}{
		{"single tab portrait", Portrait, 1, 1.33},
		{"single tab landscape", Landscape, 1, 1.33},
		{"two tabs portrait", Portrait, 2, 2},
		{"two tabs landscape", Landscape, 2, 2},
		{"many tabs portrait", Portrait, 5, 2},
		{"many tabs landscape", Landscape, 5, 3},
		{"three tabs portrait", Portrait, 3, 2},
		{"three tabs landscape", Landscape, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.RowDivisor(tt.orientation, tt.itemCount); !almostEqual(got, tt.want) {
				t.Errorf("RowDivisor(%v, %d) = %g, want %g", tt.orientation, tt.itemCount, got, tt.want)
			}
		})
	}
}

// TestItemSizePortraitScenario pins the full sizing pipeline for a 300x600
// portrait container with five tabs: divisor 2, spacing 15*2*2=60,
// width (300-60)/2=120, device aspect 2.0 blended to 1.5, height 180.
func TestItemSizePortraitScenario(t *testing.T) {
	size, err := DefaultPolicy().ItemSize(300, 600, 300, 5)
	if err != nil {
		t.Fatalf("ItemSize returned error: %v", err)
	}
	if !almostEqual(size.Width, 120) {
		t.Errorf("Width = %g, want 120", size.Width)
	}
	if !almostEqual(size.Height, 180) {
		t.Errorf("Height = %g, want 180", size.Height)
	}
}

func TestItemSizeLandscapeUsesRawAspect(t *testing.T) {
	// 600x300 landscape, 5 tabs: divisor 3, spacing 15*2*3=90,
	// width (600-90)/3=170, aspect 0.5 unblended, height 85.
	size, err := DefaultPolicy().ItemSize(600, 300, 600, 5)
	if err != nil {
		t.Fatalf("ItemSize returned error: %v", err)
	}
	if !almostEqual(size.Width, 170) {
		t.Errorf("Width = %g, want 170", size.Width)
	}
	if !almostEqual(size.Height, 85) {
		t.Errorf("Height = %g, want 85", size.Height)
	}
}

func TestItemSizeSingleTabFractionalDivisor(t *testing.T) {
	// One tab in a 300x600 container: divisor 1.33, spacing 15*2*1.33=39.9,
	// width (300-39.9)/1.33.
	size, err := DefaultPolicy().ItemSize(300, 600, 300, 1)
	if err != nil {
		t.Fatalf("ItemSize returned error: %v", err)
	}
	wantWidth := (300 - 15*2*1.33) / 1.33
	if !almostEqual(size.Width, wantWidth) {
		t.Errorf("Width = %g, want %g", size.Width, wantWidth)
	}
	// The single card must be wider than a two-per-row card but narrower
	// than the full safe area.
	two, _ := DefaultPolicy().ItemSize(300, 600, 300, 5)
	if size.Width <= two.Width {
		t.Errorf("single card width %g not larger than grid card width %g", size.Width, two.Width)
	}
	if size.Width >= 300 {
		t.Errorf("single card width %g should not span the full container", size.Width)
	}
}

func TestItemSizeSafeAreaNarrowerThanContainer(t *testing.T) {
	// Safe area excludes side insets; the width math uses the safe width,
	// the aspect uses the full container bounds.
	size, err := DefaultPolicy().ItemSize(300, 600, 280, 5)
	if err != nil {
		t.Fatalf("ItemSize returned error: %v", err)
	}
	if !almostEqual(size.Width, (280-60)/2.0) {
		t.Errorf("Width = %g, want %g", size.Width, (280-60)/2.0)
	}
}

func TestItemSizeDegenerateBounds(t *testing.T) {
	// A container narrower than the reserved spacing is a precondition
	// violation, reported rather than clamped.
	_, err := DefaultPolicy().ItemSize(50, 100, 50, 5)
	if !errors.Is(err, ErrDegenerateBounds) {
		t.Fatalf("err = %v, want ErrDegenerateBounds", err)
	}

	if _, err := DefaultPolicy().ItemSize(0, 100, 0, 5); err == nil {
		t.Fatal("expected error for zero-width container")
	}
}

func TestSectionInsets(t *testing.T) {
	insets := DefaultPolicy().SectionInsets(Insets{Left: 10, Right: 4})

	if !almostEqual(insets.Top, 15) || !almostEqual(insets.Bottom, 15) {
		t.Errorf("top/bottom = %g/%g, want 15/15", insets.Top, insets.Bottom)
	}
	if !almostEqual(insets.Left, 25) {
		t.Errorf("left = %g, want 25", insets.Left)
	}
	if !almostEqual(insets.Right, 19) {
		t.Errorf("right = %g, want 19", insets.Right)
	}
}

func TestCellScaledPolicy(t *testing.T) {
	// The TUI host runs the same math with a one-cell padding unit.
	p := Policy{InsetPadding: 1}
	size, err := p.ItemSize(120, 40, 120, 5)
	if err != nil {
		t.Fatalf("ItemSize returned error: %v", err)
	}
	// Landscape: divisor 3, spacing 6, width 38, aspect 1/3.
	if !almostEqual(size.Width, 38) {
		t.Errorf("Width = %g, want 38", size.Width)
	}
	if !almostEqual(size.Height, 38.0/3.0) {
		t.Errorf("Height = %g, want %g", size.Height, 38.0/3.0)
	}
}
