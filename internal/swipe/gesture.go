// Package swipe implements the per-card drag gesture state machine.
//
// A Controller owns the full lifecycle of one drag on one card: it consumes
// a stream of gesture samples and produces a visual transform per frame plus
// a terminal decision, delete or snap back. Controllers cooperate through a
// shared Lock so only one card is ever mid-swipe, and report swipe-active
// status to the deck so vertical scrolling can be suspended during a drag.
package swipe

import (
	"math"
	"time"

	"github.com/Gaurav-Gosain/tabgrid/internal/config"
)

// Phase identifies where a sample falls in the gesture lifecycle.
type Phase int

const (
	// Began is the first sample of a drag.
	Began Phase = iota
	// Changed is a mid-drag position/velocity update.
	Changed
	// Ended is the final sample of a completed drag.
	Ended
	// Cancelled is the final sample of an interrupted drag. It is decided
	// by the same threshold rule as Ended.
	Cancelled
)

// Sample is one frame of gesture input. Translations are cumulative from
// the gesture origin (negative X = leftward); velocities are instantaneous
// in units per second.
type Sample struct {
	TranslationX float64
	TranslationY float64
	VelocityX    float64
	VelocityY    float64
	Phase        Phase
}

// Transform is the visual state applied to a card.
type Transform struct {
	OffsetX float64 // horizontal translation
	Scale   float64 // uniform scale, 1 = normal
	Alpha   float64 // opacity, 1 = opaque
}

// Identity returns the resting transform.
func Identity() Transform {
	return Transform{Scale: 1, Alpha: 1}
}

// IsIdentity reports whether the transform leaves the card untouched.
func (t Transform) IsIdentity() bool {
	return t.OffsetX == 0 && t.Scale == 1 && t.Alpha == 1
}

// Delegate is the capability interface the deck implements for its cards.
// The controller holds a non-owning reference: the deck owns its cards,
// never the other way around.
type Delegate interface {
	// CardDeleted reports that the slide-out animation finished and the
	// underlying tab should be removed, identified by card handle.
	CardDeleted(id string)

	// SwipeActiveChanged reports that a swipe started or stopped, so the
	// deck can suspend or resume vertical scrolling.
	SwipeActiveChanged(active bool)

	// CanCopyURL reports whether the card's tab has a URL to copy.
	CanCopyURL(id string) bool

	// CopyURL copies the card's tab URL.
	CopyURL(id string)
}

// State is the controller's position in the gesture lifecycle.
type State int

const (
	// Idle means no gesture is in progress.
	Idle State = iota
	// Dragging means a granted gesture is tracking the pointer.
	Dragging
	// Deleting means the card is animating off the leading edge.
	Deleting
	// SnappingBack means the card is animating back to identity.
	SnappingBack
)

// Outcome is the terminal decision of a gesture.
type Outcome int

const (
	// OutcomeNone means the sample did not end the gesture.
	OutcomeNone Outcome = iota
	// OutcomeDelete means the card crossed the distance or speed threshold.
	OutcomeDelete
	// OutcomeSnapBack means the card returns to its slot.
	OutcomeSnapBack
)

// Controller runs the drag state machine for one card.
type Controller struct {
	id       string
	lock     *Lock
	delegate Delegate

	state     State
	holdsLock bool // distinct from the shared lock: only the acquirer may release
	active    bool
	zRaised   bool
	transform Transform
	cardWidth float64
}

// NewController creates the gesture controller for one card. The lock is
// the deck-wide swipe lock shared by all sibling cards.
func NewController(id string, lock *Lock, delegate Delegate) *Controller {
	return &Controller{
		id:        id,
		lock:      lock,
		delegate:  delegate,
		transform: Identity(),
	}
}

// ID returns the opaque card handle this controller reports with.
func (c *Controller) ID() string { return c.id }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Active reports whether a granted gesture is in progress.
func (c *Controller) Active() bool { return c.active }

// ZRaised reports whether the card should paint above its siblings.
func (c *Controller) ZRaised() bool { return c.zRaised }

// Transform returns the card's current visual transform target.
func (c *Controller) Transform() Transform { return c.transform }

// SetTransform lets the animating host write interpolated frames while the
// controller is in Deleting or SnappingBack.
func (c *Controller) SetTransform(t Transform) { c.transform = t }

// SetCardWidth records the card's laid-out width, used to size the
// slide-out travel. The layout owner calls this on every layout pass.
func (c *Controller) SetCardWidth(w float64) { c.cardWidth = w }

// HandleSample routes one gesture sample through the state machine and
// returns the terminal outcome, if any.
func (c *Controller) HandleSample(s Sample) Outcome {
	switch s.Phase {
	case Began:
		c.Begin(s)
		return OutcomeNone
	case Changed:
		c.Update(s)
		return OutcomeNone
	default:
		return c.End(s)
	}
}

// Begin attempts to start a drag. The gesture is rejected outright, with no
// visual change, when another card holds the swipe lock or when the initial
// motion is classified as vertical (the deck keeps those for scrolling).
// On grant the card raises above its siblings and the deck is told a swipe
// is active.
func (c *Controller) Begin(s Sample) bool {
	if c.state != Idle {
		return false
	}
	if math.Abs(s.VelocityY) > math.Abs(s.VelocityX) {
		return false
	}
	if !c.lock.TryAcquire(c.id) {
		return false
	}

	c.holdsLock = true
	c.active = true
	c.zRaised = true
	c.state = Dragging
	c.transform = Transform{Scale: config.SwipeLiftScale, Alpha: 1}
	c.delegate.SwipeActiveChanged(true)
	return true
}

// Update applies a mid-drag sample. Leftward translation tracks the pointer
// 1:1; rightward translation is divided by the dampening factor so the card
// barely moves in the disallowed direction. The returned transform is the
// target of a short fixed-duration animation; successive updates override
// any in-flight animation.
func (c *Controller) Update(s Sample) Transform {
	if c.state != Dragging {
		return c.transform
	}

	offset := s.TranslationX
	if offset >= 0 {
		offset /= config.SwipeDampeningFactor
	}
	c.transform = Transform{OffsetX: offset, Scale: config.SwipeLiftScale, Alpha: 1}
	return c.transform
}

// End decides the gesture. Delete iff the release was far enough or fast
// enough leftward; any rightward motion snaps back. The lock is released
// and the active flag cleared here, before the exit animation completes,
// so a new gesture on a sibling can start immediately.
func (c *Controller) End(s Sample) Outcome {
	if c.state != Dragging {
		return OutcomeNone
	}

	if c.holdsLock {
		c.lock.Release(c.id)
		c.holdsLock = false
	}
	c.active = false
	c.zRaised = false
	c.delegate.SwipeActiveChanged(false)

	// A net-rightward release always snaps back; the thresholds apply to
	// leftward travel only, so a leftward flick cannot delete a card that
	// ended up right of its slot.
	translationLeft := -s.TranslationX
	speedLeft := -s.VelocityX
	if translationLeft >= 0 &&
		(translationLeft >= config.SwipeDeleteDistance || speedLeft >= config.SwipeDeleteSpeed) {
		c.state = Deleting
		return OutcomeDelete
	}
	c.state = SnappingBack
	return OutcomeSnapBack
}

// ExitTarget is the transform at the end of the slide-out: fully past the
// leading edge, faded out.
func (c *Controller) ExitTarget() Transform {
	return Transform{OffsetX: -c.cardWidth, Scale: config.SwipeLiftScale, Alpha: 0}
}

// ExitDuration is how long the slide-out takes at the fixed exit speed.
// Cards released closer to the edge exit sooner.
func (c *Controller) ExitDuration() time.Duration {
	remaining := c.cardWidth + c.transform.OffsetX
	if remaining < 0 {
		remaining = 0
	}
	return time.Duration(remaining / config.SwipeExitSpeed * float64(time.Second))
}

// CompleteExit finishes the delete path once the slide-out animation is
// done. The deletion side effect is deferred to this point so the tab is
// only removed from the model after the card has visually left.
func (c *Controller) CompleteExit() {
	if c.state != Deleting {
		return
	}
	c.state = Idle
	c.transform = Identity()
	c.delegate.CardDeleted(c.id)
}

// CompleteSnapBack finishes the snap-back path; the card stays in the grid
// and is fully interactive again.
func (c *Controller) CompleteSnapBack() {
	if c.state != SnappingBack {
		return
	}
	c.state = Idle
	c.transform = Identity()
}
