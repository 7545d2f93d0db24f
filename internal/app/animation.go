package app

import (
	"time"

	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/Gaurav-Gosain/tabgrid/internal/swipe"
	"github.com/Gaurav-Gosain/tabgrid/internal/ui"
)

// AnimationKind identifies what a card animation is driving toward.
type AnimationKind int

const (
	// AnimDrag eases the display transform toward the live drag target.
	AnimDrag AnimationKind = iota
	// AnimSnapBack returns a released card to its slot.
	AnimSnapBack
	// AnimExit slides a deleted card off the leading edge.
	AnimExit
)

// CardAnimation interpolates a card's display transform between two
// gesture transforms.
type CardAnimation struct {
	ui.Animation
	From swipe.Transform
	To   swipe.Transform
	Kind AnimationKind
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpTransform(from, to swipe.Transform, t float64) swipe.Transform {
	return swipe.Transform{
		OffsetX: lerp(from.OffsetX, to.OffsetX, t),
		Scale:   lerp(from.Scale, to.Scale, t),
		Alpha:   lerp(from.Alpha, to.Alpha, t),
	}
}

// animateCard replaces any in-flight animation on the card with a new one
// from the current display transform. Successive drag updates re-target
// mid-flight rather than queueing.
func (d *Deck) animateCard(c *Card, to swipe.Transform, dur time.Duration, kind AnimationKind) {
	if dur <= 0 {
		c.Display = to
		c.Anim = nil
		d.finishCardAnimation(c, kind)
		return
	}
	c.Anim = &CardAnimation{
		Animation: ui.Animation{StartTime: time.Now(), Duration: dur},
		From:      c.Display,
		To:        to,
		Kind:      kind,
	}
}

// StartDragAnimation eases the display toward the controller's latest drag
// target.
func (d *Deck) StartDragAnimation(c *Card) {
	d.animateCard(c, c.Gesture.Transform(), config.GetAnimationDuration(), AnimDrag)
}

// StartSnapBackAnimation returns the card to its resting transform.
func (d *Deck) StartSnapBackAnimation(c *Card) {
	d.animateCard(c, swipe.Identity(), config.GetAnimationDuration(), AnimSnapBack)
}

// StartExitAnimation slides the card off the leading edge. The duration
// comes from the controller: fixed exit speed over the remaining distance.
func (d *Deck) StartExitAnimation(c *Card) {
	dur := c.Gesture.ExitDuration()
	if !config.AnimationsEnabled {
		dur = 0
	}
	d.animateCard(c, c.Gesture.ExitTarget(), dur, AnimExit)
}

// finishCardAnimation lands the terminal transitions. The exit completion
// reports the deletion, which mutates the tab collection and rebuilds the
// card grid.
func (d *Deck) finishCardAnimation(c *Card, kind AnimationKind) {
	switch kind {
	case AnimExit:
		c.Gesture.CompleteExit()
	case AnimSnapBack:
		c.Gesture.CompleteSnapBack()
		c.Display = swipe.Identity()
	}
}

// UpdateAnimations advances every card animation one frame and reports
// whether any are still running. Completion callbacks can rebuild d.Cards,
// so iteration runs over a snapshot.
func (d *Deck) UpdateAnimations(now time.Time) bool {
	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)

	active := false
	for _, c := range cards {
		if c.Anim == nil {
			continue
		}
		if c.Anim.Update(now) {
			c.Display = lerpTransform(c.Anim.From, c.Anim.To, c.Anim.Eased())
			active = true
			continue
		}
		c.Display = c.Anim.To
		kind := c.Anim.Kind
		c.Anim = nil
		d.finishCardAnimation(c, kind)
	}
	return active
}

// HasActiveAnimations reports whether any card animation is in flight.
func (d *Deck) HasActiveAnimations() bool {
	for _, c := range d.Cards {
		if c.Anim != nil {
			return true
		}
	}
	return false
}
