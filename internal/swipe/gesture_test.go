package swipe

import (
	"testing"
	"time"
)

// recordingDelegate captures delegate callbacks for assertions.
type recordingDelegate struct {
	deleted      []string
	activeStates []bool
	copied       []string
}

func (d *recordingDelegate) CardDeleted(id string)          { d.deleted = append(d.deleted, id) }
func (d *recordingDelegate) SwipeActiveChanged(active bool) { d.activeStates = append(d.activeStates, active) }
func (d *recordingDelegate) CanCopyURL(string) bool         { return true }
func (d *recordingDelegate) CopyURL(id string)              { d.copied = append(d.copied, id) }

func leftBegin() Sample {
	return Sample{VelocityX: -50, Phase: Began}
}

func TestBeginGrantsLockAndRaisesCard(t *testing.T) {
	lock := NewLock()
	del := &recordingDelegate{}
	c := NewController("card-a", lock, del)

	if !c.Begin(leftBegin()) {
		t.Fatal("gesture should be granted on an unheld lock")
	}
	if c.State() != Dragging {
		t.Errorf("state = %v, want Dragging", c.State())
	}
	if !c.Active() || !c.ZRaised() {
		t.Error("granted gesture must set active and z-raised")
	}
	if !lock.Held() || lock.Holder() != "card-a" {
		t.Error("lock should be held by the granted card")
	}
	if len(del.activeStates) != 1 || !del.activeStates[0] {
		t.Errorf("delegate should be told a swipe is active, got %v", del.activeStates)
	}
}

func TestBeginRejectsVerticalGesture(t *testing.T) {
	lock := NewLock()
	c := NewController("card-a", lock, &recordingDelegate{})

	granted := c.Begin(Sample{VelocityX: 10, VelocityY: -40, Phase: Began})
	if granted {
		t.Fatal("vertical gesture must be rejected")
	}
	if c.State() != Idle {
		t.Errorf("state = %v, want Idle after rejection", c.State())
	}
	if lock.Held() {
		t.Error("rejected gesture must not acquire the lock")
	}
	if !c.Transform().IsIdentity() {
		t.Error("rejected gesture must not change the transform")
	}
}

// TestMutualExclusion verifies that overlapping gesture begins across
// sibling cards leave at most one card dragging at any instant.
func TestMutualExclusion(t *testing.T) {
	lock := NewLock()
	del := &recordingDelegate{}
	a := NewController("card-a", lock, del)
	b := NewController("card-b", lock, del)
	c := NewController("card-c", lock, del)

	if !a.Begin(leftBegin()) {
		t.Fatal("first gesture should be granted")
	}
	if b.Begin(leftBegin()) || c.Begin(leftBegin()) {
		t.Fatal("sibling gestures must be rejected while a drag is active")
	}

	dragging := 0
	for _, ctrl := range []*Controller{a, b, c} {
		if ctrl.State() == Dragging {
			dragging++
		}
	}
	if dragging != 1 {
		t.Fatalf("dragging cards = %d, want exactly 1", dragging)
	}

	// After the first card releases, a sibling may start.
	a.End(Sample{TranslationX: -10, Phase: Ended})
	if !b.Begin(leftBegin()) {
		t.Fatal("gesture should be granted once the lock is free")
	}
}

// TestDirectionalDampening checks rightward drags move at a fifth of the
// pointer distance while leftward drags track 1:1.
func TestDirectionalDampening(t *testing.T) {
	tests := []struct {
		name       string
		tx         float64
		wantOffset float64
	}{
		{"leftward tracks pointer exactly", -80, -80},
		{"small leftward", -1, -1},
		{"rightward dampened by factor 5", 100, 20},
		{"small rightward", 5, 1},
		{"zero stays put", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController("card-a", NewLock(), &recordingDelegate{})
			if !c.Begin(leftBegin()) {
				t.Fatal("gesture should be granted")
			}
			got := c.Update(Sample{TranslationX: tt.tx, Phase: Changed})
			if got.OffsetX != tt.wantOffset {
				t.Errorf("offset = %g, want %g", got.OffsetX, tt.wantOffset)
			}
			if got.Scale != 1.05 {
				t.Errorf("scale = %g, want lifted 1.05", got.Scale)
			}
		})
	}
}

// TestDeleteThreshold pins the OR semantics of the release decision:
// far enough or fast enough leftward deletes, anything else snaps back.
func TestDeleteThreshold(t *testing.T) {
	tests := []struct {
		name     string
		tx       float64 // cumulative translation at release
		vx       float64 // velocity at release
		want     Outcome
	}{
		{"far and slow", -200, 0, OutcomeDelete},
		{"exactly at distance threshold", -125, 0, OutcomeDelete},
		{"short but fast", 0, -1500, OutcomeDelete},
		{"exactly at speed threshold", 0, -1000, OutcomeDelete},
		{"short and slow", -50, -200, OutcomeSnapBack},
		{"just under both thresholds", -124.9, -999.9, OutcomeSnapBack},
		{"rightward far", 200, 0, OutcomeSnapBack},
		{"rightward fast", 10, 3000, OutcomeSnapBack},
		{"rightward with high magnitude speed", 400, 5000, OutcomeSnapBack},
		{"rightward release with leftward flick", 50, -2000, OutcomeSnapBack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController("card-a", NewLock(), &recordingDelegate{})
			if !c.Begin(leftBegin()) {
				t.Fatal("gesture should be granted")
			}
			c.Update(Sample{TranslationX: tt.tx, Phase: Changed})
			got := c.End(Sample{TranslationX: tt.tx, VelocityX: tt.vx, Phase: Ended})
			if got != tt.want {
				t.Errorf("End(tx=%g, vx=%g) = %v, want %v", tt.tx, tt.vx, got, tt.want)
			}
		})
	}
}

func TestCancelledDecidedLikeEnded(t *testing.T) {
	c := NewController("card-a", NewLock(), &recordingDelegate{})
	if !c.Begin(leftBegin()) {
		t.Fatal("gesture should be granted")
	}
	got := c.End(Sample{TranslationX: -200, Phase: Cancelled})
	if got != OutcomeDelete {
		t.Errorf("cancelled far-left drag = %v, want OutcomeDelete", got)
	}
}

func TestEndReleasesLockBeforeExitAnimation(t *testing.T) {
	lock := NewLock()
	del := &recordingDelegate{}
	c := NewController("card-a", lock, del)
	c.SetCardWidth(300)

	c.Begin(leftBegin())
	c.Update(Sample{TranslationX: -150, Phase: Changed})
	if c.End(Sample{TranslationX: -150, Phase: Ended}) != OutcomeDelete {
		t.Fatal("expected delete outcome")
	}

	// Lock, active flag, and z-order are restored at the decision branch,
	// not when the slide-out finishes.
	if lock.Held() {
		t.Error("lock must be released at the decision branch")
	}
	if c.Active() || c.ZRaised() {
		t.Error("active/z-raised must clear at the decision branch")
	}
	if len(del.deleted) != 0 {
		t.Error("deletion must not be reported before the exit animation completes")
	}

	c.CompleteExit()
	if len(del.deleted) != 1 || del.deleted[0] != "card-a" {
		t.Errorf("deleted = %v, want [card-a]", del.deleted)
	}
	if c.State() != Idle || !c.Transform().IsIdentity() {
		t.Error("controller must reset to idle identity after exit")
	}
}

func TestSnapBackResetsToIdentity(t *testing.T) {
	del := &recordingDelegate{}
	c := NewController("card-a", NewLock(), del)

	c.Begin(leftBegin())
	c.Update(Sample{TranslationX: -50, Phase: Changed})
	if c.End(Sample{TranslationX: -50, Phase: Ended}) != OutcomeSnapBack {
		t.Fatal("expected snap-back outcome")
	}
	c.CompleteSnapBack()

	if c.State() != Idle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	if !c.Transform().IsIdentity() {
		t.Errorf("transform = %+v, want identity", c.Transform())
	}
	if len(del.deleted) != 0 {
		t.Error("snap-back must never report a deletion")
	}
	// Active notifications: one true at begin, one false at end.
	want := []bool{true, false}
	if len(del.activeStates) != 2 || del.activeStates[0] != want[0] || del.activeStates[1] != want[1] {
		t.Errorf("activeStates = %v, want %v", del.activeStates, want)
	}
}

// TestRejectedCardNeverReleasesLock covers lock ownership: a card whose
// begin was rejected must not free the lock held by a sibling.
func TestRejectedCardNeverReleasesLock(t *testing.T) {
	lock := NewLock()
	del := &recordingDelegate{}
	a := NewController("card-a", lock, del)
	b := NewController("card-b", lock, del)

	a.Begin(leftBegin())
	if b.Begin(leftBegin()) {
		t.Fatal("second gesture must be rejected")
	}

	// The rejected card ends its (never-started) gesture; the holder's
	// lock must survive.
	b.End(Sample{TranslationX: -500, VelocityX: -5000, Phase: Ended})
	if !lock.Held() || lock.Holder() != "card-a" {
		t.Fatalf("lock holder = %q, want card-a", lock.Holder())
	}
	if len(del.deleted) != 0 {
		t.Error("rejected gesture must not produce a deletion")
	}
}

func TestExitDurationProportionalToRemainingDistance(t *testing.T) {
	near := NewController("near", NewLock(), &recordingDelegate{})
	near.SetCardWidth(300)
	near.Begin(leftBegin())
	near.Update(Sample{TranslationX: -250, Phase: Changed})
	near.End(Sample{TranslationX: -250, Phase: Ended})

	far := NewController("far", NewLock(), &recordingDelegate{})
	far.SetCardWidth(300)
	far.Begin(leftBegin())
	far.Update(Sample{TranslationX: -130, Phase: Changed})
	far.End(Sample{TranslationX: -130, Phase: Ended})

	if near.ExitDuration() >= far.ExitDuration() {
		t.Errorf("near card exit %v should be shorter than far card exit %v",
			near.ExitDuration(), far.ExitDuration())
	}

	// 300 wide, 250 already travelled: 50 units at 5000 units/s = 10ms.
	if got, want := near.ExitDuration(), 10*time.Millisecond; got != want {
		t.Errorf("ExitDuration = %v, want %v", got, want)
	}

	target := near.ExitTarget()
	if target.OffsetX != -300 || target.Alpha != 0 {
		t.Errorf("ExitTarget = %+v, want fully off-edge and faded", target)
	}
}

func TestLockTimeoutReclaim(t *testing.T) {
	lock := NewLockWithTimeout(5 * time.Second)
	current := time.Unix(1000, 0)
	lock.now = func() time.Time { return current }

	if !lock.TryAcquire("card-a") {
		t.Fatal("fresh lock should be acquirable")
	}
	if lock.TryAcquire("card-b") {
		t.Fatal("held lock must not be acquirable before the timeout")
	}

	current = current.Add(6 * time.Second)
	if !lock.TryAcquire("card-b") {
		t.Fatal("stale lock should be reclaimable after the timeout")
	}

	// The original holder may no longer release it.
	lock.Release("card-a")
	if !lock.Held() || lock.Holder() != "card-b" {
		t.Errorf("holder = %q, want card-b", lock.Holder())
	}
}
