package swipe

import "time"

// Lock is the deck-wide mutual exclusion cell for card drags. At most one
// card may hold it at a time, so at most one card is ever mid-swipe. It is
// injected into every controller at construction rather than living as
// hidden package state, which keeps ownership explicit and testable.
//
// All access happens on the single UI event goroutine; there is no internal
// synchronization.
type Lock struct {
	owner   string
	since   time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewLock returns an unheld lock with no reclaim timeout.
func NewLock() *Lock {
	return &Lock{now: time.Now}
}

// NewLockWithTimeout returns an unheld lock that allows a stale holder to be
// reclaimed after d. A zero d disables reclaiming.
func NewLockWithTimeout(d time.Duration) *Lock {
	return &Lock{timeout: d, now: time.Now}
}

// TryAcquire attempts to take the lock for the given card. It succeeds when
// the lock is free, when the same card already holds it, or when the current
// holder has exceeded the reclaim timeout (a dropped animation callback
// would otherwise wedge swiping forever).
func (l *Lock) TryAcquire(id string) bool {
	if l.owner != "" && l.owner != id {
		if l.timeout <= 0 || l.now().Sub(l.since) < l.timeout {
			return false
		}
	}
	l.owner = id
	l.since = l.now()
	return true
}

// Release frees the lock, but only for the card that holds it. A card whose
// gesture was rejected never acquired the lock and must not be able to free
// it out from under the real holder.
func (l *Lock) Release(id string) {
	if l.owner == id {
		l.owner = ""
	}
}

// Held reports whether any card currently holds the lock.
func (l *Lock) Held() bool {
	return l.owner != ""
}

// Holder returns the id of the current holder, or empty.
func (l *Lock) Holder() string {
	return l.owner
}
