package flick

import "sync"

// ManipulationLock is the global arbiter ensuring at most one object is
// being manipulated at a time. Pointer activity on other objects is
// swallowed while the lock is held, so concurrent multi-touch on two
// objects can never produce conflicting motion commands.
//
// The frame-driven core is single-threaded, but acquisition is guarded by
// a mutex so the at-most-one-owner invariant also holds when events arrive
// from multiple input devices on different goroutines.
//
// The zero value is an unheld lock ready for use.
type ManipulationLock struct {
	mu        sync.Mutex
	held      bool
	ownerID   ObjectID
	ownerKind ObjectKind
}

// Guard is the capability returned by a successful acquire. Release must
// be called on every terminal path of the owning gesture; it is idempotent
// so cancellation paths may release defensively.
type Guard struct {
	lock     *ManipulationLock
	released bool
}

// TryAcquire claims the lock for the given object. It fails if the lock is
// already held, in which case the caller must treat its triggering event
// as a no-op.
func (l *ManipulationLock) TryAcquire(id ObjectID, kind ObjectKind) (*Guard, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held {
		return nil, false
	}
	l.held = true
	l.ownerID = id
	l.ownerKind = kind
	return &Guard{lock: l}, true
}

// Held reports whether any object currently owns the lock.
func (l *ManipulationLock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

// Owner returns the current owner. ok is false when the lock is free.
func (l *ManipulationLock) Owner() (id ObjectID, kind ObjectKind, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ownerID, l.ownerKind, l.held
}

// Release frees the lock. Calling Release more than once on the same Guard
// has no effect beyond the first call.
func (g *Guard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true

	g.lock.mu.Lock()
	g.lock.held = false
	g.lock.ownerID = 0
	g.lock.ownerKind = 0
	g.lock.mu.Unlock()
}
