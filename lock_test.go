package flick

import "testing"

func TestLockExclusivity(t *testing.T) {
	var l ManipulationLock

	guardA, ok := l.TryAcquire(1, KindFile)
	if !ok {
		t.Fatal("acquire on a free lock must succeed")
	}
	if _, ok := l.TryAcquire(2, KindContent); ok {
		t.Fatal("acquire while held by another object must fail")
	}

	guardA.Release()
	guardB, ok := l.TryAcquire(2, KindContent)
	if !ok {
		t.Fatal("acquire after release must succeed")
	}
	guardB.Release()
}

func TestLockOwner(t *testing.T) {
	var l ManipulationLock

	if _, _, ok := l.Owner(); ok {
		t.Error("free lock should report no owner")
	}
	if l.Held() {
		t.Error("free lock should not be held")
	}

	guard, _ := l.TryAcquire(7, KindContent)
	id, kind, ok := l.Owner()
	if !ok || id != 7 || kind != KindContent {
		t.Errorf("Owner() = (%v, %v, %v), want (7, KindContent, true)", id, kind, ok)
	}

	guard.Release()
	if l.Held() {
		t.Error("lock should be free after release")
	}
}

func TestGuardReleaseIdempotent(t *testing.T) {
	var l ManipulationLock

	guardA, _ := l.TryAcquire(1, KindFile)
	guardA.Release()

	guardB, ok := l.TryAcquire(2, KindFile)
	if !ok {
		t.Fatal("acquire after release must succeed")
	}

	// A stale double release must not free B's ownership.
	guardA.Release()
	if !l.Held() {
		t.Error("double release of an old guard freed the lock")
	}
	guardB.Release()
}

func TestGuardNilRelease(t *testing.T) {
	var g *Guard
	g.Release() // must not panic
}
