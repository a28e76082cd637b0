package control

import (
	"sync"
	"testing"

	"github.com/theSherwood/threadcore/tls"
)

func TestBlock_TwoReleasesFreeOnce(t *testing.T) {
	before := Stats()

	b := New(func(int) {}, 7, nil)
	if got := Stats().Live - before.Live; got != 1 {
		t.Fatalf("live delta after New = %d, want 1", got)
	}
	if b.Refs() != 2 {
		t.Fatalf("fresh block refs = %d, want 2", b.Refs())
	}

	b.Release()
	if b.Refs() != 1 {
		t.Fatalf("refs after one release = %d, want 1", b.Refs())
	}
	if got := Stats().Live - before.Live; got != 1 {
		t.Fatal("block freed before last release")
	}

	b.Release()
	if got := Stats().Live - before.Live; got != 0 {
		t.Fatalf("live delta after both releases = %d, want 0", got)
	}
	if got := Stats().Freed - before.Freed; got != 1 {
		t.Fatalf("freed delta = %d, want 1", got)
	}
}

func TestBlock_OverReleasePanics(t *testing.T) {
	b := New(func(int) {}, 0, nil)
	b.Release()
	b.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on third release")
		}
	}()
	b.Release()
}

func TestBlock_Discard(t *testing.T) {
	before := Stats()
	b := New(func(string) {}, "never started", nil)
	b.Discard()
	if got := Stats().Live - before.Live; got != 0 {
		t.Fatalf("live delta after discard = %d, want 0", got)
	}
}

func TestBlock_ConcurrentRelease(t *testing.T) {
	// The two parties release in unspecified order; every block must still be
	// freed exactly once.
	const n = 1000
	before := Stats()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		b := New(func(int) {}, i, nil)
		wg.Add(2)
		go func() { defer wg.Done(); b.Release() }()
		go func() { defer wg.Done(); b.Release() }()
	}
	wg.Wait()

	if got := Stats().Live - before.Live; got != 0 {
		t.Fatalf("live delta = %d, want 0", got)
	}
	if got := Stats().Freed - before.Freed; got != n {
		t.Fatalf("freed delta = %d, want %d", got, n)
	}
}

func TestBlock_SharedSnapshot(t *testing.T) {
	b := New(func(int) {}, 0, tls.NewBlock())
	if !b.Shared() {
		t.Fatal("fresh block not shared")
	}
	if b.Locals() == nil {
		t.Fatal("locals lost")
	}
	b.Release()
	if b.Shared() {
		t.Fatal("shared after a release")
	}
	b.Release()
}

func TestBlock_RunAndClearArg(t *testing.T) {
	got := 0
	b := New(func(n int) { got = n }, 41, nil)
	b.Run()
	if got != 41 {
		t.Fatalf("entry saw arg %d, want 41", got)
	}
	b.ClearArg()
	b.Release()
	b.Release()
}
