package thread

import (
	"sync/atomic"
	"testing"
)

// By the time Join returns, both the entry function and the teardown hooks
// have applied their effects. Repeated to guard against timing luck.
func TestJoin_SeesEntryAndHookEffects(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		var counter atomic.Int64

		th, err := Create(func(c *atomic.Int64) {
			OnExit(func() { c.Add(1) })
			c.Add(1)
		}, &counter)
		if err != nil {
			t.Fatalf("trial %d: Create: %v", trial, err)
		}

		th.Join()
		if got := counter.Load(); got != 2 {
			t.Fatalf("trial %d: counter = %d after join, want 2", trial, got)
		}
		th.Close()
	}
}

// JoinAll returns only after every thread has finished, below, at, and above
// the native multi-wait batch ceiling.
func TestJoinAll_BatchCompleteness(t *testing.T) {
	for _, k := range []int{1, maxWaitBatch, maxWaitBatch + 1} {
		finished := make([]atomic.Bool, k)
		threads := make([]*Thread[int], k)

		for i := 0; i < k; i++ {
			th, err := Create(func(idx int) {
				finished[idx].Store(true)
			}, i)
			if err != nil {
				t.Fatalf("k=%d: Create %d: %v", k, i, err)
			}
			threads[i] = th
		}

		JoinAll(threads...)

		for i := range finished {
			if !finished[i].Load() {
				t.Fatalf("k=%d: thread %d unfinished after JoinAll", k, i)
			}
		}
		for _, th := range threads {
			th.Close()
		}
	}
}

// JoinHandles accepts handles of mixed argument types.
func TestJoinHandles_Mixed(t *testing.T) {
	var a, b atomic.Bool

	t1, err := Create(func(flag *atomic.Bool) { flag.Store(true) }, &a)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer t1.Close()

	t2, err := CreateVoid(func() { b.Store(true) })
	if err != nil {
		t.Fatalf("CreateVoid: %v", err)
	}
	defer t2.Close()

	JoinHandles(t1, t2)

	if !a.Load() || !b.Load() {
		t.Fatal("JoinHandles returned before all threads finished")
	}
}
