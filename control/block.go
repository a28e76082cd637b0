package control

import (
	"sync/atomic"

	"github.com/theSherwood/threadcore/tls"
)

// Block is the control record shared by the spawning side and the spawned
// thread. It holds the entry function, its captured argument, and the thread's
// TLS emulation block when emulation is enabled.
//
// Exactly two shares exist, created up front. Whoever releases last frees the
// payload.
type Block[A any] struct {
	refs   atomic.Int32
	entry  func(A)
	arg    A
	locals *tls.Block
}

// New allocates a block with both shares outstanding. locals may be nil when
// TLS emulation is off.
func New[A any](entry func(A), arg A, locals *tls.Block) *Block[A] {
	b := &Block[A]{
		entry:  entry,
		arg:    arg,
		locals: locals,
	}
	b.refs.Store(2)
	live.Add(1)
	allocated.Add(1)
	return b
}

// Release drops the caller's share. The caller must not touch the payload
// afterwards. The release that brings the count to zero frees the block.
// Releasing more than two shares is a programmer error.
func (b *Block[A]) Release() {
	switch n := b.refs.Add(-1); {
	case n == 0:
		b.free()
	case n < 0:
		panic("control: block released after free")
	}
}

// Discard drops both shares at once. Only valid when the spawned side was
// never started, i.e. after a failed creation.
func (b *Block[A]) Discard() {
	b.Release()
	b.Release()
}

func (b *Block[A]) free() {
	var zero A
	b.entry = nil
	b.arg = zero
	b.locals = nil
	live.Add(-1)
	freed.Add(1)
}

// Run invokes the stored entry function with the stored argument.
// Spawned-thread side only.
func (b *Block[A]) Run() {
	b.entry(b.arg)
}

// ClearArg destroys the stored argument and entry function once the spawned
// thread has consumed them. The spawning side must never read the argument
// after creation.
func (b *Block[A]) ClearArg() {
	var zero A
	b.arg = zero
	b.entry = nil
}

// Locals returns the embedded TLS emulation block, or nil.
func (b *Block[A]) Locals() *tls.Block {
	return b.locals
}

// Shared reports whether both parties still hold their shares. This is a racy
// snapshot: it can be stale the instant it returns.
func (b *Block[A]) Shared() bool {
	return b.refs.Load() == 2
}

// Refs returns the current reference count. Snapshot, for diagnostics.
func (b *Block[A]) Refs() int32 {
	return b.refs.Load()
}

// Process-wide allocation accounting.
var (
	live      atomic.Int64
	allocated atomic.Int64
	freed     atomic.Int64
)

// Counters is a snapshot of block accounting.
type Counters struct {
	Live      int64
	Allocated int64
	Freed     int64
}

// Stats returns the current allocation counters.
func Stats() Counters {
	return Counters{
		Live:      live.Load(),
		Allocated: allocated.Load(),
		Freed:     freed.Load(),
	}
}
