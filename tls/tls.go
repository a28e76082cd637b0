package tls

import (
	"sync"
	"sync/atomic"
)

// Block is one thread's emulation record. It is owned by the thread's control
// block for the control block's lifetime and must only be accessed by the
// thread it is installed on.
type Block struct {
	slots []any
}

// NewBlock creates an empty emulation block, ready to install.
func NewBlock() *Block {
	return &Block{}
}

func (b *Block) get(i int) (any, bool) {
	if i >= len(b.slots) {
		return nil, false
	}
	v := b.slots[i]
	if v == nil {
		return nil, false
	}
	return v, true
}

func (b *Block) set(i int, v any) {
	if i >= len(b.slots) {
		grown := make([]any, i+1)
		copy(grown, b.slots)
		b.slots = grown
	}
	b.slots[i] = v
}

// Slot is a process-wide storage index. Allocate once, use from any thread.
type Slot int

var nextSlot atomic.Int64

// AllocSlot reserves a new storage slot. Slots are never reclaimed.
func AllocSlot() Slot {
	return Slot(nextSlot.Add(1) - 1)
}

// Get reads the slot on the calling thread.
// Returns ok == false when the thread has no installed block or the slot is
// unset.
func (s Slot) Get() (any, bool) {
	b := current()
	if b == nil {
		return nil, false
	}
	return b.get(int(s))
}

// Set writes the slot on the calling thread.
// A write on a thread with no installed block is dropped.
func (s Slot) Set(v any) {
	b := current()
	if b == nil {
		return
	}
	b.set(int(s), v)
}

// Installed blocks, keyed by OS thread identity. Each thread only ever touches
// its own entry, so a plain RWMutex map suffices; contention is limited to
// install/uninstall at thread start and end.
var (
	mu        sync.RWMutex
	installed map[uint64]*Block
)

// Install binds b to the calling thread. Called by the thread trampoline
// before the entry function runs.
func Install(b *Block) {
	id := ThreadID()
	mu.Lock()
	if installed == nil {
		installed = make(map[uint64]*Block)
	}
	installed[id] = b
	mu.Unlock()
}

// Uninstall removes the calling thread's block binding. The block itself is
// owned by the control block and survives until that is freed.
func Uninstall() {
	id := ThreadID()
	mu.Lock()
	delete(installed, id)
	mu.Unlock()
}

func current() *Block {
	id := ThreadID()
	mu.RLock()
	b := installed[id]
	mu.RUnlock()
	return b
}
