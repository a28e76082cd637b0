// Package tls implements thread-local storage emulation for spawned threads.
//
// Go has no user-visible native TLS, so per-thread storage is emulated with a
// process-wide map keyed by the calling thread's OS identity. A spawned thread
// stays locked to one OS thread for its whole life, which makes the OS thread
// id a stable key.
//
// Storage is slot-based. A package (or test) allocates a slot once, then reads
// and writes that slot from any spawned thread:
//
//	var counterSlot = tls.AllocSlot()
//
//	// inside a spawned thread's entry function
//	counterSlot.Set(42)
//	v, ok := counterSlot.Get()
//
// The emulation block for a thread is created by the spawner, installed by the
// thread before its entry function runs, and uninstalled when the thread ends.
// Slots read on a thread with no installed block return ok == false.
package tls
