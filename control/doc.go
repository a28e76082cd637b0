// Package control implements the ref-counted thread control block shared
// between a thread's spawner and the spawned thread itself.
//
// A block is created with a reference count of 2, one share per party. Each
// party releases its share exactly once when it is done with the block; the
// release that observes zero frees the payload. Neither party may touch the
// payload after its own release. The count is only ever 2, 1, or 0.
//
// Go's sync/atomic operations are sequentially consistent, which is stronger
// than the acquire-release ordering the release path requires: the decrement
// that reaches zero synchronizes with all prior payload accesses by the other
// party.
//
// The package keeps process-wide allocation counters (see Stats) so callers
// and tests can verify that every block allocated is freed exactly once.
package control
