// Package thread spawns and joins dedicated OS threads.
//
// A spawned thread is a goroutine locked to its own OS thread for life; when
// the goroutine returns, the Go runtime destroys that thread. The spawner
// receives a handle sharing a ref-counted control block with the thread, so
// the block survives whichever side finishes first and is freed exactly once.
//
// # Spawning and Joining
//
//	t, err := thread.Create(func(job Job) { job.Run() }, job)
//	if err != nil {
//	    // resource_exhausted: back off and retry, or reduce concurrency
//	}
//	defer t.Close()
//
//	t.Join() // blocks until the entry function and all exit hooks are done
//
// CreateVoid is the no-argument variant. JoinAll and JoinHandles wait on a
// batch, internally chunked to the native multi-wait ceiling.
//
// # Handle Rules
//
// Handles must not be copied; a copy would create two independent owners of
// one logical thread. Pass *Thread around. The handle's one control-block
// release fires on Close (or, as a safety net, when the handle becomes
// unreachable). Joining the same thread twice is undefined, matching native
// join semantics.
//
// Running is a heuristic snapshot, not a synchronization primitive: it reports
// whether the thread still holds its control-block share at the instant of the
// load, and can be stale immediately.
//
// # Failure Policy
//
// A panic in the entry function is never delivered to the spawner. The
// thread's exit hooks still run, its control-block share is still released,
// and then a process-fatal handler logs the panic and terminates the process.
// A panic inside an exit hook itself is not caught at all.
package thread
