// Package threadcore provides a thin, cross-platform abstraction over dedicated
// OS thread creation, joining, and shutdown.
//
// Each spawned thread is backed by a goroutine locked to its own OS thread for
// the thread's entire lifetime. The spawning side and the spawned side share a
// ref-counted control block that outlives whichever party finishes first and is
// freed exactly once, by the last release.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	threadcore/          Root package with process-wide feature switches
//	├── thread/          Spawn/join API, thread handles, exit-hook registry
//	├── control/         Ref-counted thread control blocks
//	├── tls/             Thread-local storage emulation
//	├── errors/          Structured error types
//	└── cmd/threadmon/   Demo binary: spawn workloads, watch thread state
//
// # Quick Start
//
// Spawn a thread with an argument and wait for it:
//
//	t, err := thread.Create(func(n int) {
//	    fmt.Println("working on", n)
//	}, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	t.Join()
//
// # Feature Switches
//
// Process-wide switches are read once from the environment during
// initialization and are immutable afterwards:
//
//	THREADCORE_ENABLED        thread support on/off (default on)
//	THREADCORE_TLS_EMULATION  embed a TLS emulation block per thread (default on)
//	THREADCORE_COLLECT        run a collector pass at thread exit (default off)
//	THREADCORE_MAX_THREADS    live-thread limit, 0 = unlimited (default 0)
//
// # Error Model
//
// Thread creation fails with a recoverable resource_exhausted error when the
// spawn limit is hit. A panic inside a spawned thread's entry function is NOT
// propagated to the spawning side: the thread's teardown hooks still run, then
// a process-fatal handler terminates the whole process. Cross-thread error
// propagation is deliberately out of scope.
package threadcore
