package thread

import (
	"sync"

	"go.uber.org/zap"

	"github.com/theSherwood/threadcore/tls"
)

// Per-thread teardown hooks, keyed by thread identity. A key is present only
// while a managed thread is alive; each thread only ever touches its own list.
var (
	hooksMu sync.Mutex
	hooks   map[uint64][]func()
)

// beginExitHooks opens the calling thread's registry entry, marking it as
// managed. Only managed threads accept hook registrations. Called by the
// trampoline before the entry function runs; runExitHooks closes the entry.
func beginExitHooks(id uint64) {
	hooksMu.Lock()
	if hooks == nil {
		hooks = make(map[uint64][]func())
	}
	if _, ok := hooks[id]; !ok {
		hooks[id] = nil
	}
	hooksMu.Unlock()
}

// OnExit registers hook to run when the calling thread's execution ends,
// whether the entry function returns normally or fails. Hooks run in reverse
// registration order, exactly once, on the thread that registered them.
//
// Only threads created by this package drain their hooks: registering on any
// other thread logs a warning and drops the hook, so it can never leak into a
// later thread that reuses the same OS id. A hook that panics is a fatal
// condition for the process.
func OnExit(hook func()) {
	if hook == nil {
		return
	}
	id := tls.ThreadID()
	hooksMu.Lock()
	list, ok := hooks[id]
	if !ok {
		hooksMu.Unlock()
		Logger().Warn("exit hook registered on an unmanaged thread; dropped",
			zap.Uint64("tid", id),
		)
		return
	}
	hooks[id] = append(list, hook)
	hooksMu.Unlock()
}

// runExitHooks drains and closes the calling thread's registry entry, running
// hooks last registered first.
func runExitHooks() {
	id := tls.ThreadID()
	hooksMu.Lock()
	list := hooks[id]
	delete(hooks, id)
	hooksMu.Unlock()

	for i := len(list) - 1; i >= 0; i-- {
		list[i]()
	}
}
