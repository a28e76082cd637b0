package threadcore

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/xyproto/env/v2"
)

// Feature switches. Read from the environment exactly once, on first use, and
// never mutated afterwards. They model build-time configuration, not runtime
// state.
type features struct {
	enabled      bool
	tlsEmulation bool
	collect      bool
	maxThreads   int
}

var (
	feat     features
	featOnce sync.Once
)

func loadFeatures() {
	feat = features{
		enabled:      boolSwitch("THREADCORE_ENABLED", true),
		tlsEmulation: boolSwitch("THREADCORE_TLS_EMULATION", true),
		collect:      boolSwitch("THREADCORE_COLLECT", false),
		maxThreads:   env.Int("THREADCORE_MAX_THREADS", 0),
	}
	if feat.collect {
		gc := runtime.GC
		collector.Store(&gc)
	}
}

func boolSwitch(name string, def bool) bool {
	if !env.Has(name) {
		return def
	}
	return env.Bool(name)
}

// Enabled reports whether thread support is switched on for this process.
// When false, thread creation refuses to run rather than failing silently.
func Enabled() bool {
	featOnce.Do(loadFeatures)
	return feat.enabled
}

// TLSEmulation reports whether spawned threads carry an embedded
// thread-local-storage emulation block in their control block.
func TLSEmulation() bool {
	featOnce.Do(loadFeatures)
	return feat.tlsEmulation
}

// MaxThreads returns the configured live-thread limit. Zero means unlimited.
func MaxThreads() int {
	featOnce.Do(loadFeatures)
	return feat.maxThreads
}

// collector is invoked after a spawned thread's entry function and teardown
// hooks have finished, before the thread releases its control block share.
// It exists to reclaim cyclic garbage rooted only in the exiting thread on
// runtimes that have such a concept. The default is a no-op; the
// THREADCORE_COLLECT switch installs runtime.GC.
var collector atomic.Pointer[func()]

// SetCollector replaces the collector pass run at thread exit.
// Pass nil to disable.
func SetCollector(fn func()) {
	featOnce.Do(loadFeatures)
	if fn == nil {
		collector.Store(nil)
		return
	}
	collector.Store(&fn)
}

// Collect runs the configured collector pass, if any.
func Collect() {
	featOnce.Do(loadFeatures)
	if fn := collector.Load(); fn != nil {
		(*fn)()
	}
}
