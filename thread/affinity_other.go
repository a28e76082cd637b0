//go:build !linux && !windows

package thread

// pinThread is a best-effort no-op on platforms without a wrapped
// CPU-affinity call. The thread stays schedulable everywhere.
func pinThread(tid uint64, cpu int) error {
	debugf("pin to cpu %d ignored on this platform (tid %d)", cpu, tid)
	return nil
}
