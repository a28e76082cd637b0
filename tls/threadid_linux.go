//go:build linux

package tls

import "golang.org/x/sys/unix"

// ThreadID returns the OS identity of the calling thread.
// Only stable while the calling goroutine is locked to its thread.
func ThreadID() uint64 {
	return uint64(unix.Gettid())
}
