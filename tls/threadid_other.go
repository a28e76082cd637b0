//go:build !linux && !windows

package tls

import (
	"bytes"
	"runtime"
	"strconv"
)

// ThreadID returns a stable identity for the calling thread on platforms
// without a wrapped gettid equivalent. The goroutine id stands in for the OS
// thread id: spawned threads lock their goroutine to one OS thread for life,
// so the two are interchangeable as map keys.
func ThreadID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// First line is "goroutine N [state]:".
	s := buf[len("goroutine "):n]
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	id, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
