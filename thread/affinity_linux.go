//go:build linux

package thread

import (
	"golang.org/x/sys/unix"

	"github.com/theSherwood/threadcore/errors"
)

// pinThread binds the thread with OS id tid to the single given CPU.
func pinThread(tid uint64, cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(int(tid), &set); err != nil {
		return errors.Wrap(errors.PhasePin, errors.KindUnsupported, err, "sched_setaffinity")
	}
	return nil
}
