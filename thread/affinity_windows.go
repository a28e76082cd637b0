//go:build windows

package thread

import (
	"golang.org/x/sys/windows"

	"github.com/theSherwood/threadcore/errors"
)

const (
	threadSetInformation   = 0x0020
	threadQueryInformation = 0x0040
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// pinThread binds the thread with OS id tid to the single given CPU.
func pinThread(tid uint64, cpu int) error {
	h, err := windows.OpenThread(threadSetInformation|threadQueryInformation, false, uint32(tid))
	if err != nil {
		return errors.Wrap(errors.PhasePin, errors.KindUnsupported, err, "OpenThread")
	}
	defer windows.CloseHandle(h)

	mask := uintptr(1) << uint(cpu)
	if r, _, callErr := procSetThreadAffinityMask.Call(uintptr(h), mask); r == 0 {
		return errors.Wrap(errors.PhasePin, errors.KindUnsupported, callErr, "SetThreadAffinityMask")
	}
	return nil
}
