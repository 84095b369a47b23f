//go:build linux

package cputime

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pin locks the goroutine to its thread so RUSAGE_THREAD covers only the
// measured code and not the capture drains or the garbage collector's
// background workers.
func pin() func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

func now() Usage {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_THREAD, &ru); err != nil {
		return Usage{}
	}
	return fromRusage(&ru)
}
