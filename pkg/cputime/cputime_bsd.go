//go:build unix && !linux

package cputime

import "golang.org/x/sys/unix"

func pin() func() { return nil }

func now() Usage {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}
	}
	return fromRusage(&ru)
}
