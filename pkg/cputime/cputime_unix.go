//go:build unix

package cputime

import (
	"time"

	"golang.org/x/sys/unix"
)

func fromRusage(ru *unix.Rusage) Usage {
	return Usage{
		User:   time.Duration(ru.Utime.Nano()),
		System: time.Duration(ru.Stime.Nano()),
	}
}
