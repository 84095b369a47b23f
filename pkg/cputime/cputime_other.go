//go:build !unix

package cputime

import "time"

var epoch = time.Now()

func pin() func() { return nil }

// now reports wall time as user time on platforms without getrusage.
func now() Usage {
	return Usage{User: time.Since(epoch)}
}
