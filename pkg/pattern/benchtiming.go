package pattern

import "github.com/dkoosis/tinytest/pkg/cputime"

// BenchTiming is the measured CPU time of one benchmark run.
type BenchTiming struct {
	Name       string
	Skipped    bool // no iterate callback was attached
	Iterations int  // total iterate calls, repeat passes included
	Overall    cputime.Usage
	PerIter    cputime.Usage
}

func (b *BenchTiming) Type() PatternType { return PatternTypeBenchTiming }
