// tinytest-demo runs a handful of sample tests and benchmarks through the
// harness.
//
// Usage:
//
//	tinytest-demo            # run everything, replaying captured output
//	tinytest-demo -s         # hide captured stdout and failure messages
//	tinytest-demo -s -S -B   # quiet run, tests only
//	tinytest-demo -lrun.log  # send unit output to run.log
package main

import (
	"fmt"
	"strconv"

	"github.com/dkoosis/tinytest/tinytest"
)

var parseInputs = [8]string{
	"0", "10", "-1234214", "5452345", "123412", "3124", "0543092", "-13",
}

func init() {
	tinytest.Test("always_passes", func(t *tinytest.T) tinytest.Outcome {
		return t.Pass()
	})
	tinytest.Test("print_if_not_silent", func(t *tinytest.T) tinytest.Outcome {
		t.Log("I can make test output gross! But only if -s is NOT used!")
		return t.Pass()
	})
	tinytest.Test("always_fails", func(t *tinytest.T) tinytest.Outcome {
		return t.Pass()
	})
	tinytest.Test("always_fails2", func(t *tinytest.T) tinytest.Outcome {
		return t.Pass()
	})

	// Names may be plain numbers; units run in the order they are declared.
	tinytest.Test("math/1", func(t *tinytest.T) tinytest.Outcome {
		if 5 < 4 {
			return t.Fail()
		}
		return t.Pass()
	})
	tinytest.Test("math/2", func(t *tinytest.T) tinytest.Outcome {
		if 3 > 4 {
			return t.Failf("happened after %s", "math/1")
		}
		return t.Pass()
	})
}

func init() {
	tinytest.Bench("printf", tinytest.Times(10000)).
		OnIter(func(_ *struct{}, iter int) {
			fmt.Printf("iter: %d\n", iter)
		})

	// iter only walks the eight inputs; the pass count keeps the run long.
	tinytest.Bench("parse", tinytest.Repeat(len(parseInputs), 100000)).
		OnIter(func(_ *struct{}, iter int) {
			_, _ = strconv.ParseInt(parseInputs[iter], 0, 64)
		})

	tinytest.BenchState[int]("state", tinytest.Times(10000)).
		OnSetup(func(state *int) {
			*state = 13004
		}).
		OnIter(func(state *int, _ int) {
			fmt.Printf("state: %d\n", *state)
		})
}

func main() {
	tinytest.Main()
}
