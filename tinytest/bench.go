package tinytest

import (
	"reflect"

	"github.com/dkoosis/tinytest/pkg/registry"
)

// Count is how many times a benchmark's iterate callback runs: Passes passes
// over the index range [0, Iterations).
type Count struct {
	Iterations int
	Passes     int
}

// Times runs the callback n times with indexes 0 to n-1.
func Times(n int) Count {
	return Count{Iterations: n, Passes: 1}
}

// Repeat runs the callback over indexes 0 to items-1, passes times. The
// index restarts at 0 on every pass, which suits benchmarks that walk a small
// fixed table of inputs.
func Repeat(items, passes int) Count {
	return Count{Iterations: items, Passes: passes}
}

// Total returns the number of callback invocations.
func (c Count) Total() int {
	if c.Iterations <= 0 || c.Passes <= 0 {
		return 0
	}
	return c.Iterations * c.Passes
}

// benchUnit is stored type-erased; the typed callbacks are wrapped by
// BenchDecl.
type benchUnit struct {
	Name       string
	Iterations int
	Repeat     int
	StateSize  uintptr
	newState   func() any
	setup      func(any)
	cleanup    func(any)
	iterate    func(any, int)
}

func (b *benchUnit) empty() bool { return b.iterate == nil }

// BenchDecl attaches callbacks to a declared benchmark. S is the type of the
// scratch state shared by setup, iterate and cleanup; the state is zeroed
// before every run.
type BenchDecl[S any] struct {
	h registry.Handle[benchUnit]
}

// BenchIn declares a benchmark with state of type S in r. It is a function
// rather than a method because methods cannot have type parameters.
func BenchIn[S any](r *Registry, name string, n Count) *BenchDecl[S] {
	group, short := registry.SplitName(name)
	if n.Passes <= 0 {
		n.Passes = 1
	}
	h := r.benches.Add(group, benchUnit{
		Name:       short,
		Iterations: n.Iterations,
		Repeat:     n.Passes,
		StateSize:  reflect.TypeFor[S]().Size(),
		newState:   func() any { return new(S) },
	})
	return &BenchDecl[S]{h: h}
}

// Bench declares a stateless benchmark in the default registry. The state
// pointer passed to its callbacks is nil.
func Bench(name string, n Count) *BenchDecl[struct{}] {
	return BenchIn[struct{}](Default(), name, n)
}

// BenchState declares a benchmark with state of type S in the default
// registry.
func BenchState[S any](name string, n Count) *BenchDecl[S] {
	return BenchIn[S](Default(), name, n)
}

func typed[S any](state any) *S {
	s, _ := state.(*S)
	return s
}

// OnSetup sets the callback run before measurement starts.
func (b *BenchDecl[S]) OnSetup(fn func(state *S)) *BenchDecl[S] {
	b.h.Ptr().setup = func(state any) { fn(typed[S](state)) }
	return b
}

// OnCleanup sets the callback run after measurement stops.
func (b *BenchDecl[S]) OnCleanup(fn func(state *S)) *BenchDecl[S] {
	b.h.Ptr().cleanup = func(state any) { fn(typed[S](state)) }
	return b
}

// OnIter sets the measured callback. A benchmark without one is reported as
// skipped.
func (b *BenchDecl[S]) OnIter(fn func(state *S, iter int)) *BenchDecl[S] {
	b.h.Ptr().iterate = func(state any, iter int) { fn(typed[S](state), iter) }
	return b
}
