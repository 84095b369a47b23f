package tinytest

import (
	"sync"

	"github.com/dkoosis/tinytest/pkg/registry"
)

// Registry owns the test and benchmark tables of one run. Declarations add
// to it until it is run; running seals it and frees it.
type Registry struct {
	tests   registry.Table[testUnit]
	benches registry.Table[benchUnit]
}

// NewRegistry returns an empty registry. Most programs use Default instead.
func NewRegistry() *Registry {
	return &Registry{}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry that the package-level
// declaration functions add to.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Tests returns the number of tests declared so far.
func (r *Registry) Tests() int { return r.tests.Len() }

// Benchmarks returns the number of benchmarks declared so far.
func (r *Registry) Benchmarks() int { return r.benches.Len() }
