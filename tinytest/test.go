package tinytest

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/dkoosis/tinytest/pkg/registry"
)

// Outcome is the result of one test body.
type Outcome struct {
	Passed     bool
	Line       int    // source line of the failure
	Message    string // failure message; see HasMessage
	HasMessage bool
}

type testUnit struct {
	Name string
	Body func(*T) Outcome
}

// T is handed to a test body. Its methods build the body's Outcome and give
// access to the real output streams.
type T struct {
	name     string
	out, err io.Writer
}

// Name returns the test's name without its group.
func (t *T) Name() string { return t.name }

// Pass returns a passing outcome.
func (t *T) Pass() Outcome {
	return Outcome{Passed: true}
}

// Fail returns a failing outcome recording the caller's line.
func (t *T) Fail() Outcome {
	return Outcome{Line: callerLine(2)}
}

// Failf returns a failing outcome with a formatted message. In silent mode
// only the line is reported.
func (t *T) Failf(format string, args ...any) Outcome {
	return Outcome{
		Line:       callerLine(2),
		Message:    fmt.Sprintf(format, args...),
		HasMessage: true,
	}
}

// Log prints a diagnostic line tagged with the test name and the caller's
// line. It goes to standard output, so it is captured like any other unit
// output.
func (t *T) Log(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "%s [line %d]: %s\n", t.name, callerLine(2), fmt.Sprintf(format, args...))
}

// Printf writes to the harness's real standard output, bypassing capture.
func (t *T) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// Eprintf writes to the harness's real standard error, bypassing capture.
func (t *T) Eprintf(format string, args ...any) {
	fmt.Fprintf(t.err, format, args...)
}

func callerLine(skip int) int {
	_, _, line, ok := runtime.Caller(skip)
	if !ok {
		return 0
	}
	return line
}

// Test declares a test in r. name is "group/name" or a bare name for the
// unnamed group.
func (r *Registry) Test(name string, body func(t *T) Outcome) {
	group, short := registry.SplitName(name)
	r.tests.Add(group, testUnit{Name: short, Body: body})
}

// Test declares a test in the default registry.
func Test(name string, body func(t *T) Outcome) {
	Default().Test(name, body)
}
