package tinytest

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/dkoosis/tinytest/pkg/capture"
	"github.com/dkoosis/tinytest/pkg/cputime"
	"github.com/dkoosis/tinytest/pkg/pattern"
	"github.com/dkoosis/tinytest/pkg/registry"
	"github.com/dkoosis/tinytest/pkg/render"
)

// Options controls what a Runner reports.
type Options struct {
	// Silent drops captured stdout and failure messages.
	Silent bool
	// SilentErrors also drops captured stderr. It implies Silent.
	SilentErrors bool
	// NoBench skips the benchmark phase.
	NoBench bool
	Theme   render.Theme
	Padding int
	Logger  *zap.Logger
}

// Result counts the tests of one run.
type Result struct {
	Ran        int
	Passed     int
	Benchmarks int // benchmarks measured, skipped ones excluded
}

// OK reports whether every test that ran passed. A run with no tests is OK.
func (r Result) OK() bool { return r.Passed == r.Ran }

// Runner executes the units of a Registry one at a time, bracketing each
// with the capture sink, and writes the report to the sink's real streams.
type Runner struct {
	sink capture.Sink
	term *render.Terminal
	log  *zap.Logger
	opts Options
	out  io.Writer
	err  io.Writer
}

// NewRunner returns a runner that captures through sink. The caller owns the
// sink and must close it.
func NewRunner(sink capture.Sink, opts Options) *Runner {
	if opts.SilentErrors {
		opts.Silent = true
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Runner{
		sink: sink,
		term: render.NewTerminal(opts.Theme, opts.Padding),
		log:  opts.Logger,
		opts: opts,
		out:  sink.Stdout(),
		err:  sink.Stderr(),
	}
}

// Run executes every test and then every benchmark in reg. The registry is
// sealed for the duration and its tables are freed once consumed, so a
// registry can be run only once.
func (r *Runner) Run(reg *Registry) (Result, error) {
	var res Result
	ran, passed, err := r.runTests(&reg.tests)
	res.Ran, res.Passed = ran, passed
	if err != nil {
		return res, err
	}
	if r.opts.NoBench {
		r.log.Debug("benchmarks disabled", zap.Int("declared", reg.benches.Len()))
		reg.benches.Seal()
		reg.benches.Free()
		return res, nil
	}
	res.Benchmarks, err = r.runBenches(&reg.benches)
	return res, err
}

func (r *Runner) print(s string) {
	fmt.Fprint(r.out, s)
}

func (r *Runner) runTests(tbl *registry.Table[testUnit]) (ran, passed int, err error) {
	tbl.Seal()
	defer tbl.Free()

	groups := tbl.Groups()
	for _, g := range groups {
		r.log.Debug("test group", zap.String("group", g.Name), zap.Int("tests", g.Len()))
		if !g.IsDefault() {
			r.print(r.term.GroupHeader(g.Name, g.Len(), "tests"))
		}
		groupPassed := 0
		for _, u := range g.Units() {
			ok, err := r.runTest(u)
			if err != nil {
				return ran, passed, err
			}
			ran++
			if ok {
				passed++
				groupPassed++
			}
		}
		label := g.Name
		if g.IsDefault() {
			label = ""
		}
		r.print(r.term.Render(&pattern.Summary{Label: label, Passed: groupPassed, Total: g.Len()}))
	}
	if len(groups) != 1 {
		r.print("\n")
		r.print(r.term.Render(&pattern.Summary{Label: "total", Passed: passed, Total: ran}))
	}
	return ran, passed, nil
}

func (r *Runner) runTest(u testUnit) (bool, error) {
	r.print(r.term.Running(u.Name))
	if err := r.sink.Begin(); err != nil {
		return false, fmt.Errorf("capturing test %s: %w", u.Name, err)
	}
	start := time.Now()
	outcome := u.Body(&T{name: u.Name, out: r.out, err: r.err})
	elapsed := time.Since(start)
	captured, err := r.sink.End()
	if err != nil {
		return false, fmt.Errorf("collecting output of test %s: %w", u.Name, err)
	}
	r.log.Debug("test finished",
		zap.String("test", u.Name),
		zap.Bool("passed", outcome.Passed),
		zap.Duration("elapsed", elapsed))

	line := &pattern.TestLine{Name: u.Name, Status: pattern.StatusPass}
	if !outcome.Passed {
		line.Status = pattern.StatusFail
		line.Line = outcome.Line
		if outcome.HasMessage && !r.opts.Silent {
			line.Message = outcome.Message
		}
	}
	r.print(r.term.Render(line))

	if !r.opts.Silent {
		r.print(r.term.Render(&pattern.Captured{Stream: pattern.StreamStdout, Data: captured.Stdout}))
	}
	if !r.opts.SilentErrors {
		fmt.Fprint(r.err, r.term.Render(&pattern.Captured{Stream: pattern.StreamStderr, Data: captured.Stderr}))
	}
	return outcome.Passed, nil
}

func (r *Runner) runBenches(tbl *registry.Table[benchUnit]) (int, error) {
	tbl.Seal()
	defer tbl.Free()

	measured := 0
	if tbl.Len() > 0 {
		r.print("\n")
	}
	for _, g := range tbl.Groups() {
		r.log.Debug("benchmark group", zap.String("group", g.Name), zap.Int("benchmarks", g.Len()))
		if !g.IsDefault() {
			r.print(r.term.GroupHeader(g.Name, g.Len(), "benchmarks"))
		}
		units := g.Units()
		for i := range units {
			u := &units[i]
			if u.empty() {
				r.print(r.term.Render(&pattern.BenchTiming{Name: u.Name, Skipped: true}))
				continue
			}
			timing, err := r.runBench(u)
			if err != nil {
				return measured, err
			}
			r.print(r.term.Render(timing))
			measured++
		}
	}
	return measured, nil
}

// runBench measures the iterate loop only. Whatever the benchmark writes is
// captured and dropped; the report shows timing alone.
func (r *Runner) runBench(u *benchUnit) (*pattern.BenchTiming, error) {
	r.print(r.term.Running(u.Name))
	if err := r.sink.Begin(); err != nil {
		return nil, fmt.Errorf("capturing benchmark %s: %w", u.Name, err)
	}

	var state any
	if u.StateSize > 0 {
		state = u.newState()
	}
	if u.setup != nil {
		u.setup(state)
	}
	meter := cputime.Start()
	for pass := 0; pass < u.Repeat; pass++ {
		for iter := 0; iter < u.Iterations; iter++ {
			u.iterate(state, iter)
		}
	}
	usage := meter.Stop()
	if u.cleanup != nil {
		u.cleanup(state)
	}

	discarded, err := r.sink.End()
	if err != nil {
		return nil, fmt.Errorf("collecting output of benchmark %s: %w", u.Name, err)
	}

	total := Count{Iterations: u.Iterations, Passes: u.Repeat}.Total()
	r.log.Debug("benchmark finished",
		zap.String("benchmark", u.Name),
		zap.Int("iterations", total),
		zap.Duration("user", usage.User),
		zap.Duration("system", usage.System),
		zap.Int("discarded_bytes", len(discarded.Stdout)+len(discarded.Stderr)))
	return &pattern.BenchTiming{
		Name:       u.Name,
		Iterations: total,
		Overall:    usage,
		PerIter:    usage.Per(total),
	}, nil
}
