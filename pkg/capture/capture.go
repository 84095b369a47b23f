// Package capture isolates what a unit under test writes to standard output
// and standard error from the harness's own report output.
//
// A Sink owns the process's original streams for the duration of a run. The
// harness writes its report to Sink.Stdout and Sink.Stderr, brackets every
// unit with Begin and End, and calls Close exactly once before exiting.
package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrClosed is returned by Begin and End after Close.
var ErrClosed = errors.New("capture: sink closed")

// ErrActive is returned by Begin when a unit is already being captured.
var ErrActive = errors.New("capture: unit already active")

// Output holds what one unit wrote while captured.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Empty reports whether the unit wrote nothing.
func (o Output) Empty() bool {
	return len(o.Stdout) == 0 && len(o.Stderr) == 0
}

// Sink redirects the process's standard streams away from the report.
type Sink interface {
	// Stdout returns the real standard output, unaffected by redirection.
	Stdout() io.Writer
	// Stderr returns the real standard error, unaffected by redirection.
	Stderr() io.Writer
	// Begin starts capturing one unit.
	Begin() error
	// End stops capturing and returns what the unit wrote. Sinks that
	// redirect the whole run elsewhere return an empty Output.
	End() (Output, error)
	// Close restores the original streams. It is safe to call more than once.
	Close() error
}

// NewPipe returns a capture-and-replay sink: each unit's output is collected
// through a pipe and handed back by End so it can be reprinted in the report.
func NewPipe() (Sink, error) {
	return newPipe()
}

// NewFile returns a sink that sends everything written to the standard
// streams during the run to the file at path. Use os.DevNull to discard.
func NewFile(path string) (Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening capture file: %w", err)
	}
	s, err := newFile(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

type nopSink struct {
	out, err io.Writer
	closed   bool
}

// Nop returns a sink that redirects nothing and reports out and err as the
// real streams. Units write straight through.
func Nop(out, err io.Writer) Sink {
	return &nopSink{out: out, err: err}
}

func (s *nopSink) Stdout() io.Writer { return s.out }
func (s *nopSink) Stderr() io.Writer { return s.err }

func (s *nopSink) Begin() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *nopSink) End() (Output, error) {
	if s.closed {
		return Output{}, ErrClosed
	}
	return Output{}, nil
}

func (s *nopSink) Close() error {
	s.closed = true
	return nil
}

type writersSink struct {
	Sink
	out, err io.Writer
}

// WithWriters returns s with its report streams replaced by out and err.
// Capture still goes through s; only the harness's own output moves.
func WithWriters(s Sink, out, err io.Writer) Sink {
	return &writersSink{Sink: s, out: out, err: err}
}

func (s *writersSink) Stdout() io.Writer { return s.out }
func (s *writersSink) Stderr() io.Writer { return s.err }
