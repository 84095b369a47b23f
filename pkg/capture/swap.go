package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// swapSink captures by replacing the os.Stdout and os.Stderr variables. It
// only sees writes made through those variables, not writes to the raw file
// descriptors, so it is the fallback where descriptors cannot be duplicated.
type swapSink struct {
	realOut, realErr *os.File
	out, err         *swapDrain
	closed           bool
}

// NewSwap returns a capture-and-replay sink that works on every platform by
// swapping the os.Stdout and os.Stderr variables for the duration of a unit.
func NewSwap() Sink {
	return &swapSink{realOut: os.Stdout, realErr: os.Stderr}
}

type swapDrain struct {
	r, w *os.File
	buf  bytes.Buffer
	err  error
	done chan struct{}
}

func newSwapDrain() (*swapDrain, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating capture pipe: %w", err)
	}
	d := &swapDrain{r: r, w: w, done: make(chan struct{})}
	go func() {
		defer close(d.done)
		_, d.err = io.Copy(&d.buf, r)
	}()
	return d, nil
}

func (d *swapDrain) finish() ([]byte, error) {
	closeErr := d.w.Close()
	<-d.done
	_ = d.r.Close()
	if d.err != nil {
		return d.buf.Bytes(), fmt.Errorf("draining capture pipe: %w", d.err)
	}
	if closeErr != nil {
		return d.buf.Bytes(), fmt.Errorf("closing capture pipe: %w", closeErr)
	}
	return d.buf.Bytes(), nil
}

func (s *swapSink) Stdout() io.Writer { return s.realOut }
func (s *swapSink) Stderr() io.Writer { return s.realErr }

func (s *swapSink) Begin() error {
	if s.closed {
		return ErrClosed
	}
	if s.out != nil {
		return ErrActive
	}
	out, err := newSwapDrain()
	if err != nil {
		return err
	}
	errDrain, err := newSwapDrain()
	if err != nil {
		_, _ = out.finish()
		return err
	}
	s.out, s.err = out, errDrain
	os.Stdout, os.Stderr = out.w, errDrain.w
	return nil
}

func (s *swapSink) End() (Output, error) {
	if s.closed {
		return Output{}, ErrClosed
	}
	if s.out == nil {
		return Output{}, nil
	}
	os.Stdout, os.Stderr = s.realOut, s.realErr
	stdout, outErr := s.out.finish()
	stderr, errErr := s.err.finish()
	s.out, s.err = nil, nil
	if outErr != nil {
		return Output{Stdout: stdout, Stderr: stderr}, outErr
	}
	return Output{Stdout: stdout, Stderr: stderr}, errErr
}

func (s *swapSink) Close() error {
	if s.closed {
		return nil
	}
	_, err := s.End()
	s.closed = true
	return err
}

// swapFileSink points os.Stdout and os.Stderr at one file for the whole run.
type swapFileSink struct {
	realOut, realErr *os.File
	f                *os.File
	closed           bool
}

func newSwapFile(f *os.File) Sink {
	s := &swapFileSink{realOut: os.Stdout, realErr: os.Stderr, f: f}
	os.Stdout, os.Stderr = f, f
	return s
}

func (s *swapFileSink) Stdout() io.Writer { return s.realOut }
func (s *swapFileSink) Stderr() io.Writer { return s.realErr }

func (s *swapFileSink) Begin() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *swapFileSink) End() (Output, error) {
	if s.closed {
		return Output{}, ErrClosed
	}
	return Output{}, nil
}

func (s *swapFileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	os.Stdout, os.Stderr = s.realOut, s.realErr
	return s.f.Close()
}
