//go:build unix

package capture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// fdSink captures at the file descriptor level, so it also sees output from
// code that writes to descriptors 1 and 2 directly, cgo included.
type fdSink struct {
	realOut, realErr *os.File
	out, err         *fdDrain
	closed           bool
}

func dupFile(fd int, name string) (*os.File, error) {
	nfd, err := unix.Dup(fd)
	if err != nil {
		return nil, fmt.Errorf("duplicating %s: %w", name, err)
	}
	unix.CloseOnExec(nfd)
	return os.NewFile(uintptr(nfd), name), nil
}

func dupStdio() (*os.File, *os.File, error) {
	realOut, err := dupFile(unix.Stdout, "stdout")
	if err != nil {
		return nil, nil, err
	}
	realErr, err := dupFile(unix.Stderr, "stderr")
	if err != nil {
		_ = realOut.Close()
		return nil, nil, err
	}
	return realOut, realErr, nil
}

func newPipe() (Sink, error) {
	realOut, realErr, err := dupStdio()
	if err != nil {
		return nil, err
	}
	return &fdSink{realOut: realOut, realErr: realErr}, nil
}

type fdDrain struct {
	target int
	r      *os.File
	buf    bytes.Buffer
	err    error
	done   chan struct{}
}

// redirect points target at the write end of a fresh blocking pipe. The pipe
// must not be O_NONBLOCK: the flag would be shared with target through dup2
// and writes through os.Stdout would fail with EAGAIN once the pipe filled.
func redirect(target int) (*fdDrain, error) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return nil, fmt.Errorf("creating capture pipe: %w", err)
	}
	unix.CloseOnExec(p[0])
	unix.CloseOnExec(p[1])
	if err := unix.Dup2(p[1], target); err != nil {
		_ = unix.Close(p[0])
		_ = unix.Close(p[1])
		return nil, fmt.Errorf("redirecting fd %d: %w", target, err)
	}
	_ = unix.Close(p[1])

	d := &fdDrain{
		target: target,
		r:      os.NewFile(uintptr(p[0]), "capture"),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(d.done)
		_, d.err = io.Copy(&d.buf, d.r)
	}()
	return d, nil
}

// restore points target back at real. That closes the last write end of the
// pipe, so the drain sees EOF and finishes.
func (d *fdDrain) restore(real *os.File) ([]byte, error) {
	if err := unix.Dup2(int(real.Fd()), d.target); err != nil {
		return nil, fmt.Errorf("restoring fd %d: %w", d.target, err)
	}
	<-d.done
	_ = d.r.Close()
	if d.err != nil {
		return d.buf.Bytes(), fmt.Errorf("draining fd %d: %w", d.target, d.err)
	}
	return d.buf.Bytes(), nil
}

func (s *fdSink) Stdout() io.Writer { return s.realOut }
func (s *fdSink) Stderr() io.Writer { return s.realErr }

func (s *fdSink) Begin() error {
	if s.closed {
		return ErrClosed
	}
	if s.out != nil {
		return ErrActive
	}
	out, err := redirect(unix.Stdout)
	if err != nil {
		return err
	}
	errDrain, err := redirect(unix.Stderr)
	if err != nil {
		_, _ = out.restore(s.realOut)
		return err
	}
	s.out, s.err = out, errDrain
	return nil
}

func (s *fdSink) End() (Output, error) {
	if s.closed {
		return Output{}, ErrClosed
	}
	if s.out == nil {
		return Output{}, nil
	}
	stdout, outErr := s.out.restore(s.realOut)
	stderr, errErr := s.err.restore(s.realErr)
	s.out, s.err = nil, nil
	return Output{Stdout: stdout, Stderr: stderr}, errors.Join(outErr, errErr)
}

func (s *fdSink) Close() error {
	if s.closed {
		return nil
	}
	_, err := s.End()
	s.closed = true
	return errors.Join(err, s.realOut.Close(), s.realErr.Close())
}

// fdFileSink points descriptors 1 and 2 at one file for the whole run.
type fdFileSink struct {
	realOut, realErr *os.File
	f                *os.File
	closed           bool
}

func newFile(f *os.File) (Sink, error) {
	realOut, realErr, err := dupStdio()
	if err != nil {
		return nil, err
	}
	if err := unix.Dup2(int(f.Fd()), unix.Stdout); err != nil {
		_ = realOut.Close()
		_ = realErr.Close()
		return nil, fmt.Errorf("redirecting stdout: %w", err)
	}
	if err := unix.Dup2(int(f.Fd()), unix.Stderr); err != nil {
		_ = unix.Dup2(int(realOut.Fd()), unix.Stdout)
		_ = realOut.Close()
		_ = realErr.Close()
		return nil, fmt.Errorf("redirecting stderr: %w", err)
	}
	return &fdFileSink{realOut: realOut, realErr: realErr, f: f}, nil
}

func (s *fdFileSink) Stdout() io.Writer { return s.realOut }
func (s *fdFileSink) Stderr() io.Writer { return s.realErr }

func (s *fdFileSink) Begin() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *fdFileSink) End() (Output, error) {
	if s.closed {
		return Output{}, ErrClosed
	}
	return Output{}, nil
}

func (s *fdFileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	outErr := unix.Dup2(int(s.realOut.Fd()), unix.Stdout)
	errErr := unix.Dup2(int(s.realErr.Fd()), unix.Stderr)
	return errors.Join(outErr, errErr, s.f.Close(), s.realOut.Close(), s.realErr.Close())
}
