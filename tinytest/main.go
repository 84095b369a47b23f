package tinytest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/tinytest/internal/config"
	"github.com/dkoosis/tinytest/internal/logging"
	"github.com/dkoosis/tinytest/pkg/capture"
	"github.com/dkoosis/tinytest/pkg/render"
)

// Main runs the default registry with the process arguments and exits with
// the run's status.
func Main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run runs the default registry. It returns 0 when every test passed, 1 when
// any failed and 2 when the run could not be set up.
func Run(args []string, stdout, stderr io.Writer) int {
	return Default().Run(args, stdout, stderr)
}

// Run parses args, runs every unit in r and returns the exit status.
// Captured output is isolated at the descriptor level only when stdout and
// stderr are the process's own streams; the report goes to stdout and stderr
// either way.
func (r *Registry) Run(args []string, stdout, stderr io.Writer) int {
	flags, err := config.ParseFlags(programName(), args, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "tinytest: %v\n", err)
		return 2
	}
	if flags.Exit {
		return 0
	}
	cfg := config.Resolve(flags, stderr)
	// Checked before the sink may point descriptor 1 at a file.
	color := !cfg.NoColor && isTTYWriter(stdout)

	sink, kind, err := openSink(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tinytest: %v\n", err)
		return 2
	}
	defer func() { _ = sink.Close() }()

	logger := logging.New(cfg.Debug, sink.Stderr())
	defer func() { _ = logger.Sync() }()
	logger.Debug("configuration resolved",
		zap.String("config_file", cfg.ConfigPath),
		zap.String("sink", kind),
		zap.Strings("dropped_args", flags.Dropped),
		zap.Int("tests", r.Tests()),
		zap.Int("benchmarks", r.Benchmarks()))

	theme := render.ThemeByName(cfg.Theme, render.NewRenderer(sink.Stdout(), color))
	runner := NewRunner(sink, Options{
		Silent:       cfg.Silent,
		SilentErrors: cfg.SilentErrors,
		NoBench:      cfg.NoBench,
		Theme:        theme,
		Padding:      cfg.Padding,
		Logger:       logger,
	})

	res, err := runner.Run(r)
	if err != nil {
		fmt.Fprintf(sink.Stderr(), "tinytest: %v\n", err)
		return 2
	}
	if !res.OK() {
		return 1
	}
	return 0
}

// openSink picks the capture strategy: a log file when one is configured,
// the null device when both streams are silenced, capture-and-replay
// otherwise. A replay sink that cannot be set up degrades to no capture.
func openSink(cfg *config.Resolved, stdout, stderr io.Writer) (capture.Sink, string, error) {
	var (
		sink capture.Sink
		kind string
		err  error
	)
	switch {
	case cfg.LogFile != "":
		kind = "file"
		sink, err = capture.NewFile(cfg.LogFile)
		if err != nil {
			return nil, kind, err
		}
	case cfg.Silent && cfg.SilentErrors:
		kind = "discard"
		sink, err = capture.NewFile(os.DevNull)
	default:
		kind = "pipe"
		sink, err = capture.NewPipe()
	}
	if err != nil {
		fmt.Fprintf(stderr, "tinytest: warning: %v; output will not be captured\n", err)
		return capture.Nop(stdout, stderr), "none", nil
	}
	if !isStdio(stdout, stderr) {
		sink = capture.WithWriters(sink, stdout, stderr)
	}
	return sink, kind, nil
}

func isStdio(stdout, stderr io.Writer) bool {
	out, ok := stdout.(*os.File)
	if !ok || out != os.Stdout {
		return false
	}
	errOut, ok := stderr.(*os.File)
	return ok && errOut == os.Stderr
}

func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func programName() string {
	if len(os.Args) == 0 {
		return "tinytest"
	}
	return filepath.Base(os.Args[0])
}
