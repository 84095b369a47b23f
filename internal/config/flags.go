package config

import (
	"io"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/dkoosis/tinytest/internal/version"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Silent       bool
	SilentErrors bool
	NoBench      bool
	LogFile      string
	Theme        string
	Padding      int
	NoColor      bool
	Debug        bool

	// Help or Version was requested; usage or the version has been written
	// and nothing should run.
	Exit bool

	// Arguments dropped because they are not recognized flags.
	Dropped []string

	// Flags to track if they were explicitly set by the user
	SilentSet       bool
	SilentErrorsSet bool
	NoBenchSet      bool
	LogFileSet      bool
	ThemeSet        bool
	PaddingSet      bool
	NoColorSet      bool
	DebugSet        bool
}

func markSet(b *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*b = true
		return nil
	}
}

func newApp(name string, out io.Writer, flags *CliFlags) *kingpin.Application {
	app := kingpin.New(name, "Runs the tests and benchmarks registered in this binary.")
	app.UsageWriter(out)
	app.ErrorWriter(out)
	app.Version(version.String())
	app.HelpFlag.Short('h')
	app.Terminate(func(int) { flags.Exit = true })

	app.Flag("silent", "Hide captured stdout and failure messages.").
		Short('s').Action(markSet(&flags.SilentSet)).BoolVar(&flags.Silent)
	app.Flag("silent-errors", "Hide captured stderr too (implies --silent).").
		Short('S').Action(markSet(&flags.SilentErrorsSet)).BoolVar(&flags.SilentErrors)
	app.Flag("no-bench", "Skip the benchmark phase.").
		Short('B').Action(markSet(&flags.NoBenchSet)).BoolVar(&flags.NoBench)
	app.Flag("log", "Redirect captured output to FILE.").
		Short('l').PlaceHolder("FILE").Action(markSet(&flags.LogFileSet)).StringVar(&flags.LogFile)
	app.Flag("theme", "Report theme: default or mono.").
		Action(markSet(&flags.ThemeSet)).EnumVar(&flags.Theme, "default", "mono")
	app.Flag("padding", "Column at which status markers start.").
		Action(markSet(&flags.PaddingSet)).IntVar(&flags.Padding)
	app.Flag("no-color", "Disable colored markers.").
		Action(markSet(&flags.NoColorSet)).BoolVar(&flags.NoColor)
	app.Flag("debug", "Log harness diagnostics to stderr.").
		Action(markSet(&flags.DebugSet)).BoolVar(&flags.Debug)
	return app
}

// ParseFlags parses args. Usage and version text go to out. Unrecognized
// flags and stray positional arguments are dropped, not reported.
func ParseFlags(name string, args []string, out io.Writer) (CliFlags, error) {
	var flags CliFlags
	app := newApp(name, out, &flags)

	kept, dropped := filterArgs(app, args)
	flags.Dropped = dropped
	if _, err := app.Parse(kept); err != nil {
		return flags, err
	}
	return flags, nil
}

// silentBothAlias is the older spelling of -s -S.
const silentBothAlias = "-se"

// filterArgs keeps only arguments kingpin will accept. Values following a
// flag that takes one are kept with it.
func filterArgs(app *kingpin.Application, args []string) (kept, dropped []string) {
	long := map[string]bool{}
	short := map[rune]bool{}
	valued := map[string]bool{}
	for _, f := range app.Model().Flags {
		long[f.Name] = true
		if !f.IsBoolFlag() {
			valued[f.Name] = true
		}
		if f.Short != 0 {
			short[f.Short] = true
			if !f.IsBoolFlag() {
				valued[string(f.Short)] = true
			}
		}
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == silentBothAlias:
			kept = append(kept, "-s", "-S")
		case arg == "--":
			dropped = append(dropped, args[i:]...)
			return kept, dropped
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			base := strings.TrimPrefix(name, "no-")
			if !long[name] && !long[base] {
				dropped = append(dropped, arg)
				continue
			}
			kept = append(kept, arg)
			if valued[name] && !hasValue && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			keep, takesNext := shortCluster(arg[1:], short, valued)
			if !keep {
				dropped = append(dropped, arg)
				continue
			}
			kept = append(kept, arg)
			if takesNext && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		default:
			dropped = append(dropped, arg)
		}
	}
	return kept, dropped
}

// shortCluster checks a cluster like "sB" or "lrun.log". A valued flag
// consumes the rest of the cluster, or the next argument when it is last.
func shortCluster(cluster string, short map[rune]bool, valued map[string]bool) (keep, takesNext bool) {
	for i, r := range cluster {
		if !short[r] {
			return false, false
		}
		if valued[string(r)] {
			return true, i == len(cluster)-1
		}
	}
	return true, false
}
