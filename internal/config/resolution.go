package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Resolved holds the final settings after applying all priority rules.
type Resolved struct {
	Silent       bool
	SilentErrors bool
	NoBench      bool
	LogFile      string
	Theme        string
	Padding      int
	NoColor      bool
	Debug        bool

	// Resolution metadata (for debugging)
	ConfigPath string // config file that was read, "" if none
}

// Resolve merges cli over the environment over the config file over
// defaults. Problems with the config file are written to warn and the file
// is ignored.
func Resolve(cli CliFlags, warn io.Writer) *Resolved {
	file, path, err := LoadFile()
	if err != nil {
		fmt.Fprintf(warn, "tinytest: warning: %v; using defaults\n", err)
	}

	r := &Resolved{
		Silent:       file.Silent,
		SilentErrors: file.SilentErrors,
		NoBench:      file.NoBench,
		LogFile:      file.LogFile,
		Theme:        file.Theme,
		Padding:      file.Padding,
		NoColor:      file.NoColor,
		Debug:        file.Debug,
		ConfigPath:   path,
	}

	if v := getEnvBool("TINYTEST_NO_BENCH"); v != nil {
		r.NoBench = *v
	}
	if os.Getenv("NO_COLOR") != "" {
		r.NoColor = true
	}
	if os.Getenv("TINYTEST_DEBUG") != "" {
		r.Debug = true
	}
	if v := os.Getenv("TINYTEST_THEME"); v != "" {
		r.Theme = v
	}

	if cli.SilentSet {
		r.Silent = cli.Silent
	}
	if cli.SilentErrorsSet {
		r.SilentErrors = cli.SilentErrors
	}
	if cli.NoBenchSet {
		r.NoBench = cli.NoBench
	}
	if cli.LogFileSet {
		r.LogFile = cli.LogFile
	}
	if cli.ThemeSet {
		r.Theme = cli.Theme
	}
	if cli.PaddingSet {
		r.Padding = cli.Padding
	}
	if cli.NoColorSet {
		r.NoColor = cli.NoColor
	}
	if cli.DebugSet {
		r.Debug = cli.Debug
	}

	if r.SilentErrors {
		r.Silent = true
	}
	if r.Padding <= 0 {
		r.Padding = DefaultPadding
	}
	if r.Theme == "" {
		r.Theme = DefaultTheme
	}
	return r
}

// getEnvBool returns nil when the variable is unset or not a boolean.
func getEnvBool(name string) *bool {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
