// Package config resolves harness settings from the command line, the
// environment and an optional YAML file.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-s, -S, -B, -l<file>, --theme, --padding, --debug)
//  2. Environment variables (NO_COLOR, TINYTEST_DEBUG, TINYTEST_NO_BENCH, TINYTEST_THEME)
//  3. YAML config file (.tinytest.yaml in the working directory or
//     $XDG_CONFIG_HOME/tinytest/.tinytest.yaml)
//  4. Hardcoded defaults
//
// # Silence
//
// Silent suppresses captured stdout and failure messages in the report.
// SilentErrors suppresses captured stderr as well and implies Silent.
//
// # Unknown Flags
//
// Arguments that are not recognized flags are dropped before parsing rather
// than reported as errors, so a test binary can be launched by tooling that
// passes extra arguments.
package config
