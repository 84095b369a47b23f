package tinytest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig keeps config files and environment of the host out of Run.
func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TINYTEST_DEBUG", "")
	t.Setenv("TINYTEST_NO_BENCH", "")
	t.Setenv("TINYTEST_THEME", "mono")
}

func roundTripRegistry() *Registry {
	reg := NewRegistry()
	reg.Test("math/1", pass)
	reg.Test("math/2", func(*T) Outcome {
		return Outcome{Line: 10, Message: "bad", HasMessage: true}
	})
	return reg
}

func TestRegistryRun_ExitsOne_When_AnyTestFails(t *testing.T) {
	isolateConfig(t)
	var out, errOut bytes.Buffer

	code := roundTripRegistry().Run(nil, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "[FAIL (line 10)]\nMESSAGE: bad\n")
	assert.Contains(t, out.String(), "1/2 tests passed (50%)")
}

func TestRegistryRun_ExitsZero_When_NothingRegistered(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	code := NewRegistry().Run(nil, &out, &bytes.Buffer{})

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "0/0 tests passed (0%)")
}

func TestRegistryRun_ReplaysCapturedOutput(t *testing.T) {
	isolateConfig(t)
	reg := NewRegistry()
	reg.Test("print", func(t *T) Outcome {
		fmt.Println("from the unit")
		return t.Pass()
	})
	var out bytes.Buffer

	code := reg.Run(nil, &out, &bytes.Buffer{})

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "[PASS]    \nSTDOUT:\nfrom the unit\n")
}

func TestRegistryRun_SilentFlags(t *testing.T) {
	isolateConfig(t)
	reg := roundTripRegistry()
	var out, errOut bytes.Buffer

	code := reg.Run([]string{"-s", "-S"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "[FAIL (line 10)]\n")
	assert.NotContains(t, out.String(), "MESSAGE")
}

func TestRegistryRun_LogFileReceivesUnitOutput(t *testing.T) {
	isolateConfig(t)
	logPath := filepath.Join(t.TempDir(), "run.log")
	reg := NewRegistry()
	reg.Test("one", func(t *T) Outcome {
		fmt.Println("unit one")
		return t.Pass()
	})
	var out bytes.Buffer

	code := reg.Run([]string{"-l" + logPath}, &out, &bytes.Buffer{})

	require.Equal(t, 0, code)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "unit one\n", string(data))
	assert.NotContains(t, out.String(), "unit one")
}

func TestRegistryRun_ExitsTwo_When_LogFileUnopenable(t *testing.T) {
	isolateConfig(t)
	var errOut bytes.Buffer
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "run.log")

	code := NewRegistry().Run([]string{"--log", missing}, &bytes.Buffer{}, &errOut)

	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "tinytest: opening capture file")
}

func TestRegistryRun_HelpRunsNothing(t *testing.T) {
	isolateConfig(t)
	reg := NewRegistry()
	ran := false
	reg.Test("x", func(t *T) Outcome {
		ran = true
		return t.Pass()
	})
	var out bytes.Buffer

	code := reg.Run([]string{"-h"}, &out, &bytes.Buffer{})

	assert.Equal(t, 0, code)
	assert.False(t, ran)
	assert.Contains(t, out.String(), "--no-bench")
}

func TestRegistryRun_IgnoresUnknownFlags(t *testing.T) {
	isolateConfig(t)
	var out bytes.Buffer

	code := roundTripRegistry().Run([]string{"--frobnicate", "-x", "stray"}, &out, &bytes.Buffer{})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "1/2 tests passed (50%)")
}

func TestRegistryRun_ExitsTwo_When_FlagValueInvalid(t *testing.T) {
	isolateConfig(t)
	var errOut bytes.Buffer

	code := NewRegistry().Run([]string{"--theme=neon"}, &bytes.Buffer{}, &errOut)

	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "tinytest:")
}

func TestRegistryRun_NoBenchFromEnvironment(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TINYTEST_NO_BENCH", "1")
	reg := NewRegistry()
	calls := 0
	BenchIn[struct{}](reg, "b", Times(3)).OnIter(func(*struct{}, int) { calls++ })

	code := reg.Run(nil, &bytes.Buffer{}, &bytes.Buffer{})

	assert.Equal(t, 0, code)
	assert.Zero(t, calls)
}
