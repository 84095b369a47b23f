package magetasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_CreatesBinDir(t *testing.T) {
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))

	require.NoError(t, Initialize())

	info, err := os.Stat(filepath.Join(tmpDir, "bin"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, expectedRoot, actualRoot)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "github.com/dkoosis/tinytest", ModulePath)
	assert.Equal(t, "./bin/tinytest-demo", BinPath)
	assert.Equal(t, "./cmd/tinytest-demo", DemoPackage)
}

func TestLdflags_StampsVersionPackage(t *testing.T) {
	got := Ldflags("v1.2.0", "abc1234", "2026-10-19T00:00:00Z")

	assert.Equal(t,
		"-s -w -X 'github.com/dkoosis/tinytest/internal/version.Version=v1.2.0'"+
			" -X 'github.com/dkoosis/tinytest/internal/version.CommitHash=abc1234'"+
			" -X 'github.com/dkoosis/tinytest/internal/version.BuildDate=2026-10-19T00:00:00Z'",
		got)
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "(no flags)", joinArgs(nil))
	assert.Equal(t, "-s -S -B", joinArgs([]string{"-s", "-S", "-B"}))
}
