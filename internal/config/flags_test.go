package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_ShortAndLongForms(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, f CliFlags)
	}{
		{
			name: "silent short",
			args: []string{"-s"},
			check: func(t *testing.T, f CliFlags) {
				assert.True(t, f.Silent)
				assert.True(t, f.SilentSet)
			},
		},
		{
			name: "silent errors long",
			args: []string{"--silent-errors"},
			check: func(t *testing.T, f CliFlags) {
				assert.True(t, f.SilentErrors)
				assert.False(t, f.SilentSet)
			},
		},
		{
			name: "clustered bools",
			args: []string{"-sB"},
			check: func(t *testing.T, f CliFlags) {
				assert.True(t, f.Silent)
				assert.True(t, f.NoBench)
			},
		},
		{
			name: "attached log file",
			args: []string{"-lrun.log"},
			check: func(t *testing.T, f CliFlags) {
				assert.Equal(t, "run.log", f.LogFile)
				assert.True(t, f.LogFileSet)
			},
		},
		{
			name: "separate log file",
			args: []string{"-l", "run.log", "-B"},
			check: func(t *testing.T, f CliFlags) {
				assert.Equal(t, "run.log", f.LogFile)
				assert.True(t, f.NoBench)
			},
		},
		{
			name: "theme and padding",
			args: []string{"--theme=mono", "--padding", "40"},
			check: func(t *testing.T, f CliFlags) {
				assert.Equal(t, "mono", f.Theme)
				assert.Equal(t, 40, f.Padding)
				assert.True(t, f.PaddingSet)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFlags("demo", tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, f.Exit)
			tt.check(t, f)
		})
	}
}

func TestParseFlags_DropsUnknownArguments(t *testing.T) {
	f, err := ParseFlags("demo", []string{"-x", "--frobnicate", "stray", "-s", "-sx"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.True(t, f.Silent)
	assert.Equal(t, []string{"-x", "--frobnicate", "stray", "-sx"}, f.Dropped)
}

func TestParseFlags_SilentBothAlias(t *testing.T) {
	f, err := ParseFlags("demo", []string{"-se", "-B"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.True(t, f.Silent)
	assert.True(t, f.SilentSet)
	assert.True(t, f.SilentErrors)
	assert.True(t, f.SilentErrorsSet)
	assert.True(t, f.NoBench)
	assert.Empty(t, f.Dropped)
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	f, err := ParseFlags("demo", []string{"-h"}, &out)
	require.NoError(t, err)

	assert.True(t, f.Exit)
	assert.Contains(t, out.String(), "usage: demo")
	assert.Contains(t, out.String(), "--silent")
}

func TestParseFlags_Version(t *testing.T) {
	var out bytes.Buffer
	f, err := ParseFlags("demo", []string{"--version"}, &out)
	require.NoError(t, err)

	assert.True(t, f.Exit)
	assert.Contains(t, out.String(), "dev")
}

func TestParseFlags_RejectsBadValue(t *testing.T) {
	_, err := ParseFlags("demo", []string{"--theme=neon"}, &bytes.Buffer{})

	assert.Error(t, err)
}
