package magetasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/tinytest/pkg/capture"
)

// captureStdout runs fn with os.Stdout swapped for a pipe.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	s := capture.NewSwap()
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Begin())
	fn()
	out, err := s.End()
	require.NoError(t, err)
	return string(out.Stdout)
}

func TestPrintH1Header(t *testing.T) {
	out := captureStdout(t, func() { PrintH1Header("Test Title") })

	assert.Contains(t, out, "Test Title")
	assert.Contains(t, out, "=====")
}

func TestPrintH2Header(t *testing.T) {
	out := captureStdout(t, func() { PrintH2Header("Test Section") })

	assert.Contains(t, out, "=== Test Section ===")
}

func TestPrintStatusLines(t *testing.T) {
	tests := []struct {
		name   string
		print  func(string)
		marker string
	}{
		{name: "success", print: PrintSuccess, marker: "[ok]"},
		{name: "warning", print: PrintWarning, marker: "[warn]"},
		{name: "error", print: PrintError, marker: "[error]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() { tt.print("message text") })

			assert.Contains(t, out, tt.marker)
			assert.Contains(t, out, "message text")
		})
	}
}
