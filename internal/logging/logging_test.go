package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_IsNop_When_DebugOff(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, &buf)
	logger.Debug("hidden")
	logger.Warn("also hidden")

	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.Empty(t, buf.String())
}

func TestNew_WritesDebugLines_When_DebugOn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(true, &buf)
	logger.Debug("sink selected", zap.String("sink", "pipe"))
	_ = logger.Sync()

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "tinytest")
	assert.Contains(t, out, "sink selected")
	assert.Contains(t, out, `"sink": "pipe"`)
}
