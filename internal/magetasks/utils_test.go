package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, want: true},
		{name: "wrapped", err: fmt.Errorf("running staticcheck: %w", exec.ErrNotFound), want: true},
		{name: "formatted by sh", err: errors.New(`failed to run "staticcheck ./...: exec: "staticcheck": executable file not found in $PATH"`), want: true},
		{name: "missing binary path", err: errors.New("fork/exec ./bin/tinytest-demo: no such file or directory"), want: true},
		{name: "other error", err: errors.New("exit status 1"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCommandNotFound(tt.err))
		})
	}
}
