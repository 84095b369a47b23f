// Package render formats harness report patterns for the console.
package render

import "github.com/dkoosis/tinytest/pkg/pattern"

// Renderer converts a report pattern to formatted output.
type Renderer interface {
	Render(p pattern.Pattern) string
}
