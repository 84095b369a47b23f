// Package pattern defines the report data produced by a harness run.
// Patterns are pure data; renderers decide presentation.
package pattern

// PatternType identifies the kind of report pattern.
type PatternType string

const (
	PatternTypeTestLine    PatternType = "test-line"
	PatternTypeSummary     PatternType = "summary"
	PatternTypeCaptured    PatternType = "captured"
	PatternTypeBenchTiming PatternType = "bench-timing"
)

// Pattern is the interface all report patterns implement.
type Pattern interface {
	Type() PatternType
}
