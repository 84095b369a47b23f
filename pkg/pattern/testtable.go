package pattern

// Test statuses.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// TestLine is the final status of one test unit.
type TestLine struct {
	Name    string
	Status  string // StatusPass or StatusFail
	Line    int    // source line of the failure
	Message string // rendered only when non-empty
}

func (t *TestLine) Type() PatternType { return PatternTypeTestLine }

// Failed reports whether the test failed.
func (t *TestLine) Failed() bool { return t.Status == StatusFail }
