package pattern

// Summary is a pass count for one group or for the whole run.
type Summary struct {
	Label  string // group name; empty for the unnamed group
	Passed int
	Total  int
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }

// Percent returns Passed*100/Total truncated toward zero, and 0 for an
// empty summary.
func (s *Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Passed * 100 / s.Total
}
