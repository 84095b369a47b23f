package pattern

import "testing"

func TestSummary_Percent_Truncates(t *testing.T) {
	tests := []struct {
		name          string
		passed, total int
		want          int
	}{
		{name: "two of three", passed: 2, total: 3, want: 66},
		{name: "one of two", passed: 1, total: 2, want: 50},
		{name: "all", passed: 4, total: 4, want: 100},
		{name: "none ran", passed: 0, total: 0, want: 0},
		{name: "one of three", passed: 1, total: 3, want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Summary{Passed: tt.passed, Total: tt.total}
			if got := s.Percent(); got != tt.want {
				t.Errorf("Percent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTestLine_Failed(t *testing.T) {
	if (&TestLine{Status: StatusPass}).Failed() {
		t.Error("pass line reported as failed")
	}
	if !(&TestLine{Status: StatusFail}).Failed() {
		t.Error("fail line not reported as failed")
	}
}

func TestPatterns_ReportTheirType(t *testing.T) {
	tests := []struct {
		p    Pattern
		want PatternType
	}{
		{p: &TestLine{}, want: PatternTypeTestLine},
		{p: &Summary{}, want: PatternTypeSummary},
		{p: &Captured{}, want: PatternTypeCaptured},
		{p: &BenchTiming{}, want: PatternTypeBenchTiming},
	}
	for _, tt := range tests {
		if got := tt.p.Type(); got != tt.want {
			t.Errorf("%T.Type() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
