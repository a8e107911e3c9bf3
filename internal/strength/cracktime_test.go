package strength

import "testing"

func TestEstimateTimeToCrackEmpty(t *testing.T) {
	for _, score := range []int{0, 50, 100} {
		if got := EstimateTimeToCrack("", score); got != crackTimeEmptySentinel {
			t.Errorf("empty password with score %d: got %q, want sentinel", score, got)
		}
	}
}

func TestEstimateTimeToCrackTrivial(t *testing.T) {
	// too short
	if got := EstimateTimeToCrack("abc12", 60); got != "Instantly" {
		t.Errorf("short password: got %q", got)
	}
	// low score
	if got := EstimateTimeToCrack("aaaaaaaa", 15); got != "Instantly" {
		t.Errorf("low score: got %q", got)
	}
}

func TestEstimateTimeToCrackSaturates(t *testing.T) {
	// 94^13 guesses at 1e9/s is far beyond a century
	if got := EstimateTimeToCrack("Tr0ub4dor&9Zx", 85); got != "Centuries" {
		t.Errorf("got %q, want Centuries", got)
	}
}

func TestEstimateTimeToCrackMidRange(t *testing.T) {
	// 26^8 / 1e9 ≈ 209 seconds
	if got := EstimateTimeToCrack("kqzvmxrw", 30); got != "3 minutes" {
		t.Errorf("got %q, want 3 minutes", got)
	}
}

func TestFormatDurationUnits(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.2, "Instantly"},
		{1, "1 second"},
		{45, "45 seconds"},
		{120, "2 minutes"},
		{7200, "2 hours"},
		{86400 * 3, "3 days"},
		{86400 * 60, "2 months"},
		{86400 * 365 * 5, "5 years"},
		{86400 * 365 * 1000, "Centuries"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%g) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
