package scoring

import (
	"testing"

	"cv-smart-hire/internal/domain/candidate"
)

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		score int
		want  candidate.Status
	}{
		{100, candidate.StatusShortlisted},
		{90, candidate.StatusShortlisted},
		{89, candidate.StatusReview},
		{75, candidate.StatusReview},
		{74, candidate.StatusPending},
		{60, candidate.StatusPending},
		{59, candidate.StatusRejected},
		{0, candidate.StatusRejected},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Fatalf("Classify(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for score := 0; score <= 100; score++ {
		first := Classify(score)
		second := Classify(score)
		if first != second {
			t.Fatalf("Classify(%d) not stable: %q then %q", score, first, second)
		}
	}
}
