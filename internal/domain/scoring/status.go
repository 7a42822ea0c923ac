package scoring

import "cv-smart-hire/internal/domain/candidate"

// Classify maps a match score to the initial review status.
// Bands: 90-100 shortlisted, 75-89 review, 60-74 pending, below 60 rejected.
func Classify(score int) candidate.Status {
	switch {
	case score >= 90:
		return candidate.StatusShortlisted
	case score >= 75:
		return candidate.StatusReview
	case score < 60:
		return candidate.StatusRejected
	default:
		return candidate.StatusPending
	}
}
