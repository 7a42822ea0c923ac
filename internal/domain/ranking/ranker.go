// Package ranking re-scores stored candidates against an arbitrary position.
// Unlike the ingestion scoring engine it weighs skill coverage, experience
// depth and title relevance together, and never mutates stored scores.
package ranking

import (
	"math"
	"sort"
	"strings"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/position"
)

// RankedCandidate pairs a candidate with its score for the ranked position.
type RankedCandidate struct {
	Candidate candidate.Candidate
	Score     int
}

// MatchScore is the weighted 0-100 fit of one candidate for one position:
// 70% skill match, 20% experience depth, plus a 10-point boost when the
// candidate's own position title equals the target title.
func MatchScore(c candidate.Candidate, p position.Position) int {
	skillMatch := skillMatchScore(c.Skills, p.RequiredSkills)
	expScore := experienceScore(c.Experience)

	relevance := 0.0
	if c.Position != "" && p.Title != "" && strings.EqualFold(c.Position, p.Title) {
		relevance = 10
	}

	final := math.Round(skillMatch*0.7 + float64(expScore)*0.2 + relevance)
	if final > 100 {
		return 100
	}
	return int(final)
}

// skillMatchScore combines requirement coverage (60%) with the average
// proficiency of the matched skills (40%). No requirements is neutral (50);
// no overlap at all scores a flat 30.
func skillMatchScore(skills candidate.Skills, required []string) float64 {
	if len(required) == 0 {
		return 50
	}

	total := 0
	matched := 0
	for _, name := range required {
		if score, ok := skills.Get(name); ok {
			total += score
			matched++
		}
	}
	if matched == 0 {
		return 30
	}

	coverage := float64(matched) / float64(len(required)) * 100
	avgProficiency := float64(total) / float64(matched)

	return coverage*0.6 + avgProficiency*0.4
}

// experienceScore grants 15 points per listed engagement up to 100, with a
// base of 40 when nothing is listed.
func experienceScore(exp []candidate.Experience) int {
	if len(exp) == 0 {
		return 40
	}
	score := len(exp) * 15
	if score > 100 {
		return 100
	}
	return score
}

// Rank orders candidates by descending fit for the position. Ties keep the
// input order.
func Rank(candidates []candidate.Candidate, p position.Position) []RankedCandidate {
	out := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, RankedCandidate{Candidate: c, Score: MatchScore(c, p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
