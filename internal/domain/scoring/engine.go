package scoring

import "math"

// CandidateSkill is one extracted skill with its assigned proficiency (0-100).
type CandidateSkill struct {
	Name        string
	Proficiency int
}

// NeutralScore is returned when a position defines no requirements.
const NeutralScore = 50

// Score computes a 0-100 match score for a candidate's skills against a
// position's required skill names.
//
// Skills named in the requirements contribute proficiency * 1.5 and count
// toward a relevance bonus of relevantCount/len(required); skills outside
// the requirements still contribute at full weight. The averaged total is
// scaled by (1 + bonus) and capped at 100. The weighting is a fixed
// contract inherited from the upstream system.
func Score(skills []CandidateSkill, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return NeutralScore
	}
	if len(skills) == 0 {
		return 0
	}

	required := make(map[string]struct{}, len(requiredSkills))
	for _, name := range requiredSkills {
		required[name] = struct{}{}
	}

	var total float64
	relevantCount := 0
	for _, s := range skills {
		if _, ok := required[s.Name]; ok {
			total += float64(s.Proficiency) * 1.5
			relevantCount++
		} else {
			total += float64(s.Proficiency)
		}
	}

	relevanceBonus := float64(relevantCount) / float64(len(requiredSkills))
	rawAverage := total / float64(len(skills))

	final := int(math.Round(rawAverage * (1 + relevanceBonus)))
	if final > 100 {
		return 100
	}
	return final
}
