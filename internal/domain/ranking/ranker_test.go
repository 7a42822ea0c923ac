package ranking

import (
	"testing"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/position"
)

func TestMatchScore_NoRequirements(t *testing.T) {
	c := candidate.Candidate{
		Skills: candidate.Skills{{Name: "Go", Score: 90}},
	}
	// skillMatch 50*0.7 + experience 40*0.2 = 35 + 8 = 43
	if got := MatchScore(c, position.Position{Title: "Backend Developer"}); got != 43 {
		t.Fatalf("expected 43, got %d", got)
	}
}

func TestMatchScore_NoOverlapFloor(t *testing.T) {
	c := candidate.Candidate{
		Skills: candidate.Skills{{Name: "Cooking", Score: 99}},
	}
	p := position.Position{Title: "Chef", RequiredSkills: []string{"Go"}}
	// skillMatch 30*0.7 + experience 40*0.2 = 21 + 8 = 29
	if got := MatchScore(c, p); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
}

func TestMatchScore_TitleRelevanceBoost(t *testing.T) {
	base := candidate.Candidate{
		Skills: candidate.Skills{{Name: "React", Score: 80}},
	}
	p := position.Position{Title: "Frontend Developer", RequiredSkills: []string{"React"}}

	without := MatchScore(base, p)

	boosted := base
	boosted.Position = "frontend developer"
	with := MatchScore(boosted, p)

	if with != without+10 {
		t.Fatalf("expected +10 title boost, got %d vs %d", with, without)
	}
}

func TestMatchScore_ExperienceDepth(t *testing.T) {
	p := position.Position{Title: "Backend Developer", RequiredSkills: []string{"Go"}}
	shallow := candidate.Candidate{
		Skills:     candidate.Skills{{Name: "Go", Score: 80}},
		Experience: []candidate.Experience{{Company: "A"}},
	}
	deep := shallow
	deep.Experience = []candidate.Experience{
		{Company: "A"}, {Company: "B"}, {Company: "C"}, {Company: "D"},
	}
	if MatchScore(deep, p) <= MatchScore(shallow, p) {
		t.Fatalf("more experience should rank higher")
	}
}

func TestRank_Order(t *testing.T) {
	p := position.Position{Title: "Frontend Developer", RequiredSkills: []string{"React", "CSS"}}
	weak := candidate.Candidate{ID: 1, Skills: candidate.Skills{{Name: "Go", Score: 90}}}
	strong := candidate.Candidate{
		ID:       2,
		Position: "Frontend Developer",
		Skills:   candidate.Skills{{Name: "React", Score: 95}, {Name: "CSS", Score: 85}},
	}

	ranked := Rank([]candidate.Candidate{weak, strong}, p)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked candidates, got %d", len(ranked))
	}
	if ranked[0].Candidate.ID != 2 {
		t.Fatalf("expected candidate 2 first, got %d", ranked[0].Candidate.ID)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Fatalf("expected descending scores, got %d then %d", ranked[0].Score, ranked[1].Score)
	}
}
