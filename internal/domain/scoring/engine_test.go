package scoring

import "testing"

func TestScore_NoRequirementsIsNeutral(t *testing.T) {
	cases := [][]CandidateSkill{
		nil,
		{{Name: "Go", Proficiency: 100}},
		{{Name: "React", Proficiency: 10}, {Name: "CSS", Proficiency: 90}},
	}
	for _, skills := range cases {
		if got := Score(skills, nil); got != NeutralScore {
			t.Fatalf("expected %d for empty requirements, got %d", NeutralScore, got)
		}
	}
}

func TestScore_EmptySkillsIsZero(t *testing.T) {
	if got := Score(nil, []string{"Go"}); got != 0 {
		t.Fatalf("expected 0 for empty skills, got %d", got)
	}
}

func TestScore_CappedAt100(t *testing.T) {
	skills := []CandidateSkill{
		{Name: "React", Proficiency: 100},
		{Name: "TypeScript", Proficiency: 100},
	}
	if got := Score(skills, []string{"React", "TypeScript"}); got != 100 {
		t.Fatalf("expected cap at 100, got %d", got)
	}
}

func TestScore_MatchedSkillsWeighted(t *testing.T) {
	// One matched skill at proficiency 80 against a single requirement:
	// total = 80*1.5 = 120, bonus = 1, avg = 120, capped to 100.
	matched := Score([]CandidateSkill{{Name: "Go", Proficiency: 80}}, []string{"Go"})
	if matched != 100 {
		t.Fatalf("expected 100, got %d", matched)
	}

	// Same proficiency but irrelevant: total = 80, bonus = 0, score 80.
	unmatched := Score([]CandidateSkill{{Name: "Rust", Proficiency: 80}}, []string{"Go"})
	if unmatched != 80 {
		t.Fatalf("expected 80, got %d", unmatched)
	}
}

func TestScore_MonotonicInMatchedProficiency(t *testing.T) {
	required := []string{"React", "TypeScript", "CSS", "Figma"}
	prev := -1
	// Stays below the 100 cap up to proficiency 40 with this shape.
	for prof := 10; prof <= 40; prof += 10 {
		skills := []CandidateSkill{
			{Name: "React", Proficiency: prof},
			{Name: "TypeScript", Proficiency: prof},
		}
		got := Score(skills, required)
		if got <= prev {
			t.Fatalf("score not increasing: prof=%d score=%d prev=%d", prof, got, prev)
		}
		prev = got
	}
}

func TestScore_UnmatchedSkillsStillContribute(t *testing.T) {
	withIrrelevant := Score([]CandidateSkill{
		{Name: "React", Proficiency: 40},
		{Name: "Cooking", Proficiency: 90},
	}, []string{"React", "TypeScript"})

	withoutIrrelevant := Score([]CandidateSkill{
		{Name: "React", Proficiency: 40},
	}, []string{"React", "TypeScript"})

	if withIrrelevant <= withoutIrrelevant {
		t.Fatalf("irrelevant skill should not be zeroed out: with=%d without=%d", withIrrelevant, withoutIrrelevant)
	}
}
