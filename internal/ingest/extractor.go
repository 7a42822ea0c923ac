package ingest

import (
	"math/rand"
	"strings"

	"cv-smart-hire/internal/domain/candidate"
)

// ProficiencyFunc assigns a 0-100 proficiency to an extracted skill name.
// The upstream system has no real analysis behind this number, so the
// strategy is injected: production uses a random placeholder, tests use a
// fixed one.
type ProficiencyFunc func(skill string) int

// RandomProficiency draws uniformly from [70,100].
func RandomProficiency(r *rand.Rand) ProficiencyFunc {
	return func(string) int {
		return 70 + r.Intn(31)
	}
}

// FixedProficiency assigns the same value to every skill.
func FixedProficiency(v int) ProficiencyFunc {
	return func(string) int {
		return v
	}
}

// ExtractSkills splits a comma-separated skills string into an ordered
// skills map. Tokens are trimmed, empty tokens dropped, and a repeated name
// overwrites its score while keeping the first occurrence's position.
func ExtractSkills(raw string, prof ProficiencyFunc) candidate.Skills {
	skills := candidate.Skills{}
	for _, tok := range strings.Split(raw, ",") {
		name := strings.TrimSpace(tok)
		if name == "" {
			continue
		}
		skills = skills.Set(name, prof(name))
	}
	return skills
}

// ExtractExperience splits a semicolon-separated experience string into
// entries of up to three pipe-separated parts (company, role, years).
// Incomplete tokens leave the trailing parts empty; an empty input yields
// nil.
func ExtractExperience(raw string) []candidate.Experience {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var out []candidate.Experience
	for _, seg := range strings.Split(raw, ";") {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		parts := strings.Split(seg, "|")
		var entry candidate.Experience
		if len(parts) > 0 {
			entry.Company = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			entry.Role = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			entry.Years = strings.TrimSpace(parts[2])
		}
		out = append(out, entry)
	}
	return out
}
