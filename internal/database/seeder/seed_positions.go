package seeder

import (
	"context"
	"errors"

	"cv-smart-hire/internal/domain/position"
	"cv-smart-hire/internal/repository"
)

// PositionsSeeder plants the default job openings when they are missing.
// Already-existing titles are left untouched.
type PositionsSeeder struct{}

func (PositionsSeeder) Name() string { return "positions" }

func defaultPositions() []position.Insert {
	return []position.Insert{
		{
			Title:          "Frontend Developer",
			Department:     "Engineering",
			RequiredSkills: []string{"React", "TypeScript", "CSS"},
			Active:         true,
		},
		{
			Title:          "Backend Developer",
			Department:     "Engineering",
			RequiredSkills: []string{"Node.js", "Express", "MongoDB"},
			Active:         true,
		},
		{
			Title:          "UX Designer",
			Department:     "Design",
			RequiredSkills: []string{"Figma", "UI/UX", "Prototyping"},
			Active:         true,
		},
		{
			Title:          "Data Analyst",
			Department:     "Data Science",
			RequiredSkills: []string{"Python", "SQL", "Data Visualization"},
			Active:         true,
		},
	}
}

func (PositionsSeeder) Run(ctx context.Context, positions repository.PositionRepository) error {
	for _, in := range defaultPositions() {
		_, err := positions.FindByTitle(ctx, in.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if _, err := positions.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
