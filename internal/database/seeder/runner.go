package seeder

import (
	"context"
	"fmt"

	"cv-smart-hire/internal/repository"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, positions repository.PositionRepository) error {
	if positions == nil {
		return fmt.Errorf("nil position repository")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, positions); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

func Defaults() []Seeder {
	return []Seeder{
		PositionsSeeder{},
	}
}
