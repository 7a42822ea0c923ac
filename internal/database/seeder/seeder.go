// Package seeder plants baseline data through the repository interfaces, so
// the same seeders run against the memory store and Postgres alike.
package seeder

import (
	"context"

	"cv-smart-hire/internal/repository"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, positions repository.PositionRepository) error
}
