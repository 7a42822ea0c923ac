package usecase

import (
	"context"
	"fmt"
	"time"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/repository"
)

const (
	statsCacheKey = "stats:overview"
	statsCacheTTL = 30 * time.Second

	// The dashboard assumes ten minutes of manual review saved per CV.
	minutesSavedPerCV = 10
)

// StatsCache is the slice of the cache the stats usecase needs. The Redis
// wrapper satisfies it; a nil cache disables caching entirely.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Stats struct {
	TotalCVs              int     `json:"totalCVs"`
	ShortlistedCandidates int     `json:"shortlistedCandidates"`
	ActivePositions       int     `json:"activePositions"`
	TimeSaved             string  `json:"timeSaved"`
	LastUpload            *string `json:"lastUpload"`
}

type StatsUsecase interface {
	Overview(ctx context.Context) (Stats, error)
}

type StatsService struct {
	candidates repository.CandidateRepository
	uploads    repository.UploadRepository
	positions  repository.PositionRepository
	cache      StatsCache
}

func NewStatsUsecase(
	candidates repository.CandidateRepository,
	uploads repository.UploadRepository,
	positions repository.PositionRepository,
	cache StatsCache,
) *StatsService {
	return &StatsService{candidates: candidates, uploads: uploads, positions: positions, cache: cache}
}

func (u *StatsService) Overview(ctx context.Context) (Stats, error) {
	if u.cache != nil {
		var cached Stats
		if hit, err := u.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidates, err := u.candidates.List(ctx, repository.CandidateFilter{})
	if err != nil {
		return Stats{}, ErrInternal
	}
	uploads, err := u.uploads.List(ctx)
	if err != nil {
		return Stats{}, ErrInternal
	}
	active, err := u.positions.ListActive(ctx)
	if err != nil {
		return Stats{}, ErrInternal
	}

	shortlisted := 0
	for _, c := range candidates {
		if c.Status == candidate.StatusShortlisted {
			shortlisted++
		}
	}

	timeSavedHours := len(candidates) * minutesSavedPerCV / 60

	stats := Stats{
		TotalCVs:              len(candidates),
		ShortlistedCandidates: shortlisted,
		ActivePositions:       len(active),
		TimeSaved:             fmt.Sprintf("%d hrs", timeSavedHours),
	}
	if len(uploads) > 0 {
		last := uploads[len(uploads)-1].ProcessedAt.UTC().Format(time.RFC3339)
		stats.LastUpload = &last
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL)
	}

	return stats, nil
}
