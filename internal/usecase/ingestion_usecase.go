package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/notification"
	"cv-smart-hire/internal/domain/scoring"
	"cv-smart-hire/internal/domain/upload"
	"cv-smart-hire/internal/ingest"
	"cv-smart-hire/internal/repository"
	"cv-smart-hire/internal/ws"
)

// IngestionResult summarizes one completed run. Partial success is the
// normal outcome; FailedCount only reports it, it is not an error.
type IngestionResult struct {
	SuccessCount int
	FailedCount  int
	Upload       upload.Upload
}

type IngestionUsecase interface {
	Ingest(ctx context.Context, csvText, positionTitle, filename string) (IngestionResult, error)
}

type Ingestion struct {
	candidates    repository.CandidateRepository
	positions     repository.PositionRepository
	uploads       repository.UploadRepository
	notifications repository.NotificationRepository

	proficiency ingest.ProficiencyFunc
	cache       StatsCache
	logger      *log.Logger
}

func NewIngestionUsecase(
	candidates repository.CandidateRepository,
	positions repository.PositionRepository,
	uploads repository.UploadRepository,
	notifications repository.NotificationRepository,
	proficiency ingest.ProficiencyFunc,
	cache StatsCache,
	logger *log.Logger,
) *Ingestion {
	if proficiency == nil {
		proficiency = ingest.RandomProficiency(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Ingestion{
		candidates:    candidates,
		positions:     positions,
		uploads:       uploads,
		notifications: notifications,
		proficiency:   proficiency,
		cache:         cache,
		logger:        logger,
	}
}

// Ingest runs the whole intake pipeline over one uploaded CSV. A file that
// does not parse at all aborts before anything is written; row-level
// failures are counted and skipped. Side effects land in a fixed order:
// candidates, then the upload audit record, then the notification.
func (u *Ingestion) Ingest(ctx context.Context, csvText, positionTitle, filename string) (IngestionResult, error) {
	records, err := ingest.Parse(strings.NewReader(csvText))
	if err != nil {
		return IngestionResult{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	requiredSkills := u.resolveRequiredSkills(ctx, positionTitle)

	successCount := 0
	failedCount := 0
	for i, rec := range records {
		if err := u.processRecord(ctx, rec, requiredSkills); err != nil {
			failedCount++
			u.logger.Printf("Ingestion row failed | file=%s row=%d error=%v", filename, i+1, err)
			continue
		}
		successCount++
	}

	uploadRecord, err := u.uploads.Create(ctx, upload.Insert{
		Filename:          filename,
		ProcessedAt:       time.Now().UTC(),
		TotalRecords:      len(records),
		SuccessfulRecords: successCount,
		FailedRecords:     failedCount,
	})
	if err != nil {
		return IngestionResult{}, fmt.Errorf("create upload record: %w", err)
	}

	n, err := u.notifications.Create(ctx, notification.Insert{
		Message: fmt.Sprintf("Processed %d candidates from %s", successCount, filename),
		Type:    notification.TypeUploadComplete,
	})
	if err != nil {
		return IngestionResult{}, fmt.Errorf("create notification: %w", err)
	}
	ws.NotifyNotificationCreated(n)

	if u.cache != nil {
		_ = u.cache.Delete(ctx, statsCacheKey)
	}

	u.logger.Printf("Ingestion complete | file=%s total=%d success=%d failed=%d", filename, len(records), successCount, failedCount)

	return IngestionResult{
		SuccessCount: successCount,
		FailedCount:  failedCount,
		Upload:       uploadRecord,
	}, nil
}

// resolveRequiredSkills degrades an unknown position title to empty
// requirements; the scoring engine then yields the neutral score.
func (u *Ingestion) resolveRequiredSkills(ctx context.Context, title string) []string {
	p, err := u.positions.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			u.logger.Printf("Ingestion position unknown | title=%q", title)
		} else {
			u.logger.Printf("Ingestion position lookup failed | title=%q error=%v", title, err)
		}
		return nil
	}
	return p.RequiredSkills
}

func (u *Ingestion) processRecord(ctx context.Context, rec ingest.Record, requiredSkills []string) error {
	row, err := ingest.ValidateRecord(rec)
	if err != nil {
		return err
	}

	skills := ingest.ExtractSkills(row.Skills, u.proficiency)
	experience := ingest.ExtractExperience(row.Experience)

	engineSkills := make([]scoring.CandidateSkill, 0, len(skills))
	for _, s := range skills {
		engineSkills = append(engineSkills, scoring.CandidateSkill{Name: s.Name, Proficiency: s.Score})
	}
	score := scoring.Score(engineSkills, requiredSkills)

	_, err = u.candidates.Create(ctx, candidate.Insert{
		Name:       row.Name,
		Email:      row.Email,
		Position:   row.Position,
		Score:      score,
		Skills:     skills,
		Status:     scoring.Classify(score),
		Experience: experience,
		Notes:      "",
	})
	return err
}
