package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/notification"
	"cv-smart-hire/internal/domain/ranking"
	"cv-smart-hire/internal/repository"
	"cv-smart-hire/internal/ws"
)

type CandidateListParams struct {
	Position    string
	Status      string
	SortByScore bool
}

type CandidateUsecase interface {
	List(ctx context.Context, params CandidateListParams) ([]candidate.Candidate, error)
	Get(ctx context.Context, id int) (candidate.Candidate, error)
	UpdateStatus(ctx context.Context, id int, status string) (candidate.Candidate, error)
	UpdateNotes(ctx context.Context, id int, notes string) (candidate.Candidate, error)
	RankForPosition(ctx context.Context, positionID int) ([]ranking.RankedCandidate, error)
}

type Candidates struct {
	candidates    repository.CandidateRepository
	positions     repository.PositionRepository
	notifications repository.NotificationRepository
	logger        *log.Logger
}

func NewCandidateUsecase(
	candidates repository.CandidateRepository,
	positions repository.PositionRepository,
	notifications repository.NotificationRepository,
	logger *log.Logger,
) *Candidates {
	if logger == nil {
		logger = log.Default()
	}
	return &Candidates{candidates: candidates, positions: positions, notifications: notifications, logger: logger}
}

func (u *Candidates) List(ctx context.Context, params CandidateListParams) ([]candidate.Candidate, error) {
	filter := repository.CandidateFilter{
		Position:    params.Position,
		SortByScore: params.SortByScore,
	}
	if params.Status != "" {
		st, ok := candidate.ParseStatus(params.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter.Status = st
	}

	out, err := u.candidates.List(ctx, filter)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Candidates) Get(ctx context.Context, id int) (candidate.Candidate, error) {
	c, err := u.candidates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}
	return c, nil
}

// UpdateStatus applies an explicit review transition and records a
// status-change notification.
func (u *Candidates) UpdateStatus(ctx context.Context, id int, status string) (candidate.Candidate, error) {
	st, ok := candidate.ParseStatus(status)
	if !ok {
		return candidate.Candidate{}, ErrInvalidStatus
	}

	c, err := u.candidates.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}

	n, err := u.notifications.Create(ctx, notification.Insert{
		Message: fmt.Sprintf("Candidate %s has been marked as %s", c.Name, st),
		Type:    notification.TypeStatusChange,
	})
	if err != nil {
		// The transition itself succeeded; the missing notification is
		// only logged.
		u.logger.Printf("Status change notification failed | candidate_id=%d error=%v", id, err)
	} else {
		ws.NotifyNotificationCreated(n)
	}

	return c, nil
}

func (u *Candidates) UpdateNotes(ctx context.Context, id int, notes string) (candidate.Candidate, error) {
	c, err := u.candidates.UpdateNotes(ctx, id, notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}
	return c, nil
}

// RankForPosition re-scores every stored candidate against one position
// with the weighted ranking formula. Stored scores are left as they were.
func (u *Candidates) RankForPosition(ctx context.Context, positionID int) ([]ranking.RankedCandidate, error) {
	p, err := u.positions.FindByID(ctx, positionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, ErrInternal
	}

	all, err := u.candidates.List(ctx, repository.CandidateFilter{})
	if err != nil {
		return nil, ErrInternal
	}

	return ranking.Rank(all, p), nil
}
