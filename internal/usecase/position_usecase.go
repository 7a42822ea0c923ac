package usecase

import (
	"context"
	"strings"

	"cv-smart-hire/internal/domain/position"
	"cv-smart-hire/internal/repository"
)

type PositionCreateParams struct {
	Title          string
	Department     string
	RequiredSkills []string
	Active         bool
}

type PositionUsecase interface {
	List(ctx context.Context) ([]position.Position, error)
	ListActive(ctx context.Context) ([]position.Position, error)
	Create(ctx context.Context, params PositionCreateParams) (position.Position, error)
}

type Positions struct {
	positions repository.PositionRepository
}

func NewPositionUsecase(positions repository.PositionRepository) *Positions {
	return &Positions{positions: positions}
}

func (u *Positions) List(ctx context.Context) ([]position.Position, error) {
	out, err := u.positions.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Positions) ListActive(ctx context.Context) ([]position.Position, error) {
	out, err := u.positions.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Positions) Create(ctx context.Context, params PositionCreateParams) (position.Position, error) {
	title := strings.TrimSpace(params.Title)
	department := strings.TrimSpace(params.Department)
	if title == "" || department == "" {
		return position.Position{}, ErrInvalidPosition
	}

	skills := make([]string, 0, len(params.RequiredSkills))
	for _, s := range params.RequiredSkills {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}

	p, err := u.positions.Create(ctx, position.Insert{
		Title:          title,
		Department:     department,
		RequiredSkills: skills,
		Active:         params.Active,
	})
	if err != nil {
		return position.Position{}, ErrInternal
	}
	return p, nil
}
