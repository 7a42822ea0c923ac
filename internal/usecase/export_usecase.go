package usecase

import (
	"context"
	"strconv"
	"strings"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/repository"
)

// ExportHeader is the fixed column set of the candidates CSV download.
const ExportHeader = "Name,Email,Position,Score,Status,Skills"

type ExportUsecase interface {
	ExportCSV(ctx context.Context, params CandidateListParams) (string, error)
}

type Export struct {
	candidates repository.CandidateRepository
}

func NewExportUsecase(candidates repository.CandidateRepository) *Export {
	return &Export{candidates: candidates}
}

// ExportCSV renders the (optionally filtered) candidate list as CSV text:
// one double-quoted row per candidate, skill names joined by ", ",
// numeric score left bare.
func (u *Export) ExportCSV(ctx context.Context, params CandidateListParams) (string, error) {
	filter := repository.CandidateFilter{Position: params.Position, SortByScore: params.SortByScore}
	if params.Status != "" {
		st, ok := candidate.ParseStatus(params.Status)
		if !ok {
			return "", ErrInvalidStatus
		}
		filter.Status = st
	}

	candidates, err := u.candidates.List(ctx, filter)
	if err != nil {
		return "", ErrInternal
	}

	var b strings.Builder
	b.WriteString(ExportHeader)
	b.WriteByte('\n')
	for i, c := range candidates {
		if i > 0 {
			b.WriteByte('\n')
		}
		skills := strings.Join(c.Skills.Names(), ", ")
		b.WriteString(`"` + c.Name + `","` + c.Email + `","` + c.Position + `",`)
		b.WriteString(strconv.Itoa(c.Score))
		b.WriteString(`,"` + string(c.Status) + `","` + skills + `"`)
	}
	return b.String(), nil
}
