package dto

import "cv-smart-hire/internal/domain/candidate"

type CandidateResponse struct {
	ID         int                    `json:"id"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Position   string                 `json:"position"`
	Score      int                    `json:"score"`
	Skills     candidate.Skills       `json:"skills"`
	Status     string                 `json:"status"`
	Experience []candidate.Experience `json:"experience"`
	Notes      string                 `json:"notes"`
	CreatedAt  string                 `json:"createdAt"`
}

func NewCandidateResponse(c candidate.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Position:   c.Position,
		Score:      c.Score,
		Skills:     c.Skills,
		Status:     string(c.Status),
		Experience: c.Experience,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt.UTC().Format(timeLayout),
	}
}

func NewCandidateResponses(items []candidate.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCandidateResponse(c))
	}
	return out
}
