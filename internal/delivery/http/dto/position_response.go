package dto

import (
	"time"

	"cv-smart-hire/internal/domain/position"
)

const timeLayout = time.RFC3339

type PositionResponse struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	RequiredSkills []string `json:"requiredSkills"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"createdAt"`
}

func NewPositionResponse(p position.Position) PositionResponse {
	return PositionResponse{
		ID:             p.ID,
		Title:          p.Title,
		Department:     p.Department,
		RequiredSkills: p.RequiredSkills,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt.UTC().Format(timeLayout),
	}
}

func NewPositionResponses(items []position.Position) []PositionResponse {
	out := make([]PositionResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewPositionResponse(p))
	}
	return out
}
