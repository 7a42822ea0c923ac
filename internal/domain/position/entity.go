package position

import "time"

// Position is a job opening. Title is the unique key the ingestion pipeline
// matches against; RequiredSkills keeps its stored order.
type Position struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	RequiredSkills []string  `json:"requiredSkills"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Insert struct {
	Title          string
	Department     string
	RequiredSkills []string
	Active         bool
}
