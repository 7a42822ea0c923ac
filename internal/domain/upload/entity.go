package upload

import "time"

// Upload is the audit record for one ingestion run. Written once, never
// updated.
type Upload struct {
	ID                int       `json:"id"`
	Filename          string    `json:"filename"`
	ProcessedAt       time.Time `json:"processedAt"`
	TotalRecords      int       `json:"totalRecords"`
	SuccessfulRecords int       `json:"successfulRecords"`
	FailedRecords     int       `json:"failedRecords"`
}

type Insert struct {
	Filename          string
	ProcessedAt       time.Time
	TotalRecords      int
	SuccessfulRecords int
	FailedRecords     int
}
