package dto

import (
	"cv-smart-hire/internal/domain/upload"
	"cv-smart-hire/internal/usecase"
)

type UploadResponse struct {
	ID                int    `json:"id"`
	Filename          string `json:"filename"`
	ProcessedAt       string `json:"processedAt"`
	TotalRecords      int    `json:"totalRecords"`
	SuccessfulRecords int    `json:"successfulRecords"`
	FailedRecords     int    `json:"failedRecords"`
}

func NewUploadResponse(u upload.Upload) UploadResponse {
	return UploadResponse{
		ID:                u.ID,
		Filename:          u.Filename,
		ProcessedAt:       u.ProcessedAt.UTC().Format(timeLayout),
		TotalRecords:      u.TotalRecords,
		SuccessfulRecords: u.SuccessfulRecords,
		FailedRecords:     u.FailedRecords,
	}
}

func NewUploadResponses(items []upload.Upload) []UploadResponse {
	out := make([]UploadResponse, 0, len(items))
	for _, u := range items {
		out = append(out, NewUploadResponse(u))
	}
	return out
}

type IngestionResponse struct {
	SuccessCount int            `json:"successCount"`
	FailedCount  int            `json:"failedCount"`
	Upload       UploadResponse `json:"upload"`
}

func NewIngestionResponse(res usecase.IngestionResult) IngestionResponse {
	return IngestionResponse{
		SuccessCount: res.SuccessCount,
		FailedCount:  res.FailedCount,
		Upload:       NewUploadResponse(res.Upload),
	}
}
