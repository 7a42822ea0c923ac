package notification

import "time"

const (
	TypeUploadComplete = "upload_complete"
	TypeStatusChange   = "status_change"
)

type Notification struct {
	ID        int       `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type Insert struct {
	Message string
	Type    string
}
