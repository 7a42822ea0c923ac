package usecase

import "errors"

var (
	ErrInternal             = errors.New("internal error")
	ErrCandidateNotFound    = errors.New("candidate not found")
	ErrPositionNotFound     = errors.New("position not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidPosition      = errors.New("invalid position")
	ErrInvalidCSV           = errors.New("invalid CSV format")
	ErrEmptyFile            = errors.New("empty file")
)
