package usecase

import (
	"context"

	"cv-smart-hire/internal/domain/upload"
	"cv-smart-hire/internal/repository"
)

type UploadUsecase interface {
	List(ctx context.Context) ([]upload.Upload, error)
}

type Uploads struct {
	uploads repository.UploadRepository
}

func NewUploadUsecase(uploads repository.UploadRepository) *Uploads {
	return &Uploads{uploads: uploads}
}

func (u *Uploads) List(ctx context.Context) ([]upload.Upload, error) {
	out, err := u.uploads.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
