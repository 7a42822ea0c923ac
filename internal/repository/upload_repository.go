package repository

import (
	"context"

	"cv-smart-hire/internal/database"
	"cv-smart-hire/internal/domain/upload"
)

type UploadRepository interface {
	List(ctx context.Context) ([]upload.Upload, error)
	Create(ctx context.Context, in upload.Insert) (upload.Upload, error)
}

type PostgresUploadRepository struct {
	db database.DB
}

func NewPostgresUploadRepository(db database.DB) *PostgresUploadRepository {
	return &PostgresUploadRepository{db: db}
}

func (r *PostgresUploadRepository) List(ctx context.Context) ([]upload.Upload, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, filename, processed_at, total_records, successful_records, failed_records
		FROM uploads ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]upload.Upload, 0)
	for rows.Next() {
		var u upload.Upload
		if err := rows.Scan(&u.ID, &u.Filename, &u.ProcessedAt, &u.TotalRecords, &u.SuccessfulRecords, &u.FailedRecords); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUploadRepository) Create(ctx context.Context, in upload.Insert) (upload.Upload, error) {
	u := upload.Upload{
		Filename:          in.Filename,
		ProcessedAt:       in.ProcessedAt,
		TotalRecords:      in.TotalRecords,
		SuccessfulRecords: in.SuccessfulRecords,
		FailedRecords:     in.FailedRecords,
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO uploads (filename, processed_at, total_records, successful_records, failed_records)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.Filename, in.ProcessedAt, in.TotalRecords, in.SuccessfulRecords, in.FailedRecords,
	)
	if err := row.Scan(&u.ID); err != nil {
		return upload.Upload{}, err
	}
	return u, nil
}
