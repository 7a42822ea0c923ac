package repository

import (
	"context"
	"encoding/json"

	"cv-smart-hire/internal/database"
	"cv-smart-hire/internal/domain/position"
)

type PositionRepository interface {
	List(ctx context.Context) ([]position.Position, error)
	ListActive(ctx context.Context) ([]position.Position, error)
	FindByID(ctx context.Context, id int) (position.Position, error)
	FindByTitle(ctx context.Context, title string) (position.Position, error)
	Create(ctx context.Context, in position.Insert) (position.Position, error)
}

type PostgresPositionRepository struct {
	db database.DB
}

func NewPostgresPositionRepository(db database.DB) *PostgresPositionRepository {
	return &PostgresPositionRepository{db: db}
}

const positionColumns = `id, title, department, required_skills, active, created_at`

func (r *PostgresPositionRepository) List(ctx context.Context) ([]position.Position, error) {
	return r.list(ctx, `SELECT `+positionColumns+` FROM positions ORDER BY id ASC`)
}

func (r *PostgresPositionRepository) ListActive(ctx context.Context) ([]position.Position, error) {
	return r.list(ctx, `SELECT `+positionColumns+` FROM positions WHERE active ORDER BY id ASC`)
}

func (r *PostgresPositionRepository) list(ctx context.Context, query string, args ...any) ([]position.Position, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]position.Position, 0)
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPositionRepository) FindByID(ctx context.Context, id int) (position.Position, error) {
	row := r.db.QueryRow(ctx, `SELECT `+positionColumns+` FROM positions WHERE id = $1`, id)
	p, err := scanPosition(row)
	if err != nil {
		if isNoRows(err) {
			return position.Position{}, ErrNotFound
		}
		return position.Position{}, err
	}
	return p, nil
}

func (r *PostgresPositionRepository) FindByTitle(ctx context.Context, title string) (position.Position, error) {
	row := r.db.QueryRow(ctx, `SELECT `+positionColumns+` FROM positions WHERE title = $1`, title)
	p, err := scanPosition(row)
	if err != nil {
		if isNoRows(err) {
			return position.Position{}, ErrNotFound
		}
		return position.Position{}, err
	}
	return p, nil
}

func (r *PostgresPositionRepository) Create(ctx context.Context, in position.Insert) (position.Position, error) {
	skillsJSON, err := json.Marshal(in.RequiredSkills)
	if err != nil {
		return position.Position{}, err
	}

	p := position.Position{
		Title:          in.Title,
		Department:     in.Department,
		RequiredSkills: in.RequiredSkills,
		Active:         in.Active,
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO positions (title, department, required_skills, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		in.Title, in.Department, skillsJSON, in.Active,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return position.Position{}, err
	}
	return p, nil
}

func scanPosition(s scanner) (position.Position, error) {
	var (
		p          position.Position
		skillsJSON []byte
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Department, &skillsJSON, &p.Active, &p.CreatedAt); err != nil {
		return position.Position{}, err
	}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &p.RequiredSkills); err != nil {
			return position.Position{}, err
		}
	}
	return p, nil
}
