package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"cv-smart-hire/internal/database"
	"cv-smart-hire/internal/domain/candidate"
)

// ErrNotFound is returned by lookups for ids or titles that do not exist.
var ErrNotFound = errors.New("not found")

type CandidateFilter struct {
	Position    string
	Status      candidate.Status
	SortByScore bool
}

type CandidateRepository interface {
	List(ctx context.Context, filter CandidateFilter) ([]candidate.Candidate, error)
	FindByID(ctx context.Context, id int) (candidate.Candidate, error)
	Create(ctx context.Context, in candidate.Insert) (candidate.Candidate, error)
	UpdateStatus(ctx context.Context, id int, status candidate.Status) (candidate.Candidate, error)
	UpdateNotes(ctx context.Context, id int, notes string) (candidate.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, name, email, position, score, skills, status, experience, notes, created_at`

func (r *PostgresCandidateRepository) List(ctx context.Context, filter CandidateFilter) ([]candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`

	var conds []string
	var args []any
	if filter.Position != "" {
		args = append(args, filter.Position)
		conds = append(conds, "position = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.SortByScore {
		query += " ORDER BY score DESC, id ASC"
	} else {
		query += " ORDER BY id ASC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id int) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if isNoRows(err) {
			return candidate.Candidate{}, ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, in candidate.Insert) (candidate.Candidate, error) {
	skillsJSON, err := json.Marshal(in.Skills)
	if err != nil {
		return candidate.Candidate{}, err
	}
	var expJSON []byte
	if in.Experience != nil {
		expJSON, err = json.Marshal(in.Experience)
		if err != nil {
			return candidate.Candidate{}, err
		}
	}

	c := candidate.Candidate{
		Name:       in.Name,
		Email:      in.Email,
		Position:   in.Position,
		Score:      in.Score,
		Skills:     in.Skills,
		Status:     in.Status,
		Experience: in.Experience,
		Notes:      in.Notes,
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO candidates (name, email, position, score, skills, status, experience, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		in.Name, in.Email, in.Position, in.Score, skillsJSON, string(in.Status), expJSON, in.Notes,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) UpdateStatus(ctx context.Context, id int, status candidate.Status) (candidate.Candidate, error) {
	n, err := r.db.Exec(ctx, `UPDATE candidates SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if n == 0 {
		return candidate.Candidate{}, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *PostgresCandidateRepository) UpdateNotes(ctx context.Context, id int, notes string) (candidate.Candidate, error) {
	n, err := r.db.Exec(ctx, `UPDATE candidates SET notes = $1 WHERE id = $2`, notes, id)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if n == 0 {
		return candidate.Candidate{}, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(s scanner) (candidate.Candidate, error) {
	var (
		c          candidate.Candidate
		skillsJSON []byte
		expJSON    []byte
		status     string
		notes      *string
	)
	if err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Position, &c.Score, &skillsJSON, &status, &expJSON, &notes, &c.CreatedAt); err != nil {
		return candidate.Candidate{}, err
	}
	c.Status = candidate.Status(status)
	if notes != nil {
		c.Notes = *notes
	}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &c.Skills); err != nil {
			return candidate.Candidate{}, err
		}
	}
	if len(expJSON) > 0 {
		if err := json.Unmarshal(expJSON, &c.Experience); err != nil {
			return candidate.Candidate{}, err
		}
	}
	return c, nil
}
