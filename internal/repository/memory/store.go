// Package memory is the default storage backend: mutex-guarded maps with
// per-entity id counters, one instance per process or per test. Id
// assignment happens under the lock, so concurrent ingestion runs can
// interleave inserts without colliding.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/notification"
	"cv-smart-hire/internal/domain/position"
	"cv-smart-hire/internal/domain/upload"
	"cv-smart-hire/internal/repository"
)

type Store struct {
	mu sync.RWMutex

	candidates    map[int]candidate.Candidate
	positions     map[int]position.Position
	uploads       map[int]upload.Upload
	notifications map[int]notification.Notification

	nextCandidateID    int
	nextPositionID     int
	nextUploadID       int
	nextNotificationID int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		candidates:         make(map[int]candidate.Candidate),
		positions:          make(map[int]position.Position),
		uploads:            make(map[int]upload.Upload),
		notifications:      make(map[int]notification.Notification),
		nextCandidateID:    1,
		nextPositionID:     1,
		nextUploadID:       1,
		nextNotificationID: 1,
		now:                time.Now,
	}
}

// Candidate operations

func (s *Store) List(_ context.Context, filter repository.CandidateFilter) ([]candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]candidate.Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		if filter.Position != "" && c.Position != filter.Position {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	if filter.SortByScore {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Score != out[j].Score {
				return out[i].Score > out[j].Score
			}
			return out[i].ID < out[j].ID
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return out, nil
}

func (s *Store) FindByID(_ context.Context, id int) (candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.candidates[id]
	if !ok {
		return candidate.Candidate{}, repository.ErrNotFound
	}
	return c, nil
}

func (s *Store) Create(_ context.Context, in candidate.Insert) (candidate.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := candidate.Candidate{
		ID:         s.nextCandidateID,
		Name:       in.Name,
		Email:      in.Email,
		Position:   in.Position,
		Score:      in.Score,
		Skills:     in.Skills,
		Status:     in.Status,
		Experience: in.Experience,
		Notes:      in.Notes,
		CreatedAt:  s.now(),
	}
	s.nextCandidateID++
	s.candidates[c.ID] = c
	return c, nil
}

func (s *Store) UpdateStatus(_ context.Context, id int, status candidate.Status) (candidate.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return candidate.Candidate{}, repository.ErrNotFound
	}
	c.Status = status
	s.candidates[id] = c
	return c, nil
}

func (s *Store) UpdateNotes(_ context.Context, id int, notes string) (candidate.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return candidate.Candidate{}, repository.ErrNotFound
	}
	c.Notes = notes
	s.candidates[id] = c
	return c, nil
}

// Position operations

func (s *Store) ListPositions(_ context.Context) ([]position.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.positionsWhere(func(position.Position) bool { return true }), nil
}

func (s *Store) ListActivePositions(_ context.Context) ([]position.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.positionsWhere(func(p position.Position) bool { return p.Active }), nil
}

func (s *Store) positionsWhere(keep func(position.Position) bool) []position.Position {
	out := make([]position.Position, 0, len(s.positions))
	for _, p := range s.positions {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) FindPositionByID(_ context.Context, id int) (position.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.positions[id]
	if !ok {
		return position.Position{}, repository.ErrNotFound
	}
	return p, nil
}

func (s *Store) FindPositionByTitle(_ context.Context, title string) (position.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.positions {
		if p.Title == title {
			return p, nil
		}
	}
	return position.Position{}, repository.ErrNotFound
}

func (s *Store) CreatePosition(_ context.Context, in position.Insert) (position.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := position.Position{
		ID:             s.nextPositionID,
		Title:          in.Title,
		Department:     in.Department,
		RequiredSkills: in.RequiredSkills,
		Active:         in.Active,
		CreatedAt:      s.now(),
	}
	s.nextPositionID++
	s.positions[p.ID] = p
	return p, nil
}

// Upload operations

func (s *Store) ListUploads(_ context.Context) ([]upload.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]upload.Upload, 0, len(s.uploads))
	for _, u := range s.uploads {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateUpload(_ context.Context, in upload.Insert) (upload.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := upload.Upload{
		ID:                s.nextUploadID,
		Filename:          in.Filename,
		ProcessedAt:       in.ProcessedAt,
		TotalRecords:      in.TotalRecords,
		SuccessfulRecords: in.SuccessfulRecords,
		FailedRecords:     in.FailedRecords,
	}
	s.nextUploadID++
	s.uploads[u.ID] = u
	return u, nil
}

// Notification operations

func (s *Store) ListNotifications(_ context.Context) ([]notification.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notificationsWhere(func(notification.Notification) bool { return true }), nil
}

func (s *Store) ListUnreadNotifications(_ context.Context) ([]notification.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notificationsWhere(func(n notification.Notification) bool { return !n.Read }), nil
}

func (s *Store) notificationsWhere(keep func(notification.Notification) bool) []notification.Notification {
	out := make([]notification.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if keep(n) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) CreateNotification(_ context.Context, in notification.Insert) (notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := notification.Notification{
		ID:        s.nextNotificationID,
		Message:   in.Message,
		Type:      in.Type,
		Read:      false,
		CreatedAt: s.now(),
	}
	s.nextNotificationID++
	s.notifications[n.ID] = n
	return n, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id int) (notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return notification.Notification{}, repository.ErrNotFound
	}
	n.Read = true
	s.notifications[id] = n
	return n, nil
}
