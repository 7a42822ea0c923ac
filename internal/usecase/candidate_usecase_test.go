package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/notification"
	"cv-smart-hire/internal/domain/position"
	"cv-smart-hire/internal/repository"
)

type stubCandidateRepo struct {
	byID map[int]candidate.Candidate
	list []candidate.Candidate
}

func (m *stubCandidateRepo) List(_ context.Context, f repository.CandidateFilter) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, 0, len(m.list))
	for _, c := range m.list {
		if f.Position != "" && c.Position != f.Position {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (m *stubCandidateRepo) FindByID(_ context.Context, id int) (candidate.Candidate, error) {
	c, ok := m.byID[id]
	if !ok {
		return candidate.Candidate{}, repository.ErrNotFound
	}
	return c, nil
}
func (m *stubCandidateRepo) Create(_ context.Context, in candidate.Insert) (candidate.Candidate, error) {
	return candidate.Candidate{}, nil
}
func (m *stubCandidateRepo) UpdateStatus(_ context.Context, id int, st candidate.Status) (candidate.Candidate, error) {
	c, ok := m.byID[id]
	if !ok {
		return candidate.Candidate{}, repository.ErrNotFound
	}
	c.Status = st
	m.byID[id] = c
	return c, nil
}
func (m *stubCandidateRepo) UpdateNotes(_ context.Context, id int, notes string) (candidate.Candidate, error) {
	c, ok := m.byID[id]
	if !ok {
		return candidate.Candidate{}, repository.ErrNotFound
	}
	c.Notes = notes
	m.byID[id] = c
	return c, nil
}

type stubPositionRepo struct {
	byID map[int]position.Position
}

func (m *stubPositionRepo) List(context.Context) ([]position.Position, error)       { return nil, nil }
func (m *stubPositionRepo) ListActive(context.Context) ([]position.Position, error) { return nil, nil }
func (m *stubPositionRepo) FindByID(_ context.Context, id int) (position.Position, error) {
	p, ok := m.byID[id]
	if !ok {
		return position.Position{}, repository.ErrNotFound
	}
	return p, nil
}
func (m *stubPositionRepo) FindByTitle(context.Context, string) (position.Position, error) {
	return position.Position{}, repository.ErrNotFound
}
func (m *stubPositionRepo) Create(context.Context, position.Insert) (position.Position, error) {
	return position.Position{}, nil
}

type stubNotificationRepo struct {
	created []notification.Insert
}

func (m *stubNotificationRepo) List(context.Context) ([]notification.Notification, error) {
	return nil, nil
}
func (m *stubNotificationRepo) ListUnread(context.Context) ([]notification.Notification, error) {
	return nil, nil
}
func (m *stubNotificationRepo) Create(_ context.Context, in notification.Insert) (notification.Notification, error) {
	m.created = append(m.created, in)
	return notification.Notification{ID: len(m.created), Message: in.Message, Type: in.Type}, nil
}
func (m *stubNotificationRepo) MarkRead(context.Context, int) (notification.Notification, error) {
	return notification.Notification{}, repository.ErrNotFound
}

func newTestCandidates(cands *stubCandidateRepo, pos *stubPositionRepo, notifs *stubNotificationRepo) *Candidates {
	if cands == nil {
		cands = &stubCandidateRepo{byID: map[int]candidate.Candidate{}}
	}
	if pos == nil {
		pos = &stubPositionRepo{byID: map[int]position.Position{}}
	}
	if notifs == nil {
		notifs = &stubNotificationRepo{}
	}
	return NewCandidateUsecase(cands, pos, notifs, log.New(io.Discard, "", 0))
}

func TestCandidates_UpdateStatus(t *testing.T) {
	cands := &stubCandidateRepo{byID: map[int]candidate.Candidate{
		7: {ID: 7, Name: "Alice", Status: candidate.StatusPending},
	}}
	notifs := &stubNotificationRepo{}
	uc := newTestCandidates(cands, nil, notifs)

	c, err := uc.UpdateStatus(context.Background(), 7, "shortlisted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Status != candidate.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %q", c.Status)
	}

	if len(notifs.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs.created))
	}
	n := notifs.created[0]
	if n.Type != notification.TypeStatusChange {
		t.Fatalf("unexpected notification type %q", n.Type)
	}
	if n.Message != "Candidate Alice has been marked as shortlisted" {
		t.Fatalf("unexpected message %q", n.Message)
	}
}

func TestCandidates_UpdateStatus_InvalidValue(t *testing.T) {
	uc := newTestCandidates(nil, nil, nil)

	for _, bad := range []string{"", "Shortlisted", "SHORTLISTED", "hired"} {
		if _, err := uc.UpdateStatus(context.Background(), 1, bad); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus for %q, got %v", bad, err)
		}
	}
}

func TestCandidates_UpdateStatus_NotFound(t *testing.T) {
	uc := newTestCandidates(nil, nil, nil)
	if _, err := uc.UpdateStatus(context.Background(), 404, "review"); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCandidates_UpdateNotes(t *testing.T) {
	cands := &stubCandidateRepo{byID: map[int]candidate.Candidate{
		1: {ID: 1, Name: "Alice"},
	}}
	uc := newTestCandidates(cands, nil, nil)

	c, err := uc.UpdateNotes(context.Background(), 1, "call back next week")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Notes != "call back next week" {
		t.Fatalf("unexpected notes %q", c.Notes)
	}
}

func TestCandidates_List_RejectsBadStatusFilter(t *testing.T) {
	uc := newTestCandidates(nil, nil, nil)
	if _, err := uc.List(context.Background(), CandidateListParams{Status: "nope"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCandidates_RankForPosition(t *testing.T) {
	cands := &stubCandidateRepo{list: []candidate.Candidate{
		{ID: 1, Name: "Weak", Skills: candidate.Skills{{Name: "Go", Score: 90}}},
		{ID: 2, Name: "Strong", Position: "Frontend Developer", Skills: candidate.Skills{
			{Name: "React", Score: 95}, {Name: "CSS", Score: 90},
		}},
	}}
	pos := &stubPositionRepo{byID: map[int]position.Position{
		3: {ID: 3, Title: "Frontend Developer", RequiredSkills: []string{"React", "CSS"}},
	}}
	uc := newTestCandidates(cands, pos, nil)

	ranked, err := uc.RankForPosition(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked, got %d", len(ranked))
	}
	if ranked[0].Candidate.ID != 2 {
		t.Fatalf("expected strongest candidate first, got id %d", ranked[0].Candidate.ID)
	}

	if _, err := uc.RankForPosition(context.Background(), 404); !errors.Is(err, ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}
