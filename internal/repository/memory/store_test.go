package memory

import (
	"context"
	"sync"
	"testing"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/notification"
	"cv-smart-hire/internal/domain/position"
	"cv-smart-hire/internal/repository"
)

func TestStore_CandidateIDsMonotonic(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		c, err := s.Create(ctx, candidate.Insert{Name: "x", Email: "x@example.com", Position: "p", Status: candidate.StatusPending})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.ID != i {
			t.Fatalf("expected id %d, got %d", i, c.ID)
		}
		if c.CreatedAt.IsZero() {
			t.Fatalf("expected createdAt to be set")
		}
	}
}

func TestStore_ConcurrentCreatesAssignUniqueIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := s.Create(ctx, candidate.Insert{Name: "x", Email: "x@example.com", Position: "p", Status: candidate.StatusPending})
			if err != nil {
				t.Errorf("unexpected err: %v", err)
				return
			}
			ids <- c.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}

func TestStore_ListFilters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	mk := func(pos string, st candidate.Status, score int) {
		if _, err := s.Create(ctx, candidate.Insert{Name: "x", Email: "x@example.com", Position: pos, Status: st, Score: score}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	mk("Frontend Developer", candidate.StatusShortlisted, 95)
	mk("Frontend Developer", candidate.StatusRejected, 40)
	mk("Backend Developer", candidate.StatusShortlisted, 91)

	got, err := s.List(ctx, repository.CandidateFilter{Position: "Frontend Developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}

	got, err = s.List(ctx, repository.CandidateFilter{Status: candidate.StatusShortlisted, SortByScore: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0].Score < got[1].Score {
		t.Fatalf("expected score-descending order")
	}
}

func TestStore_UpdateStatusAndNotes(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	c, err := s.Create(ctx, candidate.Insert{Name: "x", Email: "x@example.com", Position: "p", Status: candidate.StatusPending})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	upd, err := s.UpdateStatus(ctx, c.ID, candidate.StatusShortlisted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upd.Status != candidate.StatusShortlisted {
		t.Fatalf("status not updated: %q", upd.Status)
	}

	upd, err = s.UpdateNotes(ctx, c.ID, "strong portfolio")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if upd.Notes != "strong portfolio" {
		t.Fatalf("notes not updated: %q", upd.Notes)
	}

	if _, err := s.UpdateStatus(ctx, 999, candidate.StatusReview); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_PositionLookup(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if _, err := s.CreatePosition(ctx, position.Insert{Title: "UX Designer", Department: "Design", RequiredSkills: []string{"Figma"}, Active: true}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.CreatePosition(ctx, position.Insert{Title: "Old Role", Department: "Ops", Active: false}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	p, err := s.FindPositionByTitle(ctx, "UX Designer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.RequiredSkills[0] != "Figma" {
		t.Fatalf("unexpected skills: %v", p.RequiredSkills)
	}

	if _, err := s.FindPositionByTitle(ctx, "Nonexistent"); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	active, err := s.ListActivePositions(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(active) != 1 || active[0].Title != "UX Designer" {
		t.Fatalf("unexpected active positions: %v", active)
	}
}

func TestStore_NotificationsMarkRead(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	n, err := s.CreateNotification(ctx, notification.Insert{Message: "m", Type: notification.TypeUploadComplete})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n.Read {
		t.Fatalf("new notification should be unread")
	}

	unread, err := s.ListUnreadNotifications(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected 1 unread, got %d", len(unread))
	}

	if _, err := s.MarkNotificationRead(ctx, n.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	unread, err = s.ListUnreadNotifications(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("expected 0 unread, got %d", len(unread))
	}
}
