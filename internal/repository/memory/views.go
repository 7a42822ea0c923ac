package memory

import (
	"context"

	"cv-smart-hire/internal/domain/candidate"
	"cv-smart-hire/internal/domain/notification"
	"cv-smart-hire/internal/domain/position"
	"cv-smart-hire/internal/domain/upload"
	"cv-smart-hire/internal/repository"
)

// Per-entity views over the shared store, one per repository interface.

func (s *Store) Candidates() repository.CandidateRepository { return candidateView{s} }
func (s *Store) Positions() repository.PositionRepository   { return positionView{s} }
func (s *Store) Uploads() repository.UploadRepository       { return uploadView{s} }
func (s *Store) Notifications() repository.NotificationRepository {
	return notificationView{s}
}

type candidateView struct{ s *Store }

func (v candidateView) List(ctx context.Context, f repository.CandidateFilter) ([]candidate.Candidate, error) {
	return v.s.List(ctx, f)
}
func (v candidateView) FindByID(ctx context.Context, id int) (candidate.Candidate, error) {
	return v.s.FindByID(ctx, id)
}
func (v candidateView) Create(ctx context.Context, in candidate.Insert) (candidate.Candidate, error) {
	return v.s.Create(ctx, in)
}
func (v candidateView) UpdateStatus(ctx context.Context, id int, st candidate.Status) (candidate.Candidate, error) {
	return v.s.UpdateStatus(ctx, id, st)
}
func (v candidateView) UpdateNotes(ctx context.Context, id int, notes string) (candidate.Candidate, error) {
	return v.s.UpdateNotes(ctx, id, notes)
}

type positionView struct{ s *Store }

func (v positionView) List(ctx context.Context) ([]position.Position, error) {
	return v.s.ListPositions(ctx)
}
func (v positionView) ListActive(ctx context.Context) ([]position.Position, error) {
	return v.s.ListActivePositions(ctx)
}
func (v positionView) FindByID(ctx context.Context, id int) (position.Position, error) {
	return v.s.FindPositionByID(ctx, id)
}
func (v positionView) FindByTitle(ctx context.Context, title string) (position.Position, error) {
	return v.s.FindPositionByTitle(ctx, title)
}
func (v positionView) Create(ctx context.Context, in position.Insert) (position.Position, error) {
	return v.s.CreatePosition(ctx, in)
}

type uploadView struct{ s *Store }

func (v uploadView) List(ctx context.Context) ([]upload.Upload, error) {
	return v.s.ListUploads(ctx)
}
func (v uploadView) Create(ctx context.Context, in upload.Insert) (upload.Upload, error) {
	return v.s.CreateUpload(ctx, in)
}

type notificationView struct{ s *Store }

func (v notificationView) List(ctx context.Context) ([]notification.Notification, error) {
	return v.s.ListNotifications(ctx)
}
func (v notificationView) ListUnread(ctx context.Context) ([]notification.Notification, error) {
	return v.s.ListUnreadNotifications(ctx)
}
func (v notificationView) Create(ctx context.Context, in notification.Insert) (notification.Notification, error) {
	return v.s.CreateNotification(ctx, in)
}
func (v notificationView) MarkRead(ctx context.Context, id int) (notification.Notification, error) {
	return v.s.MarkNotificationRead(ctx, id)
}
