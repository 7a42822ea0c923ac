package usecase

import (
	"context"
	"errors"

	"cv-smart-hire/internal/domain/notification"
	"cv-smart-hire/internal/repository"
)

type NotificationUsecase interface {
	List(ctx context.Context) ([]notification.Notification, error)
	ListUnread(ctx context.Context) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id int) (notification.Notification, error)
}

type Notifications struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *Notifications {
	return &Notifications{notifications: notifications}
}

func (u *Notifications) List(ctx context.Context) ([]notification.Notification, error) {
	out, err := u.notifications.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notifications) ListUnread(ctx context.Context) ([]notification.Notification, error) {
	out, err := u.notifications.ListUnread(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notifications) MarkRead(ctx context.Context, id int) (notification.Notification, error) {
	n, err := u.notifications.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notification.Notification{}, ErrNotificationNotFound
		}
		return notification.Notification{}, ErrInternal
	}
	return n, nil
}
