package repository

import (
	"context"

	"cv-smart-hire/internal/database"
	"cv-smart-hire/internal/domain/notification"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]notification.Notification, error)
	ListUnread(ctx context.Context) ([]notification.Notification, error)
	Create(ctx context.Context, in notification.Insert) (notification.Notification, error)
	MarkRead(ctx context.Context, id int) (notification.Notification, error)
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

const notificationColumns = `id, message, type, read, created_at`

func (r *PostgresNotificationRepository) List(ctx context.Context) ([]notification.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY id ASC`)
}

func (r *PostgresNotificationRepository) ListUnread(ctx context.Context) ([]notification.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE NOT read ORDER BY id ASC`)
}

func (r *PostgresNotificationRepository) list(ctx context.Context, query string) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, in notification.Insert) (notification.Notification, error) {
	n := notification.Notification{Message: in.Message, Type: in.Type}
	row := r.db.QueryRow(ctx, `
		INSERT INTO notifications (message, type)
		VALUES ($1, $2)
		RETURNING id, read, created_at`,
		in.Message, in.Type,
	)
	if err := row.Scan(&n.ID, &n.Read, &n.CreatedAt); err != nil {
		return notification.Notification{}, err
	}
	return n, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id int) (notification.Notification, error) {
	affected, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return notification.Notification{}, err
	}
	if affected == 0 {
		return notification.Notification{}, ErrNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	var n notification.Notification
	if err := row.Scan(&n.ID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
		return notification.Notification{}, err
	}
	return n, nil
}
