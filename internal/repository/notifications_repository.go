package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/pkg/entity"
)

type NotificationsRepository struct {
	conn Querier
}

func NewNotificationsRepoWithConn(conn Querier) *NotificationsRepository {
	return &NotificationsRepository{
		conn: conn,
	}
}

func (nr *NotificationsRepository) Create(ctx context.Context, n *entity.Notification) error {
	if n == nil {
		return errors.New("notification is nil")
	}
	_, err := nr.conn.Exec(ctx, `INSERT INTO notifications (user_id, type, message) VALUES ($1, $2, $3);`,
		n.UserID,
		n.Type,
		n.Message,
	)
	if err != nil {
		return errors.New("creating notification error: " + err.Error())
	}
	return nil
}

func (nr *NotificationsRepository) ListRecent(ctx context.Context, uid uuid.UUID, category string, since time.Time) ([]entity.Notification, error) {
	rows, err := nr.conn.Query(ctx, `SELECT id, user_id, type, message, read, created_at FROM notifications
		WHERE user_id = $1 AND type = $2 AND created_at >= $3;`, uid, category, since)
	if err != nil {
		return nil, errors.New("listing recent notifications error: " + err.Error())
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (nr *NotificationsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	rows, err := nr.conn.Query(ctx, `SELECT id, user_id, type, message, read, created_at FROM notifications
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing notifications error: " + err.Error())
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (nr *NotificationsRepository) MarkRead(ctx context.Context, id int64, uid uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("marking notification read error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotificationNotFound
	}
	return nil
}

func (nr *NotificationsRepository) Delete(ctx context.Context, id int64, uid uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting notification error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotificationNotFound
	}
	return nil
}

func (nr *NotificationsRepository) CountUnread(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := nr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting unread notifications error: " + err.Error())
	}
	return count, nil
}

func scanNotifications(rows pgx.Rows) ([]entity.Notification, error) {
	result := make([]entity.Notification, 0)
	for rows.Next() {
		var n entity.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, errors.New("notification row parsing error: " + err.Error())
		}
		result = append(result, n)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected notification rows error: " + rows.Err().Error())
	}
	return result, nil
}
