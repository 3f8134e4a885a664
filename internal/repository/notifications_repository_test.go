package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/pkg/entity"
)

func TestCreateNotification(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotificationsRepoWithConn(mock)
	notification := entity.Notification{
		UserID:  userID,
		Type:    entity.NotificationHabit,
		Message: "You completed 'Morning run'! Your streak is now 7 days.",
	}
	query := regexp.QuoteMeta(`INSERT INTO notifications (user_id, type, message) VALUES ($1, $2, $3);`)
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(notification.UserID, notification.Type, notification.Message).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &notification)
		assert.NoError(t, err)
	})
	t.Run("nil notification", func(t *testing.T) {
		err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(notification.UserID, notification.Type, notification.Message).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &notification)
		assert.Error(t, err)
	})
}

func TestListRecentNotifications(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotificationsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, type, message, read, created_at FROM notifications
			WHERE user_id = $1 AND type = $2 AND created_at >= $3;`)
	now := time.Now()
	since := now.Add(-time.Hour)
	ctx := context.Background()
	t.Run("recent listed", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, entity.NotificationPet, since).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "message", "read", "created_at"}).
				AddRow(int64(3), userID, entity.NotificationPet, "Whiskers is feeling sad. Complete a habit to cheer them up!", false, now.Add(-30*time.Minute)),
			)
		recent, err := repo.ListRecent(ctx, userID, entity.NotificationPet, since)
		assert.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, entity.NotificationPet, recent[0].Type)
	})
	t.Run("nothing recent", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, entity.NotificationPet, since).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "message", "read", "created_at"}))
		recent, err := repo.ListRecent(ctx, userID, entity.NotificationPet, since)
		assert.NoError(t, err)
		assert.Empty(t, recent)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, entity.NotificationPet, since).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListRecent(ctx, userID, entity.NotificationPet, since)
		assert.Error(t, err)
	})
}

func TestListNotificationsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotificationsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, type, message, read, created_at FROM notifications
			WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`)
	now := time.Now()
	ctx := context.Background()
	t.Run("page listed", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, 20, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "message", "read", "created_at"}).
				AddRow(int64(2), userID, entity.NotificationAchievement, "Achievement unlocked: Streak Beginner!", false, now).
				AddRow(int64(1), userID, entity.NotificationHabit, "You completed 'Morning run'! Your streak is now 3 days.", true, now.Add(-time.Minute)),
			)
		result, err := repo.ListByUser(ctx, userID, 20, 0)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int64(2), result[0].ID)
		assert.True(t, result[1].Read)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, 20, 0).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, userID, 20, 0)
		assert.Error(t, err)
	})
}

func TestMarkNotificationRead(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotificationsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2;`)
	ctx := context.Background()
	t.Run("marked", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.MarkRead(ctx, 1, userID)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.MarkRead(ctx, 1, userID)
		assert.ErrorIs(t, err, errorvalues.ErrNotificationNotFound)
	})
}

func TestDeleteNotification(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotificationsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM notifications WHERE id = $1 AND user_id = $2;`)
	ctx := context.Background()
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, 1, userID)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, 1, userID)
		assert.ErrorIs(t, err, errorvalues.ErrNotificationNotFound)
	})
}

func TestCountUnread(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotificationsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE;`)
	ctx := context.Background()
	t.Run("counted", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
		count, err := repo.CountUnread(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 4, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.CountUnread(ctx, userID)
		assert.Error(t, err)
	})
}
