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
)

func TestWithinTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := repository.NewStoreWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE user_stats SET current_streak = $1
		WHERE user_id = $2 AND (last_completed_at IS NULL OR last_completed_at < $3);`)
	ctx := context.Background()
	cutoff := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	t.Run("commits after successful run", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).WithArgs(3, userID, cutoff).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		err := store.WithinTx(ctx, func(r *repository.Repositories) error {
			return r.Stats.DecayCurrentStreak(ctx, userID, 3, cutoff)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("rolls back when the callback fails", func(t *testing.T) {
		stepErr := errors.New("step failed")
		mock.ExpectBegin()
		mock.ExpectExec(query).WithArgs(3, userID, cutoff).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectRollback()
		err := store.WithinTx(ctx, func(r *repository.Repositories) error {
			if err := r.Stats.DecayCurrentStreak(ctx, userID, 3, cutoff); err != nil {
				return err
			}
			return stepErr
		})
		assert.ErrorIs(t, err, stepErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("begin failure reports store unavailable", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("no connection"))
		err := store.WithinTx(ctx, func(r *repository.Repositories) error {
			t.Error("callback must not run without a transaction")
			return nil
		})
		assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
	})
	t.Run("commit failure reports store unavailable", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection lost"))
		mock.ExpectRollback()
		err := store.WithinTx(ctx, func(r *repository.Repositories) error {
			return nil
		})
		assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
	})
}
