package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/habipet/backend/pkg/entity"
)

type UserStatsRepository struct {
	conn Querier
}

func NewUserStatsRepoWithConn(conn Querier) *UserStatsRepository {
	return &UserStatsRepository{
		conn: conn,
	}
}

// GetByUserID returns nil without an error when the user has no stats row
// yet; the row is created lazily on first completion.
func (sr *UserStatsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return sr.get(ctx, uid, `SELECT user_id, current_streak, longest_streak, total_habits_completed, lifetime_habits_completed, last_completed_at
		FROM user_stats WHERE user_id = $1;`)
}

func (sr *UserStatsRepository) GetByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return sr.get(ctx, uid, `SELECT user_id, current_streak, longest_streak, total_habits_completed, lifetime_habits_completed, last_completed_at
		FROM user_stats WHERE user_id = $1 FOR UPDATE;`)
}

func (sr *UserStatsRepository) get(ctx context.Context, uid uuid.UUID, query string) (*entity.UserStats, error) {
	var stats entity.UserStats
	row := sr.conn.QueryRow(ctx, query, uid)
	err := row.Scan(&stats.UserID, &stats.CurrentStreak, &stats.LongestStreak, &stats.TotalCompleted, &stats.LifetimeCompleted, &stats.LastCompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting user stats error: " + err.Error())
	}
	return &stats, nil
}

func (sr *UserStatsRepository) Upsert(ctx context.Context, stats *entity.UserStats) error {
	if stats == nil {
		return errors.New("stats is nil")
	}
	_, err := sr.conn.Exec(ctx, `INSERT INTO user_stats (user_id, current_streak, longest_streak, total_habits_completed, lifetime_habits_completed, last_completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			total_habits_completed = EXCLUDED.total_habits_completed,
			lifetime_habits_completed = EXCLUDED.lifetime_habits_completed,
			last_completed_at = EXCLUDED.last_completed_at;`,
		stats.UserID,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.TotalCompleted,
		stats.LifetimeCompleted,
		stats.LastCompletedAt,
	)
	if err != nil {
		return errors.New("upserting user stats error: " + err.Error())
	}
	return nil
}

// DecayCurrentStreak writes a reconciled streak only while the row's last
// completion still predates staleBefore. A row freshened by a concurrent
// completion no longer matches and keeps its newer streak.
func (sr *UserStatsRepository) DecayCurrentStreak(ctx context.Context, uid uuid.UUID, streak int, staleBefore time.Time) error {
	_, err := sr.conn.Exec(ctx, `UPDATE user_stats SET current_streak = $1
		WHERE user_id = $2 AND (last_completed_at IS NULL OR last_completed_at < $3);`, streak, uid, staleBefore)
	if err != nil {
		return errors.New("decaying current streak error: " + err.Error())
	}
	return nil
}
