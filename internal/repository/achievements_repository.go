package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/pkg/entity"
)

type AchievementsRepository struct {
	conn Querier
}

func NewAchievementsRepoWithConn(conn Querier) *AchievementsRepository {
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) ListCatalog(ctx context.Context) ([]entity.Achievement, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, name, description, condition_type, condition_value, icon FROM achievements ORDER BY id;`)
	if err != nil {
		return nil, errors.New("listing achievement catalog error: " + err.Error())
	}
	defer rows.Close()
	catalog := make([]entity.Achievement, 0)
	for rows.Next() {
		var a entity.Achievement
		err = rows.Scan(&a.ID, &a.Name, &a.Description, &a.ConditionType, &a.ConditionValue, &a.Icon)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		catalog = append(catalog, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achievement rows error: " + rows.Err().Error())
	}
	return catalog, nil
}

func (ar *AchievementsRepository) ListUnlockedIDs(ctx context.Context, uid uuid.UUID) (map[int64]struct{}, error) {
	rows, err := ar.conn.Query(ctx, `SELECT achievement_id FROM user_achievements WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("listing unlocked achievements error: " + err.Error())
	}
	defer rows.Close()
	unlocked := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("unlocked achievement row parsing error: " + err.Error())
		}
		unlocked[id] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected unlocked rows error: " + rows.Err().Error())
	}
	return unlocked, nil
}

// InsertUnlock records the unlock at most once; re-inserting the same pair is
// reported so the caller doesn't queue a duplicate notification.
func (ar *AchievementsRepository) InsertUnlock(ctx context.Context, uid uuid.UUID, achievementID int64) error {
	_, err := ar.conn.Exec(ctx, `INSERT INTO user_achievements (user_id, achievement_id) VALUES ($1, $2);`, uid, achievementID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: already unlocked
			case "23505":
				return errorvalues.ErrAchievementUnlocked
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("inserting achievement unlock error: " + err.Error())
	}
	return nil
}

func (ar *AchievementsRepository) SeedCatalog(ctx context.Context, entries []entity.Achievement) error {
	for _, a := range entries {
		_, err := ar.conn.Exec(ctx, `INSERT INTO achievements (name, description, condition_type, condition_value, icon)
			VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING;`,
			a.Name,
			a.Description,
			a.ConditionType,
			a.ConditionValue,
			a.Icon,
		)
		if err != nil {
			return errors.New("seeding achievement catalog error: " + err.Error())
		}
	}
	return nil
}
