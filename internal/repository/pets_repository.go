package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/pkg/entity"
)

type PetsRepository struct {
	conn Querier
}

func NewPetsRepoWithConn(conn Querier) *PetsRepository {
	return &PetsRepository{
		conn: conn,
	}
}

func (pr *PetsRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if pet == nil {
		return errors.New("pet is nil")
	}
	_, err := pr.conn.Exec(ctx, `INSERT INTO pets (user_id, name, type, happiness, health, xp, lvl) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		pet.UserID,
		pet.Name,
		pet.Type,
		pet.Happiness,
		pet.Health,
		pet.XP,
		pet.Level,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: one pet per user
			case "23505":
				return errorvalues.ErrUserHasPet
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating pet db error: " + err.Error())
	}
	return nil
}

func (pr *PetsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Pet, error) {
	return pr.get(ctx, uid, `SELECT user_id, name, type, happiness, health, xp, lvl, updated_at FROM pets WHERE user_id = $1;`)
}

// GetByUserIDForUpdate locks the pet row so two concurrent completions for the
// same user serialize instead of losing xp updates.
func (pr *PetsRepository) GetByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.Pet, error) {
	return pr.get(ctx, uid, `SELECT user_id, name, type, happiness, health, xp, lvl, updated_at FROM pets WHERE user_id = $1 FOR UPDATE;`)
}

func (pr *PetsRepository) get(ctx context.Context, uid uuid.UUID, query string) (*entity.Pet, error) {
	var pet entity.Pet
	row := pr.conn.QueryRow(ctx, query, uid)
	if err := row.Scan(&pet.UserID, &pet.Name, &pet.Type, &pet.Happiness, &pet.Health, &pet.XP, &pet.Level, &pet.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPetNotFound
		}
		return nil, errors.New("getting pet error: " + err.Error())
	}
	return &pet, nil
}

func (pr *PetsRepository) UpdateStats(ctx context.Context, pet *entity.Pet) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE pets SET happiness = $1, health = $2, xp = $3, lvl = $4, updated_at = NOW() WHERE user_id = $5;`,
		pet.Happiness,
		pet.Health,
		pet.XP,
		pet.Level,
		pet.UserID,
	)
	if err != nil {
		return errors.New("updating pet stats error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPetNotFound
	}
	return nil
}
