package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/pkg/entity"
)

type HabitsRepository struct {
	conn Querier
}

func NewHabitsRepoWithConn(conn Querier) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, title, description, recurrence) VALUES ($1, $2, $3, $4) RETURNING id;`,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.Recurrence,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserHasHabit
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	habit.ID = id
	row := hr.conn.QueryRow(ctx, `SELECT user_id, title, description, recurrence, created_at, updated_at, last_completed_at FROM habits WHERE id = $1;`, id)
	if err := row.Scan(&habit.UserID, &habit.Title, &habit.Description, &habit.Recurrence, &habit.CreatedAt, &habit.UpdatedAt, &habit.LastCompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT id, user_id, title, description, recurrence, created_at, updated_at, last_completed_at
		FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		err = rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.Recurrence, &h.CreatedAt, &h.UpdatedAt, &h.LastCompletedAt)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET title = $1, description = $2, recurrence = $3, updated_at = NOW() WHERE id = $4;`,
		habit.Title, habit.Description, habit.Recurrence, habit.ID,
	)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) SetLastCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET last_completed_at = $1, updated_at = NOW() WHERE id = $2;`, at, id)
	if err != nil {
		return errors.New("error stamping habit completion: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
