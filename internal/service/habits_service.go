package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/pkg/entity"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = "daily"
	}
	h := entity.Habit{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Recurrence:  recurrence,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, errorvalues.ErrUserHasHabit
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	habit.Title = req.Title
	habit.Description = req.Description
	if req.Recurrence != "" {
		habit.Recurrence = req.Recurrence
	}
	err = hs.repo.Update(ctx, habit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
