package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/internal/repository/mocks"
	"github.com/habipet/backend/internal/service"
	"github.com/habipet/backend/pkg/entity"
)

func TestCreateHabitService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	userID := uuid.New()
	habitID := uuid.New()
	req := service.CreateHabitRequest{
		Title:       "Morning run",
		Description: "5km around the park",
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, habit *entity.Habit) (uuid.UUID, error) {
						assert.Equal(t, "daily", habit.Recurrence)
						return habitID, nil
					},
				)
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:          habitID,
					UserID:      userID,
					Title:       req.Title,
					Description: req.Description,
					Recurrence:  "daily",
				}, nil)
			},
		},
		{
			Desc:  "duplicate habit",
			Error: errorvalues.ErrUserHasHabit,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrUserHasHabit)
			},
		},
		{
			Desc:  "owner doesn't exist",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			habit, err := serv.CreateHabit(ctx, userID, &req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, habitID, habit.ID)
		})
	}
}

func TestGetHabitService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	userID := uuid.New()
	habitID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: userID,
			Title:  "Read",
		}, nil)
		habit, err := serv.GetHabit(ctx, habitID, userID)
		assert.NoError(t, err)
		assert.Equal(t, "Read", habit.Title)
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: uuid.New(),
			Title:  "Read",
		}, nil)
		_, err := serv.GetHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
		_, err := serv.GetHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestUpdateHabitService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	userID := uuid.New()
	habitID := uuid.New()
	ctx := context.Background()
	req := service.CreateHabitRequest{
		Title:      "Evening run",
		Recurrence: "weekly",
	}
	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:         habitID,
			UserID:     userID,
			Title:      "Morning run",
			Recurrence: "daily",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, habit *entity.Habit) error {
				assert.Equal(t, "Evening run", habit.Title)
				assert.Equal(t, "weekly", habit.Recurrence)
				return nil
			},
		)
		habit, err := serv.UpdateHabit(ctx, habitID, userID, &req)
		require.NoError(t, err)
		assert.Equal(t, "Evening run", habit.Title)
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.UpdateHabit(ctx, habitID, userID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestDeleteHabitService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	userID := uuid.New()
	habitID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: userID,
		}, nil)
		repo.EXPECT().Delete(gomock.Any(), habitID).Return(nil)
		assert.NoError(t, serv.DeleteHabit(ctx, habitID, userID))
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
			ID:     habitID,
			UserID: uuid.New(),
		}, nil)
		assert.ErrorIs(t, serv.DeleteHabit(ctx, habitID, userID), errorvalues.ErrWrongOwner)
	})
	t.Run("repo failure", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errors.New("db down"))
		assert.Error(t, serv.DeleteHabit(ctx, habitID, userID))
	})
}

// TestProgressionIntegrational walks the whole flow against a real database:
// register, create habit and pet, complete the habit, check stats and the
// unlocked starter achievement.
func TestProgressionIntegrational(t *testing.T) {
	dbCfg := setupUsersTestDB(t)
	store := repository.NewStore(dbCfg)
	us := service.NewUserService(repository.NewUsersRepo(dbCfg))
	hs := service.NewHabitsService(store.Repos().Habits)
	ps := service.NewPetService(store)
	cs := service.NewCompletionService(store)
	ss := service.NewStatsService(store.Repos().Stats)
	as := service.NewAchievementsService(store.Repos().Achievements)
	ctx := context.Background()

	require.NoError(t, as.SeedDefaults(ctx))

	user, err := us.Register(ctx, &service.RegisterRequest{
		Name:     "integration_user",
		Password: "test_password",
	})
	require.NoError(t, err)

	habit, err := hs.CreateHabit(ctx, user.ID, &service.CreateHabitRequest{
		Title:       "Morning run",
		Description: "5km around the park",
	})
	require.NoError(t, err)

	t.Run("completion without a pet is rejected", func(t *testing.T) {
		_, err := cs.CompleteHabit(ctx, habit.ID, user.ID, time.Now().UTC())
		assert.ErrorIs(t, err, errorvalues.ErrPetNotFound)
	})

	pet, err := ps.CreatePet(ctx, user.ID, &service.CreatePetRequest{
		Name: "Whiskers",
		Type: "cat",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pet.Level)

	now := time.Now().UTC()
	t.Run("first completion", func(t *testing.T) {
		result, err := cs.CompleteHabit(ctx, habit.ID, user.ID, now)
		require.NoError(t, err)
		assert.Equal(t, 1, result.NewStreak)
		assert.Equal(t, 10, result.Pet.XP)
		assert.False(t, result.LeveledUp)
		var names []string
		for _, a := range result.Unlocked {
			names = append(names, a.Name)
		}
		assert.Contains(t, names, "Getting Started")
	})
	t.Run("same day completion keeps streak flat", func(t *testing.T) {
		result, err := cs.CompleteHabit(ctx, habit.ID, user.ID, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, result.NewStreak)
		assert.Equal(t, 20, result.Pet.XP)
	})
	t.Run("stats reflect both completions", func(t *testing.T) {
		stats, err := ss.GetStats(ctx, user.ID, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, stats.CurrentStreak)
		assert.Equal(t, 2, stats.TotalCompleted)
	})
	t.Run("achievement list marks unlocks", func(t *testing.T) {
		list, err := as.ListForUser(ctx, user.ID)
		require.NoError(t, err)
		unlockedNames := map[string]bool{}
		for _, a := range list {
			if a.Unlocked {
				unlockedNames[a.Name] = true
			}
		}
		assert.True(t, unlockedNames["Getting Started"])
		assert.False(t, unlockedNames["Habit Master"])
	})
}
