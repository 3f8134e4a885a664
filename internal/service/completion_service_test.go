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

type completionEnv struct {
	store         *mocks.MockStoreI
	habits        *mocks.MockHabitsRepositoryI
	pets          *mocks.MockPetsRepositoryI
	stats         *mocks.MockUserStatsRepositoryI
	achievements  *mocks.MockAchievementsRepositoryI
	notifications *mocks.MockNotificationsRepositoryI
}

func newCompletionEnv(ctrl *gomock.Controller) (*service.CompletionService, *completionEnv) {
	env := &completionEnv{
		store:         mocks.NewMockStoreI(ctrl),
		habits:        mocks.NewMockHabitsRepositoryI(ctrl),
		pets:          mocks.NewMockPetsRepositoryI(ctrl),
		stats:         mocks.NewMockUserStatsRepositoryI(ctrl),
		achievements:  mocks.NewMockAchievementsRepositoryI(ctrl),
		notifications: mocks.NewMockNotificationsRepositoryI(ctrl),
	}
	repos := &repository.Repositories{
		Habits:        env.habits,
		Pets:          env.pets,
		Stats:         env.stats,
		Achievements:  env.achievements,
		Notifications: env.notifications,
	}
	env.store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(*repository.Repositories) error) error {
			return fn(repos)
		},
	).AnyTimes()
	return service.NewCompletionService(env.store), env
}

func TestCompleteHabitFullChain(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: userID,
		Title:  "Morning run",
	}, nil)
	env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.Pet{
		UserID:    userID,
		Name:      "Whiskers",
		Type:      "cat",
		Happiness: 50,
		Health:    60,
		XP:        92,
		Level:     3,
	}, nil)
	env.stats.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.UserStats{
		UserID:            userID,
		CurrentStreak:     6,
		LongestStreak:     6,
		TotalCompleted:    24,
		LifetimeCompleted: 24,
		LastCompletedAt:   &yesterday,
	}, nil)
	env.habits.EXPECT().SetLastCompleted(gomock.Any(), habitID, now).Return(nil)
	env.pets.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, pet *entity.Pet) error {
			assert.Equal(t, 2, pet.XP)
			assert.Equal(t, 4, pet.Level)
			assert.Equal(t, 55, pet.Happiness)
			assert.Equal(t, 62, pet.Health)
			return nil
		},
	)
	env.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, stats *entity.UserStats) error {
			assert.Equal(t, 7, stats.CurrentStreak)
			assert.Equal(t, 7, stats.LongestStreak)
			assert.Equal(t, 25, stats.TotalCompleted)
			assert.Equal(t, 25, stats.LifetimeCompleted)
			assert.Equal(t, now, *stats.LastCompletedAt)
			return nil
		},
	)
	env.achievements.EXPECT().ListCatalog(gomock.Any()).Return([]entity.Achievement{
		{ID: 2, Name: "Habit Master", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 10, Icon: "⭐"},
		{ID: 8, Name: "Streak Master", ConditionType: entity.ConditionStreak, ConditionValue: 7, Icon: "⚡"},
	}, nil)
	env.achievements.EXPECT().ListUnlockedIDs(gomock.Any(), userID).Return(map[int64]struct{}{2: {}}, nil)
	env.achievements.EXPECT().InsertUnlock(gomock.Any(), userID, int64(8)).Return(nil)

	var queued []entity.Notification
	env.notifications.EXPECT().ListRecent(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return([]entity.Notification{}, nil).Times(3)
	env.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *entity.Notification) error {
			queued = append(queued, *n)
			return nil
		},
	).Times(3)

	result, err := serv.CompleteHabit(context.Background(), habitID, userID, now)
	require.NoError(t, err)
	assert.Equal(t, 7, result.NewStreak)
	assert.Equal(t, 7, result.LongestStreak)
	assert.Equal(t, 2, result.Pet.XP)
	assert.Equal(t, 4, result.Pet.Level)
	assert.True(t, result.LeveledUp)
	require.Len(t, result.Unlocked, 1)
	assert.Equal(t, "Streak Master", result.Unlocked[0].Name)

	require.Len(t, queued, 3)
	assert.Equal(t, entity.NotificationHabit, queued[0].Type)
	assert.Equal(t, "You completed 'Morning run'! Your streak is now 7 days.", queued[0].Message)
	assert.Equal(t, entity.NotificationPet, queued[1].Type)
	assert.Equal(t, "Whiskers reached level 4!", queued[1].Message)
	assert.Equal(t, entity.NotificationAchievement, queued[2].Type)
	assert.Equal(t, "Achievement unlocked: Streak Master! ⚡", queued[2].Message)
}

func TestCompleteHabitValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Now().UTC()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:  "habit has different owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: uuid.New(),
					Title:  "Morning run",
				}, nil)
			},
		},
		{
			Desc:  "no pet yet",
			Error: errorvalues.ErrPetNotFound,
			MockPrepFunc: func() {
				env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
					ID:     habitID,
					UserID: userID,
					Title:  "Morning run",
				}, nil)
				env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(nil, errorvalues.ErrPetNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.CompleteHabit(ctx, habitID, userID, now)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestCompleteHabitSameDay(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	earlierToday := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: userID,
		Title:  "Read",
	}, nil)
	env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.Pet{
		UserID:    userID,
		Name:      "Pebble",
		Type:      "seal",
		Happiness: 90,
		Health:    90,
		XP:        10,
		Level:     2,
	}, nil)
	env.stats.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.UserStats{
		UserID:            userID,
		CurrentStreak:     6,
		LongestStreak:     9,
		TotalCompleted:    40,
		LifetimeCompleted: 40,
		LastCompletedAt:   &earlierToday,
	}, nil)
	env.habits.EXPECT().SetLastCompleted(gomock.Any(), habitID, now).Return(nil)
	env.pets.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, pet *entity.Pet) error {
			assert.Equal(t, 20, pet.XP)
			assert.Equal(t, 2, pet.Level)
			return nil
		},
	)
	env.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, stats *entity.UserStats) error {
			assert.Equal(t, 6, stats.CurrentStreak)
			assert.Equal(t, 9, stats.LongestStreak)
			assert.Equal(t, 41, stats.TotalCompleted)
			return nil
		},
	)
	env.achievements.EXPECT().ListCatalog(gomock.Any()).Return([]entity.Achievement{}, nil)
	env.achievements.EXPECT().ListUnlockedIDs(gomock.Any(), userID).Return(map[int64]struct{}{}, nil)
	env.notifications.EXPECT().ListRecent(gomock.Any(), userID, entity.NotificationHabit, gomock.Any()).
		Return([]entity.Notification{}, nil)
	env.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := serv.CompleteHabit(context.Background(), habitID, userID, now)
	require.NoError(t, err)
	assert.Equal(t, 6, result.NewStreak)
	assert.False(t, result.LeveledUp)
	assert.Empty(t, result.Unlocked)
}

func TestCompleteHabitFirstEver(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Now().UTC()

	env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: userID,
		Title:  "Stretch",
	}, nil)
	env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.Pet{
		UserID:    userID,
		Name:      "Echo",
		Type:      "bat",
		Happiness: 100,
		Health:    100,
		XP:        0,
		Level:     1,
	}, nil)
	// No stats row yet, the service starts from zero values
	env.stats.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(nil, nil)
	env.habits.EXPECT().SetLastCompleted(gomock.Any(), habitID, now).Return(nil)
	env.pets.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Return(nil)
	env.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, stats *entity.UserStats) error {
			assert.Equal(t, userID, stats.UserID)
			assert.Equal(t, 1, stats.CurrentStreak)
			assert.Equal(t, 1, stats.LongestStreak)
			assert.Equal(t, 1, stats.TotalCompleted)
			assert.Equal(t, 1, stats.LifetimeCompleted)
			return nil
		},
	)
	env.achievements.EXPECT().ListCatalog(gomock.Any()).Return([]entity.Achievement{
		{ID: 1, Name: "Getting Started", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 1, Icon: "🎯"},
	}, nil)
	env.achievements.EXPECT().ListUnlockedIDs(gomock.Any(), userID).Return(map[int64]struct{}{}, nil)
	env.achievements.EXPECT().InsertUnlock(gomock.Any(), userID, int64(1)).Return(nil)
	env.notifications.EXPECT().ListRecent(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return([]entity.Notification{}, nil).Times(2)
	env.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := serv.CompleteHabit(context.Background(), habitID, userID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.NewStreak)
	require.Len(t, result.Unlocked, 1)
	assert.Equal(t, "Getting Started", result.Unlocked[0].Name)
}

func TestCompleteHabitRacedUnlockNotAnnounced(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Now().UTC()

	env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: userID,
		Title:  "Stretch",
	}, nil)
	env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.Pet{
		UserID:    userID,
		Name:      "Echo",
		Type:      "bat",
		Happiness: 100,
		Health:    100,
		XP:        0,
		Level:     1,
	}, nil)
	env.stats.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(nil, nil)
	env.habits.EXPECT().SetLastCompleted(gomock.Any(), habitID, now).Return(nil)
	env.pets.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Return(nil)
	env.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	env.achievements.EXPECT().ListCatalog(gomock.Any()).Return([]entity.Achievement{
		{ID: 1, Name: "Getting Started", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 1, Icon: "🎯"},
	}, nil)
	env.achievements.EXPECT().ListUnlockedIDs(gomock.Any(), userID).Return(map[int64]struct{}{}, nil)
	// Another completion recorded the same unlock first; only the habit
	// notification goes out, no second "Achievement unlocked" message.
	env.achievements.EXPECT().InsertUnlock(gomock.Any(), userID, int64(1)).Return(errorvalues.ErrAchievementUnlocked)
	env.notifications.EXPECT().ListRecent(gomock.Any(), userID, entity.NotificationHabit, gomock.Any()).
		Return([]entity.Notification{}, nil)
	env.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *entity.Notification) error {
			assert.Equal(t, entity.NotificationHabit, n.Type)
			return nil
		},
	)

	result, err := serv.CompleteHabit(context.Background(), habitID, userID, now)
	require.NoError(t, err)
	assert.Empty(t, result.Unlocked)
}

func TestCompleteHabitSuppressesRepeatNotification(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	earlierToday := time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)

	env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: userID,
		Title:  "Read",
	}, nil)
	env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.Pet{
		UserID:    userID,
		Name:      "Pebble",
		Type:      "seal",
		Happiness: 95,
		Health:    95,
		XP:        30,
		Level:     2,
	}, nil)
	env.stats.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.UserStats{
		UserID:            userID,
		CurrentStreak:     3,
		LongestStreak:     5,
		TotalCompleted:    12,
		LifetimeCompleted: 12,
		LastCompletedAt:   &earlierToday,
	}, nil)
	env.habits.EXPECT().SetLastCompleted(gomock.Any(), habitID, now).Return(nil)
	env.pets.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Return(nil)
	env.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	env.achievements.EXPECT().ListCatalog(gomock.Any()).Return([]entity.Achievement{}, nil)
	env.achievements.EXPECT().ListUnlockedIDs(gomock.Any(), userID).Return(map[int64]struct{}{}, nil)
	// A completion of the same habit half an hour ago already produced a
	// notification, so no new one is queued.
	env.notifications.EXPECT().ListRecent(gomock.Any(), userID, entity.NotificationHabit, gomock.Any()).
		Return([]entity.Notification{
			{UserID: userID, Type: entity.NotificationHabit, Message: "You completed 'Read'! Your streak is now 3 days.", CreatedAt: earlierToday},
		}, nil)

	result, err := serv.CompleteHabit(context.Background(), habitID, userID, now)
	require.NoError(t, err)
	assert.Equal(t, 3, result.NewStreak)
}

func TestCompleteHabitAbortsOnFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Now().UTC()

	env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: userID,
		Title:  "Read",
	}, nil)
	env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.Pet{
		UserID: userID,
		Name:   "Echo",
		Type:   "bat",
		XP:     0,
		Level:  1,
	}, nil)
	env.stats.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(nil, nil)
	env.habits.EXPECT().SetLastCompleted(gomock.Any(), habitID, now).Return(nil)
	env.pets.EXPECT().UpdateStats(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

	_, err := serv.CompleteHabit(context.Background(), habitID, userID, now)
	assert.Error(t, err)
}

func TestCompleteHabitStoreUnavailable(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStoreI(ctrl)
	store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(errorvalues.ErrStoreUnavailable)
	serv := service.NewCompletionService(store)

	_, err := serv.CompleteHabit(context.Background(), uuid.New(), uuid.New(), time.Now().UTC())
	assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
}

func TestCompleteHabitCorruptPetState(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, env := newCompletionEnv(ctrl)

	habitID := uuid.New()
	userID := uuid.New()
	now := time.Now().UTC()

	env.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: userID,
		Title:  "Read",
	}, nil)
	// xp outside [0, 100) must abort before any write happens
	env.pets.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(&entity.Pet{
		UserID: userID,
		Name:   "Echo",
		Type:   "bat",
		XP:     120,
		Level:  2,
	}, nil)
	env.stats.EXPECT().GetByUserIDForUpdate(gomock.Any(), userID).Return(nil, nil)

	_, err := serv.CompleteHabit(context.Background(), habitID, userID, now)
	assert.ErrorIs(t, err, errorvalues.ErrInvariantViolation)
}
