package progression_test

import (
	"testing"

	"github.com/habipet/backend/internal/progression"
	"github.com/habipet/backend/pkg/entity"
	"github.com/stretchr/testify/assert"
)

var testCatalog = []entity.Achievement{
	{ID: 1, Name: "Getting Started", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 1},
	{ID: 2, Name: "Habit Master", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 10},
	{ID: 3, Name: "Streak Beginner", ConditionType: entity.ConditionStreak, ConditionValue: 3},
	{ID: 4, Name: "Streak Master", ConditionType: entity.ConditionStreak, ConditionValue: 7},
	{ID: 5, Name: "Pet Novice", ConditionType: entity.ConditionPetLevel, ConditionValue: 5},
}

func TestEvaluateAchievements(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc        string
		Stats       entity.UserStats
		PetLevel    int
		Unlocked    map[int64]struct{}
		ExpectedIDs []int64
	}{
		{
			Desc:        "fresh user unlocks first completion",
			Stats:       entity.UserStats{CurrentStreak: 1, TotalCompleted: 1},
			PetLevel:    1,
			Unlocked:    map[int64]struct{}{},
			ExpectedIDs: []int64{1},
		},
		{
			Desc:        "already unlocked never reappears",
			Stats:       entity.UserStats{CurrentStreak: 1, TotalCompleted: 5},
			PetLevel:    1,
			Unlocked:    map[int64]struct{}{1: {}},
			ExpectedIDs: nil,
		},
		{
			Desc:        "large jump unlocks several at once in catalog order",
			Stats:       entity.UserStats{CurrentStreak: 8, TotalCompleted: 25},
			PetLevel:    6,
			Unlocked:    map[int64]struct{}{},
			ExpectedIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			Desc:        "threshold compare is inclusive",
			Stats:       entity.UserStats{CurrentStreak: 3, TotalCompleted: 10},
			PetLevel:    5,
			Unlocked:    map[int64]struct{}{1: {}},
			ExpectedIDs: []int64{2, 3, 5},
		},
		{
			Desc:        "below every threshold unlocks nothing",
			Stats:       entity.UserStats{CurrentStreak: 0, TotalCompleted: 0},
			PetLevel:    1,
			Unlocked:    map[int64]struct{}{},
			ExpectedIDs: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			newly := progression.EvaluateAchievements(tc.Stats, tc.PetLevel, testCatalog, tc.Unlocked)
			var ids []int64
			for _, a := range newly {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tc.ExpectedIDs, ids)
		})
	}
}

// Evaluation is a pure function: calling it twice with identical inputs must
// return the same list both times.
func TestEvaluateAchievementsIdempotent(t *testing.T) {
	t.Parallel()
	stats := entity.UserStats{CurrentStreak: 7, TotalCompleted: 12}
	unlocked := map[int64]struct{}{3: {}}
	first := progression.EvaluateAchievements(stats, 5, testCatalog, unlocked)
	second := progression.EvaluateAchievements(stats, 5, testCatalog, unlocked)
	assert.Equal(t, first, second)
}

func TestEvaluateAchievementsUnknownConditionSkipped(t *testing.T) {
	t.Parallel()
	catalog := []entity.Achievement{
		{ID: 9, Name: "Mystery", ConditionType: "friend_count", ConditionValue: 1},
	}
	newly := progression.EvaluateAchievements(entity.UserStats{TotalCompleted: 100}, 100, catalog, map[int64]struct{}{})
	assert.Empty(t, newly)
}
