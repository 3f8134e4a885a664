package progression

import (
	"github.com/habipet/backend/pkg/entity"
)

// EvaluateAchievements returns catalog entries the user newly qualifies for.
// Pure: same stats, catalog and unlocked set always produce the same list,
// in catalog order, with no cap on how many qualify at once. Already
// unlocked entries never reappear. Persisting the unlocks is the caller's job.
func EvaluateAchievements(stats entity.UserStats, petLevel int, catalog []entity.Achievement, unlocked map[int64]struct{}) []entity.Achievement {
	var newly []entity.Achievement
	for _, a := range catalog {
		if _, done := unlocked[a.ID]; done {
			continue
		}
		var current int
		switch a.ConditionType {
		case entity.ConditionStreak:
			current = stats.CurrentStreak
		case entity.ConditionHabitsCompleted:
			current = stats.TotalCompleted
		case entity.ConditionPetLevel:
			current = petLevel
		default:
			continue
		}
		if current >= a.ConditionValue {
			newly = append(newly, a)
		}
	}
	return newly
}
