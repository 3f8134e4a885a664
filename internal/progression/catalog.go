package progression

import "github.com/habipet/backend/pkg/entity"

// DefaultCatalog returns the built-in achievement set. Seeded insert-if-absent
// by name at startup, so redeploys never duplicate entries.
func DefaultCatalog() []entity.Achievement {
	return []entity.Achievement{
		{Name: "Getting Started", Description: "Complete your first habit", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 1, Icon: "🎯"},
		{Name: "Habit Master", Description: "Complete 10 habits", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 10, Icon: "⭐"},
		{Name: "Habit Champion", Description: "Complete 50 habits", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 50, Icon: "🏅"},
		{Name: "Habit Legend", Description: "Complete 100 habits", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 100, Icon: "💫"},
		{Name: "Habit Virtuoso", Description: "Complete 500 habits", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 500, Icon: "✨"},
		{Name: "Habit Deity", Description: "Complete 1000 habits", ConditionType: entity.ConditionHabitsCompleted, ConditionValue: 1000, Icon: "🌟"},
		{Name: "Streak Beginner", Description: "Maintain a 3-day streak", ConditionType: entity.ConditionStreak, ConditionValue: 3, Icon: "🔥"},
		{Name: "Streak Master", Description: "Maintain a 7-day streak", ConditionType: entity.ConditionStreak, ConditionValue: 7, Icon: "⚡"},
		{Name: "Streak Legend", Description: "Maintain a 30-day streak", ConditionType: entity.ConditionStreak, ConditionValue: 30, Icon: "🌪️"},
		{Name: "Streak Warrior", Description: "Maintain a 60-day streak", ConditionType: entity.ConditionStreak, ConditionValue: 60, Icon: "⚔️"},
		{Name: "Streak Champion", Description: "Maintain a 100-day streak", ConditionType: entity.ConditionStreak, ConditionValue: 100, Icon: "🏆"},
		{Name: "Streak Immortal", Description: "Maintain a 365-day streak", ConditionType: entity.ConditionStreak, ConditionValue: 365, Icon: "👑"},
		{Name: "Pet Novice", Description: "Reach pet level 5", ConditionType: entity.ConditionPetLevel, ConditionValue: 5, Icon: "🐣"},
		{Name: "Pet Master", Description: "Reach pet level 10", ConditionType: entity.ConditionPetLevel, ConditionValue: 10, Icon: "🐉"},
		{Name: "Pet Legend", Description: "Reach pet level 20", ConditionType: entity.ConditionPetLevel, ConditionValue: 20, Icon: "🐲"},
		{Name: "Pet Guardian", Description: "Reach pet level 30", ConditionType: entity.ConditionPetLevel, ConditionValue: 30, Icon: "🦁"},
		{Name: "Pet Deity", Description: "Reach pet level 50", ConditionType: entity.ConditionPetLevel, ConditionValue: 50, Icon: "🦄"},
		{Name: "Pet Celestial", Description: "Reach pet level 100", ConditionType: entity.ConditionPetLevel, ConditionValue: 100, Icon: "🌠"},
	}
}
