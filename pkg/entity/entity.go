package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Habit struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"uid"`
	Title           string     `json:"title"`
	Description     string     `json:"desc"`
	Recurrence      string     `json:"recurrence"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

type UserStats struct {
	UserID            uuid.UUID  `json:"uid"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	TotalCompleted    int        `json:"total_habits_completed"`
	LifetimeCompleted int        `json:"lifetime_habits_completed"`
	LastCompletedAt   *time.Time `json:"last_completed_at,omitempty"`
}

const (
	PetStatMin = 0
	PetStatMax = 100
)

type Pet struct {
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Happiness int       `json:"happiness"`
	Health    int       `json:"health"`
	XP        int       `json:"xp"`
	Level     int       `json:"lvl"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetTypes is the closed set of selectable pet kinds.
var PetTypes = []string{"cat", "chick", "bat", "seal"}

func IsPetType(t string) bool {
	for _, known := range PetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NewPet builds a starter pet: full happiness and health, level 1, no xp.
func NewPet(uid uuid.UUID, name, petType string) *Pet {
	return &Pet{
		UserID:    uid,
		Name:      name,
		Type:      petType,
		Happiness: PetStatMax,
		Health:    PetStatMax,
		XP:        0,
		Level:     1,
	}
}

// AddHappiness applies a bounded delta, clamped to [0, 100].
func (p *Pet) AddHappiness(delta int) {
	p.Happiness = clampStat(p.Happiness + delta)
}

// AddHealth applies a bounded delta, clamped to [0, 100].
func (p *Pet) AddHealth(delta int) {
	p.Health = clampStat(p.Health + delta)
}

func clampStat(v int) int {
	if v < PetStatMin {
		return PetStatMin
	}
	if v > PetStatMax {
		return PetStatMax
	}
	return v
}

const (
	ConditionStreak          = "streak"
	ConditionHabitsCompleted = "habits_completed"
	ConditionPetLevel        = "pet_level"
)

// Achievement is a static catalog entry, read-only at runtime.
type Achievement struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ConditionType  string `json:"condition_type"`
	ConditionValue int    `json:"condition_value"`
	Icon           string `json:"icon"`
}

type UserAchievement struct {
	UserID        uuid.UUID `json:"uid"`
	AchievementID int64     `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

const (
	NotificationHabit       = "habit"
	NotificationPet         = "pet"
	NotificationAchievement = "achievement"
	NotificationFriend      = "friend"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
