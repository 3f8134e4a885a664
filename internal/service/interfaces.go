package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habipet/backend/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"max=1000"`
	Recurrence  string `validate:"omitempty,oneof=daily weekly"`
}

type CreatePetRequest struct {
	Name string `validate:"required,min=1,max=100"`
	Type string `validate:"required"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// AchievementStatus is a catalog entry flagged with the caller's progress.
type AchievementStatus struct {
	entity.Achievement
	Unlocked bool `json:"unlocked"`
}

// CompletionResult is the snapshot returned after a successful completion.
type CompletionResult struct {
	NewStreak     int                  `json:"current_streak"`
	LongestStreak int                  `json:"longest_streak"`
	Pet           *entity.Pet          `json:"pet"`
	LeveledUp     bool                 `json:"leveled_up"`
	Unlocked      []entity.Achievement `json:"unlocked_achievements"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type PetServiceI interface {
	CreatePet(ctx context.Context, uid uuid.UUID, req *CreatePetRequest) (*entity.Pet, error)
	// GetPet applies passive decay for days without activity before returning
	GetPet(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.Pet, error)
}

type StatsServiceI interface {
	// GetStats reconciles the stored streak with the calendar before returning
	GetStats(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.UserStats, error)
}

type AchievementsServiceI interface {
	SeedDefaults(ctx context.Context) error
	ListForUser(ctx context.Context, uid uuid.UUID) ([]AchievementStatus, error)
}

type NotificationServiceI interface {
	List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id int64, uid uuid.UUID) error
	Delete(ctx context.Context, id int64, uid uuid.UUID) error
	CountUnread(ctx context.Context, uid uuid.UUID) (int, error)
}

type CompletionServiceI interface {
	// CompleteHabit runs the whole completion chain in one transaction
	CompleteHabit(ctx context.Context, habitID, userID uuid.UUID, now time.Time) (*CompletionResult, error)
}
