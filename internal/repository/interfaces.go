package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habipet/backend/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database, returns generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Only UserID, Title, Description, Recurrence are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Stamps the habit's last completion moment
	SetLastCompleted(ctx context.Context, id uuid.UUID, at time.Time) error
}

type PetsRepositoryI interface {
	// Creates the user's pet. One pet per user is enforced by the store
	Create(ctx context.Context, pet *entity.Pet) error
	// Returns the user's pet
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Pet, error)
	// Same as GetByUserID but locks the row for the rest of the transaction
	GetByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.Pet, error)
	// Persists happiness, health, xp and level
	UpdateStats(ctx context.Context, pet *entity.Pet) error
}

type UserStatsRepositoryI interface {
	// Returns the user's stats row, or nil when none exists yet
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Same as GetByUserID but locks the row for the rest of the transaction
	GetByUserIDForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Inserts or fully replaces the user's stats row
	Upsert(ctx context.Context, stats *entity.UserStats) error
	// Writes only the current streak, and only while last_completed_at still
	// predates staleBefore; used by passive decay on read paths
	DecayCurrentStreak(ctx context.Context, uid uuid.UUID, streak int, staleBefore time.Time) error
}

type AchievementsRepositoryI interface {
	// Returns the whole catalog in stable id order
	ListCatalog(ctx context.Context) ([]entity.Achievement, error)
	// Returns ids of achievements the user already unlocked
	ListUnlockedIDs(ctx context.Context, uid uuid.UUID) (map[int64]struct{}, error)
	// Records an unlock, at most once per (user, achievement) pair
	InsertUnlock(ctx context.Context, uid uuid.UUID, achievementID int64) error
	// Administrative insert-if-absent seeding by name
	SeedCatalog(ctx context.Context, entries []entity.Achievement) error
}

type NotificationsRepositoryI interface {
	// Appends a notification row
	Create(ctx context.Context, n *entity.Notification) error
	// Returns the user's notifications of one category created since the given moment
	ListRecent(ctx context.Context, uid uuid.UUID, category string, since time.Time) ([]entity.Notification, error)
	// Lists notifications newest first. Requires pagination params provided
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.Notification, error)
	// Flips the read flag
	MarkRead(ctx context.Context, id int64, uid uuid.UUID) error
	// Deletes one of the user's notifications
	Delete(ctx context.Context, id int64, uid uuid.UUID) error
	// Counts unread notifications
	CountUnread(ctx context.Context, uid uuid.UUID) (int, error)
}

// Repositories bundles every repo bound to one connection or transaction.
type Repositories struct {
	Habits        HabitsRepositoryI
	Pets          PetsRepositoryI
	Stats         UserStatsRepositoryI
	Achievements  AchievementsRepositoryI
	Notifications NotificationsRepositoryI
}

// StoreI hands out repositories either over the shared pool or bound to a
// single transaction that commits only if the whole callback succeeds.
type StoreI interface {
	Repos() *Repositories
	WithinTx(ctx context.Context, fn func(r *Repositories) error) error
}
