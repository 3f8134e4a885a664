package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrUserHasHabit  = errors.New("user already has such habit")
	ErrWrongOwner    = errors.New("entity has different owner")

	ErrPetNotFound  = errors.New("user doesn't have a pet")
	ErrUserHasPet   = errors.New("user already has a pet")
	ErrWrongPetType = errors.New("unknown pet type")

	ErrNotificationNotFound = errors.New("notification doesn't exist")
	ErrAchievementUnlocked  = errors.New("achievement already unlocked")

	// ErrStoreUnavailable means the transaction couldn't start or commit.
	// Transient: the caller may retry, the core attempts only once.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvariantViolation means progression math produced an impossible
	// value (e.g. xp outside [0, 100)). Always aborts the transaction.
	ErrInvariantViolation = errors.New("progression invariant violated")
)
