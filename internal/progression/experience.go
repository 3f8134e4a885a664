package progression

import (
	errorvalues "github.com/habipet/backend/internal/error_values"
)

const (
	// XPPerCompletion is the fixed experience grant per habit completion.
	XPPerCompletion = 10
	// XPPerLevel is the amount of experience one level holds.
	XPPerLevel = 100

	HappinessPerCompletion = 5
	HealthPerCompletion    = 2
)

// ApplyExperience folds gained experience into the pet's xp/level pair.
// Overflow past 100 yields exactly one level increment per event, with the
// remainder taken mod 100; experience beyond a single level's worth in one
// event is discarded on purpose (kept from the original progression rules).
// The xp invariant 0 <= xp < 100 is enforced on both input and output.
func ApplyExperience(xp, level, gained int) (newXp, newLevel int, leveledUp bool, err error) {
	if xp < 0 || xp >= XPPerLevel || level < 1 || gained < 0 {
		return 0, 0, false, errorvalues.ErrInvariantViolation
	}
	rawXp := xp + gained
	if rawXp >= XPPerLevel {
		newXp = rawXp % XPPerLevel
		newLevel = level + 1
		leveledUp = true
	} else {
		newXp = rawXp
		newLevel = level
	}
	if newXp < 0 || newXp >= XPPerLevel {
		return 0, 0, false, errorvalues.ErrInvariantViolation
	}
	return newXp, newLevel, leveledUp, nil
}
