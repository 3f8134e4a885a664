package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/internal/progression"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/pkg/entity"
)

type CompletionService struct {
	store repository.StoreI
}

func NewCompletionService(store repository.StoreI) *CompletionService {
	if store == nil {
		log.Fatal("provided nil store to completion service")
	}
	return &CompletionService{
		store: store,
	}
}

// CompleteHabit applies one habit completion: streak update, pet experience
// and care stats, counters, achievement unlocks and notifications, all inside
// a single transaction. Pet and stats rows are locked for the duration, so
// two concurrent completions by the same user serialize. Any error rolls the
// whole thing back.
//
// Completing again on the same calendar day keeps the streak flat but still
// counts towards totals and grants experience.
func (cs *CompletionService) CompleteHabit(ctx context.Context, habitID, userID uuid.UUID, now time.Time) (*CompletionResult, error) {
	var result *CompletionResult
	err := cs.store.WithinTx(ctx, func(r *repository.Repositories) error {
		habit, err := r.Habits.GetByID(ctx, habitID)
		if err != nil {
			return err
		}
		if habit.UserID != userID {
			return errorvalues.ErrWrongOwner
		}
		pet, err := r.Pets.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		stats, err := r.Stats.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if stats == nil {
			stats = &entity.UserStats{UserID: userID}
		}

		newStreak, newLongest := progression.ComputeStreak(stats.CurrentStreak, stats.LongestStreak, stats.LastCompletedAt, now)
		newXp, newLevel, leveledUp, err := progression.ApplyExperience(pet.XP, pet.Level, progression.XPPerCompletion)
		if err != nil {
			return err
		}
		pet.XP = newXp
		pet.Level = newLevel
		pet.AddHappiness(progression.HappinessPerCompletion)
		pet.AddHealth(progression.HealthPerCompletion)

		stats.CurrentStreak = newStreak
		stats.LongestStreak = newLongest
		stats.TotalCompleted++
		stats.LifetimeCompleted++
		completedAt := now
		stats.LastCompletedAt = &completedAt

		if err = r.Habits.SetLastCompleted(ctx, habitID, now); err != nil {
			return err
		}
		if err = r.Pets.UpdateStats(ctx, pet); err != nil {
			return err
		}
		if err = r.Stats.Upsert(ctx, stats); err != nil {
			return err
		}

		catalog, err := r.Achievements.ListCatalog(ctx)
		if err != nil {
			return err
		}
		alreadyUnlocked, err := r.Achievements.ListUnlockedIDs(ctx, userID)
		if err != nil {
			return err
		}
		newly := progression.EvaluateAchievements(*stats, pet.Level, catalog, alreadyUnlocked)
		granted := make([]entity.Achievement, 0, len(newly))
		for _, a := range newly {
			err = r.Achievements.InsertUnlock(ctx, userID, a.ID)
			if err != nil {
				// Recorded by a concurrent completion already, not ours to announce
				if errors.Is(err, errorvalues.ErrAchievementUnlocked) {
					continue
				}
				return err
			}
			granted = append(granted, a)
		}

		streakMsg := "You completed '" + habit.Title + "'! Your streak is now " + strconv.Itoa(newStreak) + " days."
		err = queueDeduped(ctx, r, userID, entity.NotificationHabit, streakMsg, "completed '"+habit.Title+"'", now)
		if err != nil {
			return err
		}
		if leveledUp {
			phrase := "reached level " + strconv.Itoa(pet.Level)
			err = queueDeduped(ctx, r, userID, entity.NotificationPet, pet.Name+" "+phrase+"!", phrase, now)
			if err != nil {
				return err
			}
		}
		for _, a := range granted {
			phrase := "Achievement unlocked: " + a.Name
			err = queueDeduped(ctx, r, userID, entity.NotificationAchievement, phrase+"! "+a.Icon, phrase, now)
			if err != nil {
				return err
			}
		}

		result = &CompletionResult{
			NewStreak:     newStreak,
			LongestStreak: newLongest,
			Pet:           pet,
			LeveledUp:     leveledUp,
			Unlocked:      granted,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound),
			errors.Is(err, errorvalues.ErrWrongOwner),
			errors.Is(err, errorvalues.ErrPetNotFound),
			errors.Is(err, errorvalues.ErrStoreUnavailable),
			errors.Is(err, errorvalues.ErrInvariantViolation):
			return nil, err
		}
		return nil, errors.New("habit completion error: " + err.Error())
	}
	return result, nil
}

// queueDeduped inserts a notification unless one of the same category already
// carries the phrase within the trailing dedup window.
func queueDeduped(ctx context.Context, r *repository.Repositories, uid uuid.UUID, category, message, phrase string, now time.Time) error {
	recent, err := r.Notifications.ListRecent(ctx, uid, category, now.Add(-progression.DedupWindow))
	if err != nil {
		return err
	}
	if progression.SuppressedByRecent(recent, phrase) {
		return nil
	}
	return r.Notifications.Create(ctx, &entity.Notification{
		UserID:  uid,
		Type:    category,
		Message: message,
	})
}
