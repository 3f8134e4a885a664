package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/habipet/backend/internal/progression"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/pkg/entity"
)

type StatsService struct {
	repo repository.UserStatsRepositoryI
}

func NewStatsService(statsRepo repository.UserStatsRepositoryI) *StatsService {
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	return &StatsService{
		repo: statsRepo,
	}
}

// GetStats returns the user's progression counters. The stored streak is
// reconciled against the calendar first: a streak with no completion since
// before yesterday reads as 0 and the stored value is corrected in place.
// Longest streak and completion totals are never decayed.
func (ss *StatsService) GetStats(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.UserStats, error) {
	stats, err := ss.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	if stats == nil {
		return &entity.UserStats{UserID: uid}, nil
	}
	decayed := progression.DecayedStreak(stats.CurrentStreak, stats.LastCompletedAt, now)
	if decayed != stats.CurrentStreak {
		// Conditional write: a completion committed since our read keeps its
		// fresher streak.
		err = ss.repo.DecayCurrentStreak(ctx, uid, decayed, progression.DecayCutoff(now))
		if err != nil {
			return nil, errors.New("stats repository error: " + err.Error())
		}
		stats.CurrentStreak = decayed
	}
	return stats, nil
}
