package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/habipet/backend/internal/progression"
	"github.com/habipet/backend/internal/repository"
)

type AchievementsService struct {
	repo repository.AchievementsRepositoryI
}

func NewAchievementsService(achievementsRepo repository.AchievementsRepositoryI) *AchievementsService {
	if achievementsRepo == nil {
		log.Fatal("provided nil achievementsRepo")
	}
	return &AchievementsService{
		repo: achievementsRepo,
	}
}

// SeedDefaults loads the built-in catalog. Insert-if-absent by name, so it is
// safe to call on every boot.
func (as *AchievementsService) SeedDefaults(ctx context.Context) error {
	err := as.repo.SeedCatalog(ctx, progression.DefaultCatalog())
	if err != nil {
		return errors.New("achievements repository error: " + err.Error())
	}
	return nil
}

func (as *AchievementsService) ListForUser(ctx context.Context, uid uuid.UUID) ([]AchievementStatus, error) {
	catalog, err := as.repo.ListCatalog(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	unlocked, err := as.repo.ListUnlockedIDs(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	result := make([]AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		_, done := unlocked[a.ID]
		result = append(result, AchievementStatus{
			Achievement: a,
			Unlocked:    done,
		})
	}
	return result, nil
}
