package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/internal/progression"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/pkg/entity"
)

const (
	// Passive decay per full day without any habit completion
	HappinessDecayPerDay = 3
	HealthDecayPerDay    = 2
)

type PetService struct {
	store repository.StoreI
}

func NewPetService(store repository.StoreI) *PetService {
	if store == nil {
		log.Fatal("provided nil store to pet service")
	}
	return &PetService{
		store: store,
	}
}

func (ps *PetService) CreatePet(ctx context.Context, uid uuid.UUID, req *CreatePetRequest) (*entity.Pet, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	if !entity.IsPetType(req.Type) {
		return nil, errorvalues.ErrWrongPetType
	}
	pet := entity.NewPet(uid, req.Name, req.Type)
	err := ps.store.Repos().Pets.Create(ctx, pet)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserHasPet):
			return nil, errorvalues.ErrUserHasPet
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("pets repository error: " + err.Error())
	}
	created, err := ps.store.Repos().Pets.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("pets repository error: " + err.Error())
	}
	return created, nil
}

// GetPet returns the user's pet after folding in passive decay for the days
// since its last refresh. A downward threshold crossing queues one warning
// notification; staying below the threshold queues nothing further.
func (ps *PetService) GetPet(ctx context.Context, uid uuid.UUID, now time.Time) (*entity.Pet, error) {
	var pet *entity.Pet
	err := ps.store.WithinTx(ctx, func(r *repository.Repositories) error {
		p, err := r.Pets.GetByUserIDForUpdate(ctx, uid)
		if err != nil {
			return err
		}
		days := fullDaysBetween(p.UpdatedAt, now)
		if days > 0 {
			prevHappiness, prevHealth := p.Happiness, p.Health
			p.AddHappiness(-HappinessDecayPerDay * days)
			p.AddHealth(-HealthDecayPerDay * days)
			if err = r.Pets.UpdateStats(ctx, p); err != nil {
				return err
			}
			if progression.CrossedBelow(prevHappiness, p.Happiness, progression.LowStatThreshold) {
				msg := p.Name + " is " + progression.SadPhrase + ". Complete a habit to cheer them up!"
				if err = queueDeduped(ctx, r, uid, entity.NotificationPet, msg, progression.SadPhrase, now); err != nil {
					return err
				}
			}
			if progression.CrossedBelow(prevHealth, p.Health, progression.LowStatThreshold) {
				msg := p.Name + " is " + progression.UnwellPhrase + ". Complete a habit to help them recover!"
				if err = queueDeduped(ctx, r, uid, entity.NotificationPet, msg, progression.UnwellPhrase, now); err != nil {
					return err
				}
			}
		}
		pet = p
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrPetNotFound) || errors.Is(err, errorvalues.ErrStoreUnavailable) {
			return nil, err
		}
		return nil, errors.New("pet refresh error: " + err.Error())
	}
	return pet, nil
}

func fullDaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
