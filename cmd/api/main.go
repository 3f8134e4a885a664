// @title HabiPet API
// @description API for the habit-tracker app "HabiPet"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/habipet/backend/internal/api"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/internal/service"
	"github.com/habipet/backend/pkg/cleanup"
	"github.com/habipet/backend/pkg/config"
	jwtservice "github.com/habipet/backend/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	store := repository.NewStore(&dbCfg)
	repos := store.Repos()

	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	habitService := service.NewHabitsService(repos.Habits)
	petService := service.NewPetService(store)
	statsService := service.NewStatsService(repos.Stats)
	achievementsService := service.NewAchievementsService(repos.Achievements)
	notificationService := service.NewNotificationService(repos.Notifications)
	completionService := service.NewCompletionService(store)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	err := achievementsService.SeedDefaults(ctx)
	cancel()
	if err != nil {
		log.Fatal("error seeding achievements catalog: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:         userService,
		HabitsService:       habitService,
		PetService:          petService,
		StatsService:        statsService,
		AchievementsService: achievementsService,
		NotificationService: notificationService,
		CompletionService:   completionService,
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
