package api

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/habipet/backend/internal/service"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	habitService        service.HabitsServiceI
	petService          service.PetServiceI
	statsService        service.StatsServiceI
	achievementsService service.AchievementsServiceI
	notificationService service.NotificationServiceI
	completionService   service.CompletionServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	HabitsService       service.HabitsServiceI
	PetService          service.PetServiceI
	StatsService        service.StatsServiceI
	AchievementsService service.AchievementsServiceI
	NotificationService service.NotificationServiceI
	CompletionService   service.CompletionServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		habitService:        servicesOptions.HabitsService,
		petService:          servicesOptions.PetService,
		statsService:        servicesOptions.StatsService,
		achievementsService: servicesOptions.AchievementsService,
		notificationService: servicesOptions.NotificationService,
		completionService:   servicesOptions.CompletionService,
		jwtService:          servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/habits", func(r chi.Router) {
				r.Post("/", s.CreateHabit)
				r.Get("/", s.GetHabits)
				r.Get("/{id}", s.GetHabit)
				r.Put("/{id}", s.UpdateHabit)
				r.Delete("/{id}", s.DeleteHabit)
				r.Post("/{id}/complete", s.CompleteHabit)
			})
			r.Route("/pet", func(r chi.Router) {
				r.Post("/", s.CreatePet)
				r.Get("/", s.GetPet)
			})
			r.Get("/stats", s.GetStats)
			r.Get("/achievements", s.GetAchievements)
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", s.GetNotifications)
				r.Get("/unread_count", s.GetUnreadCount)
				r.Patch("/{id}/read", s.MarkNotificationRead)
				r.Delete("/{id}", s.DeleteNotification)
			})
			r.Delete("/account", s.DeleteAccount)
		})
	})
	server := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Println("API listening on " + addr)
	return server.ListenAndServe()
}
