package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/internal/service"
	"github.com/habipet/backend/pkg/entity"
	"github.com/habipet/backend/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CreateHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
	Recurrence  string `json:"recurrence"`
}

type CreatePetRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Habits []*entity.Habit `json:"habits"`
}

type GetNotificationsResponse struct {
	UserID        string                `json:"uid"`
	Page          int                   `json:"page"`
	Limit         int                   `json:"limit"`
	Notifications []entity.Notification `json:"notifications"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LoginRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	logger.Info("account deleted")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateHabitRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.CreateHabit(ctx, uid, &service.CreateHabitRequest{
		Title:       req.Title,
		Description: req.Description,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			logger.Error("create habit error: attempt to create existed habit")
			httputil.WriteErrorResponse(w, http.StatusConflict, "habit already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create habit error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create habit: user doesn't exists", nil)
		default:
			logger.Error("create habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"habit_id": habit.ID.String()})
	logger.Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page := paginationParams(r)
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	habits, err := s.habitService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.GetHabit(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get habit error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("get habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit provided")
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req CreateHabitRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.UpdateHabit(ctx, id, uid, &service.CreateHabitRequest{
		Title:       req.Title,
		Description: req.Description,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update habit error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("update habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.habitService.DeleteHabit(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			logger.Error("habit deletion error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("habit deletion error: habit has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("habit deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting habit", nil)
		}
		return
	}
}

func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.completionService.CompleteHabit(ctx, id, uid, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("complete habit error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrPetNotFound):
			logger.Error("complete habit error: user has no pet")
			httputil.WriteErrorResponse(w, http.StatusPreconditionFailed, "create a pet before completing habits", nil)
		case errors.Is(err, errorvalues.ErrStoreUnavailable):
			logger.Error("complete habit error: store unavailable")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "temporary storage failure, try again", nil)
		default:
			logger.Error("complete habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("habit completed")
}

func (s *Server) CreatePet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create pet error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreatePetRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create pet error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	pet, err := s.petService.CreatePet(ctx, uid, &service.CreatePetRequest{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongPetType):
			logger.Error("create pet error: unknown pet type")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown pet type", nil)
		case errors.Is(err, errorvalues.ErrUserHasPet):
			logger.Error("create pet error: user already has a pet")
			httputil.WriteErrorResponse(w, http.StatusConflict, "you already have a pet", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create pet error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create pet error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating pet", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, pet)
	logger.Info("pet created")
}

func (s *Server) GetPet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get pet error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	pet, err := s.petService.GetPet(ctx, uid, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPetNotFound):
			logger.Error("get pet error: user has no pet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "you don't have a pet yet", nil)
		case errors.Is(err, errorvalues.ErrStoreUnavailable):
			logger.Error("get pet error: store unavailable")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "temporary storage failure, try again", nil)
		default:
			logger.Error("get pet error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting pet", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, pet)
	logger.Info("pet provided")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx, uid, time.Now().UTC())
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	achievements, err := s.achievementsService.ListForUser(ctx, uid)
	if err != nil {
		logger.Error("get achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"achievements": achievements})
	logger.Info("achievements provided")
}

func (s *Server) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get notifications error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page := paginationParams(r)
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	notifications, err := s.notificationService.List(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("get notifications error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting notifications", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetNotificationsResponse{
		UserID:        uid.String(),
		Page:          page,
		Limit:         limit,
		Notifications: notifications,
	})
	logger.Info("notifications provided")
}

func (s *Server) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unread count error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	count, err := s.notificationService.CountUnread(ctx, uid)
	if err != nil {
		logger.Error("unread count error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while counting notifications", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"unread": count})
	logger.Info("unread count provided")
}

func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark notification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logger.Error("mark notification error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notification id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.notificationService.MarkRead(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			logger.Error("mark notification error: unexist notification")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "notification doesn't exist", nil)
			return
		}
		logger.Error("mark notification error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating notification", nil)
		return
	}
	logger.Info("notification marked read")
}

func (s *Server) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete notification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logger.Error("delete notification error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notification id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.notificationService.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			logger.Error("delete notification error: unexist notification")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "notification doesn't exist", nil)
			return
		}
		logger.Error("delete notification error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting notification", nil)
		return
	}
	logger.Info("notification deleted")
}

func paginationParams(r *http.Request) (limit, page int) {
	var err error
	limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return limit, page
}
