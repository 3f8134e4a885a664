package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/internal/repository"
	"github.com/habipet/backend/pkg/entity"
)

type NotificationService struct {
	repo repository.NotificationsRepositoryI
}

func NewNotificationService(notificationsRepo repository.NotificationsRepositoryI) *NotificationService {
	if notificationsRepo == nil {
		log.Fatal("provided nil notificationsRepo")
	}
	return &NotificationService{
		repo: notificationsRepo,
	}
}

func (ns *NotificationService) List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.Notification, error) {
	notifications, err := ns.repo.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("notifications repository error: " + err.Error())
	}
	return notifications, nil
}

func (ns *NotificationService) MarkRead(ctx context.Context, id int64, uid uuid.UUID) error {
	err := ns.repo.MarkRead(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			return err
		}
		return errors.New("notifications repository error: " + err.Error())
	}
	return nil
}

func (ns *NotificationService) Delete(ctx context.Context, id int64, uid uuid.UUID) error {
	err := ns.repo.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			return err
		}
		return errors.New("notifications repository error: " + err.Error())
	}
	return nil
}

func (ns *NotificationService) CountUnread(ctx context.Context, uid uuid.UUID) (int, error) {
	count, err := ns.repo.CountUnread(ctx, uid)
	if err != nil {
		return 0, errors.New("notifications repository error: " + err.Error())
	}
	return count, nil
}
