package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/domain/repositories"
	"member-hub.backend/pkg/utils"
)

// NotificationUsecase handles broadcast notifications
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo repositories.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

// Create creates a notification; the priority defaults to normal
func (u *NotificationUsecase) Create(ctx context.Context, input *entities.CreateNotificationInput) (*entities.Notification, error) {
	nType := entities.NotificationType(input.Type)
	if !nType.Valid() {
		return nil, domainerrors.BadRequest("invalid notification type")
	}
	priority := entities.PriorityNormal
	if input.Priority != "" {
		priority = entities.NotificationPriority(input.Priority)
		if !priority.Valid() {
			return nil, domainerrors.BadRequest("invalid notification priority")
		}
	}

	now := time.Now()
	notification := &entities.Notification{
		ID:        utils.GenerateUUIDv7(),
		Title:     input.Title,
		Message:   input.Message,
		Link:      null.NewString(input.Link, input.Link != ""),
		Type:      nType,
		Priority:  priority,
		IsActive:  true,
		ExpiresAt: null.TimeFromPtr(input.ExpiresAt),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// GetByID returns a notification
func (u *NotificationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	return u.notificationRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of input
func (u *NotificationUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateNotificationInput) (*entities.Notification, error) {
	notification, err := u.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		notification.Title = *input.Title
	}
	if input.Message != nil {
		notification.Message = *input.Message
	}
	if input.Link != nil {
		notification.Link = null.NewString(*input.Link, *input.Link != "")
	}
	if input.Type != nil {
		nType := entities.NotificationType(*input.Type)
		if !nType.Valid() {
			return nil, domainerrors.BadRequest("invalid notification type")
		}
		notification.Type = nType
	}
	if input.Priority != nil {
		priority := entities.NotificationPriority(*input.Priority)
		if !priority.Valid() {
			return nil, domainerrors.BadRequest("invalid notification priority")
		}
		notification.Priority = priority
	}
	if input.IsActive != nil {
		notification.IsActive = *input.IsActive
	}
	if input.ExpiresAt != nil {
		notification.ExpiresAt = null.TimeFrom(*input.ExpiresAt)
	}

	if err := u.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// Deactivate marks a notification inactive, keeping its record
func (u *NotificationUsecase) Deactivate(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	notification, err := u.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notification.IsActive = false
	if err := u.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// Delete removes a notification
func (u *NotificationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.notificationRepo.Delete(ctx, id)
}

// List lists notifications with optional type/priority/active filters
func (u *NotificationUsecase) List(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	if err := validateNotificationFilter(filter); err != nil {
		return nil, err
	}
	p := utils.GetPaginationParams(skip, limit)
	return u.notificationRepo.List(ctx, p.Skip, p.Limit, filter)
}

// ListActive lists active, unexpired notifications
func (u *NotificationUsecase) ListActive(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	if err := validateNotificationFilter(filter); err != nil {
		return nil, err
	}
	p := utils.GetPaginationParams(skip, limit)
	return u.notificationRepo.ListUnexpired(ctx, p.Skip, p.Limit, filter)
}

func validateNotificationFilter(filter entities.NotificationFilter) error {
	if filter.Type != "" && !entities.NotificationType(filter.Type).Valid() {
		return domainerrors.BadRequest("invalid notification type")
	}
	if filter.Priority != "" && !entities.NotificationPriority(filter.Priority).Valid() {
		return domainerrors.BadRequest("invalid notification priority")
	}
	return nil
}
