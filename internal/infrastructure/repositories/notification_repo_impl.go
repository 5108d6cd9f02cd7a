package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/infrastructure/models"
)

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	m := &models.Notification{
		ID:        notification.ID,
		Title:     notification.Title,
		Message:   notification.Message,
		Link:      notification.Link.Ptr(),
		Type:      string(notification.Type),
		Priority:  string(notification.Priority),
		IsActive:  notification.IsActive,
		ExpiresAt: notification.ExpiresAt.Ptr(),
		CreatedAt: notification.CreatedAt,
		UpdatedAt: notification.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a notification by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	var m models.Notification
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return notificationToEntity(&m), nil
}

// Update rewrites the mutable notification columns and refreshes updated_at
func (r *NotificationRepository) Update(ctx context.Context, notification *entities.Notification) error {
	updates := map[string]interface{}{
		"title":      notification.Title,
		"message":    notification.Message,
		"link":       notification.Link.Ptr(),
		"type":       string(notification.Type),
		"priority":   string(notification.Priority),
		"is_active":  notification.IsActive,
		"expires_at": notification.ExpiresAt.Ptr(),
		"updated_at": time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Notification{}).Where("id = ?", notification.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a notification
func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists notifications matching the filter, newest first
func (r *NotificationRepository) List(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	query := applyNotificationFilter(GetDB(ctx, r.db).WithContext(ctx), filter)

	var notificationModels []models.Notification
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&notificationModels).Error; err != nil {
		return nil, err
	}
	return notificationsToEntities(notificationModels), nil
}

// ListUnexpired lists active notifications whose expiry is unset or in the future
func (r *NotificationRepository) ListUnexpired(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	query := applyNotificationFilter(GetDB(ctx, r.db).WithContext(ctx), filter).
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now())

	var notificationModels []models.Notification
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&notificationModels).Error; err != nil {
		return nil, err
	}
	return notificationsToEntities(notificationModels), nil
}

// DeactivateExpired flips is_active off for active notifications past their expiry
func (r *NotificationRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Notification{}).
		Where("is_active = ?", true).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func applyNotificationFilter(query *gorm.DB, filter entities.NotificationFilter) *gorm.DB {
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	return query
}

func notificationsToEntities(notificationModels []models.Notification) []*entities.Notification {
	notifications := make([]*entities.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, notificationToEntity(&notificationModels[i]))
	}
	return notifications
}

func notificationToEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:        m.ID,
		Title:     m.Title,
		Message:   m.Message,
		Link:      null.StringFromPtr(m.Link),
		Type:      entities.NotificationType(m.Type),
		Priority:  entities.NotificationPriority(m.Priority),
		IsActive:  m.IsActive,
		ExpiresAt: null.TimeFromPtr(m.ExpiresAt),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
