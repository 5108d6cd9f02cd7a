package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"member-hub.backend/internal/domain/entities"
)

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	Update(ctx context.Context, notification *entities.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error)
	// ListUnexpired returns active notifications whose expiry is unset or in the future.
	ListUnexpired(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error)
	// DeactivateExpired flips is_active off for active notifications past
	// their expiry; returns the number of rows touched.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
