package repositories

import (
	"context"

	"github.com/google/uuid"
	"member-hub.backend/internal/domain/entities"
)

// BadgeRepository defines badge data operations
type BadgeRepository interface {
	Create(ctx context.Context, badge *entities.Badge) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Badge, error)
	Update(ctx context.Context, badge *entities.Badge) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, skip, limit int, filter entities.BadgeFilter) ([]*entities.Badge, error)
}

// MemberBadgeRepository defines badge-assignment operations
type MemberBadgeRepository interface {
	Create(ctx context.Context, memberBadge *entities.MemberBadge) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MemberBadge, error)
	GetByMemberAndBadge(ctx context.Context, memberID, badgeID uuid.UUID) (*entities.MemberBadge, error)
	Update(ctx context.Context, memberBadge *entities.MemberBadge) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMember(ctx context.Context, memberID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error)
	ListByBadge(ctx context.Context, badgeID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error)
}
