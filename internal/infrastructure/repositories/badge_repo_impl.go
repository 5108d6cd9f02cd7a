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

// BadgeRepository implements badge data operations
type BadgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// Create creates a new badge
func (r *BadgeRepository) Create(ctx context.Context, badge *entities.Badge) error {
	m := &models.Badge{
		ID:          badge.ID,
		Name:        badge.Name,
		Description: badge.Description,
		Icon:        badge.Icon,
		IsActive:    badge.IsActive,
		ValidFrom:   badge.ValidFrom,
		ValidUntil:  badge.ValidUntil.Ptr(),
		CreatedAt:   badge.CreatedAt,
		UpdatedAt:   badge.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a badge by ID
func (r *BadgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Badge, error) {
	var m models.Badge
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return badgeToEntity(&m), nil
}

// Update rewrites the mutable badge columns and refreshes updated_at
func (r *BadgeRepository) Update(ctx context.Context, badge *entities.Badge) error {
	updates := map[string]interface{}{
		"name":        badge.Name,
		"description": badge.Description,
		"icon":        badge.Icon,
		"is_active":   badge.IsActive,
		"valid_from":  badge.ValidFrom,
		"valid_until": badge.ValidUntil.Ptr(),
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Badge{}).Where("id = ?", badge.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a badge
func (r *BadgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Badge{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists badges matching the filter, newest first
func (r *BadgeRepository) List(ctx context.Context, skip, limit int, filter entities.BadgeFilter) ([]*entities.Badge, error) {
	query := GetDB(ctx, r.db).WithContext(ctx)
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var badgeModels []models.Badge
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&badgeModels).Error; err != nil {
		return nil, err
	}

	badges := make([]*entities.Badge, 0, len(badgeModels))
	for i := range badgeModels {
		badges = append(badges, badgeToEntity(&badgeModels[i]))
	}
	return badges, nil
}

func badgeToEntity(m *models.Badge) *entities.Badge {
	return &entities.Badge{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		IsActive:    m.IsActive,
		ValidFrom:   m.ValidFrom,
		ValidUntil:  null.TimeFromPtr(m.ValidUntil),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MemberBadgeRepository implements badge-assignment data operations
type MemberBadgeRepository struct {
	db *gorm.DB
}

// NewMemberBadgeRepository creates a new member badge repository
func NewMemberBadgeRepository(db *gorm.DB) *MemberBadgeRepository {
	return &MemberBadgeRepository{db: db}
}

// Create records a badge assignment
func (r *MemberBadgeRepository) Create(ctx context.Context, memberBadge *entities.MemberBadge) error {
	m := &models.MemberBadge{
		ID:         memberBadge.ID,
		MemberID:   memberBadge.MemberID,
		BadgeID:    memberBadge.BadgeID,
		IssuedAt:   memberBadge.IssuedAt,
		IssuedByID: memberBadge.IssuedByID,
		IsActive:   memberBadge.IsActive,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an assignment by ID
func (r *MemberBadgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MemberBadge, error) {
	var m models.MemberBadge
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return memberBadgeToEntity(&m), nil
}

// GetByMemberAndBadge gets the assignment linking a member to a badge
func (r *MemberBadgeRepository) GetByMemberAndBadge(ctx context.Context, memberID, badgeID uuid.UUID) (*entities.MemberBadge, error) {
	var m models.MemberBadge
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("member_id = ? AND badge_id = ?", memberID, badgeID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return memberBadgeToEntity(&m), nil
}

// Update rewrites the assignment's active flag
func (r *MemberBadgeRepository) Update(ctx context.Context, memberBadge *entities.MemberBadge) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.MemberBadge{}).
		Where("id = ?", memberBadge.ID).
		Updates(map[string]interface{}{
			"is_active": memberBadge.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an assignment
func (r *MemberBadgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.MemberBadge{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMember lists a member's badge assignments, most recently issued first
func (r *MemberBadgeRepository) ListByMember(ctx context.Context, memberID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	return r.list(ctx, "member_id = ?", memberID, skip, limit, activeOnly)
}

// ListByBadge lists a badge's assignments, most recently issued first
func (r *MemberBadgeRepository) ListByBadge(ctx context.Context, badgeID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	return r.list(ctx, "badge_id = ?", badgeID, skip, limit, activeOnly)
}

func (r *MemberBadgeRepository) list(ctx context.Context, cond string, id uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Where(cond, id)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var memberBadgeModels []models.MemberBadge
	if err := query.Order("issued_at DESC").Offset(skip).Limit(limit).Find(&memberBadgeModels).Error; err != nil {
		return nil, err
	}

	memberBadges := make([]*entities.MemberBadge, 0, len(memberBadgeModels))
	for i := range memberBadgeModels {
		memberBadges = append(memberBadges, memberBadgeToEntity(&memberBadgeModels[i]))
	}
	return memberBadges, nil
}

func memberBadgeToEntity(m *models.MemberBadge) *entities.MemberBadge {
	return &entities.MemberBadge{
		ID:         m.ID,
		MemberID:   m.MemberID,
		BadgeID:    m.BadgeID,
		IssuedAt:   m.IssuedAt,
		IssuedByID: m.IssuedByID,
		IsActive:   m.IsActive,
	}
}
