package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/infrastructure/models"
)

// FollowerRepository implements follow-edge operations
type FollowerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository creates a new follower repository
func NewFollowerRepository(db *gorm.DB) *FollowerRepository {
	return &FollowerRepository{db: db}
}

// Create creates a follow edge
func (r *FollowerRepository) Create(ctx context.Context, edge *entities.Follower) error {
	m := &models.Follower{
		ID:         edge.ID,
		FollowerID: edge.FollowerID,
		FollowedID: edge.FollowedID,
		CreatedAt:  edge.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// Delete removes the edge for the ordered pair
func (r *FollowerRepository) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follower{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Exists reports whether the ordered pair edge exists
func (r *FollowerRepository) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Follower{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowers returns the members following the given member
func (r *FollowerRepository) ListFollowers(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	var memberModels []models.Member
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Member{}).
		Joins("JOIN followers ON followers.follower_id = members.id").
		Where("followers.followed_id = ?", memberID).
		Order("followers.created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&memberModels).Error
	if err != nil {
		return nil, err
	}
	return membersToEntities(memberModels), nil
}

// ListFollowing returns the members the given member follows
func (r *FollowerRepository) ListFollowing(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	var memberModels []models.Member
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Member{}).
		Joins("JOIN followers ON followers.followed_id = members.id").
		Where("followers.follower_id = ?", memberID).
		Order("followers.created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&memberModels).Error
	if err != nil {
		return nil, err
	}
	return membersToEntities(memberModels), nil
}
