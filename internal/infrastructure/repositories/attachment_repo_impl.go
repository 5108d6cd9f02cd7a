package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/infrastructure/models"
)

// SocialLinkRepository implements social link operations
type SocialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository creates a new social link repository
func NewSocialLinkRepository(db *gorm.DB) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

// Create creates a social link
func (r *SocialLinkRepository) Create(ctx context.Context, link *entities.SocialLink) error {
	m := &models.SocialLink{
		ID:       link.ID,
		MemberID: link.MemberID,
		Title:    link.Title,
		Link:     link.Link,
		Icon:     link.Icon,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// Delete removes a social link
func (r *SocialLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.SocialLink{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMember lists a member's social links
func (r *SocialLinkRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]entities.SocialLink, error) {
	var linkModels []models.SocialLink
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("member_id = ?", memberID).Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]entities.SocialLink, 0, len(linkModels))
	for _, m := range linkModels {
		links = append(links, entities.SocialLink{
			ID:       m.ID,
			MemberID: m.MemberID,
			Title:    m.Title,
			Link:     m.Link,
			Icon:     m.Icon,
		})
	}
	return links, nil
}

// ExternalLinkRepository implements external link operations
type ExternalLinkRepository struct {
	db *gorm.DB
}

// NewExternalLinkRepository creates a new external link repository
func NewExternalLinkRepository(db *gorm.DB) *ExternalLinkRepository {
	return &ExternalLinkRepository{db: db}
}

// Create creates an external link
func (r *ExternalLinkRepository) Create(ctx context.Context, link *entities.ExternalLink) error {
	m := &models.ExternalLink{
		ID:       link.ID,
		MemberID: link.MemberID,
		Title:    link.Title,
		Link:     link.Link,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// Delete removes an external link
func (r *ExternalLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.ExternalLink{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMember lists a member's external links
func (r *ExternalLinkRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]entities.ExternalLink, error) {
	var linkModels []models.ExternalLink
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("member_id = ?", memberID).Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]entities.ExternalLink, 0, len(linkModels))
	for _, m := range linkModels {
		links = append(links, entities.ExternalLink{
			ID:       m.ID,
			MemberID: m.MemberID,
			Title:    m.Title,
			Link:     m.Link,
		})
	}
	return links, nil
}

// ImageRepository implements image operations
type ImageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create registers an image
func (r *ImageRepository) Create(ctx context.Context, image *entities.Image) error {
	m := &models.Image{
		ID:        image.ID,
		Thumbnail: image.Thumbnail,
		Original:  image.Original,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an image by ID
func (r *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Image, error) {
	var m models.Image
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Image{ID: m.ID, Thumbnail: m.Thumbnail, Original: m.Original}, nil
}
