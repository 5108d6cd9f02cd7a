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

// MemberRepository implements member data operations
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	m := memberToModel(member)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a member by ID
func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByEmail gets a member by email
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*entities.Member, error) {
	return r.getBy(ctx, "email = ?", email)
}

// GetByUserName gets a member by username
func (r *MemberRepository) GetByUserName(ctx context.Context, userName string) (*entities.Member, error) {
	return r.getBy(ctx, "user_name = ?", userName)
}

// GetBySlug gets a member by slug
func (r *MemberRepository) GetBySlug(ctx context.Context, slug string) (*entities.Member, error) {
	return r.getBy(ctx, "slug = ?", slug)
}

// GetByWalletKey gets a member by wallet key
func (r *MemberRepository) GetByWalletKey(ctx context.Context, walletKey string) (*entities.Member, error) {
	return r.getBy(ctx, "wallet_key = ?", walletKey)
}

func (r *MemberRepository) getBy(ctx context.Context, query string, arg interface{}) (*entities.Member, error) {
	var m models.Member
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return memberToEntity(&m), nil
}

// FindByUniqueFields returns the first member matching any of the
// non-empty unique values
func (r *MemberRepository) FindByUniqueFields(ctx context.Context, email, userName, slug, walletKey string) (*entities.Member, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	conditions := db.Where("1 = 0")
	if email != "" {
		conditions = conditions.Or("email = ?", email)
	}
	if userName != "" {
		conditions = conditions.Or("user_name = ?", userName)
	}
	if slug != "" {
		conditions = conditions.Or("slug = ?", slug)
	}
	if walletKey != "" {
		conditions = conditions.Or("wallet_key = ?", walletKey)
	}

	var m models.Member
	if err := db.Where(conditions).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return memberToEntity(&m), nil
}

// Update rewrites the mutable member columns and refreshes updated_at
func (r *MemberRepository) Update(ctx context.Context, member *entities.Member) error {
	updates := map[string]interface{}{
		"first_name":     member.FirstName,
		"last_name":      member.LastName,
		"user_name":      member.UserName,
		"email":          member.Email,
		"slug":           member.Slug,
		"wallet_key":     member.WalletKey,
		"phone":          member.Phone.Ptr(),
		"bio":            member.Bio.Ptr(),
		"position":       member.Position.Ptr(),
		"is_active":      member.IsActive,
		"company_id":     uuidPtr(member.CompanyID),
		"avatar_id":      uuidPtr(member.AvatarID),
		"cover_image_id": uuidPtr(member.CoverImageID),
		"updated_at":     time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Member{}).Where("id = ?", member.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateFollowCounts rewrites only the denormalized counter columns
func (r *MemberRepository) UpdateFollowCounts(ctx context.Context, id uuid.UUID, followers, following string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Member{}).Where("id = ?", id).Updates(map[string]interface{}{
		"followers":  followers,
		"following":  following,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a member
func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists members ordered by creation time descending
func (r *MemberRepository) List(ctx context.Context, skip, limit int) ([]*entities.Member, error) {
	var memberModels []models.Member
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&memberModels).Error
	if err != nil {
		return nil, err
	}
	return membersToEntities(memberModels), nil
}

// ListByCompany lists members belonging to a company
func (r *MemberRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	var memberModels []models.Member
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&memberModels).Error
	if err != nil {
		return nil, err
	}
	return membersToEntities(memberModels), nil
}

func membersToEntities(memberModels []models.Member) []*entities.Member {
	members := make([]*entities.Member, 0, len(memberModels))
	for i := range memberModels {
		members = append(members, memberToEntity(&memberModels[i]))
	}
	return members
}

func memberToModel(e *entities.Member) *models.Member {
	return &models.Member{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		UserName:     e.UserName,
		Email:        e.Email,
		Slug:         e.Slug,
		WalletKey:    e.WalletKey,
		Phone:        e.Phone.Ptr(),
		Bio:          e.Bio.Ptr(),
		Position:     e.Position.Ptr(),
		IsActive:     e.IsActive,
		Following:    e.Following,
		Followers:    e.Followers,
		JoinedAt:     e.JoinedAt,
		CompanyID:    uuidPtr(e.CompanyID),
		AvatarID:     uuidPtr(e.AvatarID),
		CoverImageID: uuidPtr(e.CoverImageID),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func memberToEntity(m *models.Member) *entities.Member {
	return &entities.Member{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		UserName:     m.UserName,
		Email:        m.Email,
		Slug:         m.Slug,
		WalletKey:    m.WalletKey,
		Phone:        null.StringFromPtr(m.Phone),
		Bio:          null.StringFromPtr(m.Bio),
		Position:     null.StringFromPtr(m.Position),
		IsActive:     m.IsActive,
		Following:    m.Following,
		Followers:    m.Followers,
		JoinedAt:     m.JoinedAt,
		CompanyID:    nullUUIDFromPtr(m.CompanyID),
		AvatarID:     nullUUIDFromPtr(m.AvatarID),
		CoverImageID: nullUUIDFromPtr(m.CoverImageID),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}

func nullUUIDFromPtr(p *uuid.UUID) uuid.NullUUID {
	if p == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *p, Valid: true}
}
