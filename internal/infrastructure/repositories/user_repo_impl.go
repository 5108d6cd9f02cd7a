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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Update rewrites the mutable user columns and refreshes updated_at
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"email":              user.Email,
		"phone":              user.Phone.Ptr(),
		"password_hash":      user.PasswordHash,
		"role":               string(user.Role),
		"is_active":          user.IsActive,
		"email_verified":     user.EmailVerified,
		"phone_verified":     user.PhoneVerified,
		"two_factor_enabled": user.TwoFactorEnabled,
		"two_factor_method":  twoFactorMethodPtr(user.TwoFactorMethod),
		"last_login":         user.LastLogin.Ptr(),
		"updated_at":         time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users ordered by creation time descending
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

func userToModel(e *entities.User) *models.User {
	return &models.User{
		ID:               e.ID,
		Email:            e.Email,
		Phone:            e.Phone.Ptr(),
		PasswordHash:     e.PasswordHash,
		Role:             string(e.Role),
		IsActive:         e.IsActive,
		EmailVerified:    e.EmailVerified,
		PhoneVerified:    e.PhoneVerified,
		TwoFactorEnabled: e.TwoFactorEnabled,
		TwoFactorMethod:  twoFactorMethodPtr(e.TwoFactorMethod),
		LastLogin:        e.LastLogin.Ptr(),
		MemberID:         e.MemberID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	var method entities.TwoFactorMethod
	if m.TwoFactorMethod != nil {
		method = entities.TwoFactorMethod(*m.TwoFactorMethod)
	}
	return &entities.User{
		ID:               m.ID,
		Email:            m.Email,
		Phone:            null.StringFromPtr(m.Phone),
		PasswordHash:     m.PasswordHash,
		Role:             entities.UserRole(m.Role),
		IsActive:         m.IsActive,
		EmailVerified:    m.EmailVerified,
		PhoneVerified:    m.PhoneVerified,
		TwoFactorEnabled: m.TwoFactorEnabled,
		TwoFactorMethod:  method,
		LastLogin:        null.TimeFromPtr(m.LastLogin),
		MemberID:         m.MemberID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func twoFactorMethodPtr(m entities.TwoFactorMethod) *string {
	if m == "" {
		return nil
	}
	s := string(m)
	return &s
}
