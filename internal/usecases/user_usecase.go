package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/domain/repositories"
	"member-hub.backend/pkg/crypto"
	"member-hub.backend/pkg/utils"
)

// UserUsecase handles account administration
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// GetByID returns a user
func (u *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// List lists users
func (u *UserUsecase) List(ctx context.Context, skip, limit int) ([]*entities.User, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.userRepo.List(ctx, p.Skip, p.Limit)
}

// Update applies the non-nil fields of input, including the
// admin-only flags
func (u *UserUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.applyProfileFields(ctx, user, input); err != nil {
		return nil, err
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Role != nil {
		role := entities.UserRole(*input.Role)
		if !role.Valid() {
			return nil, domainerrors.BadRequest("invalid role")
		}
		user.Role = role
	}
	if input.EmailVerified != nil {
		user.EmailVerified = *input.EmailVerified
	}
	if input.PhoneVerified != nil {
		user.PhoneVerified = *input.PhoneVerified
	}
	if input.TwoFactorEnabled != nil {
		user.TwoFactorEnabled = *input.TwoFactorEnabled
		if !user.TwoFactorEnabled {
			user.TwoFactorMethod = ""
		}
	}
	if input.TwoFactorMethod != nil {
		method := entities.TwoFactorMethod(*input.TwoFactorMethod)
		if !method.Valid() {
			return nil, domainerrors.BadRequest("invalid two-factor method")
		}
		user.TwoFactorMethod = method
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies only the self-service fields (email, phone,
// password)
func (u *UserUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.applyProfileFields(ctx, user, input); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) applyProfileFields(ctx context.Context, user *entities.User, input *entities.UpdateUserInput) error {
	if input.Email != nil && *input.Email != user.Email {
		existing, err := u.userRepo.GetByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return domainerrors.Conflict("user with this email already exists")
		}
		user.Email = *input.Email
		user.EmailVerified = false
	}
	if input.Phone != nil {
		user.Phone = null.NewString(*input.Phone, *input.Phone != "")
	}
	if input.Password != nil {
		hash, err := crypto.HashPassword(*input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return nil
}

// EnableTwoFactor switches two-factor on for the given delivery method
func (u *UserUsecase) EnableTwoFactor(ctx context.Context, id uuid.UUID, method string) (*entities.User, error) {
	m := entities.TwoFactorMethod(method)
	if !m.Valid() {
		return nil, domainerrors.BadRequest("invalid two-factor method")
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.TwoFactorEnabled = true
	user.TwoFactorMethod = m
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DisableTwoFactor switches two-factor off
func (u *UserUsecase) DisableTwoFactor(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.TwoFactorEnabled = false
	user.TwoFactorMethod = ""
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user
func (u *UserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.Delete(ctx, id)
}
