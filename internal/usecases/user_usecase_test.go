package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/usecases"
	"member-hub.backend/pkg/crypto"
)

func TestUserUpdate_AdminFields(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	user := &entities.User{ID: id, Email: "alice@memberhub.io", Role: entities.UserRoleMember, IsActive: true}
	repo.On("GetByID", ctx, id).Return(user, nil)
	repo.On("Update", ctx, user).Return(nil)

	role := string(entities.UserRoleAdmin)
	inactive := false
	verified := true
	got, err := uc.Update(ctx, id, &entities.UpdateUserInput{Role: &role, IsActive: &inactive, EmailVerified: &verified})
	require.NoError(t, err)
	require.Equal(t, entities.UserRoleAdmin, got.Role)
	require.False(t, got.IsActive)
	require.True(t, got.EmailVerified)
}

func TestUserUpdate_InvalidRole(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(&entities.User{ID: id}, nil)

	role := "superuser"
	_, err := uc.Update(ctx, id, &entities.UpdateUserInput{Role: &role})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "invalid role", appErr.Message)
}

func TestUserUpdate_DisablingTwoFactorClearsMethod(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	user := &entities.User{ID: id, TwoFactorEnabled: true, TwoFactorMethod: entities.TwoFactorEmail}
	repo.On("GetByID", ctx, id).Return(user, nil)
	repo.On("Update", ctx, user).Return(nil)

	off := false
	got, err := uc.Update(ctx, id, &entities.UpdateUserInput{TwoFactorEnabled: &off})
	require.NoError(t, err)
	require.False(t, got.TwoFactorEnabled)
	require.Empty(t, got.TwoFactorMethod)
}

func TestUpdateProfile_EmailChangeResetsVerification(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	user := &entities.User{ID: id, Email: "alice@memberhub.io", EmailVerified: true}
	repo.On("GetByID", ctx, id).Return(user, nil)
	repo.On("GetByEmail", ctx, "new@memberhub.io").Return(nil, domainerrors.ErrNotFound)
	repo.On("Update", ctx, user).Return(nil)

	email := "new@memberhub.io"
	got, err := uc.UpdateProfile(ctx, id, &entities.UpdateUserInput{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "new@memberhub.io", got.Email)
	require.False(t, got.EmailVerified)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(&entities.User{ID: id, Email: "alice@memberhub.io"}, nil)
	repo.On("GetByEmail", ctx, "bob@memberhub.io").Return(&entities.User{ID: uuid.New()}, nil)

	email := "bob@memberhub.io"
	_, err := uc.UpdateProfile(ctx, id, &entities.UpdateUserInput{Email: &email})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "user with this email already exists", appErr.Message)
}

func TestUpdateProfile_PasswordIsHashed(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	user := &entities.User{ID: id, PasswordHash: "old"}
	repo.On("GetByID", ctx, id).Return(user, nil)
	repo.On("Update", ctx, user).Return(nil)

	password := "newpassword1"
	got, err := uc.UpdateProfile(ctx, id, &entities.UpdateUserInput{Password: &password})
	require.NoError(t, err)
	require.NotEqual(t, "newpassword1", got.PasswordHash)
	require.True(t, crypto.CheckPassword("newpassword1", got.PasswordHash))
}

func TestEnableTwoFactor(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	user := &entities.User{ID: id}
	repo.On("GetByID", ctx, id).Return(user, nil)
	repo.On("Update", ctx, user).Return(nil)

	got, err := uc.EnableTwoFactor(ctx, id, string(entities.TwoFactorEmail))
	require.NoError(t, err)
	require.True(t, got.TwoFactorEnabled)
	require.Equal(t, entities.TwoFactorEmail, got.TwoFactorMethod)
}

func TestEnableTwoFactor_InvalidMethod(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)

	_, err := uc.EnableTwoFactor(context.Background(), uuid.New(), "carrier-pigeon")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "invalid two-factor method", appErr.Message)
}

func TestDisableTwoFactor(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	user := &entities.User{ID: id, TwoFactorEnabled: true, TwoFactorMethod: entities.TwoFactorSMS}
	repo.On("GetByID", ctx, id).Return(user, nil)
	repo.On("Update", ctx, user).Return(nil)

	got, err := uc.DisableTwoFactor(ctx, id)
	require.NoError(t, err)
	require.False(t, got.TwoFactorEnabled)
	require.Empty(t, got.TwoFactorMethod)
}

func TestUserDelete_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.On("Delete", ctx, id).Return(domainerrors.ErrNotFound)

	require.ErrorIs(t, uc.Delete(ctx, id), domainerrors.ErrNotFound)
}
