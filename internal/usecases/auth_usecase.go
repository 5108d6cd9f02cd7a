package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/domain/repositories"
	"member-hub.backend/pkg/crypto"
	"member-hub.backend/pkg/jwt"
	"member-hub.backend/pkg/mailer"
	"member-hub.backend/pkg/redis"
	"member-hub.backend/pkg/utils"
	"member-hub.backend/pkg/wallet"
)

const (
	twoFactorCodeTTL = 5 * time.Minute
	usernameProbes   = 50
)

// codeVault is satisfied by pkg/redis.CodeStore
type codeVault interface {
	Put(ctx context.Context, subject, code string) error
	Verify(ctx context.Context, subject, code string) error
	Peek(ctx context.Context, subject string) (string, error)
	Invalidate(ctx context.Context, subject string) error
}

// mailSender is satisfied by pkg/mailer.Mailer
type mailSender interface {
	Enabled() bool
	Send(to, subject, htmlBody string) error
}

// AuthUsecase handles registration, login and credential recovery
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	memberRepo     repositories.MemberRepository
	uow            repositories.UnitOfWork
	jwtService     *jwt.JWTService
	twoFactorCodes codeVault
	verifyTokens   codeVault
	resetTokens    codeVault
	mail           mailSender
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	memberRepo repositories.MemberRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	twoFactorCodes codeVault,
	verifyTokens codeVault,
	resetTokens codeVault,
	mail mailSender,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		memberRepo:     memberRepo,
		uow:            uow,
		jwtService:     jwtService,
		twoFactorCodes: twoFactorCodes,
		verifyTokens:   verifyTokens,
		resetTokens:    resetTokens,
		mail:           mail,
	}
}

// Register creates a member profile and its user account in one
// transaction. Without an explicit member profile a minimal one is
// derived from the email address. The returned token verifies the
// email address.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, string, error) {
	role := entities.UserRoleMember
	if input.User.Role != "" {
		role = entities.UserRole(input.User.Role)
		if !role.Valid() {
			return nil, "", domainerrors.BadRequest("invalid role")
		}
	}

	_, err := u.userRepo.GetByEmail(ctx, input.User.Email)
	if err == nil {
		return nil, "", domainerrors.Conflict("user with this email already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", err
	}

	now := time.Now()
	var member *entities.Member
	if input.Member != nil {
		if !wallet.IsValidKey(input.Member.WalletKey) {
			return nil, "", domainerrors.BadRequest("invalid wallet key")
		}
		walletKey := wallet.Normalize(input.Member.WalletKey)
		if err := checkMemberUniqueness(ctx, u.memberRepo, nil, input.Member.Email, input.Member.UserName, input.Member.Slug, walletKey); err != nil {
			return nil, "", err
		}
		member = newMemberFromInput(input.Member, now)
	} else {
		member, err = u.deriveMember(ctx, input.User.Email, now)
		if err != nil {
			return nil, "", err
		}
	}

	passwordHash, err := crypto.HashPassword(input.User.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.User.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		MemberID:     member.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.User.Phone != "" {
		user.Phone = null.StringFrom(input.User.Phone)
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.memberRepo.Create(ctx, member); err != nil {
			return err
		}
		return u.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, "", err
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, "", err
	}
	if err := u.verifyTokens.Put(ctx, token, user.ID.String()); err != nil {
		return nil, "", err
	}

	if u.mail != nil && u.mail.Enabled() {
		_ = u.mail.Send(user.Email, "Verify your email",
			fmt.Sprintf(`<p>Welcome! Verify your email with token: <b>%s</b></p>`, token))
	}

	return user, token, nil
}

// deriveMember builds a minimal profile from the email local part,
// probing usernames with a counter suffix and falling back to a
// random one
func (u *AuthUsecase) deriveMember(ctx context.Context, email string, now time.Time) (*entities.Member, error) {
	userName, err := u.deriveUserName(ctx, email)
	if err != nil {
		return nil, err
	}
	walletKey, err := wallet.GeneratePlaceholderKey()
	if err != nil {
		return nil, err
	}

	return &entities.Member{
		ID:        utils.GenerateUUIDv7(),
		FirstName: userName,
		UserName:  userName,
		Email:     email,
		Slug:      userName,
		WalletKey: walletKey,
		IsActive:  true,
		Following: "0",
		Followers: "0",
		JoinedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *AuthUsecase) deriveUserName(ctx context.Context, email string) (string, error) {
	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return -1
	}, base)
	if base == "" {
		base = "member"
	}

	candidate := base
	for i := 1; i <= usernameProbes; i++ {
		_, err := u.memberRepo.GetByUserName(ctx, candidate)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}

	suffix, err := crypto.GenerateRandomToken(4)
	if err != nil {
		return "", err
	}
	return base + suffix, nil
}

// Login authenticates credentials. With two-factor enabled it issues a
// short-lived code instead of a token.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	if user.TwoFactorEnabled {
		code, err := crypto.GenerateRandomToken(3)
		if err != nil {
			return nil, err
		}
		if err := u.twoFactorCodes.Put(ctx, user.Email, code); err != nil {
			return nil, err
		}
		if u.mail != nil && u.mail.Enabled() && user.TwoFactorMethod == entities.TwoFactorEmail {
			_ = u.mail.Send(user.Email, "Your login code", mailer.CodeHTML("login", code, twoFactorCodeTTL))
		}
		return &entities.AuthResponse{TwoFactorRequired: true}, nil
	}

	return u.issueToken(ctx, user)
}

// VerifyTwoFactor completes a pending two-factor login
func (u *AuthUsecase) VerifyTwoFactor(ctx context.Context, input *entities.VerifyTwoFactorInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.twoFactorCodes.Verify(ctx, input.Email, input.Code); err != nil {
		if errors.Is(err, redis.ErrCodeNotFound) || errors.Is(err, redis.ErrCodeMismatch) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}
	return u.issueToken(ctx, user)
}

func (u *AuthUsecase) issueToken(ctx context.Context, user *entities.User) (*entities.AuthResponse, error) {
	token, err := u.jwtService.GenerateToken(user.ID, user.MemberID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.LastLogin = null.TimeFrom(time.Now())
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &entities.AuthResponse{AccessToken: token, User: user}, nil
}

// VerifyEmail marks the account behind a registration token as verified
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	idStr, err := u.verifyTokens.Peek(ctx, token)
	if err != nil {
		if errors.Is(err, redis.ErrCodeNotFound) {
			return domainerrors.BadRequest("invalid or expired verification token")
		}
		return err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return domainerrors.BadRequest("invalid or expired verification token")
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.EmailVerified = true
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}
	return u.verifyTokens.Invalidate(ctx, token)
}

// RequestPasswordReset stores a reset token for a known email. Unknown
// emails produce no error so the endpoint does not leak account
// existence.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return "", err
	}
	if err := u.resetTokens.Put(ctx, token, user.ID.String()); err != nil {
		return "", err
	}

	if u.mail != nil && u.mail.Enabled() {
		_ = u.mail.Send(user.Email, "Reset your password",
			fmt.Sprintf(`<p>Reset your password with token: <b>%s</b></p>`, token))
	}
	return token, nil
}

// ResetPassword replaces the password behind a valid reset token
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	idStr, err := u.resetTokens.Peek(ctx, input.Token)
	if err != nil {
		if errors.Is(err, redis.ErrCodeNotFound) {
			return domainerrors.BadRequest("invalid or expired reset token")
		}
		return err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return domainerrors.BadRequest("invalid or expired reset token")
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = passwordHash
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}
	return u.resetTokens.Invalidate(ctx, input.Token)
}

// GetCurrentUser returns the account for an authenticated user ID
func (u *AuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
