package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleMember    UserRole = "member"
)

// Valid reports whether the role is a known one
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleModerator, UserRoleMember:
		return true
	}
	return false
}

// TwoFactorMethod represents the delivery channel for two-factor codes
type TwoFactorMethod string

const (
	TwoFactorEmail TwoFactorMethod = "email"
	TwoFactorSMS   TwoFactorMethod = "sms"
)

// Valid reports whether the method is a known one
func (m TwoFactorMethod) Valid() bool {
	return m == TwoFactorEmail || m == TwoFactorSMS
}

// User represents an authentication account linked to a member profile
type User struct {
	ID               uuid.UUID       `json:"id"`
	Email            string          `json:"email"`
	Phone            null.String     `json:"phone,omitempty"`
	PasswordHash     string          `json:"-"`
	Role             UserRole        `json:"role"`
	IsActive         bool            `json:"isActive"`
	EmailVerified    bool            `json:"emailVerified"`
	PhoneVerified    bool            `json:"phoneVerified"`
	TwoFactorEnabled bool            `json:"twoFactorEnabled"`
	TwoFactorMethod  TwoFactorMethod `json:"twoFactorMethod,omitempty"`
	LastLogin        null.Time       `json:"lastLogin,omitempty"`
	MemberID         uuid.UUID       `json:"memberId"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// UpdateUserInput represents a partial user update; nil fields are left untouched
type UpdateUserInput struct {
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	Password         *string `json:"password" binding:"omitempty,min=8"`
	IsActive         *bool   `json:"isActive"`
	Role             *string `json:"role"`
	EmailVerified    *bool   `json:"emailVerified"`
	PhoneVerified    *bool   `json:"phoneVerified"`
	TwoFactorEnabled *bool   `json:"twoFactorEnabled"`
	TwoFactorMethod  *string `json:"twoFactorMethod"`
}

// RegisterInput represents input for registration with an optional member profile
type RegisterInput struct {
	User   CreateUserInput    `json:"user" binding:"required"`
	Member *CreateMemberInput `json:"member"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyTwoFactorInput carries the second login step
type VerifyTwoFactorInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken       string `json:"accessToken,omitempty"`
	TwoFactorRequired bool   `json:"twoFactorRequired,omitempty"`
	User              *User  `json:"user,omitempty"`
}

// ResetPasswordInput carries a password-reset token with the replacement password
type ResetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
