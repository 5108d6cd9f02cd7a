package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Member represents a platform participant profile, distinct from the
// authentication-focused User
type Member struct {
	ID           uuid.UUID   `json:"id"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	UserName     string      `json:"userName"`
	Email        string      `json:"email"`
	Slug         string      `json:"slug"`
	WalletKey    string      `json:"walletKey"`
	Phone        null.String `json:"phone,omitempty"`
	Bio          null.String `json:"bio,omitempty"`
	Position     null.String `json:"position,omitempty"`
	IsActive     bool        `json:"isActive"`
	Following    string      `json:"following"`
	Followers    string      `json:"followers"`
	JoinedAt     time.Time   `json:"joinedAt"`
	CompanyID    uuid.NullUUID `json:"companyId,omitempty"`
	AvatarID     uuid.NullUUID `json:"avatarId,omitempty"`
	CoverImageID uuid.NullUUID `json:"coverImageId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`

	Socials []SocialLink   `json:"socials,omitempty"`
	Links   []ExternalLink `json:"links,omitempty"`
}

// Public strips contact details for follower/following listings and
// public profile views
func (m *Member) Public() *MemberPublic {
	return &MemberPublic{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		UserName:  m.UserName,
		Slug:      m.Slug,
		Bio:       m.Bio,
		Position:  m.Position,
		Followers: m.Followers,
		Following: m.Following,
		IsActive:  m.IsActive,
		AvatarID:  m.AvatarID,
	}
}

// MemberPublic is the publicly visible member shape
type MemberPublic struct {
	ID        uuid.UUID     `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	UserName  string        `json:"userName"`
	Slug      string        `json:"slug"`
	Bio       null.String   `json:"bio,omitempty"`
	Position  null.String   `json:"position,omitempty"`
	Followers string        `json:"followers"`
	Following string        `json:"following"`
	IsActive  bool          `json:"isActive"`
	AvatarID  uuid.NullUUID `json:"avatarId,omitempty"`
}

// CreateMemberInput represents input for creating a member
type CreateMemberInput struct {
	FirstName    string     `json:"firstName" binding:"required"`
	LastName     string     `json:"lastName"`
	UserName     string     `json:"userName" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Slug         string     `json:"slug" binding:"required"`
	WalletKey    string     `json:"walletKey" binding:"required"`
	Phone        string     `json:"phone"`
	Bio          string     `json:"bio"`
	Position     string     `json:"position"`
	CompanyID    *uuid.UUID `json:"companyId"`
	AvatarID     *uuid.UUID `json:"avatarId"`
	CoverImageID *uuid.UUID `json:"coverImageId"`
}

// UpdateMemberInput represents a partial member update; nil fields are left untouched
type UpdateMemberInput struct {
	FirstName    *string    `json:"firstName"`
	LastName     *string    `json:"lastName"`
	UserName     *string    `json:"userName"`
	Email        *string    `json:"email" binding:"omitempty,email"`
	Slug         *string    `json:"slug"`
	WalletKey    *string    `json:"walletKey"`
	Phone        *string    `json:"phone"`
	Bio          *string    `json:"bio"`
	Position     *string    `json:"position"`
	IsActive     *bool      `json:"isActive"`
	CompanyID    *uuid.UUID `json:"companyId"`
	AvatarID     *uuid.UUID `json:"avatarId"`
	CoverImageID *uuid.UUID `json:"coverImageId"`
}
