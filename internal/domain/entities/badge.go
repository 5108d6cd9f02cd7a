package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Badge is a badge definition with a validity window
type Badge struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"isActive"`
	ValidFrom   time.Time `json:"validFrom"`
	ValidUntil  null.Time `json:"validUntil,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MemberBadge records that a member holds a badge, when, and by whom it was issued
type MemberBadge struct {
	ID         uuid.UUID `json:"id"`
	MemberID   uuid.UUID `json:"memberId"`
	BadgeID    uuid.UUID `json:"badgeId"`
	IssuedAt   time.Time `json:"issuedAt"`
	IssuedByID uuid.UUID `json:"issuedById"`
	IsActive   bool      `json:"isActive"`
}

// CreateBadgeInput represents input for creating a badge
type CreateBadgeInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Icon        string     `json:"icon" binding:"required"`
	ValidFrom   time.Time  `json:"validFrom" binding:"required"`
	ValidUntil  *time.Time `json:"validUntil"`
}

// UpdateBadgeInput represents a partial badge update
type UpdateBadgeInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Icon        *string    `json:"icon"`
	IsActive    *bool      `json:"isActive"`
	ValidFrom   *time.Time `json:"validFrom"`
	ValidUntil  *time.Time `json:"validUntil"`
}

// AssignBadgeInput represents input for assigning a badge to a member
type AssignBadgeInput struct {
	MemberID uuid.UUID `json:"memberId" binding:"required"`
	BadgeID  uuid.UUID `json:"badgeId" binding:"required"`
}

// UpdateMemberBadgeInput toggles an assignment (e.g. deactivates it)
type UpdateMemberBadgeInput struct {
	IsActive *bool `json:"isActive"`
}

// BadgeFilter narrows badge listings
type BadgeFilter struct {
	ActiveOnly bool
}
