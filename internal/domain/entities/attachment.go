package entities

import (
	"github.com/google/uuid"
)

// SocialLink is a social profile attachment owned by a member
type SocialLink struct {
	ID       uuid.UUID `json:"id"`
	MemberID uuid.UUID `json:"memberId"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	Icon     string    `json:"icon"`
}

// CreateSocialLinkInput represents input for adding a social link
type CreateSocialLinkInput struct {
	Title string `json:"title" binding:"required"`
	Link  string `json:"link" binding:"required,url"`
	Icon  string `json:"icon" binding:"required"`
}

// ExternalLink is a generic link attachment owned by a member
type ExternalLink struct {
	ID       uuid.UUID `json:"id"`
	MemberID uuid.UUID `json:"memberId"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
}

// CreateExternalLinkInput represents input for adding an external link
type CreateExternalLinkInput struct {
	Title string `json:"title" binding:"required"`
	Link  string `json:"link" binding:"required,url"`
}

// Image is a stored image referenced by member avatars and covers
type Image struct {
	ID        uuid.UUID `json:"id"`
	Thumbnail string    `json:"thumbnail"`
	Original  string    `json:"original"`
}

// CreateImageInput represents input for registering an image
type CreateImageInput struct {
	Thumbnail string `json:"thumbnail" binding:"required,url"`
	Original  string `json:"original" binding:"required,url"`
}
