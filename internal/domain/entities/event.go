package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Event represents a scheduled occurrence hosted by a company
type Event struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Description      null.String `json:"description,omitempty"`
	Location         null.String `json:"location,omitempty"`
	StartTime        time.Time   `json:"startTime"`
	EndTime          time.Time   `json:"endTime"`
	CoverImageURL    null.String `json:"coverImageUrl,omitempty"`
	IsVirtual        bool        `json:"isVirtual"`
	RegistrationLink null.String `json:"registrationLink,omitempty"`
	Capacity         null.Int    `json:"capacity,omitempty"`
	CompanyID        uuid.UUID   `json:"companyId"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// CreateEventInput represents input for creating an event
type CreateEventInput struct {
	Title            string    `json:"title" binding:"required"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	StartTime        time.Time `json:"startTime" binding:"required"`
	EndTime          time.Time `json:"endTime" binding:"required"`
	CoverImageURL    string    `json:"coverImageUrl" binding:"omitempty,url"`
	IsVirtual        bool      `json:"isVirtual"`
	RegistrationLink string    `json:"registrationLink" binding:"omitempty,url"`
	Capacity         *int      `json:"capacity"`
	CompanyID        uuid.UUID `json:"companyId" binding:"required"`
}

// UpdateEventInput represents a partial event update
type UpdateEventInput struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Location         *string    `json:"location"`
	StartTime        *time.Time `json:"startTime"`
	EndTime          *time.Time `json:"endTime"`
	CoverImageURL    *string    `json:"coverImageUrl" binding:"omitempty,url"`
	IsVirtual        *bool      `json:"isVirtual"`
	RegistrationLink *string    `json:"registrationLink" binding:"omitempty,url"`
	Capacity         *int       `json:"capacity"`
	CompanyID        *uuid.UUID `json:"companyId"`
}
