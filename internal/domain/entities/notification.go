package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NotificationType classifies a broadcast notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

// Valid reports whether the type is a known one
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationError, NotificationSuccess:
		return true
	}
	return false
}

// NotificationPriority orders notifications by urgency
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Valid reports whether the priority is a known one
func (p NotificationPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Notification is a broadcast message with optional expiry
type Notification struct {
	ID        uuid.UUID            `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Link      null.String          `json:"link,omitempty"`
	Type      NotificationType     `json:"type"`
	Priority  NotificationPriority `json:"priority"`
	IsActive  bool                 `json:"isActive"`
	ExpiresAt null.Time            `json:"expiresAt,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// CreateNotificationInput represents input for creating a notification
type CreateNotificationInput struct {
	Title     string     `json:"title" binding:"required"`
	Message   string     `json:"message" binding:"required"`
	Link      string     `json:"link" binding:"omitempty,url"`
	Type      string     `json:"type" binding:"required"`
	Priority  string     `json:"priority"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// UpdateNotificationInput represents a partial notification update
type UpdateNotificationInput struct {
	Title     *string    `json:"title"`
	Message   *string    `json:"message"`
	Link      *string    `json:"link" binding:"omitempty,url"`
	Type      *string    `json:"type"`
	Priority  *string    `json:"priority"`
	IsActive  *bool      `json:"isActive"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// NotificationFilter narrows notification listings
type NotificationFilter struct {
	ActiveOnly bool
	Type       string
	Priority   string
}
