package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	Link      *string    `gorm:"type:varchar(255)"`
	Type      string     `gorm:"type:varchar(50);not null"`
	Priority  string     `gorm:"type:varchar(20);not null;default:'normal'"`
	IsActive  bool       `gorm:"not null;default:true"`
	ExpiresAt *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Badge struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:text;not null"`
	Icon        string     `gorm:"type:varchar(255);not null"`
	IsActive    bool       `gorm:"not null;default:true"`
	ValidFrom   time.Time  `gorm:"not null"`
	ValidUntil  *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MemberBadge struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_badge"`
	BadgeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_badge"`
	IssuedAt   time.Time `gorm:"not null"`
	IssuedByID uuid.UUID `gorm:"type:uuid;not null"`
	IsActive   bool      `gorm:"not null;default:true"`
}
