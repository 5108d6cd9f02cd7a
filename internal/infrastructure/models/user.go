package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone            *string    `gorm:"type:varchar(50)"`
	PasswordHash     string     `gorm:"type:varchar(255);not null"`
	Role             string     `gorm:"type:varchar(50);not null;default:'member'"`
	IsActive         bool       `gorm:"not null;default:true"`
	EmailVerified    bool       `gorm:"not null;default:false"`
	PhoneVerified    bool       `gorm:"not null;default:false"`
	TwoFactorEnabled bool       `gorm:"not null;default:false"`
	TwoFactorMethod  *string    `gorm:"type:varchar(20)"`
	LastLogin        *time.Time `gorm:"type:timestamp"`
	MemberID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
