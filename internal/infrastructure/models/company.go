package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Industry    *string   `gorm:"type:varchar(255)"`
	Website     *string   `gorm:"type:varchar(255)"`
	Email       *string   `gorm:"type:varchar(255)"`
	Phone       *string   `gorm:"type:varchar(50)"`
	Address     *string   `gorm:"type:text"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Event struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      *string   `gorm:"type:text"`
	Location         *string   `gorm:"type:varchar(255)"`
	StartTime        time.Time `gorm:"not null"`
	EndTime          time.Time `gorm:"not null"`
	CoverImageURL    *string   `gorm:"type:text"`
	IsVirtual        bool      `gorm:"not null;default:false"`
	RegistrationLink *string   `gorm:"type:text"`
	Capacity         *int64
	CompanyID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
