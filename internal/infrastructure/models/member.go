package models

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName    string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100)"`
	UserName     string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug         string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	WalletKey    string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        *string    `gorm:"type:varchar(50)"`
	Bio          *string    `gorm:"type:text"`
	Position     *string    `gorm:"type:varchar(100)"`
	IsActive     bool       `gorm:"not null;default:true"`
	Following    string     `gorm:"type:varchar(20);not null;default:'0'"`
	Followers    string     `gorm:"type:varchar(20);not null;default:'0'"`
	JoinedAt     time.Time  `gorm:"not null"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index"`
	AvatarID     *uuid.UUID `gorm:"type:uuid"`
	CoverImageID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Follower struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_pair"`
	FollowedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follower_pair"`
	CreatedAt  time.Time
}

type SocialLink struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(100);not null"`
	Link     string    `gorm:"type:text;not null"`
	Icon     string    `gorm:"type:varchar(255);not null"`
}

type ExternalLink struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(100);not null"`
	Link     string    `gorm:"type:text;not null"`
}

type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Thumbnail string    `gorm:"type:text;not null"`
	Original  string    `gorm:"type:text;not null"`
}
