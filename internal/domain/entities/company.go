package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Company represents an organizational profile referenced by members and events
type Company struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Industry    null.String `json:"industry,omitempty"`
	Website     null.String `json:"website,omitempty"`
	Email       null.String `json:"email,omitempty"`
	Phone       null.String `json:"phone,omitempty"`
	Address     null.String `json:"address,omitempty"`
	Description null.String `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateCompanyInput represents input for creating a company
type CreateCompanyInput struct {
	Name        string `json:"name" binding:"required"`
	Industry    string `json:"industry"`
	Website     string `json:"website" binding:"omitempty,url"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// UpdateCompanyInput represents a partial company update
type UpdateCompanyInput struct {
	Name        *string `json:"name"`
	Industry    *string `json:"industry"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}
