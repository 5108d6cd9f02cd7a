package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/infrastructure/models"
)

// CompanyRepository implements company data operations
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	m := &models.Company{
		ID:          company.ID,
		Name:        company.Name,
		Industry:    company.Industry.Ptr(),
		Website:     company.Website.Ptr(),
		Email:       company.Email.Ptr(),
		Phone:       company.Phone.Ptr(),
		Address:     company.Address.Ptr(),
		Description: company.Description.Ptr(),
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	var m models.Company
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return companyToEntity(&m), nil
}

// GetByName gets a company by its unique name
func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*entities.Company, error) {
	var m models.Company
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return companyToEntity(&m), nil
}

// Update rewrites the mutable company columns and refreshes updated_at
func (r *CompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	updates := map[string]interface{}{
		"name":        company.Name,
		"industry":    company.Industry.Ptr(),
		"website":     company.Website.Ptr(),
		"email":       company.Email.Ptr(),
		"phone":       company.Phone.Ptr(),
		"address":     company.Address.Ptr(),
		"description": company.Description.Ptr(),
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Company{}).Where("id = ?", company.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a company
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists companies ordered by creation time descending
func (r *CompanyRepository) List(ctx context.Context, skip, limit int) ([]*entities.Company, error) {
	var companyModels []models.Company
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&companyModels).Error
	if err != nil {
		return nil, err
	}

	companies := make([]*entities.Company, 0, len(companyModels))
	for i := range companyModels {
		companies = append(companies, companyToEntity(&companyModels[i]))
	}
	return companies, nil
}

func companyToEntity(m *models.Company) *entities.Company {
	return &entities.Company{
		ID:          m.ID,
		Name:        m.Name,
		Industry:    null.StringFromPtr(m.Industry),
		Website:     null.StringFromPtr(m.Website),
		Email:       null.StringFromPtr(m.Email),
		Phone:       null.StringFromPtr(m.Phone),
		Address:     null.StringFromPtr(m.Address),
		Description: null.StringFromPtr(m.Description),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
