package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/domain/repositories"
	"member-hub.backend/pkg/utils"
)

// CompanyUsecase handles company profiles
type CompanyUsecase struct {
	companyRepo repositories.CompanyRepository
}

// NewCompanyUsecase creates a new company usecase
func NewCompanyUsecase(companyRepo repositories.CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{companyRepo: companyRepo}
}

// Create creates a company; the name must be unused
func (u *CompanyUsecase) Create(ctx context.Context, input *entities.CreateCompanyInput) (*entities.Company, error) {
	_, err := u.companyRepo.GetByName(ctx, input.Name)
	if err == nil {
		return nil, domainerrors.Conflict("company with this name already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	company := &entities.Company{
		ID:          utils.GenerateUUIDv7(),
		Name:        input.Name,
		Industry:    null.NewString(input.Industry, input.Industry != ""),
		Website:     null.NewString(input.Website, input.Website != ""),
		Email:       null.NewString(input.Email, input.Email != ""),
		Phone:       null.NewString(input.Phone, input.Phone != ""),
		Address:     null.NewString(input.Address, input.Address != ""),
		Description: null.NewString(input.Description, input.Description != ""),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID returns a company
func (u *CompanyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of input
func (u *CompanyUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCompanyInput) (*entities.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != company.Name {
		existing, err := u.companyRepo.GetByName(ctx, *input.Name)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domainerrors.Conflict("company with this name already exists")
		}
		company.Name = *input.Name
	}
	if input.Industry != nil {
		company.Industry = null.NewString(*input.Industry, *input.Industry != "")
	}
	if input.Website != nil {
		company.Website = null.NewString(*input.Website, *input.Website != "")
	}
	if input.Email != nil {
		company.Email = null.NewString(*input.Email, *input.Email != "")
	}
	if input.Phone != nil {
		company.Phone = null.NewString(*input.Phone, *input.Phone != "")
	}
	if input.Address != nil {
		company.Address = null.NewString(*input.Address, *input.Address != "")
	}
	if input.Description != nil {
		company.Description = null.NewString(*input.Description, *input.Description != "")
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company
func (u *CompanyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.companyRepo.Delete(ctx, id)
}

// List lists companies
func (u *CompanyUsecase) List(ctx context.Context, skip, limit int) ([]*entities.Company, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.companyRepo.List(ctx, p.Skip, p.Limit)
}
