package repositories

import (
	"context"

	"github.com/google/uuid"
	"member-hub.backend/internal/domain/entities"
)

// CompanyRepository defines company data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error)
	GetByName(ctx context.Context, name string) (*entities.Company, error)
	Update(ctx context.Context, company *entities.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, skip, limit int) ([]*entities.Company, error)
}

// EventRepository defines event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, skip, limit int, upcomingOnly bool) ([]*entities.Event, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Event, error)
}
