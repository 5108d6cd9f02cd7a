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

// EventUsecase handles company events
type EventUsecase struct {
	eventRepo   repositories.EventRepository
	companyRepo repositories.CompanyRepository
}

// NewEventUsecase creates a new event usecase
func NewEventUsecase(eventRepo repositories.EventRepository, companyRepo repositories.CompanyRepository) *EventUsecase {
	return &EventUsecase{eventRepo: eventRepo, companyRepo: companyRepo}
}

// Create creates an event for an existing company
func (u *EventUsecase) Create(ctx context.Context, input *entities.CreateEventInput) (*entities.Event, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, domainerrors.BadRequest("event end time must be after start time")
	}
	if _, err := u.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("company not found")
		}
		return nil, err
	}

	now := time.Now()
	event := &entities.Event{
		ID:               utils.GenerateUUIDv7(),
		Title:            input.Title,
		Description:      null.NewString(input.Description, input.Description != ""),
		Location:         null.NewString(input.Location, input.Location != ""),
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		CoverImageURL:    null.NewString(input.CoverImageURL, input.CoverImageURL != ""),
		IsVirtual:        input.IsVirtual,
		RegistrationLink: null.NewString(input.RegistrationLink, input.RegistrationLink != ""),
		Capacity:         null.IntFromPtr(input.Capacity),
		CompanyID:        input.CompanyID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID returns an event
func (u *EventUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	return u.eventRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of input
func (u *EventUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateEventInput) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = null.NewString(*input.Description, *input.Description != "")
	}
	if input.Location != nil {
		event.Location = null.NewString(*input.Location, *input.Location != "")
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}
	if !event.EndTime.After(event.StartTime) {
		return nil, domainerrors.BadRequest("event end time must be after start time")
	}
	if input.CoverImageURL != nil {
		event.CoverImageURL = null.NewString(*input.CoverImageURL, *input.CoverImageURL != "")
	}
	if input.IsVirtual != nil {
		event.IsVirtual = *input.IsVirtual
	}
	if input.RegistrationLink != nil {
		event.RegistrationLink = null.NewString(*input.RegistrationLink, *input.RegistrationLink != "")
	}
	if input.Capacity != nil {
		event.Capacity = null.IntFrom(*input.Capacity)
	}
	if input.CompanyID != nil {
		if _, err := u.companyRepo.GetByID(ctx, *input.CompanyID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("company not found")
			}
			return nil, err
		}
		event.CompanyID = *input.CompanyID
	}

	if err := u.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event
func (u *EventUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.eventRepo.Delete(ctx, id)
}

// List lists events, optionally only upcoming ones
func (u *EventUsecase) List(ctx context.Context, skip, limit int, upcomingOnly bool) ([]*entities.Event, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.eventRepo.List(ctx, p.Skip, p.Limit, upcomingOnly)
}

// ListByCompany lists events hosted by a company
func (u *EventUsecase) ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Event, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.eventRepo.ListByCompany(ctx, companyID, p.Skip, p.Limit)
}
