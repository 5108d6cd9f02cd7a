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

// EventRepository implements event data operations
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	m := &models.Event{
		ID:               event.ID,
		Title:            event.Title,
		Description:      event.Description.Ptr(),
		Location:         event.Location.Ptr(),
		StartTime:        event.StartTime,
		EndTime:          event.EndTime,
		CoverImageURL:    event.CoverImageURL.Ptr(),
		IsVirtual:        event.IsVirtual,
		RegistrationLink: event.RegistrationLink.Ptr(),
		Capacity:         int64PtrFromInt(event.Capacity.Ptr()),
		CompanyID:        event.CompanyID,
		CreatedAt:        event.CreatedAt,
		UpdatedAt:        event.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return eventToEntity(&m), nil
}

// Update rewrites the mutable event columns and refreshes updated_at
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	updates := map[string]interface{}{
		"title":             event.Title,
		"description":       event.Description.Ptr(),
		"location":          event.Location.Ptr(),
		"start_time":        event.StartTime,
		"end_time":          event.EndTime,
		"cover_image_url":   event.CoverImageURL.Ptr(),
		"is_virtual":        event.IsVirtual,
		"registration_link": event.RegistrationLink.Ptr(),
		"capacity":          int64PtrFromInt(event.Capacity.Ptr()),
		"company_id":        event.CompanyID,
		"updated_at":        time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Event{}).Where("id = ?", event.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists events ordered by creation time descending, optionally
// restricted to events that have not started yet
func (r *EventRepository) List(ctx context.Context, skip, limit int, upcomingOnly bool) ([]*entities.Event, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")
	if upcomingOnly {
		query = query.Where("start_time > ?", time.Now())
	}

	var eventModels []models.Event
	if err := query.Offset(skip).Limit(limit).Find(&eventModels).Error; err != nil {
		return nil, err
	}
	return eventsToEntities(eventModels), nil
}

// ListByCompany lists events hosted by a company
func (r *EventRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Event, error) {
	var eventModels []models.Event
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&eventModels).Error
	if err != nil {
		return nil, err
	}
	return eventsToEntities(eventModels), nil
}

func eventsToEntities(eventModels []models.Event) []*entities.Event {
	events := make([]*entities.Event, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, eventToEntity(&eventModels[i]))
	}
	return events
}

func eventToEntity(m *models.Event) *entities.Event {
	return &entities.Event{
		ID:               m.ID,
		Title:            m.Title,
		Description:      null.StringFromPtr(m.Description),
		Location:         null.StringFromPtr(m.Location),
		StartTime:        m.StartTime,
		EndTime:          m.EndTime,
		CoverImageURL:    null.StringFromPtr(m.CoverImageURL),
		IsVirtual:        m.IsVirtual,
		RegistrationLink: null.StringFromPtr(m.RegistrationLink),
		Capacity:         null.IntFromPtr(intPtrFromInt64(m.Capacity)),
		CompanyID:        m.CompanyID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func intPtrFromInt64(p *int64) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

func int64PtrFromInt(p *int) *int64 {
	if p == nil {
		return nil
	}
	v := int64(*p)
	return &v
}
