package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/interfaces/http/response"
	"member-hub.backend/internal/usecases"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventUsecase *usecases.EventUsecase
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUsecase *usecases.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// Create creates an event
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var input entities.CreateEventInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, event)
}

// List lists events; ?upcoming=true restricts to future ones
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	skip, limit := paginationFromQuery(c)
	upcomingOnly := queryBool(c, "upcoming")

	events, err := h.eventUsecase.List(c.Request.Context(), skip, limit, upcomingOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, events)
}

// GetByID returns an event
// GET /api/v1/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	event, err := h.eventUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Update applies a partial update to an event
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Delete removes an event
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.eventUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
