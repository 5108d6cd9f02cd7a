package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/interfaces/http/response"
	"member-hub.backend/internal/usecases"
)

// NotificationHandler handles broadcast notification endpoints
type NotificationHandler struct {
	notificationUsecase *usecases.NotificationUsecase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase *usecases.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

func notificationFilterFromQuery(c *gin.Context) entities.NotificationFilter {
	return entities.NotificationFilter{
		Type:       c.Query("type"),
		Priority:   c.Query("priority"),
		ActiveOnly: queryBool(c, "activeOnly"),
	}
}

// Create creates a notification
// POST /api/v1/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var input entities.CreateNotificationInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	notification, err := h.notificationUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, notification)
}

// List lists notifications with optional filters
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	skip, limit := paginationFromQuery(c)

	notifications, err := h.notificationUsecase.List(c.Request.Context(), skip, limit, notificationFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notifications)
}

// ListActive lists active, unexpired notifications
// GET /api/v1/notifications/active
func (h *NotificationHandler) ListActive(c *gin.Context) {
	skip, limit := paginationFromQuery(c)

	notifications, err := h.notificationUsecase.ListActive(c.Request.Context(), skip, limit, notificationFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notifications)
}

// GetByID returns a notification
// GET /api/v1/notifications/:id
func (h *NotificationHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	notification, err := h.notificationUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notification)
}

// Update applies a partial update to a notification
// PUT /api/v1/notifications/:id
func (h *NotificationHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	notification, err := h.notificationUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notification)
}

// Deactivate marks a notification inactive
// POST /api/v1/notifications/:id/deactivate
func (h *NotificationHandler) Deactivate(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	notification, err := h.notificationUsecase.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notification)
}

// Delete removes a notification
// DELETE /api/v1/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.notificationUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
