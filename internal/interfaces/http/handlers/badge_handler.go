package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/interfaces/http/middleware"
	"member-hub.backend/internal/interfaces/http/response"
	"member-hub.backend/internal/usecases"
)

// BadgeHandler handles badge definition and assignment endpoints
type BadgeHandler struct {
	badgeUsecase *usecases.BadgeUsecase
}

// NewBadgeHandler creates a new badge handler
func NewBadgeHandler(badgeUsecase *usecases.BadgeUsecase) *BadgeHandler {
	return &BadgeHandler{badgeUsecase: badgeUsecase}
}

// Create creates a badge definition
// POST /api/v1/badges
func (h *BadgeHandler) Create(c *gin.Context) {
	var input entities.CreateBadgeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	badge, err := h.badgeUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, badge)
}

// List lists badges; ?activeOnly=true restricts to active ones
// GET /api/v1/badges
func (h *BadgeHandler) List(c *gin.Context) {
	skip, limit := paginationFromQuery(c)
	filter := entities.BadgeFilter{ActiveOnly: queryBool(c, "activeOnly")}

	badges, err := h.badgeUsecase.List(c.Request.Context(), skip, limit, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, badges)
}

// GetByID returns a badge
// GET /api/v1/badges/:id
func (h *BadgeHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	badge, err := h.badgeUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, badge)
}

// Update applies a partial update to a badge
// PUT /api/v1/badges/:id
func (h *BadgeHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateBadgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	badge, err := h.badgeUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, badge)
}

// Delete removes a badge
// DELETE /api/v1/badges/:id
func (h *BadgeHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.badgeUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Assign grants a badge to a member, recording the issuer
// POST /api/v1/badges/assign
func (h *BadgeHandler) Assign(c *gin.Context) {
	var input entities.AssignBadgeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	issuerID, ok := middleware.GetMemberID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	memberBadge, err := h.badgeUsecase.Assign(c.Request.Context(), &input, issuerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, memberBadge)
}

// Unassign removes a member's badge
// DELETE /api/v1/badges/:id/members/:memberId
func (h *BadgeHandler) Unassign(c *gin.Context) {
	badgeID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	memberID, err := parseUUIDParam(c, "memberId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.badgeUsecase.Unassign(c.Request.Context(), memberID, badgeID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateAssignment toggles an assignment's active flag
// PUT /api/v1/badges/assignments/:assignmentId
func (h *BadgeHandler) UpdateAssignment(c *gin.Context) {
	id, err := parseUUIDParam(c, "assignmentId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateMemberBadgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	memberBadge, err := h.badgeUsecase.UpdateAssignment(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, memberBadge)
}

// ListHolders lists the assignments of a badge
// GET /api/v1/badges/:id/members
func (h *BadgeHandler) ListHolders(c *gin.Context) {
	badgeID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	skip, limit := paginationFromQuery(c)
	holders, err := h.badgeUsecase.ListHolders(c.Request.Context(), badgeID, skip, limit, queryBool(c, "activeOnly"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, holders)
}

// ListMemberBadges lists a member's badge assignments
// GET /api/v1/members/:id/badges
func (h *BadgeHandler) ListMemberBadges(c *gin.Context) {
	memberID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	skip, limit := paginationFromQuery(c)
	badges, err := h.badgeUsecase.ListMemberBadges(c.Request.Context(), memberID, skip, limit, queryBool(c, "activeOnly"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, badges)
}
