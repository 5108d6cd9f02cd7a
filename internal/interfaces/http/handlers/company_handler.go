package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/interfaces/http/response"
	"member-hub.backend/internal/usecases"
)

// CompanyHandler handles company endpoints
type CompanyHandler struct {
	companyUsecase *usecases.CompanyUsecase
	memberUsecase  *usecases.MemberUsecase
	eventUsecase   *usecases.EventUsecase
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(
	companyUsecase *usecases.CompanyUsecase,
	memberUsecase *usecases.MemberUsecase,
	eventUsecase *usecases.EventUsecase,
) *CompanyHandler {
	return &CompanyHandler{
		companyUsecase: companyUsecase,
		memberUsecase:  memberUsecase,
		eventUsecase:   eventUsecase,
	}
}

// Create creates a company
// POST /api/v1/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var input entities.CreateCompanyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, company)
}

// List lists companies
// GET /api/v1/companies
func (h *CompanyHandler) List(c *gin.Context) {
	skip, limit := paginationFromQuery(c)

	companies, err := h.companyUsecase.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, companies)
}

// GetByID returns a company
// GET /api/v1/companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	company, err := h.companyUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// Update applies a partial update to a company
// PUT /api/v1/companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// Delete removes a company
// DELETE /api/v1/companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.companyUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers lists the members belonging to a company
// GET /api/v1/companies/:id/members
func (h *CompanyHandler) ListMembers(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	skip, limit := paginationFromQuery(c)
	members, err := h.memberUsecase.ListByCompany(c.Request.Context(), id, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, members)
}

// ListEvents lists the events hosted by a company
// GET /api/v1/companies/:id/events
func (h *CompanyHandler) ListEvents(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	skip, limit := paginationFromQuery(c)
	events, err := h.eventUsecase.ListByCompany(c.Request.Context(), id, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, events)
}
