package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/interfaces/http/middleware"
	"member-hub.backend/internal/interfaces/http/response"
	"member-hub.backend/internal/usecases"
)

// MemberHandler handles member profile and follow graph endpoints
type MemberHandler struct {
	memberUsecase *usecases.MemberUsecase
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberUsecase *usecases.MemberUsecase) *MemberHandler {
	return &MemberHandler{memberUsecase: memberUsecase}
}

// Create creates a member profile
// POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	var input entities.CreateMemberInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member, err := h.memberUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, member)
}

// List lists members
// GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	skip, limit := paginationFromQuery(c)

	members, err := h.memberUsecase.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, members)
}

// GetByID returns a member with links attached
// GET /api/v1/members/:id
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	member, err := h.memberUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

// GetByUserName returns a member by username
// GET /api/v1/members/username/:userName
func (h *MemberHandler) GetByUserName(c *gin.Context) {
	member, err := h.memberUsecase.GetByUserName(c.Request.Context(), c.Param("userName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

// GetBySlug returns a member by slug
// GET /api/v1/members/slug/:slug
func (h *MemberHandler) GetBySlug(c *gin.Context) {
	member, err := h.memberUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

// Update applies a partial update to a member profile
// PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member, err := h.memberUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}

// Delete removes a member profile
// DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.memberUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Follow makes the authenticated member follow the target
// POST /api/v1/members/:id/follow
func (h *MemberHandler) Follow(c *gin.Context) {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	followerID, ok := middleware.GetMemberID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	if err := h.memberUsecase.Follow(c.Request.Context(), followerID, targetID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "now following",
	})
}

// Unfollow removes the authenticated member's follow of the target
// DELETE /api/v1/members/:id/follow
func (h *MemberHandler) Unfollow(c *gin.Context) {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	followerID, ok := middleware.GetMemberID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	if err := h.memberUsecase.Unfollow(c.Request.Context(), followerID, targetID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFollowers lists the public profiles following a member
// GET /api/v1/members/:id/followers
func (h *MemberHandler) ListFollowers(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	skip, limit := paginationFromQuery(c)
	profiles, err := h.memberUsecase.ListFollowers(c.Request.Context(), id, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profiles)
}

// ListFollowing lists the public profiles a member follows
// GET /api/v1/members/:id/following
func (h *MemberHandler) ListFollowing(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	skip, limit := paginationFromQuery(c)
	profiles, err := h.memberUsecase.ListFollowing(c.Request.Context(), id, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profiles)
}

// AddSocialLink attaches a social link to a member
// POST /api/v1/members/:id/socials
func (h *MemberHandler) AddSocialLink(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CreateSocialLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	link, err := h.memberUsecase.AddSocialLink(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, link)
}

// RemoveSocialLink removes a social link
// DELETE /api/v1/members/:id/socials/:linkId
func (h *MemberHandler) RemoveSocialLink(c *gin.Context) {
	linkID, err := parseUUIDParam(c, "linkId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.memberUsecase.RemoveSocialLink(c.Request.Context(), linkID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddExternalLink attaches an external link to a member
// POST /api/v1/members/:id/links
func (h *MemberHandler) AddExternalLink(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CreateExternalLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	link, err := h.memberUsecase.AddExternalLink(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, link)
}

// RemoveExternalLink removes an external link
// DELETE /api/v1/members/:id/links/:linkId
func (h *MemberHandler) RemoveExternalLink(c *gin.Context) {
	linkID, err := parseUUIDParam(c, "linkId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.memberUsecase.RemoveExternalLink(c.Request.Context(), linkID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAvatar sets the member's avatar image
// POST /api/v1/members/:id/avatar
func (h *MemberHandler) SetAvatar(c *gin.Context) {
	h.setImage(c, h.memberUsecase.SetAvatar)
}

// SetCoverImage sets the member's cover image
// POST /api/v1/members/:id/cover
func (h *MemberHandler) SetCoverImage(c *gin.Context) {
	h.setImage(c, h.memberUsecase.SetCoverImage)
}

func (h *MemberHandler) setImage(c *gin.Context, set func(context.Context, uuid.UUID, *entities.CreateImageInput) (*entities.Member, error)) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CreateImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member, err := set(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, member)
}
