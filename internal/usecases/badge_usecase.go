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

// BadgeUsecase handles badge definitions and assignments
type BadgeUsecase struct {
	badgeRepo       repositories.BadgeRepository
	memberBadgeRepo repositories.MemberBadgeRepository
	memberRepo      repositories.MemberRepository
}

// NewBadgeUsecase creates a new badge usecase
func NewBadgeUsecase(
	badgeRepo repositories.BadgeRepository,
	memberBadgeRepo repositories.MemberBadgeRepository,
	memberRepo repositories.MemberRepository,
) *BadgeUsecase {
	return &BadgeUsecase{
		badgeRepo:       badgeRepo,
		memberBadgeRepo: memberBadgeRepo,
		memberRepo:      memberRepo,
	}
}

// Create creates a badge definition
func (u *BadgeUsecase) Create(ctx context.Context, input *entities.CreateBadgeInput) (*entities.Badge, error) {
	if input.ValidUntil != nil && !input.ValidUntil.After(input.ValidFrom) {
		return nil, domainerrors.BadRequest("badge validity window must end after it starts")
	}

	now := time.Now()
	badge := &entities.Badge{
		ID:          utils.GenerateUUIDv7(),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		IsActive:    true,
		ValidFrom:   input.ValidFrom,
		ValidUntil:  null.TimeFromPtr(input.ValidUntil),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.badgeRepo.Create(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

// GetByID returns a badge
func (u *BadgeUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Badge, error) {
	return u.badgeRepo.GetByID(ctx, id)
}

// Update applies the non-nil fields of input
func (u *BadgeUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBadgeInput) (*entities.Badge, error) {
	badge, err := u.badgeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		badge.Name = *input.Name
	}
	if input.Description != nil {
		badge.Description = *input.Description
	}
	if input.Icon != nil {
		badge.Icon = *input.Icon
	}
	if input.IsActive != nil {
		badge.IsActive = *input.IsActive
	}
	if input.ValidFrom != nil {
		badge.ValidFrom = *input.ValidFrom
	}
	if input.ValidUntil != nil {
		badge.ValidUntil = null.TimeFrom(*input.ValidUntil)
	}
	if badge.ValidUntil.Valid && !badge.ValidUntil.Time.After(badge.ValidFrom) {
		return nil, domainerrors.BadRequest("badge validity window must end after it starts")
	}

	if err := u.badgeRepo.Update(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

// Delete removes a badge
func (u *BadgeUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.badgeRepo.Delete(ctx, id)
}

// List lists badges
func (u *BadgeUsecase) List(ctx context.Context, skip, limit int, filter entities.BadgeFilter) ([]*entities.Badge, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.badgeRepo.List(ctx, p.Skip, p.Limit, filter)
}

// Assign grants a badge to a member. Every gate produces its own
// message: existence of both sides, an active badge, the validity
// window, and no duplicate assignment.
func (u *BadgeUsecase) Assign(ctx context.Context, input *entities.AssignBadgeInput, issuedByID uuid.UUID) (*entities.MemberBadge, error) {
	if _, err := u.memberRepo.GetByID(ctx, input.MemberID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("member not found")
		}
		return nil, err
	}

	badge, err := u.badgeRepo.GetByID(ctx, input.BadgeID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("badge not found")
		}
		return nil, err
	}

	if !badge.IsActive {
		return nil, domainerrors.BadRequest("badge is not active")
	}
	now := time.Now()
	if now.Before(badge.ValidFrom) {
		return nil, domainerrors.BadRequest("badge is not yet valid")
	}
	if badge.ValidUntil.Valid && now.After(badge.ValidUntil.Time) {
		return nil, domainerrors.BadRequest("badge has expired")
	}

	_, err = u.memberBadgeRepo.GetByMemberAndBadge(ctx, input.MemberID, input.BadgeID)
	if err == nil {
		return nil, domainerrors.BadRequest("member already holds this badge")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	memberBadge := &entities.MemberBadge{
		ID:         utils.GenerateUUIDv7(),
		MemberID:   input.MemberID,
		BadgeID:    input.BadgeID,
		IssuedAt:   now,
		IssuedByID: issuedByID,
		IsActive:   true,
	}
	if err := u.memberBadgeRepo.Create(ctx, memberBadge); err != nil {
		return nil, err
	}
	return memberBadge, nil
}

// UpdateAssignment toggles an assignment's active flag
func (u *BadgeUsecase) UpdateAssignment(ctx context.Context, id uuid.UUID, input *entities.UpdateMemberBadgeInput) (*entities.MemberBadge, error) {
	memberBadge, err := u.memberBadgeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.IsActive != nil {
		memberBadge.IsActive = *input.IsActive
	}
	if err := u.memberBadgeRepo.Update(ctx, memberBadge); err != nil {
		return nil, err
	}
	return memberBadge, nil
}

// Unassign removes a member's badge
func (u *BadgeUsecase) Unassign(ctx context.Context, memberID, badgeID uuid.UUID) error {
	memberBadge, err := u.memberBadgeRepo.GetByMemberAndBadge(ctx, memberID, badgeID)
	if err != nil {
		return err
	}
	return u.memberBadgeRepo.Delete(ctx, memberBadge.ID)
}

// ListMemberBadges lists a member's badge assignments
func (u *BadgeUsecase) ListMemberBadges(ctx context.Context, memberID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	if _, err := u.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	p := utils.GetPaginationParams(skip, limit)
	return u.memberBadgeRepo.ListByMember(ctx, memberID, p.Skip, p.Limit, activeOnly)
}

// ListHolders lists the assignments of a badge
func (u *BadgeUsecase) ListHolders(ctx context.Context, badgeID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	if _, err := u.badgeRepo.GetByID(ctx, badgeID); err != nil {
		return nil, err
	}
	p := utils.GetPaginationParams(skip, limit)
	return u.memberBadgeRepo.ListByBadge(ctx, badgeID, p.Skip, p.Limit, activeOnly)
}
