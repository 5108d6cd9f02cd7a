package usecases

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/domain/repositories"
	"member-hub.backend/pkg/utils"
	"member-hub.backend/pkg/wallet"
)

// MemberUsecase handles member profiles, links and the follow graph
type MemberUsecase struct {
	memberRepo       repositories.MemberRepository
	followerRepo     repositories.FollowerRepository
	socialLinkRepo   repositories.SocialLinkRepository
	externalLinkRepo repositories.ExternalLinkRepository
	companyRepo      repositories.CompanyRepository
	imageRepo        repositories.ImageRepository
	uow              repositories.UnitOfWork
}

// NewMemberUsecase creates a new member usecase
func NewMemberUsecase(
	memberRepo repositories.MemberRepository,
	followerRepo repositories.FollowerRepository,
	socialLinkRepo repositories.SocialLinkRepository,
	externalLinkRepo repositories.ExternalLinkRepository,
	companyRepo repositories.CompanyRepository,
	imageRepo repositories.ImageRepository,
	uow repositories.UnitOfWork,
) *MemberUsecase {
	return &MemberUsecase{
		memberRepo:       memberRepo,
		followerRepo:     followerRepo,
		socialLinkRepo:   socialLinkRepo,
		externalLinkRepo: externalLinkRepo,
		companyRepo:      companyRepo,
		imageRepo:        imageRepo,
		uow:              uow,
	}
}

// checkMemberUniqueness rejects values already taken by another member,
// with a distinct message per field. excludeID skips the member being
// updated.
func checkMemberUniqueness(ctx context.Context, repo repositories.MemberRepository, excludeID *uuid.UUID, email, userName, slug, walletKey string) error {
	existing, err := repo.FindByUniqueFields(ctx, email, userName, slug, walletKey)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if excludeID != nil && existing.ID == *excludeID {
		return nil
	}

	switch {
	case email != "" && existing.Email == email:
		return domainerrors.Conflict("member with this email already exists")
	case userName != "" && existing.UserName == userName:
		return domainerrors.Conflict("member with this username already exists")
	case slug != "" && existing.Slug == slug:
		return domainerrors.Conflict("member with this slug already exists")
	default:
		return domainerrors.Conflict("member with this wallet key already exists")
	}
}

func newMemberFromInput(input *entities.CreateMemberInput, now time.Time) *entities.Member {
	m := &entities.Member{
		ID:           utils.GenerateUUIDv7(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		UserName:     input.UserName,
		Email:        input.Email,
		Slug:         input.Slug,
		WalletKey:    wallet.Normalize(input.WalletKey),
		Phone:        null.NewString(input.Phone, input.Phone != ""),
		Bio:          null.NewString(input.Bio, input.Bio != ""),
		Position:     null.NewString(input.Position, input.Position != ""),
		IsActive:     true,
		Following:    "0",
		Followers:    "0",
		JoinedAt:     now,
		CompanyID:    nullUUID(input.CompanyID),
		AvatarID:     nullUUID(input.AvatarID),
		CoverImageID: nullUUID(input.CoverImageID),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return m
}

func nullUUID(p *uuid.UUID) uuid.NullUUID {
	if p == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *p, Valid: true}
}

// Create creates a member profile
func (u *MemberUsecase) Create(ctx context.Context, input *entities.CreateMemberInput) (*entities.Member, error) {
	if !wallet.IsValidKey(input.WalletKey) {
		return nil, domainerrors.BadRequest("invalid wallet key")
	}
	walletKey := wallet.Normalize(input.WalletKey)

	if err := checkMemberUniqueness(ctx, u.memberRepo, nil, input.Email, input.UserName, input.Slug, walletKey); err != nil {
		return nil, err
	}
	if input.CompanyID != nil {
		if _, err := u.companyRepo.GetByID(ctx, *input.CompanyID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("company not found")
			}
			return nil, err
		}
	}

	member := newMemberFromInput(input, time.Now())
	if err := u.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetByID returns a member with socials and external links attached
func (u *MemberUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	member, err := u.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.attachLinks(ctx, member)
}

// GetByUserName returns a member by username
func (u *MemberUsecase) GetByUserName(ctx context.Context, userName string) (*entities.Member, error) {
	member, err := u.memberRepo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return u.attachLinks(ctx, member)
}

// GetBySlug returns a member by slug
func (u *MemberUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Member, error) {
	member, err := u.memberRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return u.attachLinks(ctx, member)
}

func (u *MemberUsecase) attachLinks(ctx context.Context, member *entities.Member) (*entities.Member, error) {
	socials, err := u.socialLinkRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	links, err := u.externalLinkRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	member.Socials = socials
	member.Links = links
	return member, nil
}

// Update applies the non-nil fields of input and refreshes updated_at
func (u *MemberUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMemberInput) (*entities.Member, error) {
	member, err := u.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var email, userName, slug, walletKey string
	if input.Email != nil && *input.Email != member.Email {
		email = *input.Email
	}
	if input.UserName != nil && *input.UserName != member.UserName {
		userName = *input.UserName
	}
	if input.Slug != nil && *input.Slug != member.Slug {
		slug = *input.Slug
	}
	if input.WalletKey != nil {
		if !wallet.IsValidKey(*input.WalletKey) {
			return nil, domainerrors.BadRequest("invalid wallet key")
		}
		if normalized := wallet.Normalize(*input.WalletKey); normalized != member.WalletKey {
			walletKey = normalized
		}
	}
	if email != "" || userName != "" || slug != "" || walletKey != "" {
		if err := checkMemberUniqueness(ctx, u.memberRepo, &id, email, userName, slug, walletKey); err != nil {
			return nil, err
		}
	}

	if input.FirstName != nil {
		member.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		member.LastName = *input.LastName
	}
	if userName != "" {
		member.UserName = userName
	}
	if email != "" {
		member.Email = email
	}
	if slug != "" {
		member.Slug = slug
	}
	if walletKey != "" {
		member.WalletKey = walletKey
	}
	if input.Phone != nil {
		member.Phone = null.NewString(*input.Phone, *input.Phone != "")
	}
	if input.Bio != nil {
		member.Bio = null.NewString(*input.Bio, *input.Bio != "")
	}
	if input.Position != nil {
		member.Position = null.NewString(*input.Position, *input.Position != "")
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}
	if input.CompanyID != nil {
		if _, err := u.companyRepo.GetByID(ctx, *input.CompanyID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("company not found")
			}
			return nil, err
		}
		member.CompanyID = uuid.NullUUID{UUID: *input.CompanyID, Valid: true}
	}
	if input.AvatarID != nil {
		member.AvatarID = uuid.NullUUID{UUID: *input.AvatarID, Valid: true}
	}
	if input.CoverImageID != nil {
		member.CoverImageID = uuid.NullUUID{UUID: *input.CoverImageID, Valid: true}
	}

	if err := u.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member
func (u *MemberUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.memberRepo.Delete(ctx, id)
}

// List lists members
func (u *MemberUsecase) List(ctx context.Context, skip, limit int) ([]*entities.Member, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.memberRepo.List(ctx, p.Skip, p.Limit)
}

// ListByCompany lists members belonging to a company
func (u *MemberUsecase) ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.memberRepo.ListByCompany(ctx, companyID, p.Skip, p.Limit)
}

// Follow creates a follow edge and bumps both denormalized counters in
// one transaction
func (u *MemberUsecase) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return domainerrors.BadRequest("cannot follow yourself")
	}

	return u.uow.Do(ctx, func(ctx context.Context) error {
		follower, err := u.memberRepo.GetByID(ctx, followerID)
		if err != nil {
			return err
		}
		target, err := u.memberRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}

		exists, err := u.followerRepo.Exists(ctx, followerID, targetID)
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.BadRequest("already following this member")
		}

		edge := &entities.Follower{
			ID:         utils.GenerateUUIDv7(),
			FollowerID: followerID,
			FollowedID: targetID,
			CreatedAt:  time.Now(),
		}
		if err := u.followerRepo.Create(ctx, edge); err != nil {
			return err
		}

		if err := u.memberRepo.UpdateFollowCounts(ctx, followerID, follower.Followers, incrementCount(follower.Following)); err != nil {
			return err
		}
		return u.memberRepo.UpdateFollowCounts(ctx, targetID, incrementCount(target.Followers), target.Following)
	})
}

// Unfollow removes the follow edge and decrements both counters,
// floored at zero
func (u *MemberUsecase) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		follower, err := u.memberRepo.GetByID(ctx, followerID)
		if err != nil {
			return err
		}
		target, err := u.memberRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}

		if err := u.followerRepo.Delete(ctx, followerID, targetID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.BadRequest("not following this member")
			}
			return err
		}

		if err := u.memberRepo.UpdateFollowCounts(ctx, followerID, follower.Followers, decrementCount(follower.Following)); err != nil {
			return err
		}
		return u.memberRepo.UpdateFollowCounts(ctx, targetID, decrementCount(target.Followers), target.Following)
	})
}

// ListFollowers lists the public profiles following a member
func (u *MemberUsecase) ListFollowers(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.MemberPublic, error) {
	if _, err := u.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	p := utils.GetPaginationParams(skip, limit)
	members, err := u.followerRepo.ListFollowers(ctx, memberID, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}
	return publicProfiles(members), nil
}

// ListFollowing lists the public profiles a member follows
func (u *MemberUsecase) ListFollowing(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.MemberPublic, error) {
	if _, err := u.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	p := utils.GetPaginationParams(skip, limit)
	members, err := u.followerRepo.ListFollowing(ctx, memberID, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}
	return publicProfiles(members), nil
}

func publicProfiles(members []*entities.Member) []*entities.MemberPublic {
	profiles := make([]*entities.MemberPublic, 0, len(members))
	for _, m := range members {
		profiles = append(profiles, m.Public())
	}
	return profiles
}

// Counters are stored as strings; unparsable values count as zero.
func incrementCount(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		n = 0
	}
	return strconv.Itoa(n + 1)
}

func decrementCount(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "0"
	}
	return strconv.Itoa(n - 1)
}

// AddSocialLink attaches a social link to a member
func (u *MemberUsecase) AddSocialLink(ctx context.Context, memberID uuid.UUID, input *entities.CreateSocialLinkInput) (*entities.SocialLink, error) {
	if _, err := u.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	link := &entities.SocialLink{
		ID:       utils.GenerateUUIDv7(),
		MemberID: memberID,
		Title:    input.Title,
		Link:     input.Link,
		Icon:     input.Icon,
	}
	if err := u.socialLinkRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// RemoveSocialLink removes a social link
func (u *MemberUsecase) RemoveSocialLink(ctx context.Context, id uuid.UUID) error {
	return u.socialLinkRepo.Delete(ctx, id)
}

// AddExternalLink attaches an external link to a member
func (u *MemberUsecase) AddExternalLink(ctx context.Context, memberID uuid.UUID, input *entities.CreateExternalLinkInput) (*entities.ExternalLink, error) {
	if _, err := u.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	link := &entities.ExternalLink{
		ID:       utils.GenerateUUIDv7(),
		MemberID: memberID,
		Title:    input.Title,
		Link:     input.Link,
	}
	if err := u.externalLinkRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// RemoveExternalLink removes an external link
func (u *MemberUsecase) RemoveExternalLink(ctx context.Context, id uuid.UUID) error {
	return u.externalLinkRepo.Delete(ctx, id)
}

// SetAvatar registers an uploaded image and makes it the member's avatar
func (u *MemberUsecase) SetAvatar(ctx context.Context, memberID uuid.UUID, input *entities.CreateImageInput) (*entities.Member, error) {
	return u.setImage(ctx, memberID, input, func(m *entities.Member, imageID uuid.UUID) {
		m.AvatarID = uuid.NullUUID{UUID: imageID, Valid: true}
	})
}

// SetCoverImage registers an uploaded image and makes it the member's cover image
func (u *MemberUsecase) SetCoverImage(ctx context.Context, memberID uuid.UUID, input *entities.CreateImageInput) (*entities.Member, error) {
	return u.setImage(ctx, memberID, input, func(m *entities.Member, imageID uuid.UUID) {
		m.CoverImageID = uuid.NullUUID{UUID: imageID, Valid: true}
	})
}

func (u *MemberUsecase) setImage(ctx context.Context, memberID uuid.UUID, input *entities.CreateImageInput, assign func(*entities.Member, uuid.UUID)) (*entities.Member, error) {
	member, err := u.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	img := &entities.Image{
		ID:        utils.GenerateUUIDv7(),
		Thumbnail: input.Thumbnail,
		Original:  input.Original,
	}
	if err := u.imageRepo.Create(ctx, img); err != nil {
		return nil, err
	}

	assign(member, img.ID)
	member.UpdatedAt = time.Now()
	if err := u.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
