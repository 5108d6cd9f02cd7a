package repositories

import (
	"context"

	"github.com/google/uuid"
	"member-hub.backend/internal/domain/entities"
)

// MemberRepository defines member data operations
type MemberRepository interface {
	Create(ctx context.Context, member *entities.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error)
	GetByEmail(ctx context.Context, email string) (*entities.Member, error)
	GetByUserName(ctx context.Context, userName string) (*entities.Member, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Member, error)
	GetByWalletKey(ctx context.Context, walletKey string) (*entities.Member, error)
	// FindByUniqueFields returns the first member matching any of the
	// non-empty values; used for uniqueness-constraint checking.
	FindByUniqueFields(ctx context.Context, email, userName, slug, walletKey string) (*entities.Member, error)
	Update(ctx context.Context, member *entities.Member) error
	// UpdateFollowCounts rewrites only the denormalized counter columns.
	UpdateFollowCounts(ctx context.Context, id uuid.UUID, followers, following string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, skip, limit int) ([]*entities.Member, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Member, error)
}

// FollowerRepository defines follow-edge operations
type FollowerRepository interface {
	Create(ctx context.Context, edge *entities.Follower) error
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error)
	ListFollowing(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error)
}

// SocialLinkRepository defines social link operations
type SocialLinkRepository interface {
	Create(ctx context.Context, link *entities.SocialLink) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]entities.SocialLink, error)
}

// ExternalLinkRepository defines external link operations
type ExternalLinkRepository interface {
	Create(ctx context.Context, link *entities.ExternalLink) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]entities.ExternalLink, error)
}

// ImageRepository defines image operations
type ImageRepository interface {
	Create(ctx context.Context, image *entities.Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Image, error)
}
