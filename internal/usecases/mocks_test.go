package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"member-hub.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, skip, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *entities.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByEmail(ctx context.Context, email string) (*entities.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByUserName(ctx context.Context, userName string) (*entities.Member, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) GetBySlug(ctx context.Context, slug string) (*entities.Member, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByWalletKey(ctx context.Context, walletKey string) (*entities.Member, error) {
	args := m.Called(ctx, walletKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByUniqueFields(ctx context.Context, email, userName, slug, walletKey string) (*entities.Member, error) {
	args := m.Called(ctx, email, userName, slug, walletKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, member *entities.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateFollowCounts(ctx context.Context, id uuid.UUID, followers, following string) error {
	args := m.Called(ctx, id, followers, following)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberRepository) List(ctx context.Context, skip, limit int) ([]*entities.Member, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	args := m.Called(ctx, companyID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Member), args.Error(1)
}

// Mock FollowerRepository
type MockFollowerRepository struct {
	mock.Mock
}

func (m *MockFollowerRepository) Create(ctx context.Context, edge *entities.Follower) error {
	args := m.Called(ctx, edge)
	return args.Error(0)
}

func (m *MockFollowerRepository) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *MockFollowerRepository) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowerRepository) ListFollowers(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	args := m.Called(ctx, memberID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Member), args.Error(1)
}

func (m *MockFollowerRepository) ListFollowing(ctx context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	args := m.Called(ctx, memberID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Member), args.Error(1)
}

// Mock SocialLinkRepository
type MockSocialLinkRepository struct {
	mock.Mock
}

func (m *MockSocialLinkRepository) Create(ctx context.Context, link *entities.SocialLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockSocialLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSocialLinkRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]entities.SocialLink, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SocialLink), args.Error(1)
}

// Mock ExternalLinkRepository
type MockExternalLinkRepository struct {
	mock.Mock
}

func (m *MockExternalLinkRepository) Create(ctx context.Context, link *entities.ExternalLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockExternalLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExternalLinkRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]entities.ExternalLink, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ExternalLink), args.Error(1)
}

// Mock CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetByName(ctx context.Context, name string) (*entities.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) List(ctx context.Context, skip, limit int) ([]*entities.Company, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Company), args.Error(1)
}

// Mock EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entities.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *entities.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, skip, limit int, upcomingOnly bool) ([]*entities.Event, error) {
	args := m.Called(ctx, skip, limit, upcomingOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

func (m *MockEventRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Event, error) {
	args := m.Called(ctx, companyID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Event), args.Error(1)
}

// Mock NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, notification *entities.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	args := m.Called(ctx, skip, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListUnexpired(ctx context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	args := m.Called(ctx, skip, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// Mock BadgeRepository
type MockBadgeRepository struct {
	mock.Mock
}

func (m *MockBadgeRepository) Create(ctx context.Context, badge *entities.Badge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}

func (m *MockBadgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Badge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Badge), args.Error(1)
}

func (m *MockBadgeRepository) Update(ctx context.Context, badge *entities.Badge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}

func (m *MockBadgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBadgeRepository) List(ctx context.Context, skip, limit int, filter entities.BadgeFilter) ([]*entities.Badge, error) {
	args := m.Called(ctx, skip, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Badge), args.Error(1)
}

// Mock MemberBadgeRepository
type MockMemberBadgeRepository struct {
	mock.Mock
}

func (m *MockMemberBadgeRepository) Create(ctx context.Context, memberBadge *entities.MemberBadge) error {
	args := m.Called(ctx, memberBadge)
	return args.Error(0)
}

func (m *MockMemberBadgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MemberBadge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MemberBadge), args.Error(1)
}

func (m *MockMemberBadgeRepository) GetByMemberAndBadge(ctx context.Context, memberID, badgeID uuid.UUID) (*entities.MemberBadge, error) {
	args := m.Called(ctx, memberID, badgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MemberBadge), args.Error(1)
}

func (m *MockMemberBadgeRepository) Update(ctx context.Context, memberBadge *entities.MemberBadge) error {
	args := m.Called(ctx, memberBadge)
	return args.Error(0)
}

func (m *MockMemberBadgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberBadgeRepository) ListByMember(ctx context.Context, memberID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	args := m.Called(ctx, memberID, skip, limit, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MemberBadge), args.Error(1)
}

func (m *MockMemberBadgeRepository) ListByBadge(ctx context.Context, badgeID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	args := m.Called(ctx, badgeID, skip, limit, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MemberBadge), args.Error(1)
}

// Mock code vault (pkg/redis.CodeStore look-alike)
type MockCodeVault struct {
	mock.Mock
}

func (m *MockCodeVault) Put(ctx context.Context, subject, code string) error {
	args := m.Called(ctx, subject, code)
	return args.Error(0)
}

func (m *MockCodeVault) Verify(ctx context.Context, subject, code string) error {
	args := m.Called(ctx, subject, code)
	return args.Error(0)
}

func (m *MockCodeVault) Peek(ctx context.Context, subject string) (string, error) {
	args := m.Called(ctx, subject)
	return args.String(0), args.Error(1)
}

func (m *MockCodeVault) Invalidate(ctx context.Context, subject string) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

// Mock of repositories.ImageRepository
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *entities.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Image), args.Error(1)
}

// Mock mail sender
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockMailer) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}
