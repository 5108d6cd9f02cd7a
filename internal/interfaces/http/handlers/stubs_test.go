package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
	"member-hub.backend/internal/interfaces/http/middleware"
	"member-hub.backend/pkg/redis"
)

// In-memory repository stubs backing real usecases in handler tests.

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return user, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) List(_ context.Context, skip, limit int) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return paginate(out, skip, limit), nil
}

type memberRepoStub struct {
	members map[uuid.UUID]*entities.Member
}

func newMemberRepoStub() *memberRepoStub {
	return &memberRepoStub{members: map[uuid.UUID]*entities.Member{}}
}

func (s *memberRepoStub) Create(_ context.Context, member *entities.Member) error {
	s.members[member.ID] = member
	return nil
}

func (s *memberRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Member, error) {
	member, ok := s.members[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return member, nil
}

func (s *memberRepoStub) GetByEmail(_ context.Context, email string) (*entities.Member, error) {
	return s.find(func(m *entities.Member) bool { return m.Email == email })
}

func (s *memberRepoStub) GetByUserName(_ context.Context, userName string) (*entities.Member, error) {
	return s.find(func(m *entities.Member) bool { return m.UserName == userName })
}

func (s *memberRepoStub) GetBySlug(_ context.Context, slug string) (*entities.Member, error) {
	return s.find(func(m *entities.Member) bool { return m.Slug == slug })
}

func (s *memberRepoStub) GetByWalletKey(_ context.Context, walletKey string) (*entities.Member, error) {
	return s.find(func(m *entities.Member) bool { return m.WalletKey == walletKey })
}

func (s *memberRepoStub) FindByUniqueFields(_ context.Context, email, userName, slug, walletKey string) (*entities.Member, error) {
	return s.find(func(m *entities.Member) bool {
		return (email != "" && m.Email == email) ||
			(userName != "" && m.UserName == userName) ||
			(slug != "" && m.Slug == slug) ||
			(walletKey != "" && m.WalletKey == walletKey)
	})
}

func (s *memberRepoStub) find(match func(*entities.Member) bool) (*entities.Member, error) {
	for _, member := range s.members {
		if match(member) {
			return member, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *memberRepoStub) Update(_ context.Context, member *entities.Member) error {
	if _, ok := s.members[member.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.members[member.ID] = member
	return nil
}

func (s *memberRepoStub) UpdateFollowCounts(_ context.Context, id uuid.UUID, followers, following string) error {
	member, ok := s.members[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	member.Followers = followers
	member.Following = following
	return nil
}

func (s *memberRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.members[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.members, id)
	return nil
}

func (s *memberRepoStub) List(_ context.Context, skip, limit int) ([]*entities.Member, error) {
	out := make([]*entities.Member, 0, len(s.members))
	for _, member := range s.members {
		out = append(out, member)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })
	return paginate(out, skip, limit), nil
}

func (s *memberRepoStub) ListByCompany(_ context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	var out []*entities.Member
	for _, member := range s.members {
		if member.CompanyID.Valid && member.CompanyID.UUID == companyID {
			out = append(out, member)
		}
	}
	return paginate(out, skip, limit), nil
}

type followerRepoStub struct {
	members *memberRepoStub
	edges   map[[2]uuid.UUID]*entities.Follower
}

func newFollowerRepoStub(members *memberRepoStub) *followerRepoStub {
	return &followerRepoStub{members: members, edges: map[[2]uuid.UUID]*entities.Follower{}}
}

func (s *followerRepoStub) Create(_ context.Context, edge *entities.Follower) error {
	s.edges[[2]uuid.UUID{edge.FollowerID, edge.FollowedID}] = edge
	return nil
}

func (s *followerRepoStub) Delete(_ context.Context, followerID, followedID uuid.UUID) error {
	key := [2]uuid.UUID{followerID, followedID}
	if _, ok := s.edges[key]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.edges, key)
	return nil
}

func (s *followerRepoStub) Exists(_ context.Context, followerID, followedID uuid.UUID) (bool, error) {
	_, ok := s.edges[[2]uuid.UUID{followerID, followedID}]
	return ok, nil
}

func (s *followerRepoStub) ListFollowers(_ context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	var out []*entities.Member
	for key := range s.edges {
		if key[1] == memberID {
			if m, ok := s.members.members[key[0]]; ok {
				out = append(out, m)
			}
		}
	}
	return paginate(out, skip, limit), nil
}

func (s *followerRepoStub) ListFollowing(_ context.Context, memberID uuid.UUID, skip, limit int) ([]*entities.Member, error) {
	var out []*entities.Member
	for key := range s.edges {
		if key[0] == memberID {
			if m, ok := s.members.members[key[1]]; ok {
				out = append(out, m)
			}
		}
	}
	return paginate(out, skip, limit), nil
}

type socialLinkRepoStub struct {
	links map[uuid.UUID]entities.SocialLink
}

func newSocialLinkRepoStub() *socialLinkRepoStub {
	return &socialLinkRepoStub{links: map[uuid.UUID]entities.SocialLink{}}
}

func (s *socialLinkRepoStub) Create(_ context.Context, link *entities.SocialLink) error {
	s.links[link.ID] = *link
	return nil
}

func (s *socialLinkRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.links[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.links, id)
	return nil
}

func (s *socialLinkRepoStub) ListByMember(_ context.Context, memberID uuid.UUID) ([]entities.SocialLink, error) {
	var out []entities.SocialLink
	for _, link := range s.links {
		if link.MemberID == memberID {
			out = append(out, link)
		}
	}
	return out, nil
}

type imageRepoStub struct {
	images map[uuid.UUID]entities.Image
}

func newImageRepoStub() *imageRepoStub {
	return &imageRepoStub{images: map[uuid.UUID]entities.Image{}}
}

func (s *imageRepoStub) Create(_ context.Context, image *entities.Image) error {
	s.images[image.ID] = *image
	return nil
}

func (s *imageRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Image, error) {
	img, ok := s.images[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &img, nil
}

type externalLinkRepoStub struct {
	links map[uuid.UUID]entities.ExternalLink
}

func newExternalLinkRepoStub() *externalLinkRepoStub {
	return &externalLinkRepoStub{links: map[uuid.UUID]entities.ExternalLink{}}
}

func (s *externalLinkRepoStub) Create(_ context.Context, link *entities.ExternalLink) error {
	s.links[link.ID] = *link
	return nil
}

func (s *externalLinkRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.links[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.links, id)
	return nil
}

func (s *externalLinkRepoStub) ListByMember(_ context.Context, memberID uuid.UUID) ([]entities.ExternalLink, error) {
	var out []entities.ExternalLink
	for _, link := range s.links {
		if link.MemberID == memberID {
			out = append(out, link)
		}
	}
	return out, nil
}

type companyRepoStub struct {
	companies map[uuid.UUID]*entities.Company
}

func newCompanyRepoStub() *companyRepoStub {
	return &companyRepoStub{companies: map[uuid.UUID]*entities.Company{}}
}

func (s *companyRepoStub) Create(_ context.Context, company *entities.Company) error {
	s.companies[company.ID] = company
	return nil
}

func (s *companyRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Company, error) {
	company, ok := s.companies[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return company, nil
}

func (s *companyRepoStub) GetByName(_ context.Context, name string) (*entities.Company, error) {
	for _, company := range s.companies {
		if company.Name == name {
			return company, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *companyRepoStub) Update(_ context.Context, company *entities.Company) error {
	if _, ok := s.companies[company.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.companies[company.ID] = company
	return nil
}

func (s *companyRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.companies[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.companies, id)
	return nil
}

func (s *companyRepoStub) List(_ context.Context, skip, limit int) ([]*entities.Company, error) {
	out := make([]*entities.Company, 0, len(s.companies))
	for _, company := range s.companies {
		out = append(out, company)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, skip, limit), nil
}

type eventRepoStub struct {
	events map[uuid.UUID]*entities.Event
}

func newEventRepoStub() *eventRepoStub {
	return &eventRepoStub{events: map[uuid.UUID]*entities.Event{}}
}

func (s *eventRepoStub) Create(_ context.Context, event *entities.Event) error {
	s.events[event.ID] = event
	return nil
}

func (s *eventRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return event, nil
}

func (s *eventRepoStub) Update(_ context.Context, event *entities.Event) error {
	if _, ok := s.events[event.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.events[event.ID] = event
	return nil
}

func (s *eventRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.events[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *eventRepoStub) List(_ context.Context, skip, limit int, upcomingOnly bool) ([]*entities.Event, error) {
	var out []*entities.Event
	now := time.Now()
	for _, event := range s.events {
		if upcomingOnly && !event.StartTime.After(now) {
			continue
		}
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return paginate(out, skip, limit), nil
}

func (s *eventRepoStub) ListByCompany(_ context.Context, companyID uuid.UUID, skip, limit int) ([]*entities.Event, error) {
	var out []*entities.Event
	for _, event := range s.events {
		if event.CompanyID == companyID {
			out = append(out, event)
		}
	}
	return paginate(out, skip, limit), nil
}

type notificationRepoStub struct {
	notifications map[uuid.UUID]*entities.Notification
}

func newNotificationRepoStub() *notificationRepoStub {
	return &notificationRepoStub{notifications: map[uuid.UUID]*entities.Notification{}}
}

func (s *notificationRepoStub) Create(_ context.Context, n *entities.Notification) error {
	s.notifications[n.ID] = n
	return nil
}

func (s *notificationRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Notification, error) {
	n, ok := s.notifications[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return n, nil
}

func (s *notificationRepoStub) Update(_ context.Context, n *entities.Notification) error {
	if _, ok := s.notifications[n.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.notifications[n.ID] = n
	return nil
}

func (s *notificationRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.notifications[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.notifications, id)
	return nil
}

func (s *notificationRepoStub) matches(n *entities.Notification, filter entities.NotificationFilter) bool {
	if filter.ActiveOnly && !n.IsActive {
		return false
	}
	if filter.Type != "" && string(n.Type) != filter.Type {
		return false
	}
	if filter.Priority != "" && string(n.Priority) != filter.Priority {
		return false
	}
	return true
}

func (s *notificationRepoStub) List(_ context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	var out []*entities.Notification
	for _, n := range s.notifications {
		if s.matches(n, filter) {
			out = append(out, n)
		}
	}
	return paginate(out, skip, limit), nil
}

func (s *notificationRepoStub) ListUnexpired(_ context.Context, skip, limit int, filter entities.NotificationFilter) ([]*entities.Notification, error) {
	var out []*entities.Notification
	now := time.Now()
	for _, n := range s.notifications {
		if !n.IsActive || !s.matches(n, filter) {
			continue
		}
		if n.ExpiresAt.Valid && !n.ExpiresAt.Time.After(now) {
			continue
		}
		out = append(out, n)
	}
	return paginate(out, skip, limit), nil
}

func (s *notificationRepoStub) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, n := range s.notifications {
		if n.IsActive && n.ExpiresAt.Valid && !n.ExpiresAt.Time.After(now) {
			n.IsActive = false
			count++
		}
	}
	return count, nil
}

type badgeRepoStub struct {
	badges map[uuid.UUID]*entities.Badge
}

func newBadgeRepoStub() *badgeRepoStub {
	return &badgeRepoStub{badges: map[uuid.UUID]*entities.Badge{}}
}

func (s *badgeRepoStub) Create(_ context.Context, badge *entities.Badge) error {
	s.badges[badge.ID] = badge
	return nil
}

func (s *badgeRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Badge, error) {
	badge, ok := s.badges[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return badge, nil
}

func (s *badgeRepoStub) Update(_ context.Context, badge *entities.Badge) error {
	if _, ok := s.badges[badge.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.badges[badge.ID] = badge
	return nil
}

func (s *badgeRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.badges[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.badges, id)
	return nil
}

func (s *badgeRepoStub) List(_ context.Context, skip, limit int, filter entities.BadgeFilter) ([]*entities.Badge, error) {
	var out []*entities.Badge
	for _, badge := range s.badges {
		if filter.ActiveOnly && !badge.IsActive {
			continue
		}
		out = append(out, badge)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, skip, limit), nil
}

type memberBadgeRepoStub struct {
	assignments map[uuid.UUID]*entities.MemberBadge
}

func newMemberBadgeRepoStub() *memberBadgeRepoStub {
	return &memberBadgeRepoStub{assignments: map[uuid.UUID]*entities.MemberBadge{}}
}

func (s *memberBadgeRepoStub) Create(_ context.Context, mb *entities.MemberBadge) error {
	s.assignments[mb.ID] = mb
	return nil
}

func (s *memberBadgeRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.MemberBadge, error) {
	mb, ok := s.assignments[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return mb, nil
}

func (s *memberBadgeRepoStub) GetByMemberAndBadge(_ context.Context, memberID, badgeID uuid.UUID) (*entities.MemberBadge, error) {
	for _, mb := range s.assignments {
		if mb.MemberID == memberID && mb.BadgeID == badgeID {
			return mb, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *memberBadgeRepoStub) Update(_ context.Context, mb *entities.MemberBadge) error {
	if _, ok := s.assignments[mb.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.assignments[mb.ID] = mb
	return nil
}

func (s *memberBadgeRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.assignments[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.assignments, id)
	return nil
}

func (s *memberBadgeRepoStub) ListByMember(_ context.Context, memberID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	var out []*entities.MemberBadge
	for _, mb := range s.assignments {
		if mb.MemberID != memberID || (activeOnly && !mb.IsActive) {
			continue
		}
		out = append(out, mb)
	}
	return paginate(out, skip, limit), nil
}

func (s *memberBadgeRepoStub) ListByBadge(_ context.Context, badgeID uuid.UUID, skip, limit int, activeOnly bool) ([]*entities.MemberBadge, error) {
	var out []*entities.MemberBadge
	for _, mb := range s.assignments {
		if mb.BadgeID != badgeID || (activeOnly && !mb.IsActive) {
			continue
		}
		out = append(out, mb)
	}
	return paginate(out, skip, limit), nil
}

type codeVaultStub struct {
	codes map[string]string
}

func newCodeVaultStub() *codeVaultStub {
	return &codeVaultStub{codes: map[string]string{}}
}

func (s *codeVaultStub) Put(_ context.Context, subject, code string) error {
	s.codes[subject] = code
	return nil
}

func (s *codeVaultStub) Verify(_ context.Context, subject, code string) error {
	stored, ok := s.codes[subject]
	if !ok {
		return redis.ErrCodeNotFound
	}
	if stored != code {
		return redis.ErrCodeMismatch
	}
	delete(s.codes, subject)
	return nil
}

func (s *codeVaultStub) Peek(_ context.Context, subject string) (string, error) {
	stored, ok := s.codes[subject]
	if !ok {
		return "", redis.ErrCodeNotFound
	}
	return stored, nil
}

func (s *codeVaultStub) Invalidate(_ context.Context, subject string) error {
	delete(s.codes, subject)
	return nil
}

type mailerStub struct{}

func (mailerStub) Enabled() bool                          { return false }
func (mailerStub) Send(to, subject, htmlBody string) error { return nil }

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// asMember injects an authenticated identity, bypassing JWT validation
func asMember(userID, memberID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.MemberIDKey, memberID)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}
