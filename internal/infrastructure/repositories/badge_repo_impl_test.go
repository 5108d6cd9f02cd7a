package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
)

func seedBadge(t *testing.T, repo *BadgeRepository, name string, active bool) *entities.Badge {
	t.Helper()
	now := time.Now()
	b := &entities.Badge{
		ID:          uuid.New(),
		Name:        name,
		Description: "awarded for " + name,
		Icon:        "star",
		IsActive:    active,
		ValidFrom:   now.Add(-time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBadgeRepository_CRUDAndList(t *testing.T) {
	db := newTestDB(t)
	createBadgeTables(t, db)
	repo := NewBadgeRepository(db)
	ctx := context.Background()

	b := seedBadge(t, repo, "Founder", true)
	seedBadge(t, repo, "Retired", false)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Founder", got.Name)
	require.False(t, got.ValidUntil.Valid)

	b.ValidUntil = null.TimeFrom(time.Now().Add(24 * time.Hour))
	b.Icon = "trophy"
	require.NoError(t, repo.Update(ctx, b))

	updated, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, updated.ValidUntil.Valid)
	require.Equal(t, "trophy", updated.Icon)

	all, err := repo.List(ctx, 0, 10, entities.BadgeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := repo.List(ctx, 0, 10, entities.BadgeFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, b.ID, active[0].ID)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.GetByID(ctx, b.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, b)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberBadgeRepository_AssignAndLookups(t *testing.T) {
	db := newTestDB(t)
	createBadgeTables(t, db)
	repo := NewMemberBadgeRepository(db)
	ctx := context.Background()

	memberID := uuid.New()
	badgeID := uuid.New()
	issuerID := uuid.New()

	mb := &entities.MemberBadge{
		ID:         uuid.New(),
		MemberID:   memberID,
		BadgeID:    badgeID,
		IssuedAt:   time.Now(),
		IssuedByID: issuerID,
		IsActive:   true,
	}
	require.NoError(t, repo.Create(ctx, mb))

	// One assignment per member and badge.
	dup := &entities.MemberBadge{ID: uuid.New(), MemberID: memberID, BadgeID: badgeID, IssuedAt: time.Now(), IssuedByID: issuerID, IsActive: true}
	require.Error(t, repo.Create(ctx, dup))

	byID, err := repo.GetByID(ctx, mb.ID)
	require.NoError(t, err)
	require.Equal(t, issuerID, byID.IssuedByID)

	byPair, err := repo.GetByMemberAndBadge(ctx, memberID, badgeID)
	require.NoError(t, err)
	require.Equal(t, mb.ID, byPair.ID)

	_, err = repo.GetByMemberAndBadge(ctx, memberID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	mb.IsActive = false
	require.NoError(t, repo.Update(ctx, mb))

	updated, err := repo.GetByID(ctx, mb.ID)
	require.NoError(t, err)
	require.False(t, updated.IsActive)

	require.NoError(t, repo.Delete(ctx, mb.ID))
	err = repo.Delete(ctx, mb.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberBadgeRepository_Listings(t *testing.T) {
	db := newTestDB(t)
	createBadgeTables(t, db)
	repo := NewMemberBadgeRepository(db)
	ctx := context.Background()

	memberID := uuid.New()
	badgeID := uuid.New()
	issuerID := uuid.New()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &entities.MemberBadge{
		ID: uuid.New(), MemberID: memberID, BadgeID: badgeID, IssuedAt: now, IssuedByID: issuerID, IsActive: true,
	}))
	require.NoError(t, repo.Create(ctx, &entities.MemberBadge{
		ID: uuid.New(), MemberID: memberID, BadgeID: uuid.New(), IssuedAt: now.Add(time.Second), IssuedByID: issuerID, IsActive: false,
	}))
	require.NoError(t, repo.Create(ctx, &entities.MemberBadge{
		ID: uuid.New(), MemberID: uuid.New(), BadgeID: badgeID, IssuedAt: now, IssuedByID: issuerID, IsActive: true,
	}))

	byMember, err := repo.ListByMember(ctx, memberID, 0, 10, false)
	require.NoError(t, err)
	require.Len(t, byMember, 2)
	require.False(t, byMember[0].IsActive)

	activeByMember, err := repo.ListByMember(ctx, memberID, 0, 10, true)
	require.NoError(t, err)
	require.Len(t, activeByMember, 1)

	byBadge, err := repo.ListByBadge(ctx, badgeID, 0, 10, true)
	require.NoError(t, err)
	require.Len(t, byBadge, 2)

	page, err := repo.ListByBadge(ctx, badgeID, 1, 10, false)
	require.NoError(t, err)
	require.Len(t, page, 1)
}
