package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"member-hub.backend/internal/domain/entities"
	domainerrors "member-hub.backend/internal/domain/errors"
)

func seedMember(t *testing.T, repo *MemberRepository, i int) *entities.Member {
	t.Helper()
	now := time.Now()
	m := &entities.Member{
		ID:        uuid.New(),
		FirstName: fmt.Sprintf("Member%d", i),
		LastName:  "Test",
		UserName:  fmt.Sprintf("member%d", i),
		Email:     fmt.Sprintf("member%d@memberhub.io", i),
		Slug:      fmt.Sprintf("member-%d", i),
		WalletKey: fmt.Sprintf("0x%040d", i),
		IsActive:  true,
		Following: "0",
		Followers: "0",
		JoinedAt:  now,
		CreatedAt: now.Add(time.Duration(i) * time.Second),
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMemberRepository_CRUDAndLookups(t *testing.T) {
	db := newTestDB(t)
	createMemberTable(t, db)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := seedMember(t, repo, 1)

	byID, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.UserName, byID.UserName)
	require.Equal(t, "0", byID.Followers)

	byEmail, err := repo.GetByEmail(ctx, m.Email)
	require.NoError(t, err)
	require.Equal(t, m.ID, byEmail.ID)

	byUserName, err := repo.GetByUserName(ctx, m.UserName)
	require.NoError(t, err)
	require.Equal(t, m.ID, byUserName.ID)

	bySlug, err := repo.GetBySlug(ctx, m.Slug)
	require.NoError(t, err)
	require.Equal(t, m.ID, bySlug.ID)

	byWallet, err := repo.GetByWalletKey(ctx, m.WalletKey)
	require.NoError(t, err)
	require.Equal(t, m.ID, byWallet.ID)

	m.Bio = null.StringFrom("builder")
	m.Position = null.StringFrom("engineer")
	companyID := uuid.New()
	m.CompanyID = uuid.NullUUID{UUID: companyID, Valid: true}
	require.NoError(t, repo.Update(ctx, m))

	updated, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "builder", updated.Bio.String)
	require.True(t, updated.CompanyID.Valid)
	require.Equal(t, companyID, updated.CompanyID.UUID)

	require.NoError(t, repo.Delete(ctx, m.ID))
	_, err = repo.GetByID(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberRepository_FindByUniqueFields(t *testing.T) {
	db := newTestDB(t)
	createMemberTable(t, db)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := seedMember(t, repo, 1)

	hit, err := repo.FindByUniqueFields(ctx, m.Email, "", "", "")
	require.NoError(t, err)
	require.Equal(t, m.ID, hit.ID)

	hit, err = repo.FindByUniqueFields(ctx, "other@memberhub.io", m.UserName, "", "")
	require.NoError(t, err)
	require.Equal(t, m.ID, hit.ID)

	hit, err = repo.FindByUniqueFields(ctx, "", "", "", m.WalletKey)
	require.NoError(t, err)
	require.Equal(t, m.ID, hit.ID)

	_, err = repo.FindByUniqueFields(ctx, "other@memberhub.io", "other", "other-slug", "0xother")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// All-empty input matches nothing.
	_, err = repo.FindByUniqueFields(ctx, "", "", "", "")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberRepository_UpdateFollowCounts(t *testing.T) {
	db := newTestDB(t)
	createMemberTable(t, db)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := seedMember(t, repo, 1)

	require.NoError(t, repo.UpdateFollowCounts(ctx, m.ID, "3", "1"))

	updated, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "3", updated.Followers)
	require.Equal(t, "1", updated.Following)

	err = repo.UpdateFollowCounts(ctx, uuid.New(), "1", "1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberRepository_ListAndListByCompany(t *testing.T) {
	db := newTestDB(t)
	createMemberTable(t, db)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	for i := 1; i <= 3; i++ {
		m := seedMember(t, repo, i)
		if i <= 2 {
			m.CompanyID = uuid.NullUUID{UUID: companyID, Valid: true}
			require.NoError(t, repo.Update(ctx, m))
		}
	}

	all, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "member3", all[0].UserName)

	page, err := repo.List(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)

	byCompany, err := repo.ListByCompany(ctx, companyID, 0, 10)
	require.NoError(t, err)
	require.Len(t, byCompany, 2)
}

func TestMemberRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createMemberTable(t, db)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Member{ID: uuid.New(), UserName: "x", Email: "x@memberhub.io", Slug: "x", WalletKey: "0xx"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Delete(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
