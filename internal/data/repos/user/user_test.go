package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/blogbridge-backend/internal/data/repos/testutil"
	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
)

func TestUserRepo(t *testing.T) {
	conn := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewUserRepo(conn, testutil.Logger(t))

	created, err := repo.Create(dbc, []*types.User{{
		Email:          "userrepo@example.com",
		HashedPassword: "pw",
		FirstName:      "A",
		LastName:       "B",
		IsActive:       true,
	}})
	require.NoError(t, err)
	require.Len(t, created, 1)
	u := created[0]
	require.NotZero(t, u.ID)

	empty, err := repo.Create(dbc, nil)
	require.NoError(t, err)
	require.Empty(t, empty)

	var stored types.User
	require.NoError(t, conn.First(&stored, u.ID).Error)
	require.Equal(t, "userrepo@example.com", stored.Email)
	require.True(t, stored.IsActive)

	exists, err := repo.EmailExists(dbc, u.Email)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.EmailExists(dbc, "nobody@example.com")
	require.NoError(t, err)
	require.False(t, exists)

	got, err := repo.GetActiveByEmail(dbc, u.Email)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, u.ID, got.ID)

	got, err = repo.GetActiveByID(dbc, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, repo.SetActive(dbc, u.ID, false))

	got, err = repo.GetActiveByEmail(dbc, u.Email)
	require.NoError(t, err)
	require.Nil(t, got, "inactive users are hidden from active lookups")

	got, err = repo.GetActiveByID(dbc, u.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	exists, err = repo.EmailExists(dbc, u.Email)
	require.NoError(t, err)
	require.True(t, exists, "deactivated users still reserve their email")
}

func TestUserRepoRejectsDuplicateEmail(t *testing.T) {
	conn := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewUserRepo(conn, testutil.Logger(t))

	testutil.SeedUser(t, conn, "dupe@example.com")

	_, err := repo.Create(dbc, []*types.User{{
		Email:          "dupe@example.com",
		HashedPassword: "pw",
		FirstName:      "C",
		LastName:       "D",
	}})
	require.Error(t, err)
}
