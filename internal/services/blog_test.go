package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/blogbridge-backend/internal/data/repos/testutil"
	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
)

func TestBlogCRUDIsOwnerScoped(t *testing.T) {
	f := newFixture(t, nil)
	alice := testutil.SeedUser(t, f.db, "alice@example.com")
	bob := testutil.SeedUser(t, f.db, "bob@example.com")

	b, err := f.blogs.Create(f.dbc, alice.ID, BlogInput{Title: "  Hello  ", Content: "world"})
	require.NoError(t, err)
	require.Equal(t, "Hello", b.Title)
	require.Equal(t, alice.ID, b.UserID)
	require.True(t, b.IsActive)

	got, err := f.blogs.Get(f.dbc, alice.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)

	_, err = f.blogs.Get(f.dbc, bob.ID, b.ID)
	requireAPIErr(t, err, http.StatusNotFound, messages.NotFound)
	_, err = f.blogs.Update(f.dbc, bob.ID, b.ID, BlogInput{Title: "stolen", Content: "x"})
	requireAPIErr(t, err, http.StatusNotFound, messages.NotFound)
	err = f.blogs.Delete(f.dbc, bob.ID, b.ID)
	requireAPIErr(t, err, http.StatusNotFound, messages.NotFound)

	updated, err := f.blogs.Update(f.dbc, alice.ID, b.ID, BlogInput{Title: "Edited", Content: "new"})
	require.NoError(t, err)
	require.Equal(t, "Edited", updated.Title)
	require.Equal(t, "new", updated.Content)
	require.False(t, updated.UpdatedAt.Before(b.UpdatedAt))

	require.NoError(t, f.blogs.Delete(f.dbc, alice.ID, b.ID))
	_, err = f.blogs.Get(f.dbc, alice.ID, b.ID)
	requireAPIErr(t, err, http.StatusNotFound, messages.NotFound)
}

func TestBlogListMine(t *testing.T) {
	f := newFixture(t, nil)
	alice := testutil.SeedUser(t, f.db, "alice@example.com")
	bob := testutil.SeedUser(t, f.db, "bob@example.com")
	testutil.SeedBlogs(t, f.db, alice, "A", 3)
	testutil.SeedBlogs(t, f.db, bob, "B", 2)

	mine, err := f.blogs.ListMine(f.dbc, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	require.Equal(t, "A 02", mine[0].Title)

	none, err := f.blogs.ListMine(f.dbc, 9999)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestBlogListFilteredPaginates(t *testing.T) {
	f := newFixture(t, nil)
	alice := testutil.SeedUser(t, f.db, "alice@example.com")
	testutil.SeedBlogs(t, f.db, alice, "Post", 25)

	page, err := f.blogs.ListFiltered(f.dbc, types.BlogListFilter{Page: 3, Limit: 10, SortBy: "id", Descending: false})
	require.NoError(t, err)
	require.EqualValues(t, 25, page.Total)
	require.EqualValues(t, 3, page.Pages)
	require.Len(t, page.Items, 5)
	require.Equal(t, "Post 20", page.Items[0].Title)

	// zero values take the defaults
	page, err = f.blogs.ListFiltered(f.dbc, types.BlogListFilter{})
	require.NoError(t, err)
	require.Equal(t, DefaultBlogPage, page.Page)
	require.Equal(t, DefaultBlogLimit, page.Limit)
	require.Len(t, page.Items, 10)
	require.Equal(t, "Post 24", page.Items[0].Title)

	page, err = f.blogs.ListFiltered(f.dbc, types.BlogListFilter{Page: 1, Limit: 10, Search: "nothing matches"})
	require.NoError(t, err)
	require.NotNil(t, page.Items)
	require.Empty(t, page.Items)
	require.EqualValues(t, 0, page.Pages)
}
