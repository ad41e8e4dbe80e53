package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/blogbridge-backend/internal/data/repos"
	"github.com/yungbote/blogbridge-backend/internal/data/repos/testutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/password"
)

const testSecret = "test-secret"

type fixture struct {
	db        *gorm.DB
	dbc       dbctx.Context
	userRepo  repos.UserRepo
	blacklist repos.BlacklistedTokenRepo
	blogRepo  repos.BlogRepo
	tokens    TokenService
	auth      AuthService
	blogs     BlogService
}

func newFixture(t *testing.T, cache RevocationCache) *fixture {
	t.Helper()
	conn := testutil.DB(t)
	log := testutil.Logger(t)
	f := &fixture{
		db:        conn,
		dbc:       dbctx.Context{Ctx: context.Background()},
		userRepo:  repos.NewUserRepo(conn, log),
		blacklist: repos.NewBlacklistedTokenRepo(conn, log),
		blogRepo:  repos.NewBlogRepo(conn, log),
	}
	f.tokens = NewTokenService(log, TokenConfig{Secret: testSecret, AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}, f.blacklist, cache)
	f.auth = NewAuthService(log, f.userRepo, f.tokens, password.NewHasher(bcrypt.MinCost), nil)
	f.blogs = NewBlogService(conn, log, f.blogRepo)
	return f
}

type fakeCache struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func newFakeCache() *fakeCache { return &fakeCache{revoked: map[string]time.Time{}} }

func (c *fakeCache) MarkRevoked(_ context.Context, token string, expiresAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.revoked[token] = expiresAt
	return nil
}

func (c *fakeCache) IsRevoked(_ context.Context, token string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	_, ok := c.revoked[token]
	return ok, nil
}

var errCacheDown = errors.New("cache down")
