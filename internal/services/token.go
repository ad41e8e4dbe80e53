package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/blogbridge-backend/internal/data/repos"
	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	Type TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// RevocationCache is the optional fast path in front of the blacklist table.
type RevocationCache interface {
	MarkRevoked(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type TokenService interface {
	CreateAccessToken(userID uint) (string, error)
	CreateRefreshToken(userID uint) (string, error)
	VerifyAccessToken(dbc dbctx.Context, token string) (uint, error)
	VerifyRefreshToken(dbc dbctx.Context, token string) (uint, error)
	BlacklistToken(dbc dbctx.Context, token string) bool
}

type tokenService struct {
	log           *logger.Logger
	secret        []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	blacklistRepo repos.BlacklistedTokenRepo
	cache         RevocationCache
	parser        *jwt.Parser
	now           func() time.Time
}

func NewTokenService(log *logger.Logger, cfg TokenConfig, blacklistRepo repos.BlacklistedTokenRepo, cache RevocationCache) TokenService {
	serviceLog := log.With("service", "TokenService")
	accessTTL := cfg.AccessTTL
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &tokenService{
		log:           serviceLog,
		secret:        []byte(cfg.Secret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		blacklistRepo: blacklistRepo,
		cache:         cache,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (ts *tokenService) CreateAccessToken(userID uint) (string, error) {
	return ts.sign(userID, TokenTypeAccess, ts.accessTTL)
}

func (ts *tokenService) CreateRefreshToken(userID uint) (string, error) {
	return ts.sign(userID, TokenTypeRefresh, ts.refreshTTL)
}

func (ts *tokenService) sign(userID uint, typ TokenType, ttl time.Duration) (string, error) {
	now := ts.now()
	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}

func (ts *tokenService) VerifyAccessToken(dbc dbctx.Context, token string) (uint, error) {
	return ts.verify(dbc, token, TokenTypeAccess)
}

func (ts *tokenService) VerifyRefreshToken(dbc dbctx.Context, token string) (uint, error) {
	return ts.verify(dbc, token, TokenTypeRefresh)
}

func (ts *tokenService) verify(dbc dbctx.Context, token string, want TokenType) (uint, error) {
	claims, err := ts.parse(token)
	if err != nil {
		return 0, err
	}
	if claims.Type != want {
		return 0, fmt.Errorf("%w: expected %s token", ErrInvalidToken, want)
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	revoked, err := ts.isBlacklisted(dbc, token)
	if err != nil {
		return 0, fmt.Errorf("check blacklist: %w", err)
	}
	if revoked {
		return 0, fmt.Errorf("%w: revoked", ErrInvalidToken)
	}
	return uint(userID), nil
}

func (ts *tokenService) parse(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidToken)
	}
	claims := &Claims{}
	parsed, err := ts.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return ts.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (ts *tokenService) isBlacklisted(dbc dbctx.Context, token string) (bool, error) {
	if ts.cache != nil {
		revoked, err := ts.cache.IsRevoked(requestCtx(dbc), token)
		if err != nil {
			ts.log.Warn("Revocation cache lookup failed", "error", err)
		} else if revoked {
			return true, nil
		}
	}
	return ts.blacklistRepo.Exists(dbc, token)
}

// BlacklistToken records a still-valid token as revoked until its expiry.
// It reports false instead of failing when the token cannot be decoded or stored.
func (ts *tokenService) BlacklistToken(dbc dbctx.Context, token string) bool {
	claims, err := ts.parse(token)
	if err != nil {
		ts.log.Debug("Refusing to blacklist undecodable token", "error", err)
		return false
	}
	expiresAt := claims.ExpiresAt.Time.UTC()

	if _, err := ts.blacklistRepo.Create(dbc, []*types.BlacklistedToken{{
		Token:     token,
		ExpiresAt: expiresAt,
	}}); err != nil {
		ts.log.Error("Failed to persist blacklisted token", "error", err)
		return false
	}

	if ts.cache != nil {
		if err := ts.cache.MarkRevoked(requestCtx(dbc), token, expiresAt); err != nil {
			ts.log.Warn("Failed to mirror revoked token into cache", "error", err)
		}
	}
	return true
}

func requestCtx(dbc dbctx.Context) context.Context {
	if dbc.Ctx != nil {
		return dbc.Ctx
	}
	return context.Background()
}
