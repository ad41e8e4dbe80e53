package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yungbote/blogbridge-backend/internal/data/repos"
	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
	"github.com/yungbote/blogbridge-backend/internal/platform/password"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLogoutFailed       = errors.New("logout failed")
)

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type TokenPair struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	TokenType    string           `json:"token_type"`
	User         types.PublicUser `json:"user"`
}

type AuthService interface {
	Signup(dbc dbctx.Context, in SignupInput) (*types.User, error)
	Login(dbc dbctx.Context, email, plain string) (*TokenPair, error)
	Logout(dbc dbctx.Context, accessToken string) error
	Refresh(dbc dbctx.Context, user *types.User, accessToken, refreshToken string) (*TokenPair, error)
	// Authenticate resolves a bearer access token to its active owner.
	Authenticate(dbc dbctx.Context, accessToken string) (*types.User, error)
}

type authService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	tokens   TokenService
	hasher   *password.Hasher
	metrics  *observability.Metrics
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, tokens TokenService, hasher *password.Hasher, metrics *observability.Metrics) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:      serviceLog,
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		metrics:  metrics,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (as *authService) Signup(dbc dbctx.Context, in SignupInput) (*types.User, error) {
	email := NormalizeEmail(in.Email)
	exists, err := as.userRepo.EmailExists(dbc, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apierr.WithMessage(http.StatusBadRequest, "email_taken", messages.EmailAlreadyExists, ErrEmailTaken)
	}

	hashed, err := as.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	created, err := as.userRepo.Create(dbc, []*types.User{{
		Email:          email,
		HashedPassword: hashed,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		IsActive:       true,
	}})
	if err != nil {
		// lost a race with a concurrent signup for the same address
		if taken, exErr := as.userRepo.EmailExists(dbc, email); exErr == nil && taken {
			return nil, apierr.WithMessage(http.StatusBadRequest, "email_taken", messages.EmailAlreadyExists, ErrEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	as.log.Info("User signed up", "user_id", created[0].ID)
	return created[0], nil
}

func (as *authService) Login(dbc dbctx.Context, email, plain string) (*TokenPair, error) {
	u, err := as.userRepo.GetActiveByEmail(dbc, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil || !as.hasher.Verify(plain, u.HashedPassword) {
		as.metrics.IncSecurityEvent("login_failed")
		return nil, apierr.WithMessage(http.StatusBadRequest, "invalid_credentials", messages.InvalidCredentials, ErrInvalidCredentials)
	}

	access, err := as.tokens.CreateAccessToken(u.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := as.tokens.CreateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         u.Public(),
	}, nil
}

func (as *authService) Logout(dbc dbctx.Context, accessToken string) error {
	if !as.tokens.BlacklistToken(dbc, accessToken) {
		return apierr.WithMessage(http.StatusBadRequest, "logout_failed", messages.LogoutFailed, ErrLogoutFailed)
	}
	as.metrics.IncSecurityEvent("logout")
	return nil
}

func (as *authService) Refresh(dbc dbctx.Context, user *types.User, accessToken, refreshToken string) (*TokenPair, error) {
	if user == nil {
		return nil, invalidToken(ErrInvalidToken)
	}
	userID, err := as.tokens.VerifyRefreshToken(dbc, refreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			as.metrics.IncSecurityEvent("refresh_rejected")
			return nil, invalidToken(err)
		}
		return nil, err
	}
	if userID != user.ID {
		as.metrics.IncSecurityEvent("refresh_rejected")
		return nil, invalidToken(fmt.Errorf("%w: refresh token belongs to another user", ErrInvalidToken))
	}

	if !as.tokens.BlacklistToken(dbc, accessToken) {
		as.log.Warn("Could not blacklist previous access token during refresh", "user_id", user.ID)
	}

	access, err := as.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         user.Public(),
	}, nil
}

func (as *authService) Authenticate(dbc dbctx.Context, accessToken string) (*types.User, error) {
	userID, err := as.tokens.VerifyAccessToken(dbc, accessToken)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			as.metrics.IncSecurityEvent("invalid_token")
			return nil, invalidToken(err)
		}
		return nil, err
	}
	u, err := as.userRepo.GetActiveByID(dbc, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		as.metrics.IncSecurityEvent("user_not_found")
		return nil, apierr.WithMessage(http.StatusUnauthorized, "user_not_found", messages.UserNotFound, nil)
	}
	return u, nil
}

func invalidToken(err error) error {
	return apierr.WithMessage(http.StatusUnauthorized, "invalid_token", messages.InvalidToken, err)
}
