package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/password"
	"github.com/yungbote/blogbridge-backend/internal/services"
)

type Services struct {
	Tokens services.TokenService
	Auth   services.AuthService
	Blog   services.BlogService
	Topic  services.TopicService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	// a nil redis.RevocationCache converts to a nil services.RevocationCache
	var cache services.RevocationCache
	if clients.Revocation != nil {
		cache = clients.Revocation
	}

	tokens := services.NewTokenService(log, services.TokenConfig{
		Secret:     cfg.Auth.JWTSecretKey,
		AccessTTL:  cfg.Auth.AccessTokenTTL(),
		RefreshTTL: cfg.Auth.RefreshTokenTTL(),
	}, repos.BlacklistedToken, cache)

	return Services{
		Tokens: tokens,
		Auth:   services.NewAuthService(log, repos.User, tokens, password.NewHasher(cfg.Auth.BcryptCost), metrics),
		Blog:   services.NewBlogService(db, log, repos.Blog),
		Topic:  services.NewTopicService(log, clients.LLM),
	}
}
