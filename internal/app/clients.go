package app

import (
	"fmt"

	"github.com/yungbote/blogbridge-backend/internal/clients/llm"
	"github.com/yungbote/blogbridge-backend/internal/clients/redis"
	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

// Clients holds the optional outbound integrations. A nil field means the
// integration is not configured.
type Clients struct {
	LLM        llm.Client
	Revocation redis.RevocationCache
}

func wireClients(log *logger.Logger, cfg Config, metrics *observability.Metrics) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	if cfg.LLM.APIKey != "" {
		c, err := llm.NewClient(log, cfg.LLM, metrics)
		if err != nil {
			return Clients{}, fmt.Errorf("init llm client: %w", err)
		}
		out.LLM = c
	}

	if cfg.Redis.Addr != "" {
		rc, err := redis.NewRevocationCache(log, cfg.Redis)
		if err != nil {
			return Clients{}, fmt.Errorf("init revocation cache: %w", err)
		}
		out.Revocation = rc
	} else {
		log.Info("REDIS_ADDR not set, token revocation served from the database only")
	}
	return out, nil
}

func (c Clients) Close(log *logger.Logger) {
	if c.Revocation != nil {
		if err := c.Revocation.Close(); err != nil {
			log.Warn("Close revocation cache failed", "error", err)
		}
	}
}
