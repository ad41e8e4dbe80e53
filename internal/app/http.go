package app

import (
	"github.com/yungbote/blogbridge-backend/internal/http"
	httpH "github.com/yungbote/blogbridge-backend/internal/http/handlers"
	httpMW "github.com/yungbote/blogbridge-backend/internal/http/middleware"
	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health *httpH.HealthHandler
	Auth   *httpH.AuthHandler
	Blog   *httpH.BlogHandler
	LLM    *httpH.LLMHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Auth:   httpH.NewAuthHandler(services.Auth),
		Blog:   httpH.NewBlogHandler(services.Blog),
		LLM:    httpH.NewLLMHandler(services.Topic),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:                log,
		Metrics:            metrics,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TracingEnabled:     cfg.Otel.Enabled,
		ServiceName:        cfg.Otel.ServiceName,
		HealthHandler:      handlers.Health,
		AuthHandler:        handlers.Auth,
		AuthMiddleware:     middleware.Auth,
		BlogHandler:        handlers.Blog,
		LLMHandler:         handlers.LLM,
	}, cfg.Addr())
}
