package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/blogbridge-backend/internal/http/handlers"
	httpMW "github.com/yungbote/blogbridge-backend/internal/http/middleware"
	"github.com/yungbote/blogbridge-backend/internal/http/response"
	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	CORSAllowedOrigins []string
	TracingEnabled     bool
	ServiceName        string

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	BlogHandler    *httpH.BlogHandler
	LLMHandler     *httpH.LLMHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	response.ConfigureValidator()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(httpMW.Recovery(cfg.Log))
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSAllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, apierr.NotFound("route_not_found", messages.RouteNotFound))
	})
	r.NoMethod(func(c *gin.Context) {
		response.RespondError(c, apierr.WithMessage(nethttp.StatusMethodNotAllowed, "method_not_allowed", messages.MethodNotAllowed, nil))
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	requireAuth := func(c *gin.Context) { c.Next() }
	if cfg.AuthMiddleware != nil {
		requireAuth = cfg.AuthMiddleware.RequireAuth()
	}

	// Auth
	if cfg.AuthHandler != nil {
		auth := r.Group("/auth")
		auth.POST("/signup", cfg.AuthHandler.Signup)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/logout", requireAuth, cfg.AuthHandler.Logout)
		auth.POST("/refresh", requireAuth, cfg.AuthHandler.Refresh)
	}

	// Blogs
	if cfg.BlogHandler != nil {
		blogs := r.Group("/blogs")
		blogs.GET("/blog-list-filter", cfg.BlogHandler.ListFiltered)

		owned := blogs.Group("", requireAuth)
		owned.POST("/blog", cfg.BlogHandler.Create)
		owned.GET("/blog-list", cfg.BlogHandler.ListMine)
		owned.GET("/blog/:id", cfg.BlogHandler.Get)
		owned.PUT("/blog/:id", cfg.BlogHandler.Update)
		owned.DELETE("/blog/:id", cfg.BlogHandler.Delete)
	}

	// LLM
	if cfg.LLMHandler != nil {
		r.POST("/llm/suggest-topics", requireAuth, cfg.LLMHandler.SuggestTopics)
	}

	return r
}
