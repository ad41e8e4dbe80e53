package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/blogbridge-backend/internal/data/db"
	"github.com/yungbote/blogbridge-backend/internal/http"
	"github.com/yungbote/blogbridge-backend/internal/jobs"
	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/envutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Metrics  *observability.Metrics
	Clients  Clients
	Repos    Repos
	Services Services
	Server   *http.Server
	Purger   *jobs.BlacklistPurger

	dbService    *db.Service
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	bootMode := envutil.String("LOG_MODE", "development")
	salt := logger.WithHashSalt(envutil.String("LOG_HASH_SALT", ""))
	log, err := logger.New(bootMode, salt)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.LogMode != bootMode {
		if l, err := logger.New(cfg.LogMode, salt); err == nil {
			log.Sync()
			log = l
		}
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	dbService, err := db.NewService(cfg.Database, log)
	if err != nil {
		_ = otelShutdown(ctx)
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := db.AutoMigrateAll(dbService.DB()); err != nil {
		_ = dbService.Close()
		_ = otelShutdown(ctx)
		log.Sync()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := dbService.DB()

	clientset, err := wireClients(log, cfg, metrics)
	if err != nil {
		_ = dbService.Close()
		_ = otelShutdown(ctx)
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, clientset, metrics)
	handlerset := wireHandlers(log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, cfg, handlerset, middleware, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Metrics:      metrics,
		Clients:      clientset,
		Repos:        reposet,
		Services:     serviceset,
		Server:       server,
		Purger:       jobs.NewBlacklistPurger(log, reposet.BlacklistedToken, metrics, cfg.BlacklistPurgeSchedule),
		dbService:    dbService,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP and the purge schedule until ctx is cancelled or the
// listener fails, then drains in-flight requests within the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("Server listening", "addr", a.Server.Addr())
		return a.Server.Run()
	})

	g.Go(func() error {
		return a.Purger.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout())
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Purger != nil {
		a.Purger.Stop()
	}
	a.Clients.Close(a.Log)
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("Close database failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout())
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
