package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/blogbridge-backend/internal/clients/llm"
	"github.com/yungbote/blogbridge-backend/internal/clients/redis"
	"github.com/yungbote/blogbridge-backend/internal/data/db"
	"github.com/yungbote/blogbridge-backend/internal/http/middleware"
	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/envutil"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

const defaultJWTSecret = "defaultsecret"

type AuthConfig struct {
	JWTSecretKey           string `yaml:"jwt_secret_key"`
	AccessTokenTTLSeconds  int    `yaml:"access_token_ttl"`
	RefreshTokenTTLSeconds int    `yaml:"refresh_token_ttl"`
	BcryptCost             int    `yaml:"bcrypt_cost"`
}

func (c AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLSeconds) * time.Second
}

func (c AuthConfig) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLSeconds) * time.Second
}

type Config struct {
	Port                   string                   `yaml:"port"`
	LogMode                string                   `yaml:"log_mode"`
	ShutdownTimeoutSeconds int                      `yaml:"shutdown_timeout"`
	CORSAllowedOrigins     []string                 `yaml:"cors_allowed_origins"`
	MetricsEnabled         bool                     `yaml:"metrics_enabled"`
	BlacklistPurgeSchedule string                   `yaml:"blacklist_purge_schedule"`
	Database               db.Config                `yaml:"database"`
	Auth                   AuthConfig               `yaml:"auth"`
	LLM                    llm.Config               `yaml:"llm"`
	Redis                  redis.Config             `yaml:"redis"`
	Otel                   observability.OtelConfig `yaml:"otel"`
}

func (c Config) Addr() string { return ":" + c.Port }

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func defaultConfig() Config {
	return Config{
		Port:                   "8080",
		LogMode:                "development",
		ShutdownTimeoutSeconds: 10,
		CORSAllowedOrigins:     middleware.DefaultAllowedOrigins,
		BlacklistPurgeSchedule: "@hourly",
		Database: db.Config{
			Driver:     db.DriverPostgres,
			Host:       "localhost",
			Port:       "5432",
			User:       "postgres",
			Name:       "blogbridge",
			SSLMode:    "require",
			SQLitePath: "blogbridge.db",
		},
		Auth: AuthConfig{
			JWTSecretKey:           defaultJWTSecret,
			AccessTokenTTLSeconds:  3600,
			RefreshTokenTTLSeconds: 604800,
			BcryptCost:             10,
		},
		LLM: llm.Config{
			BaseURL:   llm.DefaultBaseURL,
			Model:     llm.DefaultModel,
			MaxTokens: llm.DefaultMaxTokens,
		},
		Otel: observability.OtelConfig{
			ServiceName: "blogbridge-backend",
			Environment: "development",
		},
	}
}

// LoadConfig layers the optional CONFIG_FILE yaml over the defaults, then the
// environment over both.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()

	if path, ok := envutil.Lookup("CONFIG_FILE"); ok {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	applyEnv(&cfg)

	if cfg.Auth.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY not set, using insecure default")
	}
	if cfg.Auth.AccessTokenTTLSeconds <= 0 || cfg.Auth.RefreshTokenTTLSeconds <= 0 {
		return Config{}, fmt.Errorf("token ttls must be positive")
	}
	if cfg.LLM.APIKey == "" {
		log.Warn("GROQ_API_KEY not set, topic suggestions disabled")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = envutil.String("PORT", cfg.Port)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.ShutdownTimeoutSeconds = envutil.Int("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeoutSeconds)
	cfg.CORSAllowedOrigins = envutil.List("CORS_ALLOWED_ORIGINS", cfg.CORSAllowedOrigins)
	cfg.MetricsEnabled = envutil.Bool("METRICS_ENABLED", cfg.MetricsEnabled)
	// an explicitly empty schedule disables the purge job
	if v, ok := os.LookupEnv("BLACKLIST_PURGE_SCHEDULE"); ok {
		cfg.BlacklistPurgeSchedule = strings.TrimSpace(v)
	}

	d := &cfg.Database
	d.Driver = envutil.String("DB_DRIVER", d.Driver)
	d.URL = envutil.String("DATABASE_URL", d.URL)
	d.Host = envutil.String("POSTGRES_HOST", d.Host)
	d.Port = envutil.String("POSTGRES_PORT", d.Port)
	d.User = envutil.String("POSTGRES_USER", d.User)
	d.Password = envutil.String("POSTGRES_PASSWORD", d.Password)
	d.Name = envutil.String("POSTGRES_NAME", d.Name)
	d.SSLMode = envutil.String("POSTGRES_SSLMODE", d.SSLMode)
	d.SQLitePath = envutil.String("SQLITE_PATH", d.SQLitePath)
	d.MaxOpenConn = envutil.Int("DB_MAX_OPEN_CONNS", d.MaxOpenConn)

	a := &cfg.Auth
	a.JWTSecretKey = envutil.String("JWT_SECRET_KEY", a.JWTSecretKey)
	a.AccessTokenTTLSeconds = envutil.Int("ACCESS_TOKEN_TTL", a.AccessTokenTTLSeconds)
	a.RefreshTokenTTLSeconds = envutil.Int("REFRESH_TOKEN_TTL", a.RefreshTokenTTLSeconds)
	a.BcryptCost = envutil.Int("BCRYPT_COST", a.BcryptCost)

	l := &cfg.LLM
	l.APIKey = envutil.String("GROQ_API_KEY", l.APIKey)
	l.BaseURL = envutil.String("LLM_BASE_URL", l.BaseURL)
	l.Model = envutil.String("LLM_MODEL", l.Model)
	l.MaxTokens = int64(envutil.Int("MAX_CONTEXT_TOKENS", int(l.MaxTokens)))

	r := &cfg.Redis
	r.Addr = envutil.String("REDIS_ADDR", r.Addr)
	r.Password = envutil.String("REDIS_PASSWORD", r.Password)
	r.DB = envutil.Int("REDIS_DB", r.DB)

	o := &cfg.Otel
	o.Enabled = envutil.Bool("OTEL_ENABLED", o.Enabled)
	o.ServiceName = envutil.String("OTEL_SERVICE_NAME", o.ServiceName)
	o.Environment = envutil.String("OTEL_ENVIRONMENT", o.Environment)
	o.Version = envutil.String("OTEL_SERVICE_VERSION", o.Version)
	o.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", o.Endpoint)
	if raw := envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""); raw != "" {
		o.Headers = observability.ParseHeaders(raw)
	}
	o.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", o.Insecure)
	o.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", o.SampleRatio)
}
