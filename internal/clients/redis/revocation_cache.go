package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type Config struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// RevocationCache mirrors blacklisted tokens with a TTL matching their expiry.
// Only positive entries are stored; a miss says nothing about the database.
type RevocationCache interface {
	MarkRevoked(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	Close() error
}

type revocationCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

func NewRevocationCache(log *logger.Logger, cfg Config) (RevocationCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRevocationCache(log, rdb, cfg.Prefix), nil
}

func newRevocationCache(log *logger.Logger, rdb *goredis.Client, prefix string) *revocationCache {
	if prefix == "" {
		prefix = "blogbridge:revoked:"
	}
	return &revocationCache{
		log:    log.With("service", "RedisRevocationCache"),
		rdb:    rdb,
		prefix: prefix,
	}
}

func (c *revocationCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return c.prefix + hex.EncodeToString(sum[:])
}

func (c *revocationCache) MarkRevoked(ctx context.Context, token string, expiresAt time.Time) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("redis revocation cache not initialized")
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, c.key(token), "1", ttl).Err()
}

func (c *revocationCache) IsRevoked(ctx context.Context, token string) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, fmt.Errorf("redis revocation cache not initialized")
	}
	err := c.rdb.Get(ctx, c.key(token)).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *revocationCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
