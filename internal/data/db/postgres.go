package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver      string `yaml:"driver"`
	URL         string `yaml:"url"`
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"sslmode"`
	SQLitePath  string `yaml:"sqlite_path"`
	MaxOpenConn int    `yaml:"max_open_conns"`
}

// DSN builds the postgres connection string unless URL is set.
func (c Config) DSN() string {
	if strings.TrimSpace(c.URL) != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "require"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewService(cfg Config, logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "DatabaseService", "driver", cfg.Driver)

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "blogbridge.db"
		}
		dialector = SQLiteDialector(path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConn > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("unwrap sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	}

	serviceLog.Info("Database connected")
	return &Service{db: db, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
