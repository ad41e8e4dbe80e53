package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/blogbridge-backend/internal/data/db"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a freshly migrated database private to the calling test.
// TEST_POSTGRES_DSN switches to postgres, where each test runs in a
// rolled-back transaction instead.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			tb.Fatalf("open postgres: %v", err)
		}
		if err := db.AutoMigrateAll(conn); err != nil {
			tb.Fatalf("migrate postgres: %v", err)
		}
		return Tx(tb, conn)
	}

	conn, err := gorm.Open(db.SQLiteDialector(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		tb.Fatalf("unwrap sqlite: %v", err)
	}
	// every pooled connection to :memory: would otherwise see its own database
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrateAll(conn); err != nil {
		tb.Fatalf("migrate sqlite: %v", err)
	}
	return conn
}

func Tx(tb testing.TB, conn *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := conn.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}
