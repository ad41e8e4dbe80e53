package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sqliteEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_MODE", "test")
	t.Setenv("PORT", "0")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "app.db"))
	t.Setenv("JWT_SECRET_KEY", "app-test-secret")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
}

func TestNewWiresOptionalClientsAsNil(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("METRICS_ENABLED", "true")

	a, err := New(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	require.Nil(t, a.Clients.LLM)
	require.Nil(t, a.Clients.Revocation)
	require.NotNil(t, a.Metrics)
	require.NotNil(t, a.Services.Auth)
	require.NotNil(t, a.Services.Blog)
	require.NotNil(t, a.Services.Topic)
	require.NotNil(t, a.Server)
	require.True(t, a.DB.Migrator().HasTable("blogs"))
	require.True(t, a.DB.Migrator().HasTable("blacklisted_tokens"))
}

func TestRunStopsOnCancel(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("BLACKLIST_PURGE_SCHEDULE", "@every 1h")

	a, err := New(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, a.Purger.Running, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.Eventually(t, func() bool { return !a.Purger.Running() }, 2*time.Second, 10*time.Millisecond)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := New(context.Background())
	require.Error(t, err)
}
