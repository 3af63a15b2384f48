package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "microfeed", cfg.Issuer)
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.Equal(t, "jsonfile", cfg.StoreDriver)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("FEED_ISSUER", "feed-staging")
	t.Setenv("FEED_SESSION_TTL", "30m")
	t.Setenv("FEED_STORE_DRIVER", "sqlite")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "feed-staging", cfg.Issuer)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, "sqlite", cfg.StoreDriver)
	require.Equal(t, 9090, cfg.Port)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("FEED_STORE_DRIVER", "postgres")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown store driver")
}
