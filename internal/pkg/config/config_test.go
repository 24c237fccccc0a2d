//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"hotel-console/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("API_BASE_URL", "http://localhost:8082/api")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
		assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
		assert.Equal(t, "hotel-console", cfg.Telemetry.ServiceName)
		assert.Empty(t, cfg.Telemetry.Endpoint)
		assert.Equal(t, "http://localhost:8082/api/usuarios", cfg.Gateway.URLFor(cfg.Gateway.AccountsURL, "/usuarios"))
	})

	t.Run("missing API location", func(t *testing.T) {
		setRequired(t)
		require.NoError(t, os.Unsetenv("API_BASE_URL"))

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero sweep interval", "SESSION_SWEEP_INTERVAL", "0s"},
		{"negative sweep interval", "SESSION_SWEEP_INTERVAL", "-1m"},
		{"zero idle timeout", "SESSION_IDLE_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.LoadConfig()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
