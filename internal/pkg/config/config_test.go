//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"facility-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "booking")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
		assert.Equal(t, time.Minute, cfg.Booking.StartSlack)
		assert.Equal(t, []string{"laboratory", "amphitheater"}, cfg.Booking.BookableLocationTypes)
		assert.True(t, cfg.Booking.AllowRequesterCancelApproved)
		assert.True(t, cfg.Sweeper.Enabled)
		assert.Equal(t, 100, cfg.Sweeper.BatchSize)
	})

	t.Run("booking policy overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BOOKING_BOOKABLE_LOCATION_TYPES", "classroom,laboratory,amphitheater")
		t.Setenv("BOOKING_START_SLACK", "5m")
		t.Setenv("STORAGE_DRIVER", "memory")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Len(t, cfg.Booking.BookableLocationTypes, 3)
		assert.Equal(t, 5*time.Minute, cfg.Booking.StartSlack)
		assert.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
	})

	t.Run("unknown storage driver is rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STORAGE_DRIVER", "sqlite")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("missing required variable", func(t *testing.T) {
		setRequiredEnv(t)
		// t.Setenv restores the original value on cleanup
		require.NoError(t, os.Unsetenv("PORT"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestDBConfig_BuildDSN(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "disable", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}

func TestLoadSection(t *testing.T) {
	t.Run("loads one section without unrelated required vars", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "only-this")
		os.Unsetenv("PORT")

		var jwtCfg config.JWTConfig
		require.NoError(t, config.LoadSection(&jwtCfg))
		assert.Equal(t, "only-this", jwtCfg.Secret)
		assert.Equal(t, "24h", jwtCfg.Duration)
	})

	t.Run("missing required var in the section", func(t *testing.T) {
		t.Setenv("DB_USER", "")
		os.Unsetenv("DB_USER")

		var dbCfg config.DBConfig
		assert.Error(t, config.LoadSection(&dbCfg))
	})
}
