package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"CUSTDESK_APP_NAME":                os.Getenv("CUSTDESK_APP_NAME"),
		"CUSTDESK_APP_ENV":                 os.Getenv("CUSTDESK_APP_ENV"),
		"CUSTDESK_APP_PORT":                os.Getenv("CUSTDESK_APP_PORT"),
		"CUSTDESK_DATABASE_HOST":           os.Getenv("CUSTDESK_DATABASE_HOST"),
		"CUSTDESK_DATABASE_PORT":           os.Getenv("CUSTDESK_DATABASE_PORT"),
		"CUSTDESK_DATABASE_USER":           os.Getenv("CUSTDESK_DATABASE_USER"),
		"CUSTDESK_DATABASE_PASSWORD":       os.Getenv("CUSTDESK_DATABASE_PASSWORD"),
		"CUSTDESK_DATABASE_DBNAME":         os.Getenv("CUSTDESK_DATABASE_DBNAME"),
		"CUSTDESK_DATABASE_SSLMODE":        os.Getenv("CUSTDESK_DATABASE_SSLMODE"),
		"CUSTDESK_DATABASE_MAX_OPEN_CONNS": os.Getenv("CUSTDESK_DATABASE_MAX_OPEN_CONNS"),
		"CUSTDESK_DATABASE_MAX_IDLE_CONNS": os.Getenv("CUSTDESK_DATABASE_MAX_IDLE_CONNS"),
		"CUSTDESK_VALIDATION_MOCK":         os.Getenv("CUSTDESK_VALIDATION_MOCK"),
		"CUSTDESK_VALIDATION_ENDPOINT":     os.Getenv("CUSTDESK_VALIDATION_ENDPOINT"),
		"CUSTDESK_VALIDATION_TIMEOUT":      os.Getenv("CUSTDESK_VALIDATION_TIMEOUT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
		os.Setenv("CUSTDESK_VALIDATION_MOCK", "true")
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "custdesk-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "1.0.0", cfg.App.Version)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "custdesk", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	})

	t.Run("loads values from environment variables with CUSTDESK prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("CUSTDESK_APP_NAME", "test-app")
		os.Setenv("CUSTDESK_APP_ENV", "testing")
		os.Setenv("CUSTDESK_APP_PORT", "9000")
		os.Setenv("CUSTDESK_DATABASE_HOST", "testdb.local")
		os.Setenv("CUSTDESK_DATABASE_PORT", "5433")
		os.Setenv("CUSTDESK_DATABASE_USER", "testuser")
		os.Setenv("CUSTDESK_DATABASE_PASSWORD", "testpass")
		os.Setenv("CUSTDESK_DATABASE_DBNAME", "testdb")
		os.Setenv("CUSTDESK_DATABASE_SSLMODE", "require")
		os.Setenv("CUSTDESK_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("CUSTDESK_DATABASE_MAX_IDLE_CONNS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("CUSTDESK_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("CUSTDESK_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("requires endpoint when mock disabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("CUSTDESK_VALIDATION_MOCK", "false")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation.endpoint")
	})

	t.Run("accepts real validator with endpoint", func(t *testing.T) {
		clearEnv()
		os.Setenv("CUSTDESK_VALIDATION_MOCK", "false")
		os.Setenv("CUSTDESK_VALIDATION_ENDPOINT", "http://bridge.local:9080/validate")
		os.Setenv("CUSTDESK_VALIDATION_TIMEOUT", "10s")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Validation.Mock)
		assert.Equal(t, "http://bridge.local:9080/validate", cfg.Validation.Endpoint)
		assert.Equal(t, "10s", cfg.Validation.Timeout.String())
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "custdesk",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "custdesk")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word") // escaped
}
