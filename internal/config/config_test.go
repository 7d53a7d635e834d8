package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "inkwell", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "9000", cfg.Port)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("port required", func(t *testing.T) {
		cfg := &Config{DBName: "inkwell"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("db name required", func(t *testing.T) {
		cfg := &Config{Port: "8080"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("production requires a db password", func(t *testing.T) {
		cfg := &Config{Port: "8080", DBName: "inkwell", Env: "production"}
		assert.Error(t, cfg.Validate())

		cfg.DBPassword = "hunter2"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("development passes without password", func(t *testing.T) {
		cfg := &Config{Port: "8080", DBName: "inkwell", Env: "development"}
		assert.NoError(t, cfg.Validate())
	})
}
