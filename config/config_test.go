package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "app-secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("JWT_BLACKLIST_ENABLED", "true")
	t.Setenv("DB_FILE", "test.db")
	t.Setenv("IMAGES_PATH", "/tmp/images")
}

func TestLoad_FromEnv(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "jwt-secret", cfg.JWT.Secret)
	assert.True(t, cfg.JWT.BlacklistEnabled)
	assert.Equal(t, "test.db", cfg.DB.File)
	assert.Equal(t, "/tmp/images", cfg.Images.Path)
	assert.Equal(t, "127.0.0.1:8000", cfg.ListenAddr)
	assert.Equal(t, 15, cfg.JWT.AccessExpMin)
	assert.Equal(t, 30, cfg.JWT.RefreshExpDays)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LISTEN_ADDR", "0.0.0.0:9000")
	t.Setenv("JWT_ACCESS_EXP_MIN", "5")
	t.Setenv("JWT_REFRESH_EXP_DAYS", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr)
	assert.Equal(t, 5, cfg.JWT.AccessExpMin)
	assert.Equal(t, 7, cfg.JWT.RefreshExpDays)
}
