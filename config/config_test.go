package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	env := "APP_PORT=9090\nDB_HOST=db\nDB_PORT=5432\nREDIS_DB=2\nJWT_SECRET=s3cret\nJWT_ACCESS_EXPIRY=30m\nJWT_REFRESH_EXPIRY=bogus\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Chdir(dir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "Asia/Manila", cfg.App.Timezone)
	assert.Equal(t, 24*time.Hour, cfg.App.VerificationExpiry)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, "Asia/Manila", AppConfig{Timezone: "Asia/Manila"}.Location().String())
	assert.Equal(t, time.UTC, AppConfig{Timezone: "Nowhere/Special"}.Location())
}
