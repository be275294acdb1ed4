package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co/")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "project-images", cfg.SupabaseStorageBucket)
	assert.Equal(t, "sb-access-token", cfg.SessionCookieName)
	assert.Equal(t, "supabase", cfg.StorageDriver)
	assert.Equal(t, 1920, cfg.UploadMaxWidth)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.dev, https://b.dev,")
	t.Setenv("UPLOAD_MAX_WIDTH", "800")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.AllowedOrigins)
	assert.Equal(t, 800, cfg.UploadMaxWidth)
	assert.True(t, cfg.MinioUseSSL)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_MissingSupabase(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")
	t.Setenv("SUPABASE_JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL is required")
}

func TestValidate_StorageDriver(t *testing.T) {
	cfg := &config.Config{
		SupabaseURL:       "https://example.supabase.co",
		SupabaseKey:       "key",
		SupabaseJWTSecret: "secret",
		StorageDriver:     "minio",
	}
	assert.Error(t, cfg.Validate())

	cfg.MinioAccessKey = "access"
	cfg.MinioSecretKey = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.StorageDriver = "ftp"
	assert.Error(t, cfg.Validate())
}
