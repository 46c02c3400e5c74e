package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("FORM_SESSION_TTL_SEC", "60")
	t.Setenv("EXPORTS_ENABLED", "true")
	t.Setenv("RENDER_COMPRESS", "false")
	t.Setenv("APP_HOST", "resumes.example.com")
	t.Setenv("DB_CONN_MAX_IDLE_SEC", "90")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Minute, cfg.Form.SessionTTL)
	assert.True(t, cfg.Export.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Export.URLExpiry)
	assert.False(t, cfg.Render.Compress)
	assert.Equal(t, "resumes.example.com", cfg.AppHost)
	assert.Equal(t, 90, cfg.Database.ConnMaxIdleSec)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "REDIS_ADDR", "EXPORTS_ENABLED", "RENDER_COMPRESS", "APP_TIMEZONE", "APP_HOST", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.Export.Enabled)
	assert.True(t, cfg.Render.Compress)
	assert.Equal(t, 30*time.Minute, cfg.Form.SessionTTL)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Empty(t, cfg.AppHost)
	assert.Zero(t, cfg.Database.MaxOpenConns)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{TimeZone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.TimeZone = "UTC"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
