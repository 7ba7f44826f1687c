package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "hello-users-api", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ".data/users.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DBConnMaxLifetime)
	assert.Equal(t, "wwwroot", cfg.StaticDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/x/users.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("HTTP_LOG_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/x/users.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.DBMaxOpenConns)
	assert.True(t, cfg.HTTPLogEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("HTTP_LOG_ENABLED", "maybe")
	t.Setenv("DB_CONN_MAX_LIFETIME", "forever")

	cfg := Load()
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.False(t, cfg.HTTPLogEnabled)
	assert.Equal(t, time.Hour, cfg.DBConnMaxLifetime)
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example ,")
	cfg := Load()
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg = Load()
	assert.Empty(t, cfg.CORSOrigins())
}
