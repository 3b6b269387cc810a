package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "NODE_ENV", "ACCESS_TOKEN_SECRET", "JWT_SECRET", "DB_DRIVER", "CORS_ORIGINS", "AUTH_GUARD_WRITES", "TOKEN_RATE_LIMIT", "MONGO_DATABASE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.Production)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "reset-Assignment-11", cfg.MongoDatabase)
	assert.True(t, cfg.GuardWrites)
	assert.Equal(t, 20, cfg.TokenRateLimit)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CorsOrigins)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("JWT_SECRET", "fallback-secret")
	t.Setenv("DB_DRIVER", "MONGO")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("CORS_ORIGINS", "https://a.app, https://b.app ,")
	t.Setenv("AUTH_GUARD_WRITES", "false")
	t.Setenv("TOKEN_RATE_LIMIT", "7")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Production)
	assert.Equal(t, "fallback-secret", cfg.JWTSecret)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, "pw", cfg.DBPassword)
	assert.Equal(t, []string{"https://a.app", "https://b.app"}, cfg.CorsOrigins)
	assert.False(t, cfg.GuardWrites)
	assert.Equal(t, 7, cfg.TokenRateLimit)
}

func TestLoad_UnknownDriverFallsBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	assert.Equal(t, DriverPostgres, Load().DBDriver)
}
