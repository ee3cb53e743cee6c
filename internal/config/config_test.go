package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverGoOra, cfg.DB.Driver)
	assert.Equal(t, 1521, cfg.DB.Port)
	assert.Equal(t, "*", cfg.CORS.AllowOrigins)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 5, cfg.LLM.QuestionsPerCategory)
	assert.Empty(t, cfg.Redis.Address)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_SERVER_PORT", "9000")
	t.Setenv("APP_DB_DRIVER", "godror")
	t.Setenv("DB_HOST", "oracle.internal")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("APP_LOGGER_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, DriverGodror, cfg.DB.Driver)
	assert.Equal(t, "oracle.internal", cfg.DB.Host)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "production", cfg.Logger.Env)
}

func TestLoadConfig_AuthWithoutSecretFails(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_AUTH_ENABLED", "true")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Server: ServerConfig{Port: 80}, DB: DBConfig{Driver: DriverGoOra}}, false},
		{"zero port", Config{DB: DBConfig{Driver: DriverGoOra}}, true},
		{"unknown driver", Config{Server: ServerConfig{Port: 80}, DB: DBConfig{Driver: "postgres"}}, true},
		{"auth secret set", Config{Server: ServerConfig{Port: 80}, DB: DBConfig{Driver: DriverGodror}, Auth: AuthConfig{Enabled: true, JWTSecret: "s"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 5*time.Minute, cfg.ParseTTLStringOrDefault("5m", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("soon", time.Hour))
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("-1s", time.Hour))
}
