package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: contacts
auth:
  secretKey: from-file
  accessTokenTTL: 30m
redis:
  addr: localhost:6379
`

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("AUTH_SECRETKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("app")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.EmailTokenTTL)
	assert.Equal(t, defaultSessionCacheTTL, cfg.Auth.CacheTTL)
	assert.Zero(t, cfg.Auth.Leeway)
	assert.Equal(t, "user:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 100, cfg.Contacts.MaxLimit)
	assert.Equal(t, 7, cfg.Contacts.DefaultBirthdayDays)
	assert.Equal(t, "5MB", cfg.Storage.MaxAvatarSize)
	assert.NotNil(t, cfg.Mail)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Worker)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.RateLimit)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:  &AuthConfig{Algorithm: "HS512", AccessTokenTTL: time.Minute, Leeway: -time.Second},
		Redis: &RedisConfig{KeyPrefix: "session:"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "HS512", cfg.Auth.Algorithm)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Zero(t, cfg.Auth.Leeway)
	assert.Equal(t, "session:", cfg.Redis.KeyPrefix)
}
