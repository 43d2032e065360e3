package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t, `
env:
  serviceName: storefront
cart:
  enforceStock: false
  ttl: 1h
kv:
  provider: bucket
  keyPrefix: shop
`)
	t.Chdir(dir)
	t.Setenv("CART_ENFORCESTOCK", "true")
	t.Setenv("KV_KEYPREFIX", "override")

	cfg, err := LoadWithEnv[Config]("test")

	require.NoError(t, err)
	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.True(t, cfg.Cart.EnforceStock)
	assert.Equal(t, time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "override", cfg.KV.KeyPrefix)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "bucket", cfg.KV.Provider)
	assert.Equal(t, "mem://", cfg.KV.Bucket.URL)
	assert.Equal(t, defaultKeyPrefix, cfg.KV.KeyPrefix)
	assert.Equal(t, defaultCartCookie, cfg.Cart.SessionCookie.Name)
	assert.Equal(t, time.Minute, cfg.Newsletter.FlushInterval)
	assert.Positive(t, cfg.Checkout.ConfirmationTTL)
}

func TestConfig_ApplyDefaults_KeepsRedisWithoutBucketURL(t *testing.T) {
	cfg := &Config{}
	cfg.KV.Provider = "redis"

	cfg.applyDefaults()

	assert.Empty(t, cfg.KV.Bucket.URL)
}
