package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"kv": map[string]any{
			"keyPrefix": "storefront",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
		"cart": map[string]any{
			"enforceStock": false,
			"sessionCookie": map[string]any{
				"maxAge": "720h",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "KV_KEYPREFIX", want: "kv.keyPrefix"},
		{envKey: "KV_REDIS_ADDR", want: "kv.redis.addr"},
		{envKey: "CART_ENFORCESTOCK", want: "cart.enforceStock"},
		{envKey: "CART_SESSIONCOOKIE_MAXAGE", want: "cart.sessionCookie.maxAge"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
