package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"dsn": "",
		},
		"jwt": map[string]any{
			"accessTokenTTL": "60m",
		},
		"http": map[string]any{
			"bodyLimit": "100KB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_DSN", want: "database.dsn"},
		{envKey: "JWT_ACCESSTOKENTTL", want: "jwt.accessTokenTTL"},
		{envKey: "HTTP_BODYLIMIT", want: "http.bodyLimit"},
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
