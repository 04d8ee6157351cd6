package config

import (
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "OPENAI_API_KEY", "AI_PROXY_URL", "API_KEYS", "FRONTEND_URL", "LOG_LEVEL", "ASSISTANT_WORD_BOUNDARIES", "NODE_ID", "JWT_SECRET", "ADMIN_EMAIL"} {
		t.Setenv(k, "")
	}

	c := FromEnv()

	if c.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", c.Port)
	}
	if !slices.Equal(c.APIKeys, defaultAPIKeys) {
		t.Fatalf("expected default api keys, got %v", c.APIKeys)
	}
	if c.JWTSecret != DevJWTSecret || c.AdminEmail != "" {
		t.Fatalf("unexpected auth defaults: %+v", c)
	}
	if c.FrontendURL != "*" || c.WordBoundaries || c.NodeID != 1 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_KEYS", " a , ,b")
	t.Setenv("ASSISTANT_WORD_BOUNDARIES", "true")
	t.Setenv("NODE_ID", "7")
	t.Setenv("LOG_LEVEL", "debug")

	c := FromEnv()

	if c.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", c.Port)
	}
	if !slices.Equal(c.APIKeys, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", c.APIKeys)
	}
	if !c.WordBoundaries || c.NodeID != 7 {
		t.Fatalf("unexpected overrides: %+v", c)
	}
	if lvl := c.NewLogger().GetLevel(); lvl != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", lvl)
	}
}
