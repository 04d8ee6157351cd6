package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var defaultAPIKeys = []string{"UNIVERSAL_SHOP_2024_KEY", "DEV_KEY_12345"}

// DevJWTSecret signs tokens when JWT_SECRET is unset. Local use only.
const DevJWTSecret = "devsecret"

type Config struct {
	Port        string
	DatabaseURL string

	OpenAIKey   string
	OpenAIModel string
	AIProxyURL  string

	APIKeys     []string
	FrontendURL string
	LogLevel    string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	WordBoundaries bool
	NodeID         int64
}

// Load reads a .env file when present and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	c := Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		OpenAIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:    os.Getenv("OPENAI_MODEL"),
		AIProxyURL:     strings.TrimSpace(os.Getenv("AI_PROXY_URL")),
		APIKeys:        splitList(os.Getenv("API_KEYS")),
		FrontendURL:    getenv("FRONTEND_URL", "*"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		JWTSecret:      getenv("JWT_SECRET", DevJWTSecret),
		AdminEmail:     strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		WordBoundaries: os.Getenv("ASSISTANT_WORD_BOUNDARIES") == "true",
		NodeID:         1,
	}
	if len(c.APIKeys) == 0 {
		c.APIKeys = append([]string(nil), defaultAPIKeys...)
	}
	if raw := os.Getenv("NODE_ID"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			c.NodeID = n
		} else {
			logrus.WithField("NODE_ID", raw).Warn("invalid NODE_ID, using 1")
		}
	}
	return c
}

// NewLogger builds the process logger: JSON output, level from LOG_LEVEL.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
