package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Pranav-019/spices-admin-panel/internal/backend"
)

const (
	DefaultBackendURL = "https://spices-backend.vercel.app"
	DefaultPort       = "8585"
)

type Config struct {
	Port         string
	DBPath       string
	CSRFKey      []byte
	SessionKey   []byte
	CookieDomain string
	CookieSecure bool

	BackendURL       string
	SocialBackendURL string
	BackendRevision  backend.Revision
	BackendTimeout   time.Duration

	NavConfigPath   string
	OrdersPageSize  int
	LoginRateWindow time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", DefaultPort),
		DBPath:        getEnv("DB_PATH", "./spices-admin.db"),
		CookieDomain:  getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:  getEnv("COOKIE_SECURE", "false") == "true",
		BackendURL:    getEnv("BACKEND_URL", DefaultBackendURL),
		NavConfigPath: getEnv("NAV_CONFIG", ""),
	}
	cfg.SocialBackendURL = getEnv("SOCIAL_BACKEND_URL", cfg.BackendURL)

	rev, err := backend.ParseRevision(getEnv("BACKEND_REVISION", string(backend.RevisionV2)))
	if err != nil {
		return nil, err
	}
	cfg.BackendRevision = rev

	// A malformed backend URL fails at startup.
	if _, err := backend.New(backend.Options{BaseURL: cfg.BackendURL, SocialBaseURL: cfg.SocialBackendURL, Revision: rev}); err != nil {
		return nil, fmt.Errorf("invalid backend configuration: %w", err)
	}

	cfg.BackendTimeout = getDuration("BACKEND_TIMEOUT", 15*time.Second)
	cfg.LoginRateWindow = getDuration("LOGIN_RATE_WINDOW", 2*time.Second)
	cfg.OrdersPageSize = getInt("ORDERS_PAGE_SIZE", 10)

	cfg.CSRFKey = loadKey("CSRF_KEY")
	cfg.SessionKey = loadKey("SESSION_KEY")

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = DefaultPort
	}

	return cfg, nil
}

// loadKey reads a base64 key of at least 32 bytes from env. Missing or
// short keys are replaced by random ones, which do not survive a restart.
func loadKey(env string) []byte {
	keyStr := os.Getenv(env)
	if keyStr == "" {
		slog.Warn(env + " environment variable not set. Generating a random key for development. This key will change on each restart. PLEASE SET " + env + " IN PRODUCTION!")
		return generateRandomBytes(32)
	}
	decodedKey, err := base64.StdEncoding.DecodeString(keyStr)
	if err != nil || len(decodedKey) < 32 {
		slog.Warn(env + " is invalid or too short (min 32 bytes recommended). Generating a random key for development. PLEASE SET A SECURE " + env + " IN PRODUCTION!")
		return generateRandomBytes(32)
	}
	return decodedKey
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		slog.Warn("Invalid integer, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return n
}

// generateRandomBytes generates a random byte slice of specified length
// Uses crypto/rand for secure random numbers.
func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the host is broken; refuse to run with a guessable key
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return b
}
