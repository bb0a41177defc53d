package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                  string
	MongoURI              string
	MongoDatabase         string
	UserCollection        string
	ReclamationCollection string
	ProductCollection     string
	StoreCollection       string
	AdminCollection       string
	Timeout               time.Duration
	RequestTimeout        time.Duration
	JWTSecret             []byte
	JWTIssuer             string
	JWTAudience           string
	JWTTTL                time.Duration
	AllowedOrigins        []string
	LogLevel              string
	LogFile               string
	UnauthorizedPath      string
}

// Load reads environment variables (optionally seeded from a .env file)
// and returns a fully populated Config. A missing JWT secret is fatal:
// the admin surface cannot run without an identity gate.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env file: %v", err)
	}

	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("MONGO_CONNECT_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	requestTimeout := 5 * time.Second
	if v := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			requestTimeout = parsed
		}
	}

	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	ttl := 12 * time.Hour
	if v := strings.TrimSpace(os.Getenv("AUTH_JWT_TTL")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		}
	}

	return Config{
		Addr:                  envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:              envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:         envOrDefault("MONGO_DB", "pricewatch"),
		UserCollection:        envOrDefault("USER_COLLECTION", "users"),
		ReclamationCollection: envOrDefault("RECLAMATION_COLLECTION", "reclamations"),
		ProductCollection:     envOrDefault("PRODUCT_COLLECTION", "InfoProduit"),
		StoreCollection:       envOrDefault("STORE_COLLECTION", "Magasin"),
		AdminCollection:       envOrDefault("ADMIN_COLLECTION", "admin"),
		Timeout:               timeout,
		RequestTimeout:        requestTimeout,
		JWTSecret:             []byte(secret),
		JWTIssuer:             envOrDefault("AUTH_JWT_ISSUER", "pricewatch-admin"),
		JWTAudience:           envOrDefault("AUTH_JWT_AUDIENCE", "pricewatch-dashboard"),
		JWTTTL:                ttl,
		AllowedOrigins:        parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:              envOrDefault("LOG_LEVEL", "info"),
		LogFile:               strings.TrimSpace(os.Getenv("LOG_FILE")),
		UnauthorizedPath:      envOrDefault("UNAUTHORIZED_REDIRECT", "/auth/unauthorized"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
