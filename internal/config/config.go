package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr          string
	MongoURI      string
	MongoDatabase string
	Timeout       time.Duration
	ServerLog     *log.Logger

	PostingCollection            string
	EmployerProfileCollection    string
	LodgingProfileCollection     string
	ReviewCollection             string
	ApplicationCollection        string
	NotificationCollection       string
	FailedNotificationCollection string

	JWTConfigs     []JWTConfig
	JWTAudience    string
	AllowedOrigins []string

	ListingLookupConcurrency int
	ListingLookupTimeout     time.Duration

	MessengerEndpoint    string
	MessengerDestination string
	MessengerTimeout     time.Duration
	MessengerAttempts    int

	NotificationRetrySpec   string
	NotificationMaxAttempts int
	NotificationRetryBatch  int

	RedisURL string
}

// Load reads .env (if present) and environment variables and returns a fully
// populated Config. Missing mandatory settings are fatal.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf(".env の読み込みに失敗しました: %v", err)
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatal(err)
	}

	cfg.ServerLog.Printf("loaded config: addr=%q db=%q messengerEndpoint=%q destination=%q redis=%t",
		cfg.Addr, cfg.MongoDatabase, cfg.MessengerEndpoint, cfg.MessengerDestination, cfg.RedisURL != "")
	return cfg
}

// Parse builds a Config from the current environment without touching .env files.
func Parse() (Config, error) {
	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_JWT_ISSUER", "resort-crew-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_PARTNER_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_PARTNER_JWT_ISSUER", "resort-crew-partner"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 {
		return Config{}, errors.New("JWT secrets not configured. Set AUTH_JWT_SECRET or AUTH_PARTNER_JWT_SECRET.")
	}

	timeout, err := parseDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	lookupTimeout, err := parseDuration("LISTING_LOOKUP_TIMEOUT", 2*time.Second)
	if err != nil {
		return Config{}, err
	}
	messengerTimeout, err := parseDuration("MESSENGER_GATEWAY_TIMEOUT", 3*time.Second)
	if err != nil {
		return Config{}, err
	}
	lookupConcurrency, err := parsePositive("LISTING_LOOKUP_CONCURRENCY", 8)
	if err != nil {
		return Config{}, err
	}
	messengerAttempts, err := parsePositive("MESSENGER_GATEWAY_ATTEMPTS", 3)
	if err != nil {
		return Config{}, err
	}
	maxAttempts, err := parsePositive("NOTIFICATION_RETRY_MAX_ATTEMPTS", 5)
	if err != nil {
		return Config{}, err
	}
	retryBatch, err := parsePositive("NOTIFICATION_RETRY_BATCH", 50)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:          envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:      envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase: envOrDefault("MONGO_DB", "resort-crew"),
		Timeout:       timeout,
		ServerLog:     log.New(os.Stdout, "[resort-crew-api] ", log.LstdFlags|log.Lshortfile),

		PostingCollection:            envOrDefault("POSTING_COLLECTION", "job_posts"),
		EmployerProfileCollection:    envOrDefault("EMPLOYER_PROFILE_COLLECTION", "employer_profiles"),
		LodgingProfileCollection:     envOrDefault("LODGING_PROFILE_COLLECTION", "lodging_profiles"),
		ReviewCollection:             envOrDefault("REVIEW_COLLECTION", "reviews"),
		ApplicationCollection:        envOrDefault("APPLICATION_COLLECTION", "applications"),
		NotificationCollection:       envOrDefault("NOTIFICATION_COLLECTION", "notifications"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),

		JWTConfigs:     jwtConfigs,
		JWTAudience:    strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		AllowedOrigins: parseList("API_ALLOWED_ORIGINS", []string{"*"}),

		ListingLookupConcurrency: lookupConcurrency,
		ListingLookupTimeout:     lookupTimeout,

		MessengerEndpoint:    strings.TrimRight(envOrDefault("MESSENGER_GATEWAY_URL", "http://messenger-gateway:3000"), "/"),
		MessengerDestination: envOrDefault("MESSENGER_GATEWAY_DESTINATION", "kakao"),
		MessengerTimeout:     messengerTimeout,
		MessengerAttempts:    messengerAttempts,

		NotificationRetrySpec:   envOrDefault("NOTIFICATION_RETRY_SPEC", "@every 5m"),
		NotificationMaxAttempts: maxAttempts,
		NotificationRetryBatch:  retryBatch,

		RedisURL: strings.TrimSpace(os.Getenv("REDIS_URL")),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return parsed, nil
}

func parsePositive(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return parsed, nil
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
