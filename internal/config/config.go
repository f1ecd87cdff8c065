package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	TMDB     TMDBConfig
	Cache    CacheConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Digest   DigestConfig
	MinIO    MinIOConfig
	Mock     MockConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type TMDBConfig struct {
	// Token is the TMDB v4 read access token, sent as a bearer credential
	// on every outbound request.
	Token       string
	BaseURL     string
	Language    string
	HTTPTimeout time.Duration
}

type CacheConfig struct {
	// Size bounds the number of remote responses held in memory; TTL
	// expires them so the catalog does not serve stale pages forever.
	Size int
	TTL  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type DigestConfig struct {
	// CronSpec defaults to Monday 09:00.
	CronSpec string
	Subject  string
	Enabled  bool
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

type MockConfig struct {
	// FixturesEnabled gates the development-only mock movie table used by
	// the watchlist reconciler for references in the 1-20 range.
	FixturesEnabled bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "moviehub_db"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		TMDB: TMDBConfig{
			Token:       os.Getenv("TMDB_API_TOKEN"),
			BaseURL:     getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			Language:    getEnvOrDefault("TMDB_LANGUAGE", "en-US"),
			HTTPTimeout: getDurationOrDefault("TMDB_HTTP_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Size: getIntOrDefault("CACHE_SIZE", 512),
			TTL:  getDurationOrDefault("CACHE_TTL", 10*time.Minute),
		},
		SMTP: SMTPConfig{
			Host:     getEnvOrDefault("SMTP_HOST", "localhost"),
			Port:     getIntOrDefault("SMTP_PORT", 1025),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   getEnvOrDefault("SMTP_SENDER", "MovieHub <no-reply@moviehub.local>"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  getDurationOrDefault("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Digest: DigestConfig{
			CronSpec: getEnvOrDefault("DIGEST_CRON", "0 9 * * 1"),
			Subject:  getEnvOrDefault("DIGEST_SUBJECT", "Weekly Movie Digest"),
			Enabled:  getBoolOrDefault("DIGEST_ENABLED", true),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("S3_ENDPOINT", "localhost:9000"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			BucketName:      getEnvOrDefault("S3_BUCKET", "posters"),
			Region:          getEnvOrDefault("S3_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("S3_USE_SSL", false),
			PublicURL:       getEnvOrDefault("S3_PUBLIC_URL", "http://localhost:9000/posters"),
		},
		Mock: MockConfig{
			FixturesEnabled: getBoolOrDefault("MOCK_FIXTURES_ENABLED", os.Getenv("GO_ENV") != "production"),
		},
	}
}

func (c *Config) Validate() error {
	if c.TMDB.Token == "" {
		return fmt.Errorf("TMDB_API_TOKEN is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
