package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	AI            AIConfig
	Auth          AuthConfig
	ObjectStorage ObjectStorageConfig
	Report        ReportConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
	Environment   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	MaxBodySizeMB   int
	RateLimitRPS    float64
	RateLimitBurst  int
}

// DatabaseConfig holds persistence configuration.
// Driver selects the key-value backend: "sqlite" (default) or "postgres".
type DatabaseConfig struct {
	Driver         string
	SQLitePath     string
	URL            string
	MaxConns       int32
	MinConns       int32
	MigrationsPath string
}

// AIConfig holds AI collaborator configuration
type AIConfig struct {
	GeminiAPIKey string
	Model        string
	Timeout      time.Duration
}

// AuthConfig holds session cookie and JWT configuration
type AuthConfig struct {
	JWTSecret       string
	JWTIssuer       string
	SessionTTLHours int
	CookieName      string
	CookieDomain    string
	CookieSecure    bool
}

// ObjectStorageConfig holds S3-compatible storage configuration for avatars
type ObjectStorageConfig struct {
	Enabled         bool
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// ReportConfig holds bug report webhook configuration
type ReportConfig struct {
	WebhookURL string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	LogDir string
}

// ObservabilityConfig holds tracing configuration
type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// ProfilingConfig holds continuous profiling configuration
type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// CacheConfig holds in-memory cache configuration
type CacheConfig struct {
	MentorTTL       time.Duration
	CleanupInterval time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// .env is optional, environment variables take precedence anyway
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !strings.Contains(err.Error(), "no such file") {
				return nil, fmt.Errorf("failed to read .env file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  strings.Split(v.GetString("ALLOWED_ORIGINS"), ","),
			MaxBodySizeMB:   v.GetInt("MAX_BODY_SIZE_MB"),
			RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
		},
		Database: DatabaseConfig{
			Driver:         v.GetString("DB_DRIVER"),
			SQLitePath:     v.GetString("SQLITE_PATH"),
			URL:            v.GetString("DATABASE_URL"),
			MaxConns:       v.GetInt32("DB_MAX_CONNS"),
			MinConns:       v.GetInt32("DB_MIN_CONNS"),
			MigrationsPath: v.GetString("DB_MIGRATIONS_PATH"),
		},
		AI: AIConfig{
			GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
			Model:        v.GetString("GEMINI_MODEL"),
			Timeout:      v.GetDuration("AI_TIMEOUT"),
		},
		Auth: AuthConfig{
			JWTSecret:       v.GetString("JWT_SECRET"),
			JWTIssuer:       v.GetString("JWT_ISSUER"),
			SessionTTLHours: v.GetInt("SESSION_TTL_HOURS"),
			CookieName:      v.GetString("SESSION_COOKIE_NAME"),
			CookieDomain:    v.GetString("SESSION_COOKIE_DOMAIN"),
			CookieSecure:    v.GetBool("SESSION_COOKIE_SECURE"),
		},
		ObjectStorage: ObjectStorageConfig{
			Enabled:         v.GetBool("OBJECT_STORAGE_ENABLED"),
			Endpoint:        v.GetString("OBJECT_STORAGE_ENDPOINT"),
			Region:          v.GetString("OBJECT_STORAGE_REGION"),
			Bucket:          v.GetString("OBJECT_STORAGE_BUCKET"),
			AccessKeyID:     v.GetString("OBJECT_STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("OBJECT_STORAGE_SECRET_ACCESS_KEY"),
		},
		Report: ReportConfig{
			WebhookURL: v.GetString("REPORT_WEBHOOK_URL"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			LogDir: v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: v.GetString("OTLP_ENDPOINT"),
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("PROFILING_ENABLED"),
			Endpoint:              v.GetString("PROFILING_ENDPOINT"),
			AppName:               v.GetString("PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			MentorTTL:       v.GetDuration("CACHE_MENTOR_TTL"),
			CleanupInterval: v.GetDuration("CACHE_CLEANUP_INTERVAL"),
		},
		Environment: v.GetString("ENVIRONMENT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("MAX_BODY_SIZE_MB", 1)
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("SQLITE_PATH", "codementor.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MIGRATIONS_PATH", "migrations")

	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("AI_TIMEOUT", "30s")

	v.SetDefault("JWT_ISSUER", "codementor-api")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("SESSION_COOKIE_NAME", "cm_session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)

	v.SetDefault("OBJECT_STORAGE_ENABLED", false)
	v.SetDefault("OBJECT_STORAGE_REGION", "us-east-1")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "logs")

	v.SetDefault("OTEL_SERVICE_NAME", "codementor-api")

	v.SetDefault("PROFILING_ENABLED", false)
	v.SetDefault("PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	v.SetDefault("CACHE_MENTOR_TTL", "5m")
	v.SetDefault("CACHE_CLEANUP_INTERVAL", "10m")

	v.SetDefault("ENVIRONMENT", "development")
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected sqlite or postgres)", c.Database.Driver)
	}

	if c.ObjectStorage.Enabled {
		if c.ObjectStorage.Endpoint == "" || c.ObjectStorage.Bucket == "" {
			return fmt.Errorf("object storage endpoint and bucket are required when enabled")
		}
	}

	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("MAX_BODY_SIZE_MB must be positive")
	}

	return nil
}

// IsDevelopment returns true when running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
