package config

import (
	"strings"
	"time"
)

// DefaultJWTSecret is accepted only outside production.
const DefaultJWTSecret = "gramaconnect-insecure-development-secret"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Redis     RedisConfig     `yaml:"redis"`
	Storage   StorageConfig   `yaml:"storage"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Issues    IssuesConfig    `yaml:"issues"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Env             string        `yaml:"env"              env:"SERVER_ENV"              env-default:"development"`
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes caps request bodies; photo uploads arrive inline.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"41943040"`
}

// IsProduction reports whether the server runs with production safeguards.
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"JWT_SECRET"            env-default:"gramaconnect-insecure-development-secret"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"gramaconnect"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// RedisConfig holds the Redis connection used for rate limits and caches.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// StorageConfig holds MinIO object storage settings for issue photos.
// When Enabled is false photos are kept inline as data URLs.
type StorageConfig struct {
	Enabled       bool   `yaml:"enabled"         env:"STORAGE_ENABLED"         env-default:"false"`
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"        env-default:"localhost:9000"`
	AccessKey     string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"gramaconnect-photos"`
	UseSSL        bool   `yaml:"use_ssl"         env:"STORAGE_USE_SSL"         env-default:"false"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
}

// GeocodingConfig holds settings for the Google Geocoding API.
type GeocodingConfig struct {
	APIKey         string        `yaml:"api_key"          env:"GOOGLE_MAPS_API_KEY"`
	BaseURL        string        `yaml:"base_url"         env:"GEOCODING_BASE_URL"         env-default:"https://maps.googleapis.com/maps/api/geocode/json"`
	RequestsPerSec float64       `yaml:"requests_per_sec" env:"GEOCODING_REQUESTS_PER_SEC" env-default:"10"`
	Timeout        time.Duration `yaml:"timeout"          env:"GEOCODING_TIMEOUT"          env-default:"5s"`
	CacheTTL       time.Duration `yaml:"cache_ttl"        env:"GEOCODING_CACHE_TTL"        env-default:"168h"`
}

// Enabled reports whether reverse geocoding can be used.
func (g GeocodingConfig) Enabled() bool { return g.APIKey != "" }

// IssuesConfig holds issue reporting limits.
type IssuesConfig struct {
	MaxPhotos     int           `yaml:"max_photos"      env:"ISSUES_MAX_PHOTOS"      env-default:"5"`
	MaxPhotoBytes int64         `yaml:"max_photo_bytes" env:"ISSUES_MAX_PHOTO_BYTES" env-default:"5242880"`
	ReportsPerDay int           `yaml:"reports_per_day" env:"ISSUES_REPORTS_PER_DAY" env-default:"10"`
	ReportWindow  time.Duration `yaml:"report_window"   env:"ISSUES_REPORT_WINDOW"   env-default:"24h"`
	UploadTimeout time.Duration `yaml:"upload_timeout"  env:"ISSUES_UPLOAD_TIMEOUT"  env-default:"30s"`
	// AutoCloseAfter is how long a resolved issue stays open before cmd/cleanup closes it.
	AutoCloseAfter time.Duration `yaml:"auto_close_after" env:"ISSUES_AUTO_CLOSE_AFTER" env-default:"720h"`
}

// RateLimitConfig holds the per-IP limits on auth endpoints.
type RateLimitConfig struct {
	Register        int           `yaml:"register"         env:"RATE_LIMIT_REGISTER"         env-default:"5"`
	Login           int           `yaml:"login"            env:"RATE_LIMIT_LOGIN"            env-default:"10"`
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
