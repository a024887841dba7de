package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.IsProduction() {
		if c.Auth.JWTSecret == DefaultJWTSecret {
			return fmt.Errorf("auth.jwt_secret must be set in production")
		}
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
		}
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must not be empty")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if err := c.Issues.validate(); err != nil {
		return fmt.Errorf("issues: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Storage.Enabled {
		if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			return fmt.Errorf("storage: access_key and secret_key are required when storage is enabled")
		}
		if strings.TrimSpace(c.Storage.Bucket) == "" {
			return fmt.Errorf("storage: bucket must not be empty")
		}
	}

	if c.Geocoding.Enabled() && c.Geocoding.RequestsPerSec <= 0 {
		return fmt.Errorf("geocoding: requests_per_sec must be > 0 (got %v)", c.Geocoding.RequestsPerSec)
	}

	return nil
}

func (i *IssuesConfig) validate() error {
	if i.MaxPhotos < 0 {
		return fmt.Errorf("max_photos must be >= 0 (got %d)", i.MaxPhotos)
	}
	if i.MaxPhotoBytes <= 0 {
		return fmt.Errorf("max_photo_bytes must be > 0 (got %d)", i.MaxPhotoBytes)
	}
	if i.ReportsPerDay < 0 {
		return fmt.Errorf("reports_per_day must be >= 0 (got %d)", i.ReportsPerDay)
	}
	if i.ReportsPerDay > 0 && i.ReportWindow <= 0 {
		return fmt.Errorf("report_window must be > 0 when reports_per_day is set")
	}
	if i.AutoCloseAfter < 0 {
		return fmt.Errorf("auto_close_after must be >= 0 (got %v)", i.AutoCloseAfter)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.Register <= 0 || r.Login <= 0 {
		return fmt.Errorf("register and login must be > 0 (got %d, %d)", r.Register, r.Login)
	}
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %v)", r.Window)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}
