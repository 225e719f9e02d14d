package config

import (
	"fmt"
	"time"
)

// LocalStorageProvider stores uploaded media on the local filesystem.
const LocalStorageProvider = "local"

// ServerSettings configures the HTTP listener and CORS policy.
type ServerSettings struct {
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	AllowOrigins    []string      `mapstructure:"allow_origins" validate:"required,min=1"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
	TrustedProxies  []string      `mapstructure:"trusted_proxies"`
}

// AuthSettings configures bearer token issuing.
type AuthSettings struct {
	JWTSecret  string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenTTL   time.Duration `mapstructure:"token_ttl" validate:"required"`
	Issuer     string        `mapstructure:"issuer"`
	BcryptCost int           `mapstructure:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
}

// UploadSettings configures the image upload pipeline.
type UploadSettings struct {
	Provider   string `mapstructure:"provider" validate:"required,oneof=local"`
	Dir        string `mapstructure:"dir" validate:"required"`
	PublicPath string `mapstructure:"public_path" validate:"required,startswith=/"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"required,min=1,max=50"`
	MaxWidth   int    `mapstructure:"max_width" validate:"gte=0"`
	MaxPixels  int64  `mapstructure:"max_pixels" validate:"gte=0"`
	Quality    int    `mapstructure:"quality" validate:"required,min=1,max=100"`
}

// RedisSettings configures the optional Redis token denylist. An empty
// Address selects the in-memory denylist.
type RedisSettings struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// RateLimitSettings configures the per-client limiter applied to login and
// contact form submission.
type RateLimitSettings struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"required,min=1"`
	Burst             int `mapstructure:"burst" validate:"required,min=1"`
}

// Validate checks the server settings.
func (s *ServerSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}
	return nil
}

// Validate checks the auth settings.
func (s *AuthSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// Validate checks the upload settings.
func (s *UploadSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for UploadSettings: %w", err)
	}
	return nil
}

// Validate checks the Redis settings.
func (s *RedisSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}
	return nil
}

// Validate checks the rate limit settings.
func (s *RateLimitSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}
