package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. AMIUDDOKTA_AUTH_JWT_SECRET.
const EnvPrefix = "AMIUDDOKTA"

var validate = validator.New()

// RestConfig is the complete configuration of the REST API and the CLI.
type RestConfig struct {
	Server    ServerSettings    `mapstructure:"server"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Auth      AuthSettings      `mapstructure:"auth"`
	Uploads   UploadSettings    `mapstructure:"uploads"`
	Redis     RedisSettings     `mapstructure:"redis"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
}

// InitializeRestConfig reads the YAML file at path, applies a .env file from
// the working directory if present and environment overrides, then validates
// the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates every settings group.
func (c *RestConfig) Validate() error {
	return errors.Join(
		c.Server.Validate(),
		c.Database.Validate(),
		c.Logger.Validate(),
		c.Auth.Validate(),
		c.Uploads.Validate(),
		c.Redis.Validate(),
		c.RateLimit.Validate(),
	)
}

// setDefaults registers every key so that AutomaticEnv can override keys
// missing from the YAML file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allow_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.trusted_proxies", []string{})

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "amiuddokta.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 30)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", true)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.issuer", "amiuddokta")
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("uploads.provider", LocalStorageProvider)
	v.SetDefault("uploads.dir", "public/uploads")
	v.SetDefault("uploads.public_path", "/uploads")
	v.SetDefault("uploads.max_size_mb", 5)
	v.SetDefault("uploads.max_width", 1920)
	v.SetDefault("uploads.max_pixels", 40_000_000)
	v.SetDefault("uploads.quality", 80)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.requests_per_minute", 10)
	v.SetDefault("rate_limit.burst", 5)
}
