package config

import "fmt"

// Supported database drivers.
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings describes how to reach the relational store.
//
// For postgres, DSN is a key/value connection string without dbname; Name is
// appended after the database has been created if missing. For sqlite, DSN is
// a file path or ":memory:".
type DatabaseSettings struct {
	Type            string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN             string `mapstructure:"dsn" validate:"required"`
	Name            string `mapstructure:"name" validate:"required_if=Type postgres"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// Validate checks the database settings.
func (s *DatabaseSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
