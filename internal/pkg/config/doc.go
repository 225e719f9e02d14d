// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, optionally preceded by a .env file, and
// every key can be overridden through AMIUDDOKTA_* environment variables.
// Each settings group validates itself before the application uses it.
package config
