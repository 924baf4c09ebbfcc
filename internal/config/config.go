package config

import "time"

// Storage backends understood by the application.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"     validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// StorageConfig selects where cases are kept.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=memory postgres dynamodb"`
	// Seed loads the demo cases into the memory backend on startup.
	Seed bool `mapstructure:"seed"`
}

// DatabaseConfig contains the PostgreSQL settings used by the postgres backend.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"               validate:"omitempty,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DynamoDBConfig contains the settings used by the dynamodb backend.
type DynamoDBConfig struct {
	Table          string `mapstructure:"table"`
	PublishedIndex string `mapstructure:"published_index"`
	Region         string `mapstructure:"region"`
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint        string `mapstructure:"endpoint"          validate:"omitempty,url"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required_with=AccessKeyID"`
}
