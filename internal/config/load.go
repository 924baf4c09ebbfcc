package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "CASEFILE"

// Load reads configuration from defaults, an optional config.yaml in the
// working directory and CASEFILE_ environment variables, in increasing order
// of precedence. It returns an error if the result fails validation.
func Load() (*Config, error) {
	return load("")
}

// LoadFile behaves like Load but reads the given config file, which must exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("storage.seed", true)

	// Keys without a useful default are registered so AutomaticEnv can see them.
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("dynamodb.table", "")
	v.SetDefault("dynamodb.published_index", "published-createdAt-index")
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "")
	v.SetDefault("dynamodb.secret_access_key", "")
}

// Validate checks cfg against its struct tags and the settings the selected
// storage backend needs.
func Validate(cfg *Config) error {
	validate := validator.New()
	validate.RegisterStructValidation(backendSettings, Config{})

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func backendSettings(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	switch cfg.Storage.Backend {
	case BackendPostgres:
		if cfg.Database.URL == "" {
			sl.ReportError(cfg.Database.URL, "Database.URL", "URL", "required_for_postgres", "")
		}
	case BackendDynamoDB:
		if cfg.DynamoDB.Table == "" {
			sl.ReportError(cfg.DynamoDB.Table, "DynamoDB.Table", "Table", "required_for_dynamodb", "")
		}
		if cfg.DynamoDB.PublishedIndex == "" {
			sl.ReportError(
				cfg.DynamoDB.PublishedIndex,
				"DynamoDB.PublishedIndex",
				"PublishedIndex",
				"required_for_dynamodb",
				"",
			)
		}
	}
}
