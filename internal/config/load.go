package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the application reads,
// e.g. APIREF_SERVER_PORT.
const EnvPrefix = "APIREF"

// Default values applied before config files and the environment are read.
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultShutdownTimeout   = "10s"
	DefaultReadHeaderTimeout = "5s"
	DefaultHeaderOffset      = 100
)

// Load configuration from environment variables and optionally config files.
// Precedence, highest first: environment variables (including those loaded
// from .env files), config.yaml in the working directory, defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// .env files never override variables already present in the environment.
	loadEnvFiles(".env", ".env.local")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Server.LogLevel = NormalizeLogLevel(cfg.Server.LogLevel)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// NormalizeLogLevel lowercases a configured level name and maps the
// "warning" alias to "warn", so APIREF_SERVER_LOG_LEVEL=INFO is accepted.
func NormalizeLogLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}
	return level
}

// setDefaults registers every key with viper. AutomaticEnv only resolves keys
// viper already knows about, so each setting needs a default here.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.read_header_timeout", DefaultReadHeaderTimeout)
	v.SetDefault("catalog.path", "")
	v.SetDefault("view.header_offset", DefaultHeaderOffset)
}

func loadEnvFiles(names ...string) {
	for _, name := range names {
		// Missing files are expected.
		_ = godotenv.Load(name)
	}
}
