package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	View    ViewConfig    `mapstructure:"view"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port              int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel          string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
}

// CatalogConfig selects the reference catalog to serve.
type CatalogConfig struct {
	// Path is an optional YAML catalog on disk. Empty means the embedded catalog.
	Path string `mapstructure:"path" validate:"omitempty,file"`
}

// ViewConfig contains settings for the rendered reference page.
type ViewConfig struct {
	// HeaderOffset is the height in pixels of the sticky page header. It is
	// added to the scroll position when deciding which category is active and
	// subtracted when scrolling to a category.
	HeaderOffset int `mapstructure:"header_offset" validate:"gte=0,lte=1000"`
}
