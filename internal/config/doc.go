// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml, .env files and APIREF_-prefixed
// environment variables. It provides type-safe access to the settings the
// server and the rendered page need.
package config
