// Package config provides configuration management for SchemaBridge.
//
// Configuration is layered: built-in defaults, then an optional YAML config
// file, then SCHEMABRIDGE_-prefixed environment variables, then command-line
// flags, with later layers taking precedence.
package config

// Config holds all SchemaBridge configuration options.
type Config struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	MaxUploadMB  int64  `koanf:"max_upload_mb"`
	OutputFormat string `koanf:"output"`
	LogLevel     string `koanf:"log_level"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultPort        = 8350
	DefaultMaxUploadMB = 16
	DefaultOutput      = "table"
	DefaultLogLevel    = "info"
)
