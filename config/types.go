package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	CredentialsFile string        `mapstructure:"credentials_file"`
	API             APIConfig     `mapstructure:"api"`
	Logging         LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds gfycat API connection details
type APIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	Concurrency int           `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
