package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the skysnoop CLI and client
type Config struct {
	REAPIBaseURL   string
	OpenAPIBaseURL string
	APIKey         string
	Backend        string
	Timeout        time.Duration
	OutputFormat   string
	Log            LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("reapi_base_url", "https://re-api.adsb.lol")
	v.SetDefault("openapi_base_url", "https://api.adsb.lol")
	v.SetDefault("api_key", "")
	v.SetDefault("backend", "auto")
	v.SetDefault("timeout", 30)
	v.SetDefault("output_format", "table")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Set config file name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Set config file search paths
	v.AddConfigPath("/etc/skysnoop")
	v.AddConfigPath(".")

	// Check for config file path from environment variable
	if configPath := os.Getenv("SKYSNOOP_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Read config file (if it exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults + env vars
	}

	// Set environment variable prefix
	v.SetEnvPrefix("SKYSNOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		REAPIBaseURL:   v.GetString("reapi_base_url"),
		OpenAPIBaseURL: v.GetString("openapi_base_url"),
		APIKey:         v.GetString("api_key"),
		Backend:        v.GetString("backend"),
		Timeout:        time.Duration(v.GetInt("timeout")) * time.Second,
		OutputFormat:   v.GetString("output_format"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.REAPIBaseURL == "" {
		return fmt.Errorf("reapi_base_url is required")
	}

	if cfg.OpenAPIBaseURL == "" {
		return fmt.Errorf("openapi_base_url is required")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0")
	}

	validBackends := map[string]bool{
		"auto":    true,
		"reapi":   true,
		"openapi": true,
	}
	if !validBackends[strings.ToLower(cfg.Backend)] {
		return fmt.Errorf("invalid backend: %s (must be auto, reapi, or openapi)", cfg.Backend)
	}

	validFormats := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validFormats[strings.ToLower(cfg.OutputFormat)] {
		return fmt.Errorf("invalid output format: %s (must be table or json)", cfg.OutputFormat)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
