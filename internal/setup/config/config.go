package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion of the config file.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	API        API        `koanf:"api"`
	Board      Board      `koanf:"board"`
	Tracker    Tracker    `koanf:"tracker"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Pretty-print logs for local development.
	LogDevelopment bool `koanf:"log_development"`
	// Log every executed query at debug level.
	QueryLogging bool `koanf:"query_logging"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"db_name"`
	// Maximum number of open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum number of idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle connection timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains key-value store configuration.
type Redis struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// API contains HTTP server configuration.
type API struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	// Read timeout in seconds.
	ReadTimeout int `koanf:"read_timeout"`
	// Write timeout in seconds.
	WriteTimeout int `koanf:"write_timeout"`
	// Shutdown grace period in seconds.
	ShutdownTimeout int `koanf:"shutdown_timeout"`
}

// Board contains job board feed configuration.
type Board struct {
	// Days a posting stays visible after creation.
	VisibleDays int `koanf:"visible_days"`
	// Listings returned per page.
	PageSize int `koanf:"page_size"`
	// 24h click count at which the applies signal shows.
	HotClickThreshold int `koanf:"hot_click_threshold"`
}

// Tracker contains application tracker configuration.
type Tracker struct {
	// Rows an anonymous owner may hold before the sign-in gate.
	FreeTierLimit int `koanf:"free_tier_limit"`
}

// LoadConfig loads the configuration from the first colony.toml found in
// the search paths, applies environment overrides, and validates the
// config version. Returns the config and the directory it was loaded from.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".colony",
		homeDir + "/.colony/config",
		"/etc/colony/config",
		"/app/config",
		"config",
		".",
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/colony.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: colony.toml", ErrConfigFileNotFound)
	}

	// Environment variables override file values, e.g.
	// COLONY_POSTGRESQL.PASSWORD or COLONY_API.PORT.
	err = k.Load(env.Provider("COLONY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "COLONY_"))
	}), nil)
	if err != nil {
		return nil, "", fmt.Errorf("error loading environment overrides: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := checkConfigVersion(config.Version, CurrentVersion); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

// checkConfigVersion validates the version of the config file.
func checkConfigVersion(version, current int) error {
	if version == 0 {
		return ErrConfigVersionMissing
	}

	if version != current {
		return fmt.Errorf("%w: config version %d, expected %d",
			ErrConfigVersionMismatch, version, current)
	}

	return nil
}
