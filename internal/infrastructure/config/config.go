// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compliance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables
//   - No config files checked into version control
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// Engine contains pricing-engine defaults
	Engine EngineConfig `mapstructure:"engine"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`

	// Debug mode flag
	Debug bool `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxRequestSize is the maximum allowed request body size
	MaxRequestSize int64 `mapstructure:"max_request_size"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format"`
}

// EngineConfig contains the pricing engine's boundary defaults. The
// engine itself never hard-codes these; they are injected here so a shop
// can change its house style without touching calculation code.
type EngineConfig struct {
	// DefaultCurrency is the currency used when no price rule resolves.
	DefaultCurrency string `mapstructure:"default_currency"`

	// DefaultBleedMM applied when a request omits bleed.
	DefaultBleedMM float64 `mapstructure:"default_bleed_mm"`

	// DefaultGutterMM applied when a request omits gutter.
	DefaultGutterMM float64 `mapstructure:"default_gutter_mm"`

	// DefaultMarginMM (gripper) applied when a request omits margin.
	DefaultMarginMM float64 `mapstructure:"default_margin_mm"`

	// SignatureMultiple for booklet page rounding.
	SignatureMultiple int `mapstructure:"signature_multiple"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/printy")

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		// If the error is not "file not found", return the error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use env vars and defaults
	}

	// Read environment variables
	v.SetEnvPrefix("PRINTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "printy")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", false)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 10<<20)            // 10MB
	v.SetDefault("server.cors_allowed_origins", []string{"*"}) // Allow all origins by default

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Engine defaults: the house imposition style. Bleed 3 / gutter 5 /
	// gripper 10 are the shop's standard litho setup.
	v.SetDefault("engine.default_currency", "KES")
	v.SetDefault("engine.default_bleed_mm", 3.0)
	v.SetDefault("engine.default_gutter_mm", 5.0)
	v.SetDefault("engine.default_margin_mm", 10.0)
	v.SetDefault("engine.signature_multiple", 4)
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) {
	// These are explicitly bound for clarity
	v.BindEnv("app.environment", "PRINTY_ENVIRONMENT")
	v.BindEnv("server.port", "PORT") // Common convention
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
//
// Returns:
//   - *Config: The loaded configuration
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// GetEnv gets an environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set
//
// Returns:
//   - string: The environment variable value or default
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set or invalid
//
// Returns:
//   - int: The environment variable value or default
func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set or invalid
//
// Returns:
//   - bool: The environment variable value or default
func GetEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
