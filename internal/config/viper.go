package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	API struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		Token          string `mapstructure:"token" yaml:"-"` // Never serialize the token
		ClientID       string `mapstructure:"client_id" yaml:"client_id"`
		DefaultOrg     string `mapstructure:"default_org" yaml:"default_org"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"api" yaml:"api"`

	Store struct {
		VendorsFile string `mapstructure:"vendors_file" yaml:"vendors_file"`
	} `mapstructure:"store" yaml:"store"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fish-cli")
	v.AddConfigPath(".fish-cli")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FISH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
		// Config file not found is fine, defaults and env vars apply
	}

	// Credentials keep their historical unprefixed names from
	// credentials.env: BASE_URL, API_TOKEN, CLIENT_ID.
	bindings := map[string][]string{
		"api.base_url":  {"FISH_BASE_URL", "BASE_URL"},
		"api.token":     {"FISH_API_TOKEN", "API_TOKEN"},
		"api.client_id": {"FISH_CLIENT_ID", "CLIENT_ID"},
	}
	for key, envVars := range bindings {
		args := append([]string{key}, envVars...)
		if err := v.BindEnv(args...); err != nil {
			Logger.Warnf("Failed to bind %s: %v", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// ValidateCredentials checks that the settings required for remote API
// calls are present. Commands that never touch the network skip this.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.API.BaseURL == "" {
		missing = append(missing, "BASE_URL")
	}
	if c.API.Token == "" {
		missing = append(missing, "API_TOKEN")
	}
	if c.API.ClientID == "" {
		missing = append(missing, "CLIENT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s (set them in credentials.env or the environment)",
			strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("api.base_url", "")
	v.SetDefault("api.default_org", "1")
	v.SetDefault("api.timeout_seconds", 30)

	v.SetDefault("store.vendors_file", "data/vendors.yaml")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.API.TimeoutSeconds < 1 || config.API.TimeoutSeconds > 300 {
		return fmt.Errorf("api.timeout_seconds must be between 1 and 300, got: %d", config.API.TimeoutSeconds)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
