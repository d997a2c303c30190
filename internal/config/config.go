// Package config provides credential loading and logging configuration.
// Credentials come from the environment, optionally seeded from a local
// credentials.env or .env file.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the global logger instance shared across the application.
	Logger = logrus.New()
)

// ConfigureLogging sets up logging from the LOG_LEVEL and LOG_FORMAT
// environment variables and returns the configured logger. The global
// logrus level is set as well so loggers created before the viper config
// is loaded respect it.
func ConfigureLogging() *logrus.Logger {
	logLevelStr := GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", logLevelStr)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	Logger.SetLevel(logLevel)

	if strings.ToLower(GetEnv("LOG_FORMAT", "text")) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}

// LoadEnv loads environment variables from a credentials.env or .env file
// if one exists. Values already present in the environment win.
func LoadEnv() {
	once.Do(func() {
		for _, envFile := range []string{"credentials.env", ".env"} {
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				continue
			}
			if err := godotenv.Load(envFile); err != nil {
				Logger.Warnf("Error loading %s: %v", envFile, err)
				continue
			}
			Logger.Debugf("Loaded environment variables from %s", envFile)
			return
		}
		Logger.Debug("No credentials.env or .env file found, using environment variables")
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
