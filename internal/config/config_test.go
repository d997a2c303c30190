package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogging(t *testing.T) {
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		logger := ConfigureLogging()
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	})

	t.Run("Level and format from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		logger := ConfigureLogging()
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
		// Global level follows so early loggers respect it too.
		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	})

	t.Run("Invalid level falls back to info", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "noisy")
		logger := ConfigureLogging()
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FISH_CLI_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("FISH_CLI_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FISH_CLI_TEST_ABSENT", "fallback"))
}
