// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Processing struct {
		// TimeoutSeconds bounds the wall-clock time of one statement run.
		TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		// DetectionPages is how many leading pages detection may scan.
		DetectionPages int `mapstructure:"detection_pages" yaml:"detection_pages"`
	} `mapstructure:"processing" yaml:"processing"`

	Data struct {
		// CategoriesFile overrides the embedded category rule table.
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
		// ProfilesFile overrides the embedded bank profile registry.
		ProfilesFile string `mapstructure:"profiles_file" yaml:"profiles_file"`
	} `mapstructure:"data" yaml:"data"`

	Export struct {
		Format         string `mapstructure:"format" yaml:"format"` // "xlsx" or "csv"
		CSVDelimiter   string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"export" yaml:"export"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// ProcessingTimeout returns the statement processing budget as a Duration.
func (c *Config) ProcessingTimeout() time.Duration {
	return time.Duration(c.Processing.TimeoutSeconds) * time.Second
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pdf2ledger")
	v.AddConfigPath(".pdf2ledger")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("PDF2LEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The Gemini key always comes from the unprefixed env variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("processing.timeout_seconds", 60)
	v.SetDefault("processing.detection_pages", 2)

	v.SetDefault("data.categories_file", "")
	v.SetDefault("data.profiles_file", "")

	v.SetDefault("export.format", "xlsx")
	v.SetDefault("export.csv_delimiter", ",")
	v.SetDefault("export.include_headers", true)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Processing.TimeoutSeconds < 1 || config.Processing.TimeoutSeconds > 600 {
		return fmt.Errorf("processing.timeout_seconds must be between 1 and 600, got: %d", config.Processing.TimeoutSeconds)
	}

	if config.Processing.DetectionPages < 1 || config.Processing.DetectionPages > 10 {
		return fmt.Errorf("processing.detection_pages must be between 1 and 10, got: %d", config.Processing.DetectionPages)
	}

	if config.Export.Format != "xlsx" && config.Export.Format != "csv" {
		return fmt.Errorf("invalid export format: %s (must be 'xlsx' or 'csv')", config.Export.Format)
	}

	if len(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
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
