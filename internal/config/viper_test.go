package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 60, config.Processing.TimeoutSeconds)
	assert.Equal(t, 2, config.Processing.DetectionPages)
	assert.Equal(t, "", config.Data.CategoriesFile)
	assert.Equal(t, "", config.Data.ProfilesFile)
	assert.Equal(t, "xlsx", config.Export.Format)
	assert.Equal(t, ",", config.Export.CSVDelimiter)
	assert.True(t, config.Export.IncludeHeaders)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"PDF2LEDGER_LOG_LEVEL":                  "debug",
		"PDF2LEDGER_LOG_FORMAT":                 "json",
		"PDF2LEDGER_PROCESSING_TIMEOUT_SECONDS": "120",
		"PDF2LEDGER_EXPORT_FORMAT":              "csv",
		"PDF2LEDGER_AI_ENABLED":                 "true",
		"PDF2LEDGER_AI_MODEL":                   "gemini-1.5-pro",
		"GEMINI_API_KEY":                        "test-api-key",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 120, config.Processing.TimeoutSeconds)
	assert.Equal(t, "csv", config.Export.Format)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
  format: "json"
processing:
  timeout_seconds: 90
export:
  format: "csv"
  csv_delimiter: "|"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 90, config.Processing.TimeoutSeconds)
	assert.Equal(t, "csv", config.Export.Format)
	assert.Equal(t, "|", config.Export.CSVDelimiter)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
processing:
  timeout_seconds: 90
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("PDF2LEDGER_LOG_LEVEL", "error")
	t.Setenv("GEMINI_API_KEY", "env-api-key")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Env vars override the config file
	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, 90, config.Processing.TimeoutSeconds)
	assert.Equal(t, "env-api-key", config.AI.APIKey)
}

func TestProcessingTimeout(t *testing.T) {
	var config Config
	config.Processing.TimeoutSeconds = 45
	assert.Equal(t, 45*time.Second, config.ProcessingTimeout())
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "invalid"
			},
			expectError: "invalid log format",
		},
		{
			name: "timeout out of range",
			modifyConfig: func(c *Config) {
				c.Processing.TimeoutSeconds = 0
			},
			expectError: "processing.timeout_seconds must be between 1 and 600",
		},
		{
			name: "invalid export format",
			modifyConfig: func(c *Config) {
				c.Export.Format = "pdf"
			},
			expectError: "invalid export format",
		},
		{
			name: "invalid CSV delimiter",
			modifyConfig: func(c *Config) {
				c.Export.CSVDelimiter = "abc"
			},
			expectError: "CSV delimiter must be a single character",
		},
		{
			name: "AI enabled without API key",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = ""
			},
			expectError: "GEMINI_API_KEY required when AI is enabled",
		},
		{
			name: "invalid AI timeout",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				c.AI.TimeoutSeconds = 0
			},
			expectError: "ai.timeout_seconds must be between 1 and 300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validBaseConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := validBaseConfig()
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)
	assert.NotNil(t, logger)
}

// validBaseConfig returns a config that passes validation, for mutation tests.
func validBaseConfig() *Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Processing.TimeoutSeconds = 60
	c.Processing.DetectionPages = 2
	c.Export.Format = "xlsx"
	c.Export.CSVDelimiter = ","
	c.AI.TimeoutSeconds = 30
	return &c
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"PDF2LEDGER_LOG_LEVEL",
		"PDF2LEDGER_LOG_FORMAT",
		"PDF2LEDGER_PROCESSING_TIMEOUT_SECONDS",
		"PDF2LEDGER_PROCESSING_DETECTION_PAGES",
		"PDF2LEDGER_DATA_CATEGORIES_FILE",
		"PDF2LEDGER_DATA_PROFILES_FILE",
		"PDF2LEDGER_EXPORT_FORMAT",
		"PDF2LEDGER_EXPORT_CSV_DELIMITER",
		"PDF2LEDGER_AI_ENABLED",
		"PDF2LEDGER_AI_MODEL",
		"PDF2LEDGER_AI_TIMEOUT_SECONDS",
		"GEMINI_API_KEY",
	}

	for _, envVar := range envVars {
		if err := os.Unsetenv(envVar); err != nil {
			fmt.Printf("Warning: failed to unset environment variable %s: %v\n", envVar, err)
		}
	}
}
