// Package store provides functionality for loading user-supplied rule
// files: category keyword tables and bank profile overrides.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"bankstmt/pdf2ledger/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// RuleStore resolves and loads the YAML rule files that override the
// embedded defaults. Missing files are not an error; the caller falls
// back to the embedded tables.
type RuleStore struct {
	CategoriesFile string
	ProfilesFile   string
}

// NewRuleStore creates a store for the given override file paths.
// Either path may be empty, in which case the standard file names are
// searched in the usual locations.
func NewRuleStore(categoriesFile, profilesFile string) *RuleStore {
	return &RuleStore{
		CategoriesFile: categoriesFile,
		ProfilesFile:   profilesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/pdf2ledger/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "pdf2ledger", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the ordered category rule table from YAML.
// Returns nil (not an error) when no override file exists.
func (s *RuleStore) LoadCategories() ([]models.CategoryRule, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Categories file not found: %s", filename)
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Preferred shape: "categories: [...]"
	var cfg models.CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err == nil && len(cfg.Categories) > 0 {
		log.Debugf("Loaded %d category rules from %s", len(cfg.Categories), filePath)
		return cfg.Categories, nil
	}

	// Fallback: a bare rule list without the top-level key
	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	log.Debugf("Loaded %d category rules from %s (bare list)", len(rules), filePath)
	return rules, nil
}

// ProfileOverride is one user-supplied bank profile in profiles.yaml.
// Overrides are prepended to the embedded registry, so they win ties.
type ProfileOverride struct {
	ID           string   `yaml:"id"`
	Label        string   `yaml:"label"`
	Kind         string   `yaml:"kind"` // "bank-account" or "credit-card"
	Extractor    string   `yaml:"extractor"`
	Strong       []string `yaml:"strong"`
	Weak         []string `yaml:"weak"`
	IFSCPrefixes []string `yaml:"ifsc_prefixes"`
}

// profilesConfig is the top-level YAML shape of a profiles file.
type profilesConfig struct {
	Profiles []ProfileOverride `yaml:"profiles"`
}

// LoadProfiles loads bank profile overrides from YAML.
// Returns nil (not an error) when no override file exists.
func (s *RuleStore) LoadProfiles() ([]ProfileOverride, error) {
	filename := s.ProfilesFile
	if filename == "" {
		filename = "profiles.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Profiles file not found: %s", filename)
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving profiles file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading profiles file: %w", err)
	}

	var cfg profilesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing profiles file: %w", err)
	}

	log.Debugf("Loaded %d profile overrides from %s", len(cfg.Profiles), filePath)
	return cfg.Profiles, nil
}
