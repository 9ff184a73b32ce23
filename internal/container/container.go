// Package container wires the application dependencies. It centralizes
// construction so that every component receives its collaborators
// through its constructor and nothing reaches for globals.
package container

import (
	"context"
	"fmt"

	"bankstmt/pdf2ledger/internal/categorize"
	"bankstmt/pdf2ledger/internal/config"
	"bankstmt/pdf2ledger/internal/export"
	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/normalize"
	"bankstmt/pdf2ledger/internal/pdfdecode"
	"bankstmt/pdf2ledger/internal/pipeline"
	"bankstmt/pdf2ledger/internal/profile"
	"bankstmt/pdf2ledger/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; everything is reached through getters.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       *store.RuleStore
	registry    *profile.Registry
	categorizer *categorize.Categorizer
	suggester   *categorize.GeminiSuggester
	pipeline    *pipeline.Pipeline
	csvWriter   *export.CSVWriter
	xlsxWriter  *export.XLSXWriter
}

// NewContainer creates and wires all application dependencies. Missing
// rule or profile files fall back to the built-in defaults; a failing
// AI client downgrades to rules-only categorization. Neither blocks
// startup.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	ruleStore := store.NewRuleStore(cfg.Data.CategoriesFile, cfg.Data.ProfilesFile)

	rules, err := ruleStore.LoadCategories()
	if err != nil {
		logger.WithError(err).Warn("failed to load category rules, using defaults")
		rules = nil
	}
	categorizer := categorize.New(rules, logger)

	overrides, err := ruleStore.LoadProfiles()
	if err != nil {
		logger.WithError(err).Warn("failed to load profile overrides, using built-ins")
		overrides = nil
	}
	registry := buildRegistry(overrides)

	var suggester *categorize.GeminiSuggester
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		suggester, err = categorize.NewGeminiSuggester(ctx, cfg.AI.APIKey, cfg.AI.Model,
			categorizer.Categories(), logger)
		if err != nil {
			logger.WithError(err).Warn("AI categorization unavailable, continuing with rules only")
			suggester = nil
		} else {
			logger.Info("AI categorization enabled")
		}
	}

	opts := []pipeline.Option{
		pipeline.WithTimeout(cfg.ProcessingTimeout()),
		pipeline.WithDetectionPages(cfg.Processing.DetectionPages),
	}
	if suggester != nil {
		opts = append(opts, pipeline.WithSuggester(suggester))
	}

	pipe := pipeline.New(
		pdfdecode.New(logger),
		registry,
		normalize.New(logger),
		categorizer,
		logger,
		opts...,
	)

	logger.Info("container initialized",
		logging.Field{Key: logging.FieldCount, Value: len(registry.Profiles())},
		logging.Field{Key: "ai_enabled", Value: suggester != nil})

	var delimiter rune
	if cfg.Export.CSVDelimiter != "" {
		delimiter = []rune(cfg.Export.CSVDelimiter)[0]
	}

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       ruleStore,
		registry:    registry,
		categorizer: categorizer,
		suggester:   suggester,
		pipeline:    pipe,
		csvWriter:   export.NewCSVWriter(logger, delimiter),
		xlsxWriter:  export.NewXLSXWriter(logger),
	}, nil
}

func buildRegistry(overrides []store.ProfileOverride) *profile.Registry {
	if len(overrides) == 0 {
		return profile.NewRegistry()
	}
	converted := make([]profile.Profile, 0, len(overrides))
	for _, o := range overrides {
		converted = append(converted, profile.Profile{
			ID:           o.ID,
			Label:        o.Label,
			Kind:         profile.Kind(o.Kind),
			Extractor:    o.Extractor,
			Strong:       o.Strong,
			Weak:         o.Weak,
			IFSCPrefixes: o.IFSCPrefixes,
		})
	}
	return profile.NewRegistryWithOverrides(converted)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetPipeline returns the wired statement pipeline.
func (c *Container) GetPipeline() *pipeline.Pipeline {
	return c.pipeline
}

// GetRegistry returns the bank profile registry.
func (c *Container) GetRegistry() *profile.Registry {
	return c.registry
}

// GetCategorizer returns the rule categorizer.
func (c *Container) GetCategorizer() *categorize.Categorizer {
	return c.categorizer
}

// GetStore returns the YAML rule store.
func (c *Container) GetStore() *store.RuleStore {
	return c.store
}

// GetCSVWriter returns the CSV exporter.
func (c *Container) GetCSVWriter() *export.CSVWriter {
	return c.csvWriter
}

// GetXLSXWriter returns the XLSX exporter.
func (c *Container) GetXLSXWriter() *export.XLSXWriter {
	return c.xlsxWriter
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.suggester != nil {
		if err := c.suggester.Close(); err != nil {
			return err
		}
	}
	c.logger.Info("container closed")
	return nil
}
