// Package config provides configuration management for Flagger
// with validation, defaults, and multi-file JSON configuration support.
//
// Configuration Structure:
// - config_general.json: Logging, data directory, language
// - config_format.json: Card and table display options
// - config_filter.json: Which flags to show
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Flagger/internal/filter"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// LoadConfig loads and validates all configuration files from the specified directory
//
// Loading strategy:
// 1. Start with defaults from DefaultConfig()
// 2. Override with values from config_general.json (required)
// 3. Merge optional config_format.json and config_filter.json
// 4. Validate all settings
func LoadConfig(configDir string) (*Config, error) {
	// Start with default configuration
	cfg := DefaultConfig()

	// Load general configuration
	if err := loadGeneralConfig(cfg, configDir); err != nil {
		return nil, fmt.Errorf("failed to load general config: %w", err)
	}

	// Load format configuration
	if err := loadFormatConfig(cfg, configDir); err != nil {
		return nil, fmt.Errorf("failed to load format config: %w", err)
	}

	// Load filter configuration
	if err := loadFilterConfig(cfg, configDir); err != nil {
		return nil, fmt.Errorf("failed to load filter config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration loaded successfully")
	return cfg, nil
}

// loadGeneralConfig loads the main configuration file
func loadGeneralConfig(cfg *Config, configDir string) error {
	configPath := filepath.Join(configDir, "config_general.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var generalCfg GeneralConfig
	if err := json.Unmarshal(data, &generalCfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if generalCfg.LogLevel != "" {
		cfg.LogLevel = generalCfg.LogLevel
	}
	if generalCfg.Language != "" {
		cfg.Language = generalCfg.Language
	}

	// Relative data dirs are resolved against the config directory
	if generalCfg.DataDir != "" {
		dataDir := generalCfg.DataDir
		if !filepath.IsAbs(dataDir) {
			dataDir = filepath.Join(configDir, dataDir)
		}
		cfg.DataDir = dataDir
	}

	// Apply log rotation settings; nil means "keep the default"
	if v := generalCfg.LogRotation.MaxSizeMB; v != nil {
		cfg.LogRotation.MaxSizeMB = *v
	}
	if v := generalCfg.LogRotation.MaxBackups; v != nil {
		cfg.LogRotation.MaxBackups = *v
	}
	if v := generalCfg.LogRotation.MaxAgeDays; v != nil {
		cfg.LogRotation.MaxAgeDays = *v
	}
	if v := generalCfg.LogRotation.Compress; v != nil {
		cfg.LogRotation.Compress = *v
	}

	return nil
}

// loadFormatConfig loads the display configuration
func loadFormatConfig(cfg *Config, configDir string) error {
	configPath := filepath.Join(configDir, "config_format.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Format config is optional, log and continue
		log.WithField("path", configPath).Debug("Format config file not found, using defaults")
		return nil
	}

	var formatCfg FileFormatConfig
	if err := json.Unmarshal(data, &formatCfg); err != nil {
		return fmt.Errorf("failed to parse format config file %s: %w", configPath, err)
	}

	if formatCfg.ShowUnicodeFlags != nil {
		cfg.Format.ShowUnicodeFlags = *formatCfg.ShowUnicodeFlags
	}
	if formatCfg.ShowEmptyFields != nil {
		cfg.Format.ShowEmptyFields = *formatCfg.ShowEmptyFields
	}
	if formatCfg.EmptyFieldText != nil {
		cfg.Format.EmptyFieldText = *formatCfg.EmptyFieldText
	}
	if formatCfg.FieldOrder != nil {
		cfg.Format.FieldOrder = formatCfg.FieldOrder
	}
	if formatCfg.MaxNameLength != nil {
		cfg.Format.MaxNameLength = *formatCfg.MaxNameLength
	}

	return nil
}

// loadFilterConfig loads the flag filter
func loadFilterConfig(cfg *Config, configDir string) error {
	configPath := filepath.Join(configDir, "config_filter.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Filter config is optional, every flag is shown without it
		log.WithField("path", configPath).Debug("Filter config file not found, showing all flags")
		return nil
	}

	var criteria filter.Criteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		return fmt.Errorf("failed to parse filter config file %s: %w", configPath, err)
	}
	cfg.Filter = &criteria

	return nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	// Validate log level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG", "INFO", "WARNING", "WARN", "ERROR":
		// Valid log levels
	default:
		return fmt.Errorf("invalid log level: %s (must be DEBUG, INFO, WARNING, or ERROR)", cfg.LogLevel)
	}

	// Validate log rotation settings
	if cfg.LogRotation.MaxSizeMB < 1 || cfg.LogRotation.MaxSizeMB > 1000 {
		return fmt.Errorf("invalid log rotation max_size_mb: %d (must be 1-1000)", cfg.LogRotation.MaxSizeMB)
	}
	if cfg.LogRotation.MaxBackups < 0 || cfg.LogRotation.MaxBackups > 50 {
		return fmt.Errorf("invalid log rotation max_backups: %d (must be 0-50)", cfg.LogRotation.MaxBackups)
	}
	if cfg.LogRotation.MaxAgeDays < 0 || cfg.LogRotation.MaxAgeDays > 365 {
		return fmt.Errorf("invalid log rotation max_age_days: %d (must be 0-365)", cfg.LogRotation.MaxAgeDays)
	}

	if cfg.LogRotation.MaxBackups == 0 && cfg.LogRotation.MaxAgeDays == 0 {
		log.Warn("Log rotation: max_backups=0 and max_age_days=0 keeps every old log file")
	}

	// Validate language tag
	if _, err := language.Parse(cfg.Language); err != nil {
		return fmt.Errorf("invalid language %q: %w", cfg.Language, err)
	}

	// Validate display settings
	if cfg.Format.MaxNameLength < 4 || cfg.Format.MaxNameLength > 200 {
		return fmt.Errorf("invalid max_name_length: %d (must be 4-200)", cfg.Format.MaxNameLength)
	}
	if err := validateFieldOrder(cfg.Format.FieldOrder); err != nil {
		return err
	}

	// Validate filter
	if err := cfg.Filter.Validate(); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	return nil
}

// validateFieldOrder rejects field names the renderers do not know
func validateFieldOrder(fields []string) error {
	for i, name := range fields {
		known := false
		for _, k := range KnownFields {
			if strings.EqualFold(name, k) {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("field_order[%d] unknown field %q (must be one of %s)", i, name, strings.Join(KnownFields, ", "))
		}
	}
	return nil
}
