// Package config defines all configuration structures and default values
// for Flagger.
//
// Configuration Philosophy:
// - Sensible defaults allow running with only config_general.json
// - The flag bundle ships inside the binary; data_dir swaps it for files on disk
// - Display and filter settings live in their own optional files
package config

import "Flagger/internal/filter"

// Config represents the complete application configuration
type Config struct {
	// General configuration
	LogLevel    string      `json:"log_level"`
	LogRotation LogRotation `json:"log_rotation"`
	DataDir     string      `json:"data_dir"` // Directory holding flags.json and translations_<lang>.json (empty = embedded bundle)
	Language    string      `json:"language"` // BCP 47 tag selecting the translation table, e.g. "en" or "de-CH"

	// Format configuration
	Format FormatConfig `json:"format"`

	// Filter configuration (nil = show every flag)
	Filter *filter.Criteria `json:"filter,omitempty"`
}

// LogRotation defines log rotation settings
type LogRotation struct {
	MaxSizeMB  int  `json:"max_size_mb"`  // Maximum size in MB before rotation
	MaxBackups int  `json:"max_backups"`  // Maximum number of old log files to keep
	MaxAgeDays int  `json:"max_age_days"` // Maximum number of days to retain log files
	Compress   bool `json:"compress"`     // Whether to compress old log files
}

// FormatConfig defines how flags should be displayed
type FormatConfig struct {
	ShowUnicodeFlags bool     `json:"show_unicode_flags"`
	ShowEmptyFields  bool     `json:"show_empty_fields"` // Show placeholder for missing fields
	EmptyFieldText   string   `json:"empty_field_text"`  // Placeholder text for missing fields (e.g. "N/A")
	FieldOrder       []string `json:"field_order"`       // Card field order
	MaxNameLength    int      `json:"max_name_length"`   // Name column width in text output
}

// GeneralLogRotation uses pointer fields for JSON parsing so that
// zero-values (0, false) can be distinguished from missing fields (nil).
type GeneralLogRotation struct {
	MaxSizeMB  *int  `json:"max_size_mb"`
	MaxBackups *int  `json:"max_backups"`
	MaxAgeDays *int  `json:"max_age_days"`
	Compress   *bool `json:"compress"`
}

// GeneralConfig represents the main configuration file structure
type GeneralConfig struct {
	LogLevel    string             `json:"log_level"`
	LogRotation GeneralLogRotation `json:"log_rotation"`
	DataDir     string             `json:"data_dir"`
	Language    string             `json:"language"`
}

// FileFormatConfig mirrors FormatConfig with pointers so omitted keys keep their defaults
type FileFormatConfig struct {
	ShowUnicodeFlags *bool    `json:"show_unicode_flags"`
	ShowEmptyFields  *bool    `json:"show_empty_fields"`
	EmptyFieldText   *string  `json:"empty_field_text"`
	FieldOrder       []string `json:"field_order"`
	MaxNameLength    *int     `json:"max_name_length"`
}

// KnownFields lists the field names accepted in field_order
var KnownFields = []string{
	"country",
	"continent",
	"zone",
	"colors",
	"text",
	"symbol",
	"badges",
	"image",
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "INFO",
		LogRotation: LogRotation{
			MaxSizeMB:  10,   // 10 MB per file
			MaxBackups: 5,    // Keep 5 old files
			MaxAgeDays: 7,    // Delete files older than 7 days
			Compress:   true, // Compress old files
		},
		DataDir:  "",
		Language: "en",
		Format: FormatConfig{
			ShowUnicodeFlags: true,
			ShowEmptyFields:  true,
			EmptyFieldText:   "N/A",
			FieldOrder: []string{
				"country",
				"continent",
				"zone",
				"colors",
				"text",
				"symbol",
				"badges",
				"image",
			},
			MaxNameLength: 32,
		},
	}
}
