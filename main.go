// Package main implements Flagger, a command line companion for a
// flag-learning app. It loads the flag bundle, resolves every flag's country
// name and ISO code, and prints the (optionally filtered) flags as a text
// table, JSON view records, or Discord embed payloads.
//
// The components are:
// - Translation tables and country-key resolution
// - Flag record normalization into view records
// - Tri-state (yes/no/maybe) filtering
// - Rendering and configurable logging with rotation
//
// Configuration is managed through JSON files in the config directory.

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"Flagger/internal/catalog"
	"Flagger/internal/config"
	"Flagger/internal/country"
	"Flagger/internal/discord"
	"Flagger/internal/filter"
	flagview "Flagger/internal/flag"
	"Flagger/internal/logger"
	"Flagger/internal/textutil"

	log "github.com/sirupsen/logrus"
)

// Application version
const Version = "1.0.0"

// Output formats accepted by -output
const (
	OutputText    = "text"
	OutputJSON    = "json"
	OutputDiscord = "discord"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config-dir", "./configs", "Directory containing configuration files")
	dataDir := flag.String("data-dir", "", "Directory holding the flag bundle (overrides config and DATA_DIR env)")
	logDir := flag.String("log-dir", "./logs", "Directory for the rotating log file (empty disables file logging)")
	version := flag.Bool("version", false, "Show version information")
	checkConfig := flag.Bool("check-config", false, "Validate configuration and exit")
	output := flag.String("output", OutputText, "Output format: text, json or discord")
	countryQuery := flag.String("country", "", "Show a single flag by ISO code or country key")
	flag.Parse()

	// Show version and exit if requested
	if *version {
		fmt.Printf("Flagger v%s\n", Version)
		os.Exit(0)
	}

	// Validate config directory exists
	if _, err := os.Stat(*configDir); os.IsNotExist(err) {
		fmt.Printf("Error: Config directory '%s' does not exist\n", *configDir)
		os.Exit(1)
	}

	switch *output {
	case OutputText, OutputJSON, OutputDiscord:
	default:
		fmt.Printf("Error: unknown output format '%s' (must be text, json or discord)\n", *output)
		os.Exit(1)
	}

	// Check-config mode: validate and exit
	if *checkConfig {
		_, err := config.LoadConfig(*configDir)
		if err != nil {
			fmt.Printf("Configuration INVALID: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Configuration OK")
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Override DataDir: flag > env > config > embedded bundle
	resolved, err := resolveDataDir(*dataDir, cfg.DataDir)
	if err != nil {
		fmt.Printf("Error resolving data-dir path: %v\n", err)
		os.Exit(1)
	}
	cfg.DataDir = resolved

	// Setup logging
	logFile := ""
	if *logDir != "" {
		if err := os.MkdirAll(*logDir, 0755); err != nil {
			fmt.Printf("Error creating logs directory: %v\n", err)
			os.Exit(1)
		}
		logFile = filepath.Join(*logDir, "flagger.log")
	}

	rotationConfig := logger.LogRotationConfig{
		MaxSizeMB:  cfg.LogRotation.MaxSizeMB,
		MaxBackups: cfg.LogRotation.MaxBackups,
		MaxAgeDays: cfg.LogRotation.MaxAgeDays,
		Compress:   cfg.LogRotation.Compress,
	}
	if err := logger.NewLogger(cfg.LogLevel, logFile, rotationConfig); err != nil {
		fmt.Printf("Error setting up logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close logger: %v\n", err)
		}
	}()

	log.WithField("version", Version).Debug("Starting Flagger")

	if err := run(cfg, *output, *countryQuery, os.Stdout); err != nil {
		log.WithError(err).Error("Flagger failed")
		logger.Close()
		os.Exit(1)
	}
}

// run loads the catalog, applies the filter or country lookup and renders the result
func run(cfg *config.Config, output, countryQuery string, w io.Writer) error {
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	var views []flagview.ViewRecord
	if countryQuery != "" {
		view, err := cat.Find(countryQuery)
		if err != nil {
			return err
		}
		views = []flagview.ViewRecord{view}
	} else {
		views = filter.Apply(cfg.Filter, cat.Views())
		log.WithFields(log.Fields{
			"total":    len(cat.Views()),
			"matching": len(views),
			"filtered": !cfg.Filter.Empty(),
		}).Info("Flags selected")
	}

	return render(w, output, views, &cfg.Format)
}

// openCatalog loads the bundle from DataDir, or the embedded one when unset
func openCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.DataDir == "" {
		return catalog.Default(cfg.Language)
	}
	log.WithField("data_dir", cfg.DataDir).Debug("Loading flag bundle from disk")
	return catalog.LoadDir(cfg.DataDir, cfg.Language)
}

// render writes views in the requested output format
func render(w io.Writer, output string, views []flagview.ViewRecord, format *config.FormatConfig) error {
	switch output {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case OutputDiscord:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(discord.WebhookPayloads(views, format))
	case OutputText:
		return renderText(w, views, format)
	default:
		return errors.New("unknown output format: " + output)
	}
}

// renderText prints one line per flag
func renderText(w io.Writer, views []flagview.ViewRecord, format *config.FormatConfig) error {
	for _, v := range views {
		name := textutil.Column(country.FormatDisplay(v.Country, format.ShowUnicodeFlags), format.MaxNameLength)

		colors := strings.Join(v.Colors.Sorted(), ",")
		if colors == "" && format.ShowEmptyFields {
			colors = format.EmptyFieldText
		}

		line := fmt.Sprintf("%s  %s  %s  text=%-5s symbol=%-5s %s\n",
			textutil.Column(v.Country.ISOCode, 4),
			name,
			textutil.Column(v.Continent, 10),
			v.Text, v.Symbol,
			colors,
		)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// resolveDataDir determines the final DataDir value using the priority:
// flag > DATA_DIR env > config value.
// All non-empty paths are resolved to absolute paths.
func resolveDataDir(flagVal, configVal string) (string, error) {
	if flagVal != "" {
		return filepath.Abs(flagVal)
	}
	if envDir := os.Getenv("DATA_DIR"); envDir != "" {
		return filepath.Abs(envDir)
	}
	if configVal != "" {
		return filepath.Abs(configVal)
	}
	return "", nil
}
