// Package translation holds the static country-name tables the flag data is
// displayed with. Tables are keyed by ISO 3166-1 alpha-2 code and are never
// mutated after construction, so a single table can be shared freely.
package translation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when a table file has an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported translation format")

// Format identifies the encoding of a translation file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Entry is a single row of a translation table
type Entry struct {
	ID     int    `json:"id" yaml:"id"`         // ISO 3166-1 numeric code
	Name   string `json:"name" yaml:"name"`     // Display name in the table's language
	Alpha2 string `json:"alpha2" yaml:"alpha2"` // e.g. "fr"
	Alpha3 string `json:"alpha3" yaml:"alpha3"` // e.g. "fra"
}

// Table is a read-only lookup from alpha-2 code to entry.
// The zero value is an empty table.
type Table struct {
	byAlpha2 map[string]Entry
}

// NewTable builds a table from entries. When two entries share an alpha-2
// code the first one wins.
func NewTable(entries []Entry) *Table {
	t := &Table{byAlpha2: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		code := strings.ToLower(strings.TrimSpace(e.Alpha2))
		if code == "" {
			continue
		}
		if _, exists := t.byAlpha2[code]; exists {
			continue
		}
		t.byAlpha2[code] = e
	}
	return t
}

// Lookup returns the entry for an alpha-2 code (case-insensitive)
func (t *Table) Lookup(alpha2 string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.byAlpha2[strings.ToLower(alpha2)]
	return e, ok
}

// Len returns the number of distinct codes in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byAlpha2)
}

// FormatFromPath picks the decoder for a file from its extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Decode reads a list of entries from r and builds a table
func Decode(r io.Reader, format Format) (*Table, error) {
	var entries []Entry

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&entries); err != nil {
			return nil, fmt.Errorf("failed to decode json translations: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml translations: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return NewTable(entries), nil
}

// LoadFile reads a translation table from disk
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation file %s: %w", path, err)
	}
	defer f.Close()

	table, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("translation file %s: %w", path, err)
	}
	return table, nil
}
