// Package catalog loads the flag data bundle and serves its normalized views.
//
// Bundle layout (any fs.FS, or the copy embedded in the binary):
// - flags.json (or flags.yaml / flags.yml): the list of flag records
// - translations_<lang>.json (or .yaml / .yml): country names for one language
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"Flagger/internal/flag"
	"Flagger/internal/translation"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

//go:embed data/*.json
var bundle embed.FS

// ErrNotFound is returned by Find when no flag matches
var ErrNotFound = errors.New("flag not found")

// extensions are tried in order when locating a bundle file
var extensions = []string{".json", ".yaml", ".yml"}

// Catalog holds one language's view of the flag bundle
type Catalog struct {
	lang       language.Tag
	names      *translation.Table
	views      []flag.ViewRecord
	unresolved []string
}

// Default loads the bundle embedded in the binary
func Default(lang string) (*Catalog, error) {
	sub, err := fs.Sub(bundle, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded bundle: %w", err)
	}
	return Load(sub, lang)
}

// LoadDir loads a bundle from a directory on disk
func LoadDir(dir, lang string) (*Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to open data dir %s: %w", dir, err)
	}
	return Load(os.DirFS(dir), lang)
}

// Load reads flags and translations from fsys and normalizes every record
func Load(fsys fs.FS, lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	base, _ := tag.Base()

	records, err := loadRecords(fsys)
	if err != nil {
		return nil, err
	}

	names, err := loadTranslations(fsys, base.String())
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		lang:  tag,
		names: names,
		views: flag.NormalizeAll(records, names),
	}
	c.sortViews()

	for _, v := range c.views {
		if !v.Country.Resolved() {
			c.unresolved = append(c.unresolved, v.CountryKey)
		}
	}

	log.WithFields(log.Fields{
		"language":     tag.String(),
		"flags":        len(c.views),
		"translations": names.Len(),
	}).Info("Flag catalog loaded")

	if len(c.unresolved) > 0 {
		log.WithFields(log.Fields{
			"count": len(c.unresolved),
			"keys":  strings.Join(c.unresolved, ","),
		}).Debug("Some country keys have no translation, showing raw keys")
	}

	return c, nil
}

// Views returns the normalized flags sorted by display name
func (c *Catalog) Views() []flag.ViewRecord {
	out := make([]flag.ViewRecord, len(c.views))
	copy(out, c.views)
	return out
}

// Find returns the flag with the given ISO code (case-insensitive) or exact country key
func (c *Catalog) Find(isoOrKey string) (flag.ViewRecord, error) {
	q := strings.TrimSpace(isoOrKey)
	for _, v := range c.views {
		if v.CountryKey == q || strings.EqualFold(v.Country.ISOCode, q) {
			return v, nil
		}
	}
	return flag.ViewRecord{}, fmt.Errorf("%w: %s", ErrNotFound, isoOrKey)
}

// Unresolved lists country keys whose display name fell back to the raw key
func (c *Catalog) Unresolved() []string {
	out := make([]string, len(c.unresolved))
	copy(out, c.unresolved)
	return out
}

// Language returns the catalog's language tag
func (c *Catalog) Language() language.Tag {
	return c.lang
}

// Names returns the translation table the views were resolved with
func (c *Catalog) Names() *translation.Table {
	return c.names
}

// sortViews orders views by display name using the language's collation.
// Equal names fall back to the country key so the order is stable.
func (c *Catalog) sortViews() {
	col := collate.New(c.lang, collate.IgnoreCase)
	sort.SliceStable(c.views, func(i, j int) bool {
		if cmp := col.CompareString(c.views[i].Country.Name, c.views[j].Country.Name); cmp != 0 {
			return cmp < 0
		}
		return c.views[i].CountryKey < c.views[j].CountryKey
	})
}

// loadRecords decodes the flag list
func loadRecords(fsys fs.FS) ([]flag.Record, error) {
	name, err := locate(fsys, "flags")
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	var records []flag.Record
	switch path.Ext(name) {
	case ".json":
		if err := json.NewDecoder(f).Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		if err := yaml.NewDecoder(f).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}

	return records, nil
}

// loadTranslations decodes the table for one base language
func loadTranslations(fsys fs.FS, lang string) (*translation.Table, error) {
	name, err := locate(fsys, "translations_"+lang)
	if err != nil {
		return nil, err
	}

	format, err := translation.FormatFromPath(name)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	table, err := translation.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return table, nil
}

// locate finds the first existing file for stem among the supported extensions
func locate(fsys fs.FS, stem string) (string, error) {
	for _, ext := range extensions {
		name := stem + ext
		if _, err := fs.Stat(fsys, name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("bundle file %s not found (tried %s): %w", stem, strings.Join(extensions, ", "), fs.ErrNotExist)
}
