package flag

import (
	"strings"

	"Flagger/internal/country"
)

// ViewRecord is a flag prepared for display
type ViewRecord struct {
	Country    country.Country `json:"country"`
	CountryKey string          `json:"country_key"`
	Continent  string          `json:"continent"`
	Zone       string          `json:"zone"`
	Colors     ColorSet        `json:"colors"`
	Text       Selection       `json:"text"`
	Symbol     Selection       `json:"symbol"`
	ImageName  string          `json:"image_name"`

	Badges
}

// Normalize maps a decoded record to its view record.
// names may be nil or lack the record's code; the raw key is used then.
// Text and Symbol are always yes or no, never maybe.
func Normalize(r Record, names country.NameLookup) ViewRecord {
	return ViewRecord{
		Country:    country.Resolve(r.Country, names),
		CountryKey: r.Country,
		Continent:  r.Continent,
		Zone:       r.Zone,
		Colors:     NewColorSet(r.Colors...),
		Text:       BoolSelection(r.Text),
		Symbol:     BoolSelection(r.Symbol),
		ImageName:  strings.ToLower(r.ImageName),
		Badges:     r.Badges,
	}
}

// NormalizeAll normalizes records in order
func NormalizeAll(records []Record, names country.NameLookup) []ViewRecord {
	views := make([]ViewRecord, 0, len(records))
	for _, r := range records {
		views = append(views, Normalize(r, names))
	}
	return views
}
