// Package flag decodes flag description records and normalizes them into the
// view records the app displays.
//
// Normalization never fails: a malformed country key or a missing translation
// falls back to the raw key instead of returning an error.
package flag

// Badges are tallies of the design elements on a flag
type Badges struct {
	Bars     int `json:"bars"`
	Stripes  int `json:"stripes"`
	Circles  int `json:"circles"`
	Crosses  int `json:"crosses"`
	Saltires int `json:"saltires"`
	Quarters int `json:"quarters"`
	Sunstars int `json:"sunstars"`
	Crescent int `json:"crescent"`
	Triangle int `json:"triangle"`
}

// badgeNames is the canonical badge order used for display and lookup
var badgeNames = []string{
	"bars",
	"stripes",
	"circles",
	"crosses",
	"saltires",
	"quarters",
	"sunstars",
	"crescent",
	"triangle",
}

// BadgeNames returns the badge names in display order
func BadgeNames() []string {
	out := make([]string, len(badgeNames))
	copy(out, badgeNames)
	return out
}

// Count returns the tally for a badge name
func (b Badges) Count(name string) (int, bool) {
	switch name {
	case "bars":
		return b.Bars, true
	case "stripes":
		return b.Stripes, true
	case "circles":
		return b.Circles, true
	case "crosses":
		return b.Crosses, true
	case "saltires":
		return b.Saltires, true
	case "quarters":
		return b.Quarters, true
	case "sunstars":
		return b.Sunstars, true
	case "crescent":
		return b.Crescent, true
	case "triangle":
		return b.Triangle, true
	default:
		return 0, false
	}
}

// Record is one flag as it appears in the bundled data
type Record struct {
	Country   string   `json:"country" yaml:"country"` // Dotted key, e.g. "europe.fr"
	Continent string   `json:"continent" yaml:"continent"`
	Zone      string   `json:"zone" yaml:"zone"`
	Colors    []string `json:"colors" yaml:"colors"`
	Text      bool     `json:"text" yaml:"text"`
	Symbol    bool     `json:"symbol" yaml:"symbol"`
	ImageName string   `json:"imageName" yaml:"imageName"`

	Badges `yaml:",inline"`
}
