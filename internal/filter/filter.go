// Package filter narrows the flag catalog down the way the quiz's
// "find a flag" screen does.
//
// Filter Logic:
//   - nil criteria → accept everything
//   - Include rules (whitelist): if set, the flag MUST match at least one value
//   - Exclude rules (blacklist): if matched, the flag is dropped
//   - Field groups are AND-combined; values within a group are OR-combined,
//     except include_colors where every listed color must be present
//   - Exclude is evaluated after include (exclude wins on conflict)
//   - A maybe selection never drops anything
package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"Flagger/internal/flag"
)

// ErrUnknownBadge is returned by Validate for a badge name the data does not carry
var ErrUnknownBadge = errors.New("unknown badge")

// Criteria describes which flags to keep
type Criteria struct {
	IncludeContinents []string `json:"include_continents,omitempty"`
	ExcludeContinents []string `json:"exclude_continents,omitempty"`
	IncludeZones      []string `json:"include_zones,omitempty"`
	ExcludeZones      []string `json:"exclude_zones,omitempty"`

	IncludeColors []string `json:"include_colors,omitempty"` // all must be present
	ExcludeColors []string `json:"exclude_colors,omitempty"` // none may be present

	Text   flag.Selection `json:"text"`
	Symbol flag.Selection `json:"symbol"`

	// Counts maps a badge name to yes (count > 0), no (count == 0) or maybe
	Counts map[string]flag.Selection `json:"counts,omitempty"`

	// Keyword is matched case-insensitively against display name and country key
	Keyword string `json:"keyword,omitempty"`
}

// Validate checks that every badge in Counts exists
func (c *Criteria) Validate() error {
	if c == nil {
		return nil
	}

	known := make(map[string]struct{})
	for _, name := range flag.BadgeNames() {
		known[name] = struct{}{}
	}

	var unknown []string
	for name := range c.Counts {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s (must be one of %s)", ErrUnknownBadge,
			strings.Join(unknown, ", "), strings.Join(flag.BadgeNames(), ", "))
	}
	return nil
}

// Empty reports whether the criteria would accept every flag
func (c *Criteria) Empty() bool {
	if c == nil {
		return true
	}
	if len(c.IncludeContinents)+len(c.ExcludeContinents)+len(c.IncludeZones)+len(c.ExcludeZones) > 0 {
		return false
	}
	if len(c.IncludeColors)+len(c.ExcludeColors) > 0 || strings.TrimSpace(c.Keyword) != "" {
		return false
	}
	if c.Text.Resolved() || c.Symbol.Resolved() {
		return false
	}
	for _, sel := range c.Counts {
		if sel.Resolved() {
			return false
		}
	}
	return true
}

// Matches returns true if the flag passes the criteria.
// Returns true when criteria is nil (no filtering configured).
func Matches(criteria *Criteria, view flag.ViewRecord) bool {
	if criteria == nil {
		return true
	}

	if !matchesField(criteria.IncludeContinents, criteria.ExcludeContinents, view.Continent) {
		return false
	}

	if !matchesField(criteria.IncludeZones, criteria.ExcludeZones, view.Zone) {
		return false
	}

	if !matchesColors(criteria.IncludeColors, criteria.ExcludeColors, view.Colors) {
		return false
	}

	if !criteria.Text.Allows(view.Text == flag.SelectionYes) {
		return false
	}
	if !criteria.Symbol.Allows(view.Symbol == flag.SelectionYes) {
		return false
	}

	for name, sel := range criteria.Counts {
		count, ok := view.Count(name)
		if !ok {
			// Validate rejects these; an unknown badge is never present
			count = 0
		}
		if !sel.Allows(count > 0) {
			return false
		}
	}

	return matchesKeyword(criteria.Keyword, view)
}

// Apply returns the flags that pass the criteria, keeping their order
func Apply(criteria *Criteria, views []flag.ViewRecord) []flag.ViewRecord {
	out := make([]flag.ViewRecord, 0, len(views))
	for _, v := range views {
		if Matches(criteria, v) {
			out = append(out, v)
		}
	}
	return out
}

// matchesField checks a single-value field against include/exclude lists (case-insensitive)
func matchesField(include, exclude []string, value string) bool {
	// Include check: value must be in the include list
	if len(include) > 0 {
		found := false
		for _, inc := range include {
			if strings.EqualFold(inc, value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Exclude check: value must NOT be in the exclude list
	for _, exc := range exclude {
		if strings.EqualFold(exc, value) {
			return false
		}
	}

	return true
}

// matchesColors requires every included color and rejects any excluded one
func matchesColors(include, exclude []string, colors flag.ColorSet) bool {
	for _, inc := range include {
		if !hasColor(colors, inc) {
			return false
		}
	}
	for _, exc := range exclude {
		if hasColor(colors, exc) {
			return false
		}
	}
	return true
}

func hasColor(colors flag.ColorSet, want string) bool {
	if colors.Has(want) {
		return true
	}
	for c := range colors {
		if strings.EqualFold(c, want) {
			return true
		}
	}
	return false
}

// matchesKeyword does a case-insensitive substring match on name and key
func matchesKeyword(keyword string, view flag.ViewRecord) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	return strings.Contains(strings.ToLower(view.Country.Name), kw) ||
		strings.Contains(strings.ToLower(view.CountryKey), kw)
}
