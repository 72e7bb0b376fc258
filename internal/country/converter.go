package country

import (
	"strings"

	"Flagger/internal/translation"
)

// globe is shown for codes that have no regional indicator pair
const globe = "🌐"

// Country is the resolved identity of a flag's country
type Country struct {
	Name    string `json:"name"`     // Display name (e.g., "France")
	Key     string `json:"key"`      // Original country key (e.g., "europe.fr")
	ISOCode string `json:"iso_code"` // Uppercased ISO-2 code (e.g., "FR")
}

// NameLookup finds a translation entry by alpha-2 code
type NameLookup interface {
	Lookup(alpha2 string) (translation.Entry, bool)
}

// Resolve converts a dotted country key to a Country.
// Keys without a dotted suffix resolve to themselves for every field.
// A code missing from names keeps the raw key as the display name.
func Resolve(key string, names NameLookup) Country {
	idx := strings.LastIndexByte(key, '.')
	if idx < 0 || idx == len(key)-1 {
		return Country{Name: key, Key: key, ISOCode: key}
	}

	code := strings.ToLower(key[idx+1:])

	name := key
	if names != nil {
		if entry, ok := names.Lookup(code); ok {
			name = entry.Name
		}
	}

	return Country{
		Name:    name,
		Key:     key,
		ISOCode: strings.ToUpper(code),
	}
}

// Emoji returns the Unicode flag for an ISO-2 code.
// Each flag is composed of two Regional Indicator Symbol letters.
func Emoji(isoCode string) string {
	code := strings.ToUpper(strings.TrimSpace(isoCode))
	if len(code) != 2 || !isLetter(code[0]) || !isLetter(code[1]) {
		return globe
	}

	// A = U+1F1E6, B = U+1F1E7, ..., Z = U+1F1FF
	first := rune(0x1F1E6 + int32(code[0]-'A'))
	second := rune(0x1F1E6 + int32(code[1]-'A'))

	return string([]rune{first, second})
}

// FormatDisplay formats a country for display.
// Returns the name prefixed with its flag emoji if showFlag is true.
func FormatDisplay(c Country, showFlag bool) string {
	if showFlag {
		return Emoji(c.ISOCode) + " " + c.Name
	}
	return c.Name
}

// Resolved reports whether the display name came from a translation table
func (c Country) Resolved() bool {
	return c.Name != c.Key
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
