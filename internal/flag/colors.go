package flag

import (
	"encoding/json"
	"sort"
)

// ColorSet is an unordered set of color names
type ColorSet map[string]struct{}

// NewColorSet collapses duplicate names
func NewColorSet(colors ...string) ColorSet {
	set := make(ColorSet, len(colors))
	for _, c := range colors {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether the set contains color
func (s ColorSet) Has(color string) bool {
	_, ok := s[color]
	return ok
}

// Sorted returns the colors in lexical order
func (s ColorSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array so output is stable
func (s ColorSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *ColorSet) UnmarshalJSON(data []byte) error {
	var colors []string
	if err := json.Unmarshal(data, &colors); err != nil {
		return err
	}
	*s = NewColorSet(colors...)
	return nil
}
