package flag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection is returned when a selection string is not yes, no or maybe
var ErrInvalidSelection = errors.New("invalid selection")

// Selection is a resolved yes/no answer or the unresolved maybe placeholder.
// The zero value is SelectionMaybe.
type Selection int

const (
	SelectionMaybe Selection = iota
	SelectionYes
	SelectionNo
)

// Selections lists every selection in display order
func Selections() []Selection {
	return []Selection{SelectionYes, SelectionNo, SelectionMaybe}
}

// BoolSelection maps true to yes and false to no
func BoolSelection(v bool) Selection {
	if v {
		return SelectionYes
	}
	return SelectionNo
}

// ParseSelection parses "yes", "no" or "maybe" (case-insensitive).
// An empty string parses as maybe.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return SelectionYes, nil
	case "no":
		return SelectionNo, nil
	case "maybe", "":
		return SelectionMaybe, nil
	default:
		return SelectionMaybe, fmt.Errorf("%w: %q", ErrInvalidSelection, s)
	}
}

func (s Selection) String() string {
	switch s {
	case SelectionYes:
		return "Yes"
	case SelectionNo:
		return "No"
	default:
		return "Maybe"
	}
}

// Resolved reports whether s is a definite yes or no
func (s Selection) Resolved() bool {
	return s == SelectionYes || s == SelectionNo
}

// Allows reports whether a value satisfies the selection. Maybe allows anything.
func (s Selection) Allows(v bool) bool {
	switch s {
	case SelectionYes:
		return v
	case SelectionNo:
		return !v
	default:
		return true
	}
}

func (s Selection) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Selection) UnmarshalText(text []byte) error {
	parsed, err := ParseSelection(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
