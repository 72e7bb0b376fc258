package textutil

import (
	"strings"
	"unicode/utf8"
)

// TruncateText truncates text to a maximum number of runes (Unicode-safe).
// If the text exceeds maxLength runes, it is truncated with "..." appended.
func TruncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return string([]rune(text)[:maxLength])
	}
	return string([]rune(text)[:maxLength-3]) + "..."
}

// PadRight pads text with spaces to width runes. Longer text is returned unchanged.
func PadRight(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}

// Column truncates then pads text so table columns line up
func Column(text string, width int) string {
	return PadRight(TruncateText(text, width), width)
}
