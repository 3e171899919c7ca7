package rif

import (
	"strings"

	"github.com/dmitrymomot/rif/pkg/sanitizer"
)

var dashes = map[rune]rune{
	'‐': '-', '‑': '-', '‒': '-', '–': '-', '—': '-', '−': '-',
}

var cleanInput = sanitizer.Compose(
	sanitizer.Trim,
	sanitizer.FoldWidth,
	sanitizer.ReplaceRunes(dashes),
	sanitizer.ToUpper,
	sanitizer.RemoveChars(" .\t"),
)

// Normalize rewrites loosely formatted input into the canonical shape.
//
// It trims and upper-cases the input, folds full-width characters and dash
// variants to ASCII, drops spaces and dots, splits the compact forms
// "J070133805", "J-070133805" and "J07013380-5", and left-pads the identifier to 8 digits.
// Input that cannot be recognised is returned cleaned but otherwise untouched
// so that Parse reports the precise failure.
func Normalize(s string) string {
	s = cleanInput(s)

	var kind, id, digit string
	switch parts := strings.Split(s, separator); len(parts) {
	case 1:
		if len(s) < 3 {
			return s
		}
		kind, id, digit = s[:1], s[1:len(s)-1], s[len(s)-1:]
	case 2:
		switch {
		case len(parts[0]) > 1 && len(parts[1]) == 1:
			// KIIIIIIII-D
			kind, id, digit = parts[0][:1], parts[0][1:], parts[1]
		case len(parts[1]) >= 2:
			// K-IIIIIIIID
			kind, id, digit = parts[0], parts[1][:len(parts[1])-1], parts[1][len(parts[1])-1:]
		default:
			return s
		}
	case 3:
		kind, id, digit = parts[0], parts[1], parts[2]
	default:
		return s
	}

	if !isDigits(id) || !isDigits(digit) {
		return s
	}
	id = padIdentifier(id)
	return kind + separator + id + separator + digit
}

// ParseLenient parses input after passing it through Normalize.
func ParseLenient(s string) (Rif, error) {
	return Parse(Normalize(s))
}

// padIdentifier left-pads short identifiers and drops surplus leading zeros.
func padIdentifier(id string) string {
	for len(id) > IdentifierDigits && id[0] == '0' {
		id = id[1:]
	}
	if len(id) < IdentifierDigits {
		id = strings.Repeat("0", IdentifierDigits-len(id)) + id
	}
	return id
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
