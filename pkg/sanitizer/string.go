package sanitizer

import (
	"strings"

	"golang.org/x/text/width"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// FoldWidth maps full-width and half-width runes to their canonical width,
// so "Ｊ－０７" becomes "J-07". Input pasted from East Asian IMEs and some PDF
// exports carries these forms.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// RemoveChars returns a transform that deletes every rune found in chars.
func RemoveChars(chars string) func(string) string {
	return func(s string) string {
		if chars == "" {
			return s
		}
		return strings.Map(func(r rune) rune {
			if strings.ContainsRune(chars, r) {
				return -1
			}
			return r
		}, s)
	}
}

// ReplaceRunes returns a transform that substitutes runes using the given mapping.
func ReplaceRunes(mapping map[rune]rune) func(string) string {
	return func(s string) string {
		if len(mapping) == 0 {
			return s
		}
		return strings.Map(func(r rune) rune {
			if repl, ok := mapping[r]; ok {
				return repl
			}
			return r
		}, s)
	}
}
