package rif

import "strings"

const separator = "-"

// Parse reads a RIF in the canonical K-NNNNNNNN-C shape.
//
// The kind letter must be uppercase. The identifier segment may carry
// between 1 and 8 digits; leading zeros do not change the stored value.
// Failures are returned as *ParseError wrapping one of ErrMalformedFormat,
// ErrInvalidKind, ErrInvalidIdentifier, ErrInvalidChecksumDigit or
// ErrChecksumMismatch.
func Parse(s string) (Rif, error) {
	r, err := parse(s)
	if err != nil {
		return Rif{}, &ParseError{Input: s, Err: err}
	}
	return r, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Rif {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parse(s string) (Rif, error) {
	parts := strings.Split(s, separator)
	if len(parts) != 3 {
		return Rif{}, ErrMalformedFormat
	}

	kind, err := ParseKind(parts[0])
	if err != nil {
		return Rif{}, err
	}

	identifier, ok := parseDigits(parts[1], IdentifierDigits)
	if !ok {
		return Rif{}, ErrInvalidIdentifier
	}

	digit, ok := parseDigits(parts[2], 1)
	if !ok {
		return Rif{}, ErrInvalidChecksumDigit
	}

	return New(kind, identifier, uint8(digit))
}

// parseDigits accepts 1 to maxLen ASCII decimal digits.
// Signs, spaces and other characters accepted by strconv are rejected.
func parseDigits(s string, maxLen int) (uint32, bool) {
	if len(s) == 0 || len(s) > maxLen {
		return 0, false
	}
	var n uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint32(c-'0')
	}
	return n, true
}
