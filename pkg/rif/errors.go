package rif

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind is returned when a letter is not one of C, E, G, J, P, V.
	ErrInvalidKind = errors.New("invalid RIF kind, expected one of C, E, G, J, P, V")

	// ErrIdentifierTooLarge is returned when an identifier needs more than 8 decimal digits.
	ErrIdentifierTooLarge = errors.New("RIF identifier exceeds 8 digits")

	// ErrChecksumMismatch is returned when the supplied check digit disagrees with the computed one.
	ErrChecksumMismatch = errors.New("RIF checksum digit mismatch")

	// ErrMalformedFormat is returned when a string does not split into three hyphen-separated segments.
	ErrMalformedFormat = errors.New("malformed RIF, expected K-NNNNNNNN-C")

	// ErrInvalidIdentifier is returned when the identifier segment is not 1-8 decimal digits.
	ErrInvalidIdentifier = errors.New("invalid RIF identifier, expected 1-8 decimal digits")

	// ErrInvalidChecksumDigit is returned when the checksum segment is not a single decimal digit.
	ErrInvalidChecksumDigit = errors.New("invalid RIF checksum digit, expected a single decimal digit")
)

// ParseError records a failed attempt to parse a RIF string.
// It unwraps to one of the package sentinel errors.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rif: parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func mismatch(expected, received uint8) error {
	return fmt.Errorf("%w: expected %d, received %d", ErrChecksumMismatch, expected, received)
}
