package rif

import "fmt"

const (
	// IdentifierDigits is the zero-padded width of the identifier segment.
	IdentifierDigits = 8

	// MaxIdentifier is the largest identifier representable in IdentifierDigits digits.
	MaxIdentifier uint32 = 99_999_999
)

// multipliers apply to the kind weight followed by the 8 identifier digits,
// most significant first.
var multipliers = [IdentifierDigits + 1]uint32{4, 3, 2, 7, 6, 5, 4, 3, 2}

// Checksum computes the modulo-11 check digit for a kind and identifier.
//
// The identifier is zero-padded to 8 digits. The weighted sum of the kind
// weight and those digits is reduced modulo 11 and subtracted from 11;
// results of 10 and 11 fold to 0.
func Checksum(kind Kind, identifier uint32) (uint8, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidKind, uint8(kind))
	}
	if identifier > MaxIdentifier {
		return 0, fmt.Errorf("%w: %d", ErrIdentifierTooLarge, identifier)
	}
	return checksum(kind, identifier), nil
}

func checksum(kind Kind, identifier uint32) uint8 {
	sum := uint32(kind.Weight()) * multipliers[0]
	for pos := IdentifierDigits; pos >= 1; pos-- {
		sum += (identifier % 10) * multipliers[pos]
		identifier /= 10
	}

	digit := 11 - sum%11
	if digit >= 10 {
		return 0
	}
	return uint8(digit)
}
