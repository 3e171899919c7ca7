package rif

import (
	"fmt"
	"strconv"
)

// Rif is a validated Venezuelan fiscal identifier.
// Values are immutable and comparable with ==. The zero value is not a valid RIF.
type Rif struct {
	kind          Kind
	identifier    uint32
	checksumDigit uint8
}

// New builds a Rif from its parts, verifying the supplied check digit.
func New(kind Kind, identifier uint32, checksumDigit uint8) (Rif, error) {
	expected, err := Checksum(kind, identifier)
	if err != nil {
		return Rif{}, err
	}
	if checksumDigit > 9 {
		return Rif{}, fmt.Errorf("%w: %d", ErrInvalidChecksumDigit, checksumDigit)
	}
	if checksumDigit != expected {
		return Rif{}, mismatch(expected, checksumDigit)
	}
	return Rif{kind: kind, identifier: identifier, checksumDigit: checksumDigit}, nil
}

// Compute builds a Rif whose check digit is derived from kind and identifier.
func Compute(kind Kind, identifier uint32) (Rif, error) {
	digit, err := Checksum(kind, identifier)
	if err != nil {
		return Rif{}, err
	}
	return Rif{kind: kind, identifier: identifier, checksumDigit: digit}, nil
}

// MustNew is like New but panics on error.
// Use only in tests or for values known to be valid.
func MustNew(kind Kind, identifier uint32, checksumDigit uint8) Rif {
	r, err := New(kind, identifier, checksumDigit)
	if err != nil {
		panic(err)
	}
	return r
}

// Kind returns the taxpayer kind.
func (r Rif) Kind() Kind {
	return r.kind
}

// Identifier returns the numeric identifier without padding.
func (r Rif) Identifier() uint32 {
	return r.identifier
}

// ChecksumDigit returns the check digit, 0 through 9.
func (r Rif) ChecksumDigit() uint8 {
	return r.checksumDigit
}

// IsZero reports whether r is the zero value.
func (r Rif) IsZero() bool {
	return r == Rif{}
}

// String renders the canonical K-NNNNNNNN-C form. The zero value renders as "".
func (r Rif) String() string {
	if r.IsZero() {
		return ""
	}
	return string(r.appendTo(make([]byte, 0, IdentifierDigits+4)))
}

func (r Rif) appendTo(b []byte) []byte {
	b = append(b, r.kind.Char(), '-')
	id := strconv.AppendUint(nil, uint64(r.identifier), 10)
	for i := len(id); i < IdentifierDigits; i++ {
		b = append(b, '0')
	}
	b = append(b, id...)
	return append(b, '-', '0'+r.checksumDigit)
}
