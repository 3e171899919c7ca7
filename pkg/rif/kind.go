package rif

import "fmt"

// Kind is the category of the RIF holder, encoded as the leading letter.
// The zero value is not a valid kind.
type Kind uint8

const (
	// KindTownship (C) identifies a township or communal council.
	KindTownship Kind = iota + 1
	// KindForeigner (E) identifies a foreign natural person ("Extranjero").
	KindForeigner
	// KindGovernment (G) identifies a government entity ("Gubernamental").
	KindGovernment
	// KindLegal (J) identifies a legal entity ("Jurídico").
	KindLegal
	// KindPassport (P) identifies a holder registered by passport.
	KindPassport
	// KindVenezuelan (V) identifies a natural person with Venezuelan citizenship.
	KindVenezuelan
)

type kindInfo struct {
	char        byte
	weight      uint8
	description string
}

// Communal councils share the legal-entity weight.
var kindTable = [...]kindInfo{
	KindTownship:   {char: 'C', weight: 3, description: "township or communal council"},
	KindForeigner:  {char: 'E', weight: 2, description: "foreign natural person"},
	KindGovernment: {char: 'G', weight: 5, description: "government entity"},
	KindLegal:      {char: 'J', weight: 3, description: "legal entity"},
	KindPassport:   {char: 'P', weight: 4, description: "passport holder"},
	KindVenezuelan: {char: 'V', weight: 1, description: "Venezuelan natural person"},
}

// Kinds returns every valid kind in letter order.
func Kinds() []Kind {
	return []Kind{KindTownship, KindForeigner, KindGovernment, KindLegal, KindPassport, KindVenezuelan}
}

// KindFromChar maps an uppercase letter to its Kind.
// Lowercase letters and any other byte yield ErrInvalidKind.
func KindFromChar(c byte) (Kind, error) {
	switch c {
	case 'C':
		return KindTownship, nil
	case 'E':
		return KindForeigner, nil
	case 'G':
		return KindGovernment, nil
	case 'J':
		return KindLegal, nil
	case 'P':
		return KindPassport, nil
	case 'V':
		return KindVenezuelan, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, c)
}

// ParseKind parses a one-letter kind such as "J".
func ParseKind(s string) (Kind, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return KindFromChar(s[0])
}

// Valid reports whether k is one of the six defined kinds.
func (k Kind) Valid() bool {
	return k >= KindTownship && k <= KindVenezuelan
}

// Char returns the kind letter, or 0 for an invalid kind.
func (k Kind) Char() byte {
	if !k.Valid() {
		return 0
	}
	return kindTable[k].char
}

// Weight returns the multiplier seed used as the first term of the checksum.
func (k Kind) Weight() uint8 {
	if !k.Valid() {
		return 0
	}
	return kindTable[k].weight
}

// Description returns a human-readable name for the kind, or "unknown".
func (k Kind) Description() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindTable[k].description
}

// String returns the kind letter, or an empty string for an invalid kind.
func (k Kind) String() string {
	if !k.Valid() {
		return ""
	}
	return string(kindTable[k].char)
}

// MarshalText implements encoding.TextMarshaler using the kind letter.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, uint8(k))
	}
	return []byte{k.Char()}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler and accepts a single kind letter.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
