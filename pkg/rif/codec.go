package rif

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText encodes r in canonical form, which also drives JSON and YAML encoding.
func (r Rif) MarshalText() ([]byte, error) {
	if r.IsZero() {
		return []byte{}, nil
	}
	return r.appendTo(make([]byte, 0, IdentifierDigits+4)), nil
}

// UnmarshalText decodes a canonical RIF. Empty input decodes to the zero value.
func (r *Rif) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = Rif{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores r as its canonical string; the zero value is stored as NULL.
func (r Rif) Value() (driver.Value, error) {
	if r.IsZero() {
		return nil, nil
	}
	return r.String(), nil
}

// Scan reads a canonical RIF from a string or []byte column. NULL scans to the zero value.
func (r *Rif) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = Rif{}
		return nil
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("rif: cannot scan %T into Rif", src)
	}
}
