package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/rif/pkg/rif"
)

// ValidRIF validates a RIF in strict canonical form (K-NNNNNNNN-C, uppercase kind).
func ValidRIF(field, value string) Rule {
	return rifRule(field, value, rif.Parse)
}

// ValidRIFLenient validates a RIF after normalisation, accepting lowercase,
// compact and padded forms such as "j070133805".
func ValidRIFLenient(field, value string) Rule {
	return rifRule(field, value, rif.ParseLenient)
}

// RIFKindIn validates that value is a RIF (lenient form) whose kind is one of kinds.
// A value that is not a RIF at all fails with the parse error as cause.
func RIFKindIn(field, value string, kinds ...rif.Kind) Rule {
	letters := make([]string, 0, len(kinds))
	for _, k := range kinds {
		letters = append(letters, k.String())
	}
	allowed := strings.Join(letters, ", ")

	var cause error
	return Rule{
		Check: func() bool {
			r, err := rif.ParseLenient(value)
			if err != nil {
				cause = err
				return false
			}
			for _, k := range kinds {
				if r.Kind() == k {
					return true
				}
			}
			cause = fmt.Errorf("%w: %s", ErrKindNotAllowed, r.Kind())
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid RIF of kind %s", allowed),
			TranslationKey: "validation.rif_kind",
			TranslationValues: map[string]any{
				"field": field,
				"kinds": allowed,
			},
		},
		cause: func() error { return cause },
	}
}

func rifRule(field, value string, parse func(string) (rif.Rif, error)) Rule {
	var cause error
	return Rule{
		Check: func() bool {
			_, cause = parse(value)
			return cause == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid RIF (e.g. J-07013380-5)",
			TranslationKey: "validation.rif",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
		cause: func() error { return cause },
	}
}

// RIFReason maps a RIF failure to a short code suitable for translation lookups:
// "malformed", "kind", "identifier", "identifier_too_large", "checksum_digit",
// "checksum" or "kind_not_allowed". It returns "" for unrelated errors.
func RIFReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrKindNotAllowed):
		return "kind_not_allowed"
	case errors.Is(err, rif.ErrMalformedFormat):
		return "malformed"
	case errors.Is(err, rif.ErrInvalidKind):
		return "kind"
	case errors.Is(err, rif.ErrIdentifierTooLarge):
		return "identifier_too_large"
	case errors.Is(err, rif.ErrInvalidIdentifier):
		return "identifier"
	case errors.Is(err, rif.ErrInvalidChecksumDigit):
		return "checksum_digit"
	case errors.Is(err, rif.ErrChecksumMismatch):
		return "checksum"
	}
	return ""
}
