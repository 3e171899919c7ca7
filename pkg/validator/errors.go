package validator

import "errors"

var (
	// ErrFieldRequired is the cause attached to a failed Required rule.
	ErrFieldRequired = errors.New("field is required")

	// ErrKindNotAllowed is the cause attached when a RIF has a kind outside the allowed set.
	ErrKindNotAllowed = errors.New("RIF kind not allowed")
)
