// Package validator provides declarative validation rules for Venezuelan fiscal
// identifiers and the small Rule/Apply core they are built on.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// implements error. Each failed RIF rule records the underlying rif error as
// its Cause, and ValidationErrors unwraps to those causes, so callers can
// still use errors.Is with the rif sentinels.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("rif", form.RIF),
//	    validator.RIFKindIn("rif", form.RIF, rif.KindLegal, rif.KindGovernment),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.TranslationKey, validator.RIFReason(e.Cause))
//	    }
//	}
//
// Rules are stateless between Apply calls except for the cause captured by
// the most recent evaluation, so build a fresh Rule per input rather than
// sharing one across goroutines.
package validator
