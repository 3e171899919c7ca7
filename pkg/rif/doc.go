// Package rif validates and constructs Venezuelan RIF (Registro de
// Información Fiscal) identifiers.
//
// A RIF is made of a one-letter kind, a numeric tax-payer identifier of up to
// eight digits and a trailing modulo-11 check digit, rendered canonically as
// K-NNNNNNNN-C, for example J-07013380-5.
//
// The package only checks structural and checksum validity. It never
// consults a registry, so a valid RIF is not proof that it was issued.
//
// # Kinds
//
//   - C: township or communal council
//   - E: foreign natural person ("Extranjero")
//   - G: government entity ("Gubernamental")
//   - J: legal entity ("Jurídico")
//   - P: passport holder
//   - V: Venezuelan natural person ("Venezolano")
//
// # Usage
//
//	r, err := rif.New(rif.KindLegal, 7013380, 5)
//	if err != nil {
//	    // errors.Is(err, rif.ErrChecksumMismatch) ...
//	}
//	fmt.Println(r) // J-07013380-5
//
//	r, err = rif.Parse("J-07013380-5")
//	r, err = rif.ParseLenient(" j 07013380 5 ")
//	r, err = rif.Compute(rif.KindGovernment, 20000044) // G-20000044-9
//
// # Checksum
//
// The kind weight (V=1, E=2, J=3, P=4, G=5, C=3) and the eight zero-padded
// identifier digits are multiplied by 4, 3, 2, 7, 6, 5, 4, 3, 2 and summed.
// The check digit is 11 minus the sum modulo 11, with 10 and 11 mapped to 0.
//
// # Error Handling
//
// Failures are reported with sentinel errors that can be matched with
// errors.Is: ErrInvalidKind, ErrIdentifierTooLarge, ErrChecksumMismatch,
// ErrMalformedFormat, ErrInvalidIdentifier and ErrInvalidChecksumDigit.
// Parse wraps them in *ParseError, which carries the offending input.
//
// # Encoding
//
// Rif implements encoding.TextMarshaler and encoding.TextUnmarshaler, so it
// encodes as a canonical string in JSON and YAML, and sql.Scanner and
// driver.Valuer for storage in text columns.
//
// All values are immutable; every function is safe for concurrent use.
package rif
