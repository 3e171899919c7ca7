package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/rif/pkg/logger"
	"github.com/dmitrymomot/rif/pkg/rif"
	"github.com/dmitrymomot/rif/pkg/validator"
)

var errInvalidInput = errors.New("invalid input")

// CLI defines the command-line interface for rif.
type CLI struct {
	Validate  ValidateCmd  `cmd:"" help:"Validate one or more RIFs"`
	Checksum  ChecksumCmd  `cmd:"" help:"Compute the check digit for a kind and identifier"`
	Format    FormatCmd    `cmd:"" help:"Build the canonical RIF for a kind and identifier"`
	Normalize NormalizeCmd `cmd:"" help:"Rewrite loosely formatted RIFs into canonical shape"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// rifResult is the structured form of a single RIF outcome.
type rifResult struct {
	Input         string `json:"input" yaml:"input"`
	Valid         bool   `json:"valid" yaml:"valid"`
	RIF           string `json:"rif,omitempty" yaml:"rif,omitempty"`
	Kind          string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Identifier    uint32 `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	ChecksumDigit *uint8 `json:"checksum_digit,omitempty" yaml:"checksum_digit,omitempty"`
	Reason        string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) newResult(input string, r rif.Rif, err error, lang string) rifResult {
	if err != nil {
		res := rifResult{
			Input:  input,
			Reason: validator.RIFReason(err),
			Error:  err.Error(),
		}
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			res.Message = strings.Join(verrs.Localize(a.tr, lang), "; ")
			if causes := verrs.Unwrap(); len(causes) > 0 {
				res.Error = errors.Join(causes...).Error()
			}
		}
		return res
	}
	digit := r.ChecksumDigit()
	return rifResult{
		Input:         input,
		Valid:         true,
		RIF:           r.String(),
		Kind:          r.Kind().String(),
		Description:   r.Kind().Description(),
		Identifier:    r.Identifier(),
		ChecksumDigit: &digit,
	}
}

// ValidateCmd validates RIFs and exits non-zero if any is invalid.
type ValidateCmd struct {
	RIFs    []string `arg:"" name:"rif" help:"RIFs to validate, e.g. J-07013380-5"`
	Lenient bool     `help:"Accept lowercase, compact and unpadded forms" default:"${lenient}" negatable:""`
	Kinds   []string `name:"kind" short:"k" sep:"," help:"Restrict accepted kinds (C,E,G,J,P,V)"`
	Output  string   `short:"o" enum:"text,json,yaml" default:"${output}" help:"Output format (text, json, yaml)"`
	Lang    string   `short:"l" default:"${lang}" help:"Language for messages (en, es)"`
}

func (c *ValidateCmd) Run(a *app) error {
	kinds, err := parseKinds(c.Kinds)
	if err != nil {
		return err
	}

	rule, parse := validator.ValidRIF, rif.Parse
	if c.Lenient {
		rule, parse = validator.ValidRIFLenient, rif.ParseLenient
	}
	lang := a.tr.Resolve(c.Lang)

	results := make([]rifResult, 0, len(c.RIFs))
	invalid := 0
	for _, in := range c.RIFs {
		var r rif.Rif
		err := validator.Apply(rule("rif", in))
		if err == nil {
			// accepted by rule, so parse cannot fail
			r, _ = parse(in)
			if len(kinds) > 0 {
				err = validator.Apply(validator.RIFKindIn("rif", r.String(), kinds...))
			}
		}
		if err != nil {
			invalid++
			a.log.Debug("rejected", logger.Input(in), logger.Error(err))
		} else {
			a.log.Debug("accepted", logger.Input(in), logger.RIF(r))
		}
		results = append(results, a.newResult(in, r, err, lang))
	}

	if err := c.write(a, results); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d RIFs", errInvalidInput, invalid, len(c.RIFs))
	}
	return nil
}

func (c *ValidateCmd) write(a *app, results []rifResult) error {
	if c.Output != outputText {
		return a.emit(c.Output, results, "")
	}
	for _, res := range results {
		line := fmt.Sprintf("%s\tvalid", res.RIF)
		if !res.Valid {
			line = fmt.Sprintf("%s\tinvalid\t%s", res.Input, res.Message)
		}
		if err := a.emit(outputText, nil, line); err != nil {
			return err
		}
	}
	return nil
}

// ChecksumCmd prints the check digit for a kind and identifier.
type ChecksumCmd struct {
	Kind       string `arg:"" help:"Kind letter (C, E, G, J, P, V)"`
	Identifier uint32 `arg:"" help:"Numeric identifier, up to 8 digits"`
}

func (c *ChecksumCmd) Run(a *app) error {
	kind, err := rif.ParseKind(strings.ToUpper(c.Kind))
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	digit, err := rif.Checksum(kind, c.Identifier)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	a.log.Debug("checksum computed",
		slog.String("kind", kind.String()),
		slog.Uint64("identifier", uint64(c.Identifier)),
		slog.Int("digit", int(digit)),
	)
	return a.emit(outputText, nil, fmt.Sprint(digit))
}

// FormatCmd prints the canonical RIF with a computed check digit.
type FormatCmd struct {
	Kind       string `arg:"" help:"Kind letter (C, E, G, J, P, V)"`
	Identifier uint32 `arg:"" help:"Numeric identifier, up to 8 digits"`
	Output     string `short:"o" enum:"text,json,yaml" default:"${output}" help:"Output format (text, json, yaml)"`
}

func (c *FormatCmd) Run(a *app) error {
	kind, err := rif.ParseKind(strings.ToUpper(c.Kind))
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	r, err := rif.Compute(kind, c.Identifier)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	return a.emit(c.Output, a.newResult(fmt.Sprintf("%s %d", c.Kind, c.Identifier), r, nil, ""), r.String())
}

// NormalizeCmd prints each input rewritten into canonical shape.
type NormalizeCmd struct {
	Inputs []string `arg:"" name:"input" help:"Loosely formatted RIFs"`
}

func (c *NormalizeCmd) Run(a *app) error {
	for _, in := range c.Inputs {
		if err := a.emit(outputText, nil, rif.Normalize(in)); err != nil {
			return err
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	return a.emit(outputText, nil, "rif version "+version)
}

func parseKinds(letters []string) ([]rif.Kind, error) {
	kinds := make([]rif.Kind, 0, len(letters))
	for _, l := range letters {
		k, err := rif.ParseKind(strings.ToUpper(strings.TrimSpace(l)))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
