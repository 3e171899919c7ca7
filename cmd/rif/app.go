package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rif/pkg/i18n"
	"github.com/dmitrymomot/rif/pkg/logger"
	"github.com/dmitrymomot/rif/pkg/validator"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// app carries what every command needs. Commands write results to out,
// diagnostics through log and localized messages through tr.
type app struct {
	out io.Writer
	log *slog.Logger
	tr  *i18n.Translator
}

func newApp(ctx context.Context, cfg cliConfig, out, errOut io.Writer) (*app, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(errOut),
	)

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), validator.Locales, validator.LocalesDir),
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return &app{out: out, log: log, tr: tr}, nil
}

// emit writes v in the requested structured format. For text output the
// caller-supplied line is written instead.
func (a *app) emit(output string, v any, line string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(a.out, line)
		return err
	}
}
