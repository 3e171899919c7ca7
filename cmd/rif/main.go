// Command rif validates, normalizes and builds Venezuelan RIF identifiers.
// It only checks structure and check digits; it never contacts SENIAT.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dmitrymomot/rif/pkg/config"
)

const version = "0.1.0"

type cliConfig struct {
	LogLevel  string `env:"RIF_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"RIF_LOG_FORMAT" envDefault:"text"`
	Lenient   bool   `env:"RIF_LENIENT" envDefault:"false"`
	Output    string `env:"RIF_OUTPUT" envDefault:"text"`
	Lang      string `env:"RIF_LANG" envDefault:"en"`
}

func main() {
	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rif: %v\n", err)
		os.Exit(2)
	}

	if err := run(os.Args[1:], cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "rif: %v\n", err)
		if errors.Is(err, errInvalidInput) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

// run parses args and executes the selected command.
func run(args []string, cfg cliConfig, out, errOut io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("rif"),
		kong.Description("Validate and build Venezuelan RIF (Registro de Información Fiscal) identifiers."),
		kong.Writers(out, errOut),
		kong.Vars{
			"lenient": fmt.Sprint(cfg.Lenient),
			"output":  cfg.Output,
			"lang":    cfg.Lang,
		},
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	a, err := newApp(context.Background(), cfg, out, errOut)
	if err != nil {
		return err
	}
	return kctx.Run(a)
}
