// Package logger builds log/slog loggers with functional options and
// provides attribute helpers for consistent keys.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(slog.String("service", "rif")),
//	)
//	log.Debug("parsed", logger.RIF(r), logger.Input(raw))
//
// Defaults favour command-line use: text format, warn level, stderr.
package logger
