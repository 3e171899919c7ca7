// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for optional .env files and
// `github.com/caarlos0/env/v11` for struct tag parsing, and caches each
// configuration type after the first successful parse.
//
//	type CLIConfig struct {
//	    LogLevel string `env:"RIF_LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg CLIConfig
//	config.MustLoad(&cfg)
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer and ErrLoadingEnvFile.
package config
