// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - The default .env file is loaded once if it exists; extra files can be
//     passed with WithEnvFiles or LoadEnv.
//   - Structs are populated from `env` and `envDefault` field tags, optionally
//     under a common prefix (WithPrefix).
//   - Each configuration type is parsed once per prefix and cached for the
//     lifetime of the process. ResetCache clears the cache in tests.
//   - WithEnvironment parses from an explicit map and bypasses the cache.
//
// # Usage
//
//	type Config struct {
//	    Language string `env:"LANGUAGE" envDefault:"en"`
//	    Timezone string `env:"TIMEZONE" envDefault:"UTC"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDATOR_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be matched with errors.Is:
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: a requested .env file could not be read.
//   - ErrNilPointer: a nil pointer was passed to Load or MustLoad.
package config
