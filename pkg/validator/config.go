package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/entityvalidator/pkg/config"
	"github.com/dmitrymomot/entityvalidator/pkg/logger"
)

// EnvPrefix is prepended to every Config env tag.
const EnvPrefix = "VALIDATOR_"

// Config holds environment-driven defaults for validators.
type Config struct {
	Language    string `env:"LANGUAGE" envDefault:"en"`
	Timezone    string `env:"TIMEZONE" envDefault:"UTC"`
	LogFailures bool   `env:"LOG_FAILURES" envDefault:"false"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"debug"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from VALIDATOR_* environment variables.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, errors.Join(ErrLoadingConfig, err)
	}
	return cfg, nil
}

// Options converts the configuration into validator options. The language
// must exist in the built-in catalogues.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	if c.Language != "" {
		t, err := DefaultTranslator()
		if err != nil {
			return nil, err
		}
		if !t.HasLanguage(c.Language) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, c.Language)
		}
		opts = append(opts, WithLanguage(c.Language))
	}

	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, errors.Join(ErrInvalidTimezone, err)
		}
		opts = append(opts, WithLocation(loc))
	}

	if c.LogFailures {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, errors.Join(ErrInvalidLogConfig, err)
		}
		format, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidLogConfig, err)
		}
		opts = append(opts, WithLogger(logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithComponent("validator"),
		)))
	}

	return opts, nil
}
