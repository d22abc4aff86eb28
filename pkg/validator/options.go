package validator

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/entityvalidator/pkg/i18n"
	"github.com/dmitrymomot/entityvalidator/pkg/logger"
)

// Option configures a validator. Options given to NewEntity are shared by every
// field and value validator it creates.
type Option func(*options)

type options struct {
	clock      Clock
	location   *time.Location
	translator *i18n.Translator
	language   string
	logger     *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		clock:    SystemClock(),
		language: i18n.DefaultLanguage,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.translator == nil {
		o.translator = mustDefaultTranslator()
	}
	return o
}

// now reads the clock once, converted to the configured location.
func (o *options) now() time.Time {
	t := o.clock.Now()
	if o.location != nil {
		t = t.In(o.location)
	}
	return t
}

// WithClock sets the time source for date assertions.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLocation sets the timezone in which DateIsToday compares calendar days.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithLanguage selects the catalogue used for default messages. Unknown
// languages fall back to the translator's default language.
func WithLanguage(lang string) Option {
	return func(o *options) {
		if lang != "" {
			o.language = lang
		}
	}
}

// WithTranslator replaces the built-in message catalogues. Templates are
// looked up under "validator.subject", "validator.field_subject" and
// "validator.assertion.<rule>"; missing keys fall back to the English defaults.
func WithTranslator(t *i18n.Translator) Option {
	return func(o *options) {
		if t != nil {
			o.translator = t
		}
	}
}

// WithLogger logs every failed assertion at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
