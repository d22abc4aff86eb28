package validator

import "errors"

var (
	// ErrValidationFailed is matched by ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilRuleCheck is the panic value for a Rule without a Check function.
	ErrNilRuleCheck = errors.New("validator: rule has no check function")

	// ErrUnknownLanguage is returned when a configured language has no message catalogue.
	ErrUnknownLanguage = errors.New("unknown message language")

	// ErrInvalidTimezone is returned when a configured timezone cannot be loaded.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidLogConfig is returned when the log level or format of a Config is invalid.
	ErrInvalidLogConfig = errors.New("invalid log configuration")

	// ErrLoadingConfig is returned when the validator configuration cannot be read from the environment.
	ErrLoadingConfig = errors.New("failed to load validator configuration")
)
