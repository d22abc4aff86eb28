package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/entityvalidator/pkg/logger"
)

// ValidationError represents a single failed assertion with translation support.
// Field is empty for values validated outside of a named field.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors in the order
// they were reported.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		if err.Field == "" {
			parts = append(parts, err.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the distinct field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages returns every message in order.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func (ve ValidationErrors) GetTranslatableErrors() []ValidationError {
	return ve
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Reporter is the query surface shared by every validator.
//
// HasError() == (Count() > 0) == (len(Errors()) > 0) holds at all times, and
// errors are only ever appended.
type Reporter interface {
	Errors() []string
	HasError() bool
	Count() int
	ValidationErrors() ValidationErrors
}

// sink is the error list backing the single-subject validators.
type sink struct {
	field string
	opts  *options
	errs  ValidationErrors
}

func newSink(field string, opts *options) sink {
	return sink{field: field, opts: opts}
}

// Errors returns the failure messages in the order they were reported.
func (s *sink) Errors() []string {
	return s.errs.Messages()
}

func (s *sink) HasError() bool {
	return len(s.errs) > 0
}

func (s *sink) Count() int {
	return len(s.errs)
}

// ValidationErrors returns a copy of the structured failures.
func (s *sink) ValidationErrors() ValidationErrors {
	out := make(ValidationErrors, len(s.errs))
	copy(out, s.errs)
	return out
}

// check evaluates rule against value and records one failure when it does
// not hold.
func (s *sink) check(rule Rule, value any, message []string) bool {
	if rule.Check == nil {
		panic(ErrNilRuleCheck)
	}
	if rule.Check(value) {
		return true
	}

	ve := s.opts.render(s.field, rule, value)
	if msg := firstMessage(message); msg != "" {
		ve.Message = msg
	}
	s.add(ve, rule.Name)
	return false
}

func (s *sink) assert(cond bool, message string) {
	if cond {
		return
	}
	s.report(message)
}

func (s *sink) report(message string) {
	if message == "" {
		s.add(s.opts.render(s.field, conditionRule, nil), conditionRule.Name)
		return
	}
	s.add(ValidationError{Field: s.field, Message: message}, conditionRule.Name)
}

func (s *sink) add(ve ValidationError, assertion string) {
	s.errs = append(s.errs, ve)
	s.opts.logger.Debug("assertion failed",
		logger.Field(ve.Field),
		logger.Assertion(assertion),
		logger.Message(ve.Message),
	)
}

func firstMessage(message []string) string {
	for _, m := range message {
		if m != "" {
			return m
		}
	}
	return ""
}
