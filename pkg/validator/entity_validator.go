package validator

import (
	"github.com/dmitrymomot/entityvalidator/pkg/logger"
	"github.com/dmitrymomot/entityvalidator/pkg/predicate"
)

// EntityValidator is the top-level aggregate for one validation pass. Its
// children are field validators and bare value validators, kept in
// registration order.
//
//	v := validator.NewEntity()
//	v.FieldValue("email", form.Email).AssertStringIsEmail()
//	v.FieldValue("age", form.Age).AssertGreaterThanOrEqual(18)
//	if err := v.Err(); err != nil {
//		return err
//	}
type EntityValidator struct {
	opts     *options
	children []Reporter
	fields   []*FieldValidator
	values   []*ValueValidator
	direct   *Validator
}

// NewEntity creates an empty entity validator. Options apply to every child.
func NewEntity(opts ...Option) *EntityValidator {
	return &EntityValidator{opts: newOptions(opts)}
}

// Field returns the validator for name, creating it on first use.
func (e *EntityValidator) Field(name string) *FieldValidator {
	if f := e.field(name); f != nil {
		return f
	}
	f := newFieldValidator(name, e.opts)
	e.fields = append(e.fields, f)
	e.children = append(e.children, f)
	return f
}

// FieldValue is shorthand for Field(name).Value(value).
func (e *EntityValidator) FieldValue(name string, value any) *ValueValidator {
	return e.Field(name).Value(value)
}

// Value returns a bare validator for value, not attached to any field. Equal
// values share one validator.
func (e *EntityValidator) Value(value any) *ValueValidator {
	for _, v := range e.values {
		if predicate.StrictEqual(v.value, value) {
			return v
		}
	}
	v := newValueValidator(value, "", e.opts)
	e.values = append(e.values, v)
	e.children = append(e.children, v)
	return v
}

// Assert records message against field when cond is false. An empty field
// name records an entity-level message.
func (e *EntityValidator) Assert(cond bool, field, message string) *EntityValidator {
	if field == "" {
		e.entitySink().Assert(cond, message)
		return e
	}
	e.Field(field).Assert(cond, message)
	return e
}

// ReportError records message against field unconditionally.
func (e *EntityValidator) ReportError(field, message string) *EntityValidator {
	if field == "" {
		e.entitySink().ReportError(message)
		return e
	}
	e.Field(field).ReportError(message)
	return e
}

func (e *EntityValidator) entitySink() *Validator {
	if e.direct == nil {
		e.direct = newValidator("", e.opts)
		e.children = append(e.children, e.direct)
	}
	return e.direct
}

func (e *EntityValidator) field(name string) *FieldValidator {
	for _, f := range e.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Errors concatenates every child's messages in registration order.
func (e *EntityValidator) Errors() []string {
	errs := make([]string, 0, e.Count())
	for _, c := range e.children {
		errs = append(errs, c.Errors()...)
	}
	return errs
}

func (e *EntityValidator) HasError() bool {
	for _, c := range e.children {
		if c.HasError() {
			return true
		}
	}
	return false
}

func (e *EntityValidator) Count() int {
	n := 0
	for _, c := range e.children {
		n += c.Count()
	}
	return n
}

// FieldErrors returns the messages of field name, or nil if the field was
// never registered.
func (e *EntityValidator) FieldErrors(name string) []string {
	f := e.field(name)
	if f == nil {
		return nil
	}
	return f.Errors()
}

// ErrorsByField maps each field with at least one error to its messages.
func (e *EntityValidator) ErrorsByField() map[string][]string {
	out := make(map[string][]string)
	for _, f := range e.fields {
		if f.HasError() {
			out[f.name] = f.Errors()
		}
	}
	return out
}

// FieldsWithError returns the names of failing fields in registration order.
func (e *EntityValidator) FieldsWithError() []string {
	names := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		if f.HasError() {
			names = append(names, f.name)
		}
	}
	return names
}

// FieldValidators returns the field children, optionally only failing ones.
func (e *EntityValidator) FieldValidators(onlyWithErrors bool) []*FieldValidator {
	out := make([]*FieldValidator, 0, len(e.fields))
	for _, f := range e.fields {
		if onlyWithErrors && !f.HasError() {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Validators returns every child, optionally only failing ones.
func (e *EntityValidator) Validators(onlyWithErrors bool) []Reporter {
	out := make([]Reporter, 0, len(e.children))
	for _, c := range e.children {
		if onlyWithErrors && !c.HasError() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (e *EntityValidator) ValidationErrors() ValidationErrors {
	var errs ValidationErrors
	for _, c := range e.children {
		errs = append(errs, c.ValidationErrors()...)
	}
	return errs
}

// Err returns nil when no assertion failed, otherwise the ValidationErrors.
func (e *EntityValidator) Err() error {
	if !e.HasError() {
		return nil
	}
	errs := e.ValidationErrors()
	e.opts.logger.Debug("entity validation failed",
		logger.ErrorCount(len(errs)),
		logger.Fields(e.FieldsWithError()),
	)
	return errs
}
