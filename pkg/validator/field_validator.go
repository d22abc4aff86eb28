package validator

import "github.com/dmitrymomot/entityvalidator/pkg/predicate"

// FieldValidator aggregates the validators of one named field.
//
// Value returns one ValueValidator per distinct value: asking twice for an
// equal value (same dynamic type, deeply equal) yields the same validator, so
// assertions accumulate on one error list.
type FieldValidator struct {
	name     string
	opts     *options
	children []Reporter
	values   []*ValueValidator
	direct   *Validator
}

func newFieldValidator(name string, opts *options) *FieldValidator {
	return &FieldValidator{name: name, opts: opts}
}

// Name returns the field name.
func (f *FieldValidator) Name() string {
	return f.name
}

// Value returns the validator for value, creating it on first use.
func (f *FieldValidator) Value(value any) *ValueValidator {
	for _, v := range f.values {
		if predicate.StrictEqual(v.value, value) {
			return v
		}
	}

	v := newValueValidator(value, f.name, f.opts)
	f.values = append(f.values, v)
	f.children = append(f.children, v)
	return v
}

// Assert records a field-level message when cond is false.
func (f *FieldValidator) Assert(cond bool, message string) *FieldValidator {
	f.fieldSink().Assert(cond, message)
	return f
}

// ReportError records a field-level message unconditionally.
func (f *FieldValidator) ReportError(message string) *FieldValidator {
	f.fieldSink().ReportError(message)
	return f
}

// fieldSink returns the validator holding field-level messages, registering
// it as the next child on first use.
func (f *FieldValidator) fieldSink() *Validator {
	if f.direct == nil {
		f.direct = newValidator(f.name, f.opts)
		f.children = append(f.children, f.direct)
	}
	return f.direct
}

// Validators returns the children in creation order.
func (f *FieldValidator) Validators() []Reporter {
	out := make([]Reporter, len(f.children))
	copy(out, f.children)
	return out
}

// Errors concatenates the children's messages in creation order.
func (f *FieldValidator) Errors() []string {
	errs := make([]string, 0, f.Count())
	for _, c := range f.children {
		errs = append(errs, c.Errors()...)
	}
	return errs
}

func (f *FieldValidator) HasError() bool {
	for _, c := range f.children {
		if c.HasError() {
			return true
		}
	}
	return false
}

func (f *FieldValidator) Count() int {
	n := 0
	for _, c := range f.children {
		n += c.Count()
	}
	return n
}

func (f *FieldValidator) ValidationErrors() ValidationErrors {
	var errs ValidationErrors
	for _, c := range f.children {
		errs = append(errs, c.ValidationErrors()...)
	}
	return errs
}
