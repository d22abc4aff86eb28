package validator

import "regexp"

// Validator is a free-form error sink: the subject is passed to every
// assertion, so one Validator can check many unrelated values with a shared
// error list.
//
//	v := validator.New()
//	v.AssertStringIsEmail(form.Email).
//		AssertMinLength(form.Password, 8, "password is too short")
//	if v.HasError() {
//		return v.ValidationErrors()
//	}
type Validator struct {
	sink
}

// New creates an empty free-form validator.
func New(opts ...Option) *Validator {
	return newValidator("", newOptions(opts))
}

func newValidator(field string, opts *options) *Validator {
	return &Validator{sink: newSink(field, opts)}
}

// Assert records message when cond is false. An empty message gets a default.
func (v *Validator) Assert(cond bool, message string) *Validator {
	v.assert(cond, message)
	return v
}

// ReportError records message unconditionally.
func (v *Validator) ReportError(message string) *Validator {
	v.report(message)
	return v
}

// Check evaluates rule against value. The first non-empty message replaces the
// default one.
func (v *Validator) Check(rule Rule, value any, message ...string) *Validator {
	v.check(rule, value, message)
	return v
}

// Ok is Check returning whether the rule held.
func (v *Validator) Ok(rule Rule, value any, message ...string) bool {
	return v.check(rule, value, message)
}

func (v *Validator) AssertStringIsEmail(value any, message ...string) *Validator {
	return v.Check(IsEmail(), value, message...)
}

func (v *Validator) AssertStringIsURL(value any, message ...string) *Validator {
	return v.Check(IsURL(), value, message...)
}

func (v *Validator) AssertStringIsIP(value any, message ...string) *Validator {
	return v.Check(IsIP(), value, message...)
}

func (v *Validator) AssertStringIsUUID(value any, message ...string) *Validator {
	return v.Check(IsUUID(), value, message...)
}

func (v *Validator) AssertNotEmpty(value any, message ...string) *Validator {
	return v.Check(NotEmpty(), value, message...)
}

func (v *Validator) AssertEmpty(value any, message ...string) *Validator {
	return v.Check(Empty(), value, message...)
}

func (v *Validator) AssertNotNull(value any, message ...string) *Validator {
	return v.Check(NotNull(), value, message...)
}

func (v *Validator) AssertNull(value any, message ...string) *Validator {
	return v.Check(Null(), value, message...)
}

func (v *Validator) AssertIsArray(value any, message ...string) *Validator {
	return v.Check(IsArray(), value, message...)
}

func (v *Validator) AssertRegExp(value any, re *regexp.Regexp, message ...string) *Validator {
	return v.Check(RegExp(re), value, message...)
}

// AssertMatches matches pattern case-insensitively.
func (v *Validator) AssertMatches(value any, pattern string, message ...string) *Validator {
	return v.Check(Matches(pattern), value, message...)
}

func (v *Validator) AssertMinLength(value any, min int, message ...string) *Validator {
	return v.Check(MinLength(min), value, message...)
}

func (v *Validator) AssertMaxLength(value any, max int, message ...string) *Validator {
	return v.Check(MaxLength(max), value, message...)
}

func (v *Validator) AssertGreaterThan(value, bound any, message ...string) *Validator {
	return v.Check(GreaterThan(bound), value, message...)
}

func (v *Validator) AssertGreaterThanOrEqual(value, bound any, message ...string) *Validator {
	return v.Check(GreaterThanOrEqual(bound), value, message...)
}

func (v *Validator) AssertLessThan(value, bound any, message ...string) *Validator {
	return v.Check(LessThan(bound), value, message...)
}

func (v *Validator) AssertLessThanOrEqual(value, bound any, message ...string) *Validator {
	return v.Check(LessThanOrEqual(bound), value, message...)
}

func (v *Validator) AssertEqual(value, expected any, message ...string) *Validator {
	return v.Check(Equal(expected), value, message...)
}

func (v *Validator) AssertStrictEqual(value, expected any, message ...string) *Validator {
	return v.Check(StrictEqual(expected), value, message...)
}

func (v *Validator) AssertIsDate(value any, message ...string) *Validator {
	return v.Check(IsDate(), value, message...)
}

func (v *Validator) AssertDateIsInPast(value any, message ...string) *Validator {
	return v.Check(DateInPast(v.opts.now()), value, message...)
}

func (v *Validator) AssertDateIsInFuture(value any, message ...string) *Validator {
	return v.Check(DateInFuture(v.opts.now()), value, message...)
}

func (v *Validator) AssertDateIsToday(value any, message ...string) *Validator {
	return v.Check(DateIsToday(v.opts.now()), value, message...)
}

func (v *Validator) AssertCount(value any, count int, message ...string) *Validator {
	return v.Check(Count(count), value, message...)
}

func (v *Validator) AssertInArray(value, set any, message ...string) *Validator {
	return v.Check(InArray(set), value, message...)
}

func (v *Validator) AssertInternalType(value any, typeName string, message ...string) *Validator {
	return v.Check(InternalType(typeName), value, message...)
}

func (v *Validator) AssertStringStartsWith(value any, prefix string, message ...string) *Validator {
	return v.Check(StartsWith(prefix), value, message...)
}

func (v *Validator) AssertStringEndsWith(value any, suffix string, message ...string) *Validator {
	return v.Check(EndsWith(suffix), value, message...)
}

func (v *Validator) AssertStringContains(value any, substr string, message ...string) *Validator {
	return v.Check(Contains(substr), value, message...)
}

// AssertFilter passes when the text form of value is accepted by fn.
func (v *Validator) AssertFilter(value any, fn func(string) bool, message ...string) *Validator {
	return v.Check(Filter(fn), value, message...)
}
