package validator

import "regexp"

// ValueValidator checks the single subject it was created with.
//
//	validator.NewValue(age).
//		AssertGreaterThanOrEqual(18).
//		AssertLessThan(130)
type ValueValidator struct {
	sink
	value any
}

// NewValue binds value as the subject of every assertion.
func NewValue(value any, opts ...Option) *ValueValidator {
	return newValueValidator(value, "", newOptions(opts))
}

func newValueValidator(value any, field string, opts *options) *ValueValidator {
	return &ValueValidator{sink: newSink(field, opts), value: value}
}

// Value returns the subject.
func (v *ValueValidator) Value() any {
	return v.value
}

// Field returns the name of the owning field, empty for bare values.
func (v *ValueValidator) Field() string {
	return v.field
}

// Assert records message when cond is false. An empty message gets a default.
func (v *ValueValidator) Assert(cond bool, message string) *ValueValidator {
	v.assert(cond, message)
	return v
}

// ReportError records message unconditionally.
func (v *ValueValidator) ReportError(message string) *ValueValidator {
	v.report(message)
	return v
}

// Check evaluates rule against the subject.
func (v *ValueValidator) Check(rule Rule, message ...string) *ValueValidator {
	v.check(rule, v.value, message)
	return v
}

// Ok is Check returning whether the rule held.
func (v *ValueValidator) Ok(rule Rule, message ...string) bool {
	return v.check(rule, v.value, message)
}

func (v *ValueValidator) AssertStringIsEmail(message ...string) *ValueValidator {
	return v.Check(IsEmail(), message...)
}

func (v *ValueValidator) AssertStringIsURL(message ...string) *ValueValidator {
	return v.Check(IsURL(), message...)
}

func (v *ValueValidator) AssertStringIsIP(message ...string) *ValueValidator {
	return v.Check(IsIP(), message...)
}

func (v *ValueValidator) AssertStringIsUUID(message ...string) *ValueValidator {
	return v.Check(IsUUID(), message...)
}

func (v *ValueValidator) AssertNotEmpty(message ...string) *ValueValidator {
	return v.Check(NotEmpty(), message...)
}

func (v *ValueValidator) AssertEmpty(message ...string) *ValueValidator {
	return v.Check(Empty(), message...)
}

func (v *ValueValidator) AssertNotNull(message ...string) *ValueValidator {
	return v.Check(NotNull(), message...)
}

func (v *ValueValidator) AssertNull(message ...string) *ValueValidator {
	return v.Check(Null(), message...)
}

func (v *ValueValidator) AssertIsArray(message ...string) *ValueValidator {
	return v.Check(IsArray(), message...)
}

func (v *ValueValidator) AssertRegExp(re *regexp.Regexp, message ...string) *ValueValidator {
	return v.Check(RegExp(re), message...)
}

// AssertMatches matches pattern case-insensitively.
func (v *ValueValidator) AssertMatches(pattern string, message ...string) *ValueValidator {
	return v.Check(Matches(pattern), message...)
}

func (v *ValueValidator) AssertMinLength(min int, message ...string) *ValueValidator {
	return v.Check(MinLength(min), message...)
}

func (v *ValueValidator) AssertMaxLength(max int, message ...string) *ValueValidator {
	return v.Check(MaxLength(max), message...)
}

func (v *ValueValidator) AssertGreaterThan(bound any, message ...string) *ValueValidator {
	return v.Check(GreaterThan(bound), message...)
}

func (v *ValueValidator) AssertGreaterThanOrEqual(bound any, message ...string) *ValueValidator {
	return v.Check(GreaterThanOrEqual(bound), message...)
}

func (v *ValueValidator) AssertLessThan(bound any, message ...string) *ValueValidator {
	return v.Check(LessThan(bound), message...)
}

func (v *ValueValidator) AssertLessThanOrEqual(bound any, message ...string) *ValueValidator {
	return v.Check(LessThanOrEqual(bound), message...)
}

func (v *ValueValidator) AssertEqual(expected any, message ...string) *ValueValidator {
	return v.Check(Equal(expected), message...)
}

func (v *ValueValidator) AssertStrictEqual(expected any, message ...string) *ValueValidator {
	return v.Check(StrictEqual(expected), message...)
}

func (v *ValueValidator) AssertIsDate(message ...string) *ValueValidator {
	return v.Check(IsDate(), message...)
}

func (v *ValueValidator) AssertDateIsInPast(message ...string) *ValueValidator {
	return v.Check(DateInPast(v.opts.now()), message...)
}

func (v *ValueValidator) AssertDateIsInFuture(message ...string) *ValueValidator {
	return v.Check(DateInFuture(v.opts.now()), message...)
}

func (v *ValueValidator) AssertDateIsToday(message ...string) *ValueValidator {
	return v.Check(DateIsToday(v.opts.now()), message...)
}

func (v *ValueValidator) AssertCount(count int, message ...string) *ValueValidator {
	return v.Check(Count(count), message...)
}

func (v *ValueValidator) AssertInArray(set any, message ...string) *ValueValidator {
	return v.Check(InArray(set), message...)
}

func (v *ValueValidator) AssertInternalType(typeName string, message ...string) *ValueValidator {
	return v.Check(InternalType(typeName), message...)
}

func (v *ValueValidator) AssertStringStartsWith(prefix string, message ...string) *ValueValidator {
	return v.Check(StartsWith(prefix), message...)
}

func (v *ValueValidator) AssertStringEndsWith(suffix string, message ...string) *ValueValidator {
	return v.Check(EndsWith(suffix), message...)
}

func (v *ValueValidator) AssertStringContains(substr string, message ...string) *ValueValidator {
	return v.Check(Contains(substr), message...)
}

// AssertFilter passes when the text form of the subject is accepted by fn.
func (v *ValueValidator) AssertFilter(fn func(string) bool, message ...string) *ValueValidator {
	return v.Check(Filter(fn), message...)
}
