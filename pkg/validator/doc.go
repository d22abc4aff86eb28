// Package validator accumulates failed assertions about values and entity
// fields instead of failing fast.
//
// There are four validator shapes, built on the predicates of
// package predicate:
//
//   - Validator: a free-form error sink. Every assertion takes the value it
//     checks, so one Validator can collect errors for unrelated values.
//   - ValueValidator: bound to a single subject at construction.
//   - FieldValidator: one named field. Value(v) returns the ValueValidator
//     for v, reusing it for equal values.
//   - EntityValidator: the top-level aggregate owning field validators and
//     bare value validators in registration order.
//
// Assertions return the validator they were called on, so checks chain:
//
//	v := validator.NewEntity()
//	v.FieldValue("email", form.Email).
//		AssertNotEmpty().
//		AssertStringIsEmail()
//	v.FieldValue("password", form.Password).
//		AssertMinLength(8, "password must contain at least 8 characters")
//
//	if v.HasError() {
//		for field, messages := range v.ErrorsByField() {
//			// render messages next to the field
//		}
//	}
//
// A failed assertion appends exactly one message; a passing one has no
// effect. Type mismatches (a length check on a number, a date check on a
// string) count as failures and never panic. Errors are never removed, so
// once HasError reports true it stays true.
//
// # Messages
//
// The optional trailing message argument replaces the default text. Default
// messages come from embedded catalogues (English and French) rendered through
// package i18n, for example:
//
//	Failed asserting that the field 'email' value 'not-an-email' is an email
//
// Use WithLanguage to pick a catalogue and WithTranslator to supply your own.
// Every failure is also available as a ValidationError carrying the field
// name, the translation key and its parameters.
//
// # Rules
//
// Each AssertX method is a shortcut for Check with a Rule built by the
// constructor of the same name (IsEmail, MinLength, InArray, ...). Custom
// rules are plain values:
//
//	even := validator.Rule{
//		Name:     "even",
//		Template: "'%{value}' is even",
//		Check: func(v any) bool {
//			n, ok := v.(int)
//			return ok && n%2 == 0
//		},
//	}
//	validator.NewValue(3).Check(even)
//
// # Time
//
// Date assertions read the clock once per call. Inject a Clock with WithClock
// and a timezone with WithLocation to make them deterministic.
//
// # Configuration
//
// LoadConfig reads VALIDATOR_LANGUAGE, VALIDATOR_TIMEZONE,
// VALIDATOR_LOG_FAILURES, VALIDATOR_LOG_LEVEL and VALIDATOR_LOG_FORMAT;
// Config.Options turns them into options.
//
// # Concurrency
//
// Validators are not safe for concurrent use. Build one tree per validation
// pass. The built-in translator is shared and read-only.
package validator
