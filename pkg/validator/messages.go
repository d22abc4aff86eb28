package validator

import (
	"context"
	"embed"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/entityvalidator/pkg/i18n"
	"github.com/dmitrymomot/entityvalidator/pkg/predicate"
)

const (
	subjectKey      = "validator.subject"
	fieldSubjectKey = "validator.field_subject"
	assertionPrefix = "validator.assertion."

	subjectTemplate      = "Failed asserting that %{assertion}"
	fieldSubjectTemplate = "Failed asserting that the field '%{field}' value %{assertion}"
)

//go:embed messages/*.yaml
var catalogueFS embed.FS

var defaultTranslator = sync.OnceValues(func() (*i18n.Translator, error) {
	return i18n.NewTranslator(
		context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), catalogueFS, "messages"),
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithNoLogging(),
	)
})

// DefaultTranslator returns the translator over the built-in message
// catalogues (en, fr). It is loaded once and safe for concurrent use.
func DefaultTranslator() (*i18n.Translator, error) {
	return defaultTranslator()
}

func mustDefaultTranslator() *i18n.Translator {
	t, err := defaultTranslator()
	if err != nil {
		panic(fmt.Errorf("validator: loading built-in messages: %w", err))
	}
	return t
}

// TranslationKey returns the catalogue key for a rule name.
func TranslationKey(ruleName string) string {
	return assertionPrefix + ruleName
}

// render builds the default failure for rule evaluated against value.
func (o *options) render(field string, rule Rule, value any) ValidationError {
	params := describe(value)
	for k, v := range rule.Params {
		params[k] = display(v)
	}

	tmpl := rule.Template
	if tmpl == "" {
		tmpl = rule.Name
	}
	key := TranslationKey(rule.Name)
	assertion := o.text(key, tmpl, flatten(params)...)

	var msg string
	if field == "" {
		msg = o.text(subjectKey, subjectTemplate, "assertion", assertion)
	} else {
		msg = o.text(fieldSubjectKey, fieldSubjectTemplate, "field", field, "assertion", assertion)
	}

	values := make(map[string]any, len(rule.Params)+2)
	for k, v := range rule.Params {
		values[k] = v
	}
	values["value"] = value
	if field != "" {
		values["field"] = field
	}

	return ValidationError{
		Field:             field,
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// text renders key from the configured translator, then from the built-in
// catalogues, and finally renders fallback itself.
func (o *options) text(key, fallback string, args ...string) string {
	translators := []*i18n.Translator{o.translator}
	if builtin, err := defaultTranslator(); err == nil && builtin != o.translator {
		translators = append(translators, builtin)
	}
	for _, t := range translators {
		if t.HasTranslation(o.language, key) || t.HasTranslation(t.DefaultLanguage(), key) {
			return t.T(o.language, key, args...)
		}
	}
	return o.translator.Td(o.language, key, fallback, args...)
}

// describe returns the placeholders derived from the subject itself.
func describe(value any) map[string]string {
	params := map[string]string{
		"value":  display(value),
		"type":   predicate.TypeName(value),
		"length": "n/a",
		"count":  "n/a",
	}
	if l, ok := predicate.Length(value); ok {
		params["length"] = strconv.Itoa(l)
	}
	if n, ok := predicate.Len(value); ok {
		params["count"] = strconv.Itoa(n)
	}
	return params
}

// display renders a value for humans: text as-is, dates in RFC 3339, null
// for nil.
func display(v any) string {
	if predicate.IsNull(v) {
		return "null"
	}
	if t, ok := predicate.AsTime(v); ok {
		return t.Format(time.RFC3339)
	}
	if s, ok := predicate.Text(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// listing joins the elements of a slice or array with ", ".
func listing(set any) string {
	if predicate.IsNull(set) {
		return ""
	}
	rv := reflect.ValueOf(set)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return display(set)
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = display(rv.Index(i).Interface())
	}
	return strings.Join(parts, ", ")
}

func flatten(params map[string]string) []string {
	args := make([]string, 0, len(params)*2)
	for k, v := range params {
		args = append(args, k, v)
	}
	return args
}
