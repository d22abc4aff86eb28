package validator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entityvalidator/pkg/i18n"
	"github.com/dmitrymomot/entityvalidator/pkg/logger"
	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

func TestDefaultTranslator(t *testing.T) {
	tr, err := validator.DefaultTranslator()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "fr"}, tr.SupportedLanguages())

	again, err := validator.DefaultTranslator()
	require.NoError(t, err)
	assert.Same(t, tr, again)

	t.Run("every rule has a message in every language", func(t *testing.T) {
		rules := []string{
			"condition", "is_email", "is_url", "is_ip", "is_uuid", "not_empty", "is_empty",
			"not_null", "is_null", "is_array", "matches", "min_length", "max_length",
			"greater_than", "greater_than_or_equal", "less_than", "less_than_or_equal",
			"equal", "strict_equal", "is_date", "date_in_past", "date_in_future",
			"date_is_today", "count", "in_array", "internal_type", "starts_with",
			"ends_with", "contains", "filter",
		}
		for _, lang := range []string{"en", "fr"} {
			for _, name := range rules {
				assert.True(t, tr.HasTranslation(lang, validator.TranslationKey(name)), "%s: %s", lang, name)
			}
			assert.True(t, tr.HasTranslation(lang, "validator.subject"), lang)
			assert.True(t, tr.HasTranslation(lang, "validator.field_subject"), lang)
		}
	})
}

func TestTranslationKey(t *testing.T) {
	assert.Equal(t, "validator.assertion.is_email", validator.TranslationKey("is_email"))
}

func TestWithLanguage(t *testing.T) {
	t.Run("french catalogue", func(t *testing.T) {
		v := validator.NewValue("abc", validator.WithLanguage("fr")).AssertMinLength(5)
		assert.Equal(t, []string{
			"Échec de l'assertion : 'abc' a une longueur minimale de 5 (longueur 3)",
		}, v.Errors())
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		v := validator.NewValue("abc", validator.WithLanguage("de")).AssertMinLength(5)
		assert.Equal(t, []string{
			"Failed asserting that 'abc' has a minimum length of 5 (actual length 3)",
		}, v.Errors())
	})

	t.Run("custom messages are never translated", func(t *testing.T) {
		v := validator.NewValue("abc", validator.WithLanguage("fr")).AssertMinLength(5, "trop court")
		assert.Equal(t, []string{"trop court"}, v.Errors())
	})
}

func TestWithTranslator(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"en": {
				"validator": map[string]any{
					"field_subject": "%{field}: %{assertion}",
					"assertion": map[string]any{
						"is_email": "must be a valid email address",
					},
				},
			},
		},
	})
	require.NoError(t, err)

	v := validator.NewEntity(validator.WithTranslator(tr))
	v.FieldValue("email", "x").AssertStringIsEmail()
	v.Value("x").AssertStringIsEmail()
	v.Value("abc").AssertMaxLength(1)

	assert.Equal(t, []string{
		"email: must be a valid email address",
		"Failed asserting that must be a valid email address",
		"Failed asserting that 'abc' has a maximum length of 1 (actual length 3)",
	}, v.Errors(), "missing keys fall back to the built-in catalogue")
}

func TestPlaceholdersInValuesAreNotExpanded(t *testing.T) {
	v := validator.NewEntity()
	v.FieldValue("name", "%{field}").AssertStringIsEmail()

	assert.Equal(t, []string{
		"Failed asserting that the field 'name' value '%{field}' is an email",
	}, v.Errors())
}

func TestWithLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	v := validator.NewEntity(validator.WithLogger(log))
	v.FieldValue("email", "x").AssertStringIsEmail("bad email")
	v.FieldValue("email", "bob@example.com").AssertStringIsEmail()
	require.Error(t, v.Err())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var failure map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &failure))
	assert.Equal(t, "DEBUG", failure["level"])
	assert.Equal(t, "assertion failed", failure["msg"])
	assert.Equal(t, "email", failure["field"])
	assert.Equal(t, "is_email", failure["assertion"])
	assert.Equal(t, "bad email", failure["message"])

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &summary))
	assert.Equal(t, "entity validation failed", summary["msg"])
	assert.Equal(t, float64(1), summary["error_count"])
	assert.Equal(t, []any{"email"}, summary["fields"])
}

func TestWithClock(t *testing.T) {
	now := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC)
	clock := validator.WithClock(validator.FixedClock(now))

	t.Run("date assertions use the injected clock", func(t *testing.T) {
		v := validator.New(clock).
			AssertDateIsInPast(now.Add(-time.Second)).
			AssertDateIsInFuture(now.Add(time.Second)).
			AssertDateIsToday(now.Add(-23 * time.Hour))
		assert.False(t, v.HasError(), "unexpected errors: %v", v.Errors())

		v.AssertDateIsInPast(now)
		assert.Equal(t, 1, v.Count(), "now itself is not in the past")
	})

	t.Run("location decides the calendar day", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		v := validator.New(clock, validator.WithLocation(tokyo)).
			AssertDateIsToday(time.Date(2024, time.March, 11, 1, 0, 0, 0, time.UTC))
		assert.False(t, v.HasError(), "23:30 UTC is already the 11th in Tokyo")

		v = validator.New(clock).
			AssertDateIsToday(time.Date(2024, time.March, 11, 1, 0, 0, 0, time.UTC))
		assert.True(t, v.HasError())
	})

	t.Run("clock is read on every call", func(t *testing.T) {
		current := now
		v := validator.New(validator.WithClock(validator.ClockFunc(func() time.Time { return current })))
		target := now.Add(time.Minute)

		v.AssertDateIsInFuture(target)
		current = now.Add(time.Hour)
		v.AssertDateIsInFuture(target)
		assert.Equal(t, 1, v.Count())
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			validator.New(
				validator.WithClock(nil),
				validator.WithLocation(nil),
				validator.WithTranslator(nil),
				validator.WithLogger(nil),
				validator.WithLanguage(""),
			).AssertDateIsToday(time.Now())
		})
	})
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := validator.SystemClock().Now()
	assert.False(t, got.Before(before))
}
