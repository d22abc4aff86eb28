package predicate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entityvalidator/pkg/predicate"
)

func TestDates(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("is date", func(t *testing.T) {
		assert.True(t, predicate.IsDate(now))
		assert.True(t, predicate.IsDate(&now))
		var nilTime *time.Time
		assert.False(t, predicate.IsDate(nilTime))
		assert.False(t, predicate.IsDate("2024-06-15"))
		assert.False(t, predicate.IsDate(nil))
	})

	t.Run("past and future are strict", func(t *testing.T) {
		assert.True(t, predicate.DateInPast(past, now))
		assert.False(t, predicate.DateInPast(now, now))
		assert.False(t, predicate.DateInPast(future, now))

		assert.True(t, predicate.DateInFuture(future, now))
		assert.False(t, predicate.DateInFuture(now, now))
		assert.False(t, predicate.DateInFuture(past, now))

		assert.False(t, predicate.DateInPast("yesterday", now))
	})

	t.Run("today uses the reference location", func(t *testing.T) {
		assert.True(t, predicate.DateIsToday(past, now))
		assert.True(t, predicate.DateIsToday(&future, now))
		assert.False(t, predicate.DateIsToday(now.AddDate(0, 0, 1), now))
		assert.False(t, predicate.DateIsToday(now.AddDate(0, 0, -1), now))

		// 23:30 UTC on the 15th is already the 16th in UTC+2.
		late := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)
		east := time.FixedZone("UTC+2", 2*3600)
		assert.True(t, predicate.DateIsToday(late, now))
		assert.False(t, predicate.DateIsToday(late, now.In(east)))
		assert.True(t, predicate.DateIsToday(late, time.Date(2024, 6, 16, 1, 0, 0, 0, east)))
	})
}
