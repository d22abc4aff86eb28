package predicate_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entityvalidator/pkg/predicate"
)

func TestNumericComparisons(t *testing.T) {
	t.Run("mixed numeric types", func(t *testing.T) {
		assert.True(t, predicate.GreaterThan(5, 3))
		assert.False(t, predicate.GreaterThan(int64(5), 5.0))
		assert.True(t, predicate.GreaterOrEqual(5, 5))
		assert.True(t, predicate.LessThan(2.5, 3))
		assert.True(t, predicate.LessOrEqual(uint8(3), 3))
		assert.False(t, predicate.LessThan(3, 3))
	})

	t.Run("numeric strings are coerced", func(t *testing.T) {
		assert.True(t, predicate.GreaterThan("10", 9))
		assert.True(t, predicate.LessThan(" 1.5 ", "2"))
		assert.False(t, predicate.GreaterThan("abc", 1))
		assert.False(t, predicate.LessThan("", 1))
	})

	t.Run("large integers compare exactly", func(t *testing.T) {
		assert.True(t, predicate.GreaterThan(uint64(math.MaxUint64), int64(math.MaxInt64)))
		assert.True(t, predicate.GreaterThan(int64(math.MaxInt64), int64(math.MaxInt64-1)))
	})

	t.Run("non-numbers never compare", func(t *testing.T) {
		_, ok := predicate.Compare(math.NaN(), 1)
		assert.False(t, ok)
		assert.False(t, predicate.GreaterThan(nil, 0))
		assert.False(t, predicate.LessOrEqual([]int{1}, 5))
		assert.False(t, predicate.GreaterOrEqual(time.Now(), 0))
	})

	t.Run("infinite strings are not numbers", func(t *testing.T) {
		for _, s := range []string{"inf", "Infinity", "+Inf", "-infinity"} {
			_, ok := predicate.Number(s)
			assert.False(t, ok, s)
			assert.False(t, predicate.GreaterThan(s, 0), s)
			assert.False(t, predicate.LessThan(s, 0), s)
			assert.False(t, predicate.GreaterOrEqual(s, 18), s)
		}
	})
}

func TestStrictEqual(t *testing.T) {
	assert.True(t, predicate.StrictEqual(1, 1))
	assert.True(t, predicate.StrictEqual("a", "a"))
	assert.True(t, predicate.StrictEqual([]int{1, 2}, []int{1, 2}))
	assert.True(t, predicate.StrictEqual(nil, nil))

	assert.False(t, predicate.StrictEqual(1, int64(1)))
	assert.False(t, predicate.StrictEqual(1, 1.0))
	assert.False(t, predicate.StrictEqual(1, "1"))
	assert.False(t, predicate.StrictEqual(nil, 0))

	t.Run("times compare as instants", func(t *testing.T) {
		utc := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		paris := utc.In(time.FixedZone("CET", 3600))
		assert.True(t, predicate.StrictEqual(utc, paris))
	})
}

func TestEqual(t *testing.T) {
	t.Run("loose matches", func(t *testing.T) {
		assert.True(t, predicate.Equal(1, 1.0))
		assert.True(t, predicate.Equal(1, "1"))
		assert.True(t, predicate.Equal(0.1, "0.1"))
		assert.True(t, predicate.Equal(true, "yes"))
		assert.True(t, predicate.Equal(false, 0))
		assert.True(t, predicate.Equal("0", false))
		assert.True(t, predicate.Equal(false, ""))
		assert.True(t, predicate.Equal(nil, nil))
		assert.True(t, predicate.Equal([]int{1, 2}, []string{"1", "2"}))
		assert.True(t, predicate.Equal(email("a@b.co"), "a@b.co"))
	})

	t.Run("loose mismatches", func(t *testing.T) {
		assert.False(t, predicate.Equal("a", "b"))
		assert.False(t, predicate.Equal(nil, 0))
		assert.False(t, predicate.Equal(1, "one"))
		assert.False(t, predicate.Equal(true, 0))
		assert.False(t, predicate.Equal(true, "0"))
		assert.False(t, predicate.Equal("00", false))
		assert.False(t, predicate.Equal([]int{1}, []int{1, 2}))
	})
}

func TestInArray(t *testing.T) {
	assert.True(t, predicate.InArray(2, []int{1, 2, 3}))
	assert.True(t, predicate.InArray("2", []int{1, 2}))
	assert.True(t, predicate.InArray("b", [2]string{"a", "b"}))
	assert.True(t, predicate.InArray(1, map[string]int{"a": 1}))

	assert.False(t, predicate.InArray(5, []int{1}))
	assert.False(t, predicate.InArray(1, "abc"))
	assert.False(t, predicate.InArray(1, nil))
}
