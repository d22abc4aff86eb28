package predicate

import "time"

// AsTime unwraps a time.Time or a non-nil *time.Time.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// IsDate reports whether v is a date/time instance.
func IsDate(v any) bool {
	_, ok := AsTime(v)
	return ok
}

// DateInPast reports whether v is a date strictly before now.
func DateInPast(v any, now time.Time) bool {
	t, ok := AsTime(v)
	return ok && t.Before(now)
}

// DateInFuture reports whether v is a date strictly after now.
func DateInFuture(v any, now time.Time) bool {
	t, ok := AsTime(v)
	return ok && t.After(now)
}

// DateIsToday reports whether v falls on the same calendar day as now, both
// read in now's location.
func DateIsToday(v any, now time.Time) bool {
	t, ok := AsTime(v)
	if !ok {
		return false
	}

	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
