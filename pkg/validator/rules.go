package validator

import (
	"regexp"
	"time"

	"github.com/dmitrymomot/entityvalidator/pkg/predicate"
)

// Rule is a named predicate. Name selects the message template
// ("validator.assertion.<name>" in the catalogue) and Params fill its
// placeholders alongside the subject-derived value, type, length and count.
// Template is used when the catalogue has no entry for Name.
type Rule struct {
	Name     string
	Params   map[string]any
	Template string
	Check    func(value any) bool
}

// conditionRule backs Assert and ReportError calls without a message.
var conditionRule = Rule{
	Name:  "condition",
	Check: func(any) bool { return false },
}

func IsEmail() Rule {
	return Rule{Name: "is_email", Check: predicate.IsEmail}
}

func IsURL() Rule {
	return Rule{Name: "is_url", Check: predicate.IsURL}
}

func IsIP() Rule {
	return Rule{Name: "is_ip", Check: predicate.IsIP}
}

func IsUUID() Rule {
	return Rule{Name: "is_uuid", Check: predicate.IsUUID}
}

func NotEmpty() Rule {
	return Rule{Name: "not_empty", Check: predicate.NotEmpty}
}

func Empty() Rule {
	return Rule{Name: "is_empty", Check: predicate.IsEmpty}
}

func NotNull() Rule {
	return Rule{Name: "not_null", Check: predicate.NotNull}
}

func Null() Rule {
	return Rule{Name: "is_null", Check: predicate.IsNull}
}

func IsArray() Rule {
	return Rule{Name: "is_array", Check: predicate.IsArray}
}

// Matches compiles pattern case-insensitively. An invalid pattern never matches.
func Matches(pattern string) Rule {
	return Rule{
		Name:   "matches",
		Params: map[string]any{"pattern": pattern},
		Check: func(v any) bool {
			return predicate.MatchesPattern(v, pattern)
		},
	}
}

// RegExp matches a precompiled expression as-is.
func RegExp(re *regexp.Regexp) Rule {
	pattern := ""
	if re != nil {
		pattern = re.String()
	}
	return Rule{
		Name:   "matches",
		Params: map[string]any{"pattern": pattern},
		Check: func(v any) bool {
			return predicate.MatchesRegexp(v, re)
		},
	}
}

// MinLength passes for text of at least n characters, inclusive.
func MinLength(n int) Rule {
	return Rule{
		Name:   "min_length",
		Params: map[string]any{"min": n},
		Check: func(v any) bool {
			return predicate.MinLength(v, n)
		},
	}
}

// MaxLength passes for text of at most n characters, inclusive.
func MaxLength(n int) Rule {
	return Rule{
		Name:   "max_length",
		Params: map[string]any{"max": n},
		Check: func(v any) bool {
			return predicate.MaxLength(v, n)
		},
	}
}

func GreaterThan(bound any) Rule {
	return Rule{
		Name:   "greater_than",
		Params: map[string]any{"bound": bound},
		Check: func(v any) bool {
			return predicate.GreaterThan(v, bound)
		},
	}
}

func GreaterThanOrEqual(bound any) Rule {
	return Rule{
		Name:   "greater_than_or_equal",
		Params: map[string]any{"bound": bound},
		Check: func(v any) bool {
			return predicate.GreaterOrEqual(v, bound)
		},
	}
}

func LessThan(bound any) Rule {
	return Rule{
		Name:   "less_than",
		Params: map[string]any{"bound": bound},
		Check: func(v any) bool {
			return predicate.LessThan(v, bound)
		},
	}
}

func LessThanOrEqual(bound any) Rule {
	return Rule{
		Name:   "less_than_or_equal",
		Params: map[string]any{"bound": bound},
		Check: func(v any) bool {
			return predicate.LessOrEqual(v, bound)
		},
	}
}

// Equal uses loose equality (see predicate.Equal).
func Equal(expected any) Rule {
	return Rule{
		Name:   "equal",
		Params: map[string]any{"expected": expected},
		Check: func(v any) bool {
			return predicate.Equal(v, expected)
		},
	}
}

func StrictEqual(expected any) Rule {
	return Rule{
		Name:   "strict_equal",
		Params: map[string]any{"expected": expected},
		Check: func(v any) bool {
			return predicate.StrictEqual(v, expected)
		},
	}
}

func IsDate() Rule {
	return Rule{Name: "is_date", Check: predicate.IsDate}
}

func DateInPast(now time.Time) Rule {
	return Rule{
		Name:   "date_in_past",
		Params: map[string]any{"now": now},
		Check: func(v any) bool {
			return predicate.DateInPast(v, now)
		},
	}
}

func DateInFuture(now time.Time) Rule {
	return Rule{
		Name:   "date_in_future",
		Params: map[string]any{"now": now},
		Check: func(v any) bool {
			return predicate.DateInFuture(v, now)
		},
	}
}

// DateIsToday compares calendar days in now's location.
func DateIsToday(now time.Time) Rule {
	return Rule{
		Name:   "date_is_today",
		Params: map[string]any{"now": now},
		Check: func(v any) bool {
			return predicate.DateIsToday(v, now)
		},
	}
}

// Count passes for a slice, array, map or channel with exactly n elements.
func Count(n int) Rule {
	return Rule{
		Name:   "count",
		Params: map[string]any{"expected": n},
		Check: func(v any) bool {
			return predicate.Count(v, n)
		},
	}
}

// InArray passes when some element of set loosely equals the value.
func InArray(set any) Rule {
	return Rule{
		Name:   "in_array",
		Params: map[string]any{"values": listing(set)},
		Check: func(v any) bool {
			return predicate.InArray(v, set)
		},
	}
}

// InternalType matches the runtime type string ("[]int") or kind ("slice").
func InternalType(name string) Rule {
	return Rule{
		Name:   "internal_type",
		Params: map[string]any{"expected": name},
		Check: func(v any) bool {
			return predicate.InternalType(v, name)
		},
	}
}

func StartsWith(prefix string) Rule {
	return Rule{
		Name:   "starts_with",
		Params: map[string]any{"prefix": prefix},
		Check: func(v any) bool {
			return predicate.StartsWith(v, prefix)
		},
	}
}

func EndsWith(suffix string) Rule {
	return Rule{
		Name:   "ends_with",
		Params: map[string]any{"suffix": suffix},
		Check: func(v any) bool {
			return predicate.EndsWith(v, suffix)
		},
	}
}

func Contains(substr string) Rule {
	return Rule{
		Name:   "contains",
		Params: map[string]any{"substring": substr},
		Check: func(v any) bool {
			return predicate.Contains(v, substr)
		},
	}
}

// Filter passes when the value has a text form accepted by fn.
func Filter(fn func(string) bool) Rule {
	return Rule{
		Name: "filter",
		Check: func(v any) bool {
			if fn == nil {
				return false
			}
			s, ok := predicate.Text(v)
			return ok && fn(s)
		},
	}
}
