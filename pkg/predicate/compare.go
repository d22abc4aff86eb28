package predicate

import (
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Number converts v to an exact arbitrary-precision value. Go integers and
// floats convert directly; strings convert when they hold a finite number.
// NaN has no ordering and is rejected.
func Number(v any) (*big.Float, bool) {
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return nil, false
		}
		return new(big.Float).SetFloat64(f), true
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return nil, false
		}
		if i, ok := new(big.Int).SetString(s, 10); ok {
			return new(big.Float).SetInt(i), true
		}
		f, err := cast.ToFloat64E(s)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return new(big.Float).SetFloat64(f), true
	default:
		return nil, false
	}
}

// Compare returns -1, 0 or +1 comparing v with bound numerically. The second
// result is false when either side is not a number.
func Compare(v, bound any) (int, bool) {
	a, ok := Number(v)
	if !ok {
		return 0, false
	}
	b, ok := Number(bound)
	if !ok {
		return 0, false
	}
	return a.Cmp(b), true
}

// GreaterThan reports v > bound.
func GreaterThan(v, bound any) bool {
	c, ok := Compare(v, bound)
	return ok && c > 0
}

// GreaterOrEqual reports v >= bound.
func GreaterOrEqual(v, bound any) bool {
	c, ok := Compare(v, bound)
	return ok && c >= 0
}

// LessThan reports v < bound.
func LessThan(v, bound any) bool {
	c, ok := Compare(v, bound)
	return ok && c < 0
}

// LessOrEqual reports v <= bound.
func LessOrEqual(v, bound any) bool {
	c, ok := Compare(v, bound)
	return ok && c <= 0
}

// StrictEqual reports whether v and ref have the same dynamic type and value.
// Times compare as instants.
func StrictEqual(v, ref any) bool {
	if v == nil || ref == nil {
		return v == nil && ref == nil
	}
	if reflect.TypeOf(v) != reflect.TypeOf(ref) {
		return false
	}
	if a, ok := v.(time.Time); ok {
		return a.Equal(ref.(time.Time))
	}
	return reflect.DeepEqual(v, ref)
}

// Equal is loose, type-coercing equality. When either side is a bool both
// sides compare by truthiness: null, "", "0", false, zero and empty
// collections are false.
func Equal(v, ref any) bool {
	if StrictEqual(v, ref) {
		return true
	}

	if IsNull(v) || IsNull(ref) {
		return IsNull(v) && IsNull(ref)
	}

	if isBool(v) || isBool(ref) {
		return falsy(v) == falsy(ref)
	}

	if isNumber(v) || isNumber(ref) {
		c, ok := Compare(v, ref)
		return ok && c == 0
	}

	if isList(v) && isList(ref) {
		return listEqual(reflect.ValueOf(v), reflect.ValueOf(ref))
	}

	a, okA := Text(v)
	b, okB := Text(ref)
	return okA && okB && a == b
}

// InArray reports whether some element of set loosely equals v. Slices,
// arrays and map values are searched; any other set never matches.
func InArray(v any, set any) bool {
	if set == nil {
		return false
	}

	rv := reflect.ValueOf(set)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if Equal(v, rv.Index(i).Interface()) {
				return true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if Equal(v, iter.Value().Interface()) {
				return true
			}
		}
	}
	return false
}

// falsy is IsEmpty plus the string "0", which is false in a boolean context.
func falsy(v any) bool {
	if IsEmpty(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.String() == "0"
}

func isBool(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isList(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		_, isBytes := v.([]byte)
		return !isBytes
	default:
		return false
	}
}

func listEqual(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		if !Equal(a.Index(i).Interface(), b.Index(i).Interface()) {
			return false
		}
	}
	return true
}
