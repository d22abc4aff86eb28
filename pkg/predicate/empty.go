package predicate

import "reflect"

// IsNull reports whether v is nil or a typed nil (pointer, map, slice, func,
// channel or interface).
func IsNull(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// NotNull is the negation of IsNull.
func NotNull(v any) bool {
	return !IsNull(v)
}

// IsEmpty reports whether v is falsy-empty: null, "", false, numeric zero, or a
// collection without elements. Structs and non-nil pointers are never empty.
func IsEmpty(v any) bool {
	if IsNull(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	default:
		return false
	}
}

// NotEmpty is the negation of IsEmpty.
func NotEmpty(v any) bool {
	return !IsEmpty(v)
}

// IsArray reports whether v is a list or mapping container.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// Len returns the element count of a slice, array, map or channel.
func Len(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// Count reports whether v is countable and holds exactly n elements.
func Count(v any, n int) bool {
	l, ok := Len(v)
	return ok && l == n
}

// TypeName returns the runtime type tag of v, "nil" for an untyped nil.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// InternalType reports whether the runtime type of v is name. Both the full
// type string ("[]int", "time.Time") and the kind ("slice", "struct") match.
func InternalType(v any, name string) bool {
	if v == nil {
		return name == "nil"
	}
	t := reflect.TypeOf(v)
	return t.String() == name || t.Kind().String() == name
}
