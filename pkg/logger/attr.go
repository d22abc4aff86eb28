package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated field name under the key "field".
// An empty name yields an empty Attr so bare values log without it.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Assertion records the failed assertion name under the key "assertion".
func Assertion(name string) slog.Attr {
	return slog.String("assertion", name)
}

// Message records an error message under the key "message".
func Message(msg string) slog.Attr {
	return slog.String("message", msg)
}

// ErrorCount records the accumulated error count under the key "error_count".
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Fields records a list of field names under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}
