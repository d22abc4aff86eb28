package predicate

import (
	"net"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Text returns the text form of v and whether it has one.
func Text(v any) (string, bool) {
	if IsNull(v) {
		return "", false
	}

	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}

	// Named string types are not handled by cast.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), true
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// IsText reports whether v is a string (including named string types).
func IsText(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.String
}

// Length returns the number of runes in v when v is text.
func Length(v any) (int, bool) {
	if !IsText(v) {
		return 0, false
	}
	return utf8.RuneCountInString(reflect.ValueOf(v).String()), true
}

// MinLength reports whether v is text at least n runes long.
func MinLength(v any, n int) bool {
	l, ok := Length(v)
	return ok && l >= n
}

// MaxLength reports whether v is text at most n runes long.
func MaxLength(v any, n int) bool {
	l, ok := Length(v)
	return ok && l <= n
}

// IsEmail validates a bare address (no display name) using net/mail, then
// requires a dotted domain without empty labels.
func IsEmail(v any) bool {
	s, ok := Text(v)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// IsURL reports whether v is an absolute URL with both scheme and host.
func IsURL(v any) bool {
	s, ok := Text(v)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsIP reports whether v is an IPv4 or IPv6 address.
func IsIP(v any) bool {
	s, ok := Text(v)
	if !ok {
		return false
	}
	return net.ParseIP(s) != nil
}

// IsUUID reports whether v parses as a UUID in any form accepted by google/uuid.
func IsUUID(v any) bool {
	s, ok := Text(v)
	if !ok || s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// MatchesPattern compiles pattern case-insensitively and matches it against
// the text form of v. An invalid pattern never matches.
func MatchesPattern(v any, pattern string) bool {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false
	}
	return MatchesRegexp(v, re)
}

// MatchesRegexp matches a precompiled expression as-is.
func MatchesRegexp(v any, re *regexp.Regexp) bool {
	if re == nil {
		return false
	}
	s, ok := Text(v)
	return ok && re.MatchString(s)
}

// StartsWith is a Unicode-aware, case-insensitive prefix check.
func StartsWith(v any, prefix string) bool {
	s, ok := Text(v)
	return ok && strings.HasPrefix(fold(s), fold(prefix))
}

// EndsWith is a Unicode-aware, case-insensitive suffix check.
func EndsWith(v any, suffix string) bool {
	s, ok := Text(v)
	return ok && strings.HasSuffix(fold(s), fold(suffix))
}

// Contains is a Unicode-aware, case-insensitive substring check.
func Contains(v any, substr string) bool {
	s, ok := Text(v)
	return ok && strings.Contains(fold(s), fold(substr))
}

// fold normalises to NFC and applies full Unicode case folding.
// Casers are stateful, so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
