package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// ErrLanguageNotSupported indicates that no catalogue exists for Lang.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}

// Translator renders templates from language catalogues.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads catalogues from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "catalogues loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no catalogues provided")
		return nil
	}

	for lang, catalogue := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if catalogue == nil {
			return fmt.Errorf("%w: %s", ErrNilCatalogue, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes with a catalogue.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasLanguage reports whether a catalogue exists for lang.
func (t *Translator) HasLanguage(lang string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.translations[lang]
	return ok
}

// HasTranslation reports whether key resolves to a value in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalogue, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalogue, key)
	return ok
}

// T renders key in lang with args given as name/value pairs.
//
// Resolution order: lang, then the default language, then (when fallback to
// key is enabled) the key itself used as the template.
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Render(lang, key, pairs(args))
}

// Td renders key in lang, using defaultValue as the template when the key
// cannot be resolved in any language.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return namedSprintf(tmpl, pairs(args))
	}
	return namedSprintf(defaultValue, pairs(args))
}

// Render is T with parameters given as a map.
func (t *Translator) Render(lang, key string, params map[string]string) string {
	if tmpl, ok := t.resolve(lang, key); ok {
		return namedSprintf(tmpl, params)
	}
	if t.fallbackToKey {
		return namedSprintf(key, params)
	}
	return ""
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range []string{lang, t.defaultLang} {
		catalogue, ok := t.translations[l]
		if !ok {
			if t.missingLogMode && l == lang {
				t.logger.Warn("language not supported", "lang", lang, "key", key)
			}
			continue
		}

		val, ok := lookup(catalogue, key)
		if !ok {
			if t.missingLogMode {
				t.logger.Warn("translation not found", "lang", l, "key", key)
			}
			continue
		}

		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		default:
			if t.missingLogMode {
				t.logger.Warn("translation is not a string", "lang", l, "key", key, "type", fmt.Sprintf("%T", v))
			}
		}
	}
	return "", false
}

// lookup walks a nested map using a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch nested := next.(type) {
		case map[string]any:
			current = nested
		case map[any]any:
			current = make(map[string]any, len(nested))
			for k, v := range nested {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// pairs turns name/value arguments into a map. A trailing odd argument is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders in one pass; unknown names stay.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
