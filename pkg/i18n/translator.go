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

// DefaultLanguage is used when WithDefaultLanguage is not given.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// NewTranslator loads translations from adapter and applies options.
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
	for lang, tr := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if tr == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrInvalidTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// Resolve maps a requested language to a loaded one. It tries the exact
// code, then its base tag, then the default language.
func (t *Translator) Resolve(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(lang)
}

func (t *Translator) resolve(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if _, ok := t.translations[base]; ok {
			return base
		}
	}
	if base, _, found := strings.Cut(lang, "_"); found {
		if _, ok := t.translations[base]; ok {
			return base
		}
	}
	return t.defaultLang
}

// getTranslation walks a dot-separated key through nested maps.
func getTranslation(m map[string]any, key string) (string, bool) {
	var current any = m
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = node[part]; !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}

// HasTranslation reports whether key is translated for lang exactly.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = getTranslation(langMap, key)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders with values from args, given
// as key, value pairs. Unknown placeholders are kept. An odd trailing
// argument is ignored.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting named parameters:
//
//	// "validation.rif": "%{field} must be a valid RIF"
//	tr.T("en", "validation.rif", "field", "rif") // "rif must be a valid RIF"
//
// A missing key returns the key when fallback to key is enabled, and an
// empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved := t.resolve(lang)
	if tmpl, ok := getTranslation(t.translations[resolved], key); ok {
		return namedSprintf(tmpl, args)
	}

	t.logger.Debug("missing translation", slog.String("lang", resolved), slog.String("key", key))
	if t.fallbackToKey {
		return key
	}
	return ""
}
