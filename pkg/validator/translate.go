package validator

import (
	"embed"
	"fmt"
	"sort"
)

// Locales holds the message catalogue for every translation key emitted by
// this package, one YAML file per language under LocalesDir.
//
//go:embed locales/*.yaml
var Locales embed.FS

// LocalesDir is the directory inside Locales that holds the catalogue.
const LocalesDir = "locales"

// ReasonKeyPrefix prefixes RIFReason codes to form catalogue keys.
const ReasonKeyPrefix = "rif.reason."

// Translator resolves a translation key for a language. *i18n.Translator
// satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Localize renders the error in lang. When the cause is a RIF failure its
// translated reason is appended after a colon. Keys missing from the
// catalogue fall back to Message.
func (e ValidationError) Localize(tr Translator, lang string) string {
	msg := tr.T(lang, e.TranslationKey, translationArgs(e.TranslationValues)...)
	if msg == "" || msg == e.TranslationKey {
		msg = fmt.Sprintf("%s %s", e.Field, e.Message)
	}

	if reason := RIFReason(e.Cause); reason != "" {
		key := ReasonKeyPrefix + reason
		if detail := tr.T(lang, key); detail != "" && detail != key {
			msg += ": " + detail
		}
	}
	return msg
}

// Localize renders every error in lang, in order.
func (ve ValidationErrors) Localize(tr Translator, lang string) []string {
	out := make([]string, 0, len(ve))
	for _, e := range ve {
		out = append(out, e.Localize(tr, lang))
	}
	return out
}

// translationArgs flattens values into sorted key, value pairs.
func translationArgs(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(values)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
