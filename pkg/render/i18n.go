package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrMissingTranslator is reported when a translation is requested without a
// configured Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves message keys for a locale. Keys are printf formats
// ("Edit %s"); implementations receive the format arguments.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	if f == nil {
		return "", ErrMissingTranslator
	}
	return f(locale, key, args...)
}

// CatalogTranslator serves translations from an in-memory catalog keyed by
// locale then message key. Lookups fall back from regional to base locales
// ("pt-BR" to "pt").
type CatalogTranslator map[string]map[string]string

// Translate implements Translator.
func (c CatalogTranslator) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeFallbacks(locale) {
		if format, ok := c[candidate][key]; ok && strings.TrimSpace(format) != "" {
			return fmt.Sprintf(format, args...), nil
		}
	}
	return "", fmt.Errorf("render: no translation for %q (%s)", key, locale)
}

// Translate resolves key through t, falling back to formatting key itself
// when t is nil or fails. Errors never surface: a missing translation is not a
// rendering failure.
func Translate(t Translator, locale, key string, args ...any) string {
	if t != nil {
		if msg, err := t.Translate(locale, key, args...); err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf(key, args...)
}

// NormalizeLocale canonicalises a BCP 47 locale ("en_us" becomes "en-US").
// Unparseable input is returned trimmed.
func NormalizeLocale(locale string) string {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return trimmed
	}
	return tag.String()
}

func localeFallbacks(locale string) []string {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return []string{""}
	}
	out := []string{normalized}
	tag, err := language.Parse(normalized)
	if err != nil {
		return out
	}
	if base, confidence := tag.Base(); confidence != language.No && base.String() != normalized {
		out = append(out, base.String())
	}
	return out
}
