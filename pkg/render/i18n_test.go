package render

import (
	"errors"
	"testing"
)

func TestTranslateFallsBackToFormatting(t *testing.T) {
	if got := Translate(nil, "en", "Edit %s", "Widget"); got != "Edit Widget" {
		t.Fatalf("got %q", got)
	}
	if got := Translate(nil, "en", "Submit"); got != "Submit" {
		t.Fatalf("got %q", got)
	}

	failing := TranslatorFunc(func(string, string, ...any) (string, error) {
		return "", errors.New("boom")
	})
	if got := Translate(failing, "fr", "New %s", "Widget"); got != "New Widget" {
		t.Fatalf("got %q", got)
	}
}

func TestCatalogTranslatorLocaleFallback(t *testing.T) {
	catalog := CatalogTranslator{
		"pt":    {"Edit %s": "Editar %s"},
		"pt-BR": {"Submit": "Enviar"},
	}

	if got := Translate(catalog, "pt_br", "Submit"); got != "Enviar" {
		t.Fatalf("regional lookup got %q", got)
	}
	if got := Translate(catalog, "pt-BR", "Edit %s", "Widget"); got != "Editar Widget" {
		t.Fatalf("base fallback got %q", got)
	}
	if _, err := catalog.Translate("de", "Submit"); err == nil {
		t.Fatalf("expected missing translation error")
	}
}

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"en_us": "en-US",
		"pt-br": "pt-BR",
		"":      "",
	}
	for in, want := range cases {
		if got := NormalizeLocale(in); got != want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNilTranslatorFunc(t *testing.T) {
	var fn TranslatorFunc
	if _, err := fn.Translate("en", "x"); !errors.Is(err, ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", err)
	}
}
