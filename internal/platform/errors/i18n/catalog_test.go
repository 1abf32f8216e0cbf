package i18n

import "testing"

func TestGetCatalogFallsBackToBaseLocale(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("fr-FR")
	if fallback != base {
		t.Fatal("expected fr-FR to share the en-US catalog")
	}
	if fallback.Locale() != "en-US" {
		t.Fatalf("Locale = %q", fallback.Locale())
	}
	if GetCatalog(" ") != base {
		t.Fatal("expected blank locale to use the base catalog")
	}
}

func TestGetCatalogFormatsEmbeddedTemplates(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en-US", want: `Content type "api::article" was not found.`},
		{locale: "pt-BR", want: `Tipo de conteúdo "api::article" não encontrado.`},
	}
	for _, tc := range tests {
		t.Run(tc.locale, func(t *testing.T) {
			got := GetCatalog(tc.locale).Format("CONTENT_TYPE_NOT_FOUND", map[string]string{"UID": "api::article"})
			if got != tc.want {
				t.Fatalf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code":   "hello {{.Name}}",
		"broken": "{{ if .Name }}",
	})

	if got := cat.Format("unknown", nil); got != "unknown" {
		t.Fatalf("unknown code = %q", got)
	}
	if got := cat.Format("code", nil); got != "hello " {
		t.Fatalf("missing metadata = %q", got)
	}
	if got := cat.Format("code", map[string]string{"Name": "ops"}); got != "hello ops" {
		t.Fatalf("with metadata = %q", got)
	}
	if got := cat.Format("broken", map[string]string{"Name": "X"}); got != "{{ if .Name }}" {
		t.Fatalf("unparsable template = %q", got)
	}
}
