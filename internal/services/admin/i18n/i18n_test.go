package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/contentadmin/internal/platform/i18n/catalog"
	"github.com/louisbranch/contentadmin/internal/services/admin/confirmtoggle"
	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantTag     language.Tag
		wantPersist bool
	}{
		{name: "query param", target: "/?lang=pt-BR", wantTag: language.BrazilianPortuguese, wantPersist: true},
		{name: "cookie", target: "/", cookie: "pt-BR", wantTag: language.BrazilianPortuguese},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", wantTag: language.BrazilianPortuguese},
		{name: "unsupported query", target: "/?lang=xx", wantTag: language.AmericanEnglish},
		{name: "default", target: "/", wantTag: language.AmericanEnglish},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.wantTag {
				t.Fatalf("tag = %v, want %v", tag, tc.wantTag)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	if tag, persist := ResolveTag(nil); tag != Default() || persist {
		t.Fatalf("ResolveTag(nil) = %v, %v", tag, persist)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.BrazilianPortuguese)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	options := LanguageOptions("pt-BR", func(tag language.Tag) string { return tag.String() + "-label" })
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if !options[1].Active || options[1].Label != "pt-BR-label" {
		t.Fatalf("options[1] = %+v", options[1])
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/content-types", "page=2", "en-US")
	if got != "/content-types?lang=en-US&page=2" {
		t.Fatalf("LanguageURL = %q", got)
	}
}

func TestLocalizerResolve(t *testing.T) {
	loc, err := NewLocalizer(language.BrazilianPortuguese)
	if err != nil {
		t.Fatalf("new localizer: %v", err)
	}

	got := loc.Resolve(confirmtoggle.Message{ID: confirmtoggle.MessageConfirm, Default: "Yes, disable"})
	if got != "Sim, desativar" {
		t.Fatalf("Resolve = %q", got)
	}
	if got := loc.Resolve(confirmtoggle.Message{ID: "missing.key", Default: "fallback"}); got != "" {
		t.Fatalf("Resolve(missing) = %q, want empty", got)
	}
	if got := confirmtoggle.Resolve(loc, confirmtoggle.Message{ID: "missing.key"}); got != "missing.key" {
		t.Fatalf("fallback Resolve = %q, want raw id", got)
	}
}

func TestLocalizerResolveKeepsPercentLiteral(t *testing.T) {
	bundle, err := catalog.LoadFromFS(fstest.MapFS{
		"locales/en-US/admin.yaml": {Data: []byte(`locale: "en-US"
namespace: "admin"
messages:
  "admin.quota": "{name} uses 100% of %s quota"
`)},
	})
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	loc, err := NewLocalizerFromBundle(bundle, language.AmericanEnglish)
	if err != nil {
		t.Fatalf("new localizer: %v", err)
	}

	got := loc.Resolve(confirmtoggle.Message{ID: "admin.quota", Values: map[string]any{"name": "Article"}})
	if got != "Article uses 100% of %s quota" {
		t.Fatalf("Resolve = %q", got)
	}
}

func TestLocalizerSprintf(t *testing.T) {
	loc, err := NewLocalizer(language.AmericanEnglish)
	if err != nil {
		t.Fatalf("new localizer: %v", err)
	}
	if got := loc.Sprintf("core.app.name"); got != "Content Admin" {
		t.Fatalf("Sprintf = %q", got)
	}
	if loc.Locale() != "en-US" {
		t.Fatalf("Locale = %q", loc.Locale())
	}
}
