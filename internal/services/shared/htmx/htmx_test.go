package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func staticComponent(body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

func TestIsHTMXRequest(t *testing.T) {
	t.Run("missing_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(nil); got {
			t.Fatalf("IsHTMXRequest(nil) = true, want false")
		}
	})

	t.Run("true_request_is_htmx", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)
		r.Header.Set(RequestHeaderKey, "true")
		if got := IsHTMXRequest(r); !got {
			t.Fatalf("IsHTMXRequest(request) = false, want true")
		}
	})
}

func TestTitleTag(t *testing.T) {
	t.Parallel()
	got := TitleTag(`Content <Admin>`)
	want := "<title>Content &lt;Admin&gt;</title>"
	if got != want {
		t.Fatalf("TitleTag(...) = %q, want %q", got, want)
	}
	if got := TitleTag("  "); got != "" {
		t.Fatalf("TitleTag(blank) = %q, want empty", got)
	}
}

func TestTriggerAppendsEvents(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	Trigger(rec, "localizationChanged")
	Trigger(rec, "toast")
	Trigger(rec, " ")
	if got := rec.Header().Get(TriggerHeaderKey); got != "localizationChanged, toast" {
		t.Fatalf("HX-Trigger = %q", got)
	}
}

func TestRenderPageForNonHTMXUsesFullRender(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/content-types", nil)
	rec := httptest.NewRecorder()

	RenderPage(rec, req, staticComponent("fragment"), staticComponent("<html><main>full</main></html>"), "Title")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "<html><main>full</main></html>" {
		t.Fatalf("body = %q", got)
	}
}

func TestRenderPageForHTMXUsesFragmentWithTitle(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/content-types", nil)
	req.Header.Set(RequestHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPage(rec, req, staticComponent("<div>fragment</div>"), staticComponent("<main>full</main>"), "Content Types")

	want := "<title>Content Types</title><div>fragment</div>"
	if got := rec.Body.String(); got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestRenderPageForHTMXExtractsMainWhenFragmentMissing(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/content-types", nil)
	req.Header.Set(RequestHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPage(rec, req, nil, staticComponent(`<html><body><main class="x"><p>inner</p></main></body></html>`), "")

	if got := rec.Body.String(); got != "<p>inner</p>" {
		t.Fatalf("body = %q, want %q", got, "<p>inner</p>")
	}
}

func TestRenderPageStatusWritesStatus(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodPost, "/content-types", nil)
	req.Header.Set(RequestHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPageStatus(rec, req, http.StatusConflict, staticComponent("conflict"), nil, "")

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if !strings.Contains(rec.Body.String(), "conflict") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestRenderPageWithoutComponentsWritesNothing(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RenderPage(rec, req, nil, nil, "")

	if rec.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rec.Body.String())
	}
}
