package httpmux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMountAdminRoutesMountsRoot(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/content-types", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("content-types"))
	})

	MountAdminRoutes(rootMux, adminMux)

	req := httptest.NewRequest(http.MethodGet, "/content-types", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "content-types" {
		t.Fatalf("body = %q, want %q", body, "content-types")
	}
}

func TestMountAdminRoutesRedirectsRoot(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountAdminRoutes(rootMux, http.NewServeMux())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/content-types" {
		t.Fatalf("location = %q, want %q", loc, "/content-types")
	}
}

func TestMountAdminRoutesIgnoresNil(t *testing.T) {
	t.Parallel()

	MountAdminRoutes(nil, http.NewServeMux())
	MountAdminRoutes(http.NewServeMux(), nil)
}

func TestWithTracingRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	handler := WithTracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	req := httptest.NewRequest(http.MethodPost, "/content-types/api::article/localization", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "POST /content-types/api::article/localization" {
		t.Fatalf("span name = %q", span.Name())
	}
	if span.Status().Code != codes.Error {
		t.Fatalf("span status = %v, want error", span.Status().Code)
	}
	found := false
	for _, attr := range span.Attributes() {
		if string(attr.Key) == "http.response.status_code" && attr.Value.AsInt64() == http.StatusServiceUnavailable {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing status code attribute in %v", span.Attributes())
	}
}

func TestWithTracingNilHandler(t *testing.T) {
	t.Parallel()

	if WithTracing(nil) != nil {
		t.Fatal("expected nil handler")
	}
}
