package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		path     string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{
			name:     "no trailing slash",
			path:     "/content-types",
			wantCode: http.StatusOK,
		},
		{
			name:     "trailing slash",
			path:     "/content-types/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/content-types",
		},
		{
			name:     "keeps query",
			path:     "/content-types/api::article/?lang=pt-BR",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/content-types/api::article?lang=pt-BR",
		},
		{
			name:     "keeps escaped segments",
			path:     "/content-types/a%2Fb/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/content-types/a%2Fb",
		},
		{
			name:     "post keeps method",
			method:   http.MethodPost,
			path:     "/content-types/api::article/localization/",
			wantOK:   true,
			wantCode: http.StatusPermanentRedirect,
			wantLoc:  "/content-types/api::article/localization",
		},
		{
			name:     "root path",
			path:     "/",
			wantCode: http.StatusOK,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			method := tc.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tc.path, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestRedirectTrailingSlashNilArgs(t *testing.T) {
	t.Parallel()

	if RedirectTrailingSlash(nil, httptest.NewRequest(http.MethodGet, "/x/", nil)) {
		t.Fatal("expected false for nil writer")
	}
	if RedirectTrailingSlash(httptest.NewRecorder(), nil) {
		t.Fatal("expected false for nil request")
	}
}
