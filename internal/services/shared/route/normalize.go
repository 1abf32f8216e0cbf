package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash canonicalizes request paths by stripping trailing "/"
// characters, keeping escaped segments and the query string.
//
// Reads are redirected with 301; other methods get 308 so the browser replays
// the form body. It returns true when a redirect was written.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	escaped := r.URL.EscapedPath()
	canonical := strings.TrimRight(escaped, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == escaped {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	status := http.StatusMovedPermanently
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		status = http.StatusPermanentRedirect
	}
	http.Redirect(w, r, canonical, status)
	return true
}
