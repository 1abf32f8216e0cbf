package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/contentadmin/internal/services/admin/i18n"
)

const csrfInvalidKey = "admin.error.csrf_invalid"

// requireSameOriginForMutations rejects unsafe requests whose Origin or
// Referer does not match the admin host.
func (h *Handler) requireSameOriginForMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}
		loc, _ := h.localizer(w, r)
		if !requireSameOrigin(w, r, loc) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *i18n.Localizer) bool {
	if r == nil {
		http.Error(w, csrfMessage(loc), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, csrfMessage(loc), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, csrfMessage(loc), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, csrfMessage(loc), http.StatusForbidden)
	return false
}

func csrfMessage(loc *i18n.Localizer) string {
	if loc == nil {
		return "forbidden"
	}
	return loc.Sprintf(csrfInvalidKey)
}

func sameOrigin(rawURL string, r *http.Request) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" && !strings.EqualFold(parsed.Scheme, requestScheme(r)) {
		return false
	}
	return true
}

func requestScheme(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); forwarded != "" {
		scheme, _, _ := strings.Cut(forwarded, ",")
		return strings.ToLower(strings.TrimSpace(scheme))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
