package contenttypes

import (
	"net/http"
	"strings"

	"github.com/louisbranch/contentadmin/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/contentadmin/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/contentadmin/internal/services/shared/route"
)

// Service defines content-type route handlers consumed by this route module.
type Service interface {
	HandleContentTypesPage(w http.ResponseWriter, r *http.Request)
	HandleContentTypeCreate(w http.ResponseWriter, r *http.Request)
	HandleContentTypeNewPage(w http.ResponseWriter, r *http.Request)
	HandleContentTypeNewLocalization(w http.ResponseWriter, r *http.Request)
	HandleContentTypeDetail(w http.ResponseWriter, r *http.Request, uid string)
	HandleLocalizationChange(w http.ResponseWriter, r *http.Request, uid string)
	HandleLocalizationConfirm(w http.ResponseWriter, r *http.Request, uid string)
	HandleLocalizationCancel(w http.ResponseWriter, r *http.Request, uid string)
}

// RegisterRoutes wires content-type routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.ContentTypes, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			service.HandleContentTypesPage(w, r)
		case http.MethodPost:
			service.HandleContentTypeCreate(w, r)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	})
	mux.HandleFunc(routepath.ContentTypesPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleContentTypePath(w, r, service)
	})
}

// HandleContentTypePath parses dynamic content-type routes and dispatches to
// service handlers.
func HandleContentTypePath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	parts, err := sharedpath.SplitEscapedPathParts(strings.TrimPrefix(r.URL.EscapedPath(), routepath.ContentTypesPrefix))
	if err != nil || len(parts) == 0 {
		http.NotFound(w, r)
		return
	}

	if parts[0] == routepath.SegmentNew {
		switch {
		case len(parts) == 1 && isRead(r):
			service.HandleContentTypeNewPage(w, r)
		case len(parts) == 2 && parts[1] == routepath.SegmentLocalization && r.Method == http.MethodPost:
			service.HandleContentTypeNewLocalization(w, r)
		case len(parts) <= 2:
			methodNotAllowed(w, allowedFor(parts)...)
		default:
			http.NotFound(w, r)
		}
		return
	}

	uid := parts[0]
	switch len(parts) {
	case 1:
		if !isRead(r) {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		service.HandleContentTypeDetail(w, r, uid)
		return
	case 2, 3:
		if parts[1] != routepath.SegmentLocalization {
			break
		}
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		if len(parts) == 2 {
			service.HandleLocalizationChange(w, r, uid)
			return
		}
		switch parts[2] {
		case routepath.SegmentConfirm:
			service.HandleLocalizationConfirm(w, r, uid)
			return
		case routepath.SegmentCancel:
			service.HandleLocalizationCancel(w, r, uid)
			return
		}
	}
	http.NotFound(w, r)
}

func isRead(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func allowedFor(parts []string) []string {
	if len(parts) == 1 {
		return []string{http.MethodGet}
	}
	return []string{http.MethodPost}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
