package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/contentadmin/internal/services/admin/i18n"
	"github.com/louisbranch/contentadmin/internal/services/admin/module/contenttypes"
	"github.com/louisbranch/contentadmin/internal/services/admin/storage"
	"github.com/louisbranch/contentadmin/internal/services/admin/templates"
	"github.com/louisbranch/contentadmin/internal/services/admin/transport/httpmux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
)

// defaultContentLocale is the locale kept when localization is disabled.
const defaultContentLocale = "en"

// HandlerConfig holds the collaborators of the admin HTTP surface.
type HandlerConfig struct {
	// DefaultLocale is the content locale that survives a disable.
	DefaultLocale string
	// Auth requires operator tokens when its secret is set.
	Auth AuthConfig
}

// Handler routes admin requests.
type Handler struct {
	store         storage.Store
	defaultLocale string
	localizers    map[string]*i18n.Localizer
	tracer        trace.Tracer
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(store storage.Store, cfg HandlerConfig) (http.Handler, error) {
	h, err := newHandler(store, cfg)
	if err != nil {
		return nil, err
	}
	return h.routes(cfg.Auth), nil
}

func newHandler(store storage.Store, cfg HandlerConfig) (*Handler, error) {
	if store == nil {
		return nil, errors.New("admin store is required")
	}
	defaultLocale := strings.TrimSpace(cfg.DefaultLocale)
	if defaultLocale == "" {
		defaultLocale = defaultContentLocale
	}

	localizers := make(map[string]*i18n.Localizer, len(i18n.Supported()))
	for _, tag := range i18n.Supported() {
		loc, err := i18n.NewLocalizer(tag)
		if err != nil {
			return nil, fmt.Errorf("load %s messages: %w", tag, err)
		}
		localizers[tag.String()] = loc
	}

	return &Handler{
		store:         store,
		defaultLocale: defaultLocale,
		localizers:    localizers,
		tracer:        otel.Tracer(httpmux.TracerName),
	}, nil
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes(auth AuthConfig) http.Handler {
	adminMux := http.NewServeMux()
	contenttypes.RegisterRoutes(adminMux, h)

	rootMux := http.NewServeMux()
	httpmux.MountAdminRoutes(rootMux, h.requireSameOriginForMutations(adminMux))
	return httpmux.WithTracing(requireAuth(rootMux, auth))
}

// localizer resolves the request language, persisting an explicit choice.
func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*i18n.Localizer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return h.localizerFor(tag), tag.String()
}

func (h *Handler) localizerFor(tag language.Tag) *i18n.Localizer {
	if loc, ok := h.localizers[tag.String()]; ok {
		return loc
	}
	return h.localizers[i18n.Default().String()]
}

func (h *Handler) pageContext(lang string, loc *i18n.Localizer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
}
