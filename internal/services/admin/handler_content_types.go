package admin

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/contentadmin/internal/platform/errors"
	errori18n "github.com/louisbranch/contentadmin/internal/platform/errors/i18n"
	"github.com/louisbranch/contentadmin/internal/platform/timeouts"
	"github.com/louisbranch/contentadmin/internal/services/admin/confirmtoggle"
	"github.com/louisbranch/contentadmin/internal/services/admin/i18n"
	routepath "github.com/louisbranch/contentadmin/internal/services/admin/routepath"
	"github.com/louisbranch/contentadmin/internal/services/admin/storage"
	"github.com/louisbranch/contentadmin/internal/services/admin/templates"
	sharedhtmx "github.com/louisbranch/contentadmin/internal/services/shared/htmx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// localizedField is the form field and toggle name of the localization flag.
	localizedField = "localized"
	// localizationChangedEvent is dispatched to the browser after a commit.
	localizationChangedEvent = "localizationChanged"
	// pendingField carries the stored value the confirmation dialog was
	// rendered for.
	pendingField = templates.PendingField
)

var (
	localizedLabel = confirmtoggle.Message{
		ID:      "i18n.plugin.schema.i18n.localized.label-content-type",
		Default: "Enable localization for this Content-Type",
	}
	localizedHint = confirmtoggle.Message{
		ID:      "i18n.plugin.schema.i18n.localized.description-content-type",
		Default: "Allow you to have content in different locales",
	}
)

// HandleContentTypesPage renders the content type list.
func (h *Handler) HandleContentTypesPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.StoreOp)
	defer cancel()
	contentTypes, err := h.store.ListContentTypes(ctx)
	if err != nil {
		h.renderError(w, r, loc, page, err)
		return
	}

	rows := make([]templates.ContentTypeRow, 0, len(contentTypes))
	for _, contentType := range contentTypes {
		rows = append(rows, templates.ContentTypeRow{
			UID:         contentType.UID,
			DisplayName: contentType.DisplayName,
			Localized:   contentType.Localized,
		})
	}

	title := templates.T(loc, "admin.content_types.title")
	fragment := templates.ContentTypesPage(page, rows)
	renderPage(w, r, http.StatusOK, fragment, withLayout(page, title, fragment), templates.ComposeAdminPageTitle(loc, title))
}

// HandleContentTypeNewPage renders the create form with an unlocalized draft.
func (h *Handler) HandleContentTypeNewPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)
	h.renderNewPage(w, r, loc, page, http.StatusOK, templates.ContentTypeForm{}, false)
}

// HandleContentTypeNewLocalization applies a creating-mode change to the
// form draft. The change is never confirmed.
func (h *Handler) HandleContentTypeNewLocalization(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	next, ok := requestedValue(r, "value")
	if !ok {
		http.Error(w, "invalid value", http.StatusBadRequest)
		return
	}

	draft := !next
	toggle, err := newLocalizationToggle(draft, true, func(event confirmtoggle.ChangeEvent) {
		draft = event.Value
	})
	if err != nil {
		h.renderToggleError(w, r, loc, err)
		return
	}
	toggle.RequestChange(next)
	toggle.Sync(draft)

	renderPage(w, r, http.StatusOK, templates.ConfirmToggle(toggle.View(loc), newFormToggleActions()), nil, "")
}

// HandleContentTypeCreate stores a new content type from the create form.
func (h *Handler) HandleContentTypeCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := templates.ContentTypeForm{
		UID:         strings.TrimSpace(r.PostFormValue("uid")),
		DisplayName: strings.TrimSpace(r.PostFormValue("display_name")),
	}
	localized := r.PostFormValue(localizedField) == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.StoreOp)
	defer cancel()
	err := h.store.CreateContentType(ctx, storage.ContentType{
		UID:         form.UID,
		DisplayName: form.DisplayName,
		Localized:   localized,
	})
	if err != nil {
		log.Printf("admin create content type %q: %v", form.UID, err)
		form.Error = localizeError(loc, err)
		h.renderNewPage(w, r, loc, page, apperrors.CodeOf(err).HTTPStatus(), form, localized)
		return
	}

	log.Printf("admin content type %s created by %s (localized=%t)", form.UID, operatorFromContext(r.Context()), localized)
	http.Redirect(w, r, routepath.ContentType(form.UID), http.StatusSeeOther)
}

// HandleContentTypeDetail renders the settings page of one content type.
func (h *Handler) HandleContentTypeDetail(w http.ResponseWriter, r *http.Request, uid string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.StoreOp)
	defer cancel()
	contentType, err := h.store.GetContentType(ctx, uid)
	if err != nil {
		h.renderError(w, r, loc, page, err)
		return
	}
	counts, err := h.store.CountEntriesByLocale(ctx, uid)
	if err != nil {
		h.renderError(w, r, loc, page, err)
		return
	}

	toggle, err := newLocalizationToggle(contentType.Localized, false, func(confirmtoggle.ChangeEvent) {})
	if err != nil {
		h.renderError(w, r, loc, page, err)
		return
	}

	detail := templates.ContentTypeDetail{
		UID:         contentType.UID,
		DisplayName: contentType.DisplayName,
		Entries:     entryRows(counts),
	}
	fragment := templates.ContentTypeEditPage(page, detail, templates.ConfirmToggle(toggle.View(loc), toggleActions(uid)))
	renderPage(w, r, http.StatusOK, fragment, withLayout(page, contentType.DisplayName, fragment), templates.ComposeAdminPageTitle(loc, contentType.DisplayName))
}

// HandleLocalizationChange requests a new localization value. Enabling
// commits; disabling answers with the confirmation dialog. A request for the
// stored value renders the idle toggle.
func (h *Handler) HandleLocalizationChange(w http.ResponseWriter, r *http.Request, uid string) {
	next, ok := requestedValue(r, "value")
	if !ok {
		http.Error(w, "invalid value", http.StatusBadRequest)
		return
	}
	h.driveLocalizationToggle(w, r, uid, func(toggle *confirmtoggle.Toggle, stored bool) bool {
		if next != stored {
			toggle.RequestChange(next)
		}
		return true
	})
}

// HandleLocalizationConfirm commits a pending disable. The dialog posts the
// value it was rendered for; a stale or missing value commits nothing.
func (h *Handler) HandleLocalizationConfirm(w http.ResponseWriter, r *http.Request, uid string) {
	expected, ok := requestedValue(r, pendingField)
	h.driveLocalizationToggle(w, r, uid, func(toggle *confirmtoggle.Toggle, stored bool) bool {
		if !ok || !expected || expected != stored {
			return false
		}
		toggle.RequestChange(false)
		toggle.ConfirmDisable()
		return true
	})
}

// HandleLocalizationCancel dismisses a pending disable.
func (h *Handler) HandleLocalizationCancel(w http.ResponseWriter, r *http.Request, uid string) {
	h.driveLocalizationToggle(w, r, uid, func(toggle *confirmtoggle.Toggle, _ bool) bool {
		toggle.CancelDisable()
		return true
	})
}

// driveLocalizationToggle rebuilds the toggle from the stored value, applies
// the operator action, commits requested changes and renders the fragment.
//
// Each request replays the action on a fresh toggle, so a pending disable
// lives only in the rendered dialog. An action that refuses the stored
// state answers 409 with the idle toggle.
func (h *Handler) driveLocalizationToggle(w http.ResponseWriter, r *http.Request, uid string, action func(toggle *confirmtoggle.Toggle, stored bool) bool) {
	loc, _ := h.localizer(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.StoreOp)
	defer cancel()
	contentType, err := h.store.GetContentType(ctx, uid)
	if err != nil {
		h.renderToggleError(w, r, loc, err)
		return
	}

	var requested []confirmtoggle.ChangeEvent
	toggle, err := newLocalizationToggle(contentType.Localized, false, func(event confirmtoggle.ChangeEvent) {
		requested = append(requested, event)
	})
	if err != nil {
		h.renderToggleError(w, r, loc, err)
		return
	}
	if !action(toggle, contentType.Localized) {
		log.Printf("admin stale localization action for %s by %s (stored=%t)", uid, operatorFromContext(ctx), contentType.Localized)
		renderPage(w, r, http.StatusConflict, templates.ConfirmToggle(toggle.View(loc), toggleActions(uid)), nil, "")
		return
	}

	committed := 0
	for _, event := range requested {
		if event.Value == contentType.Localized {
			continue
		}
		change, err := h.commitLocalization(ctx, uid, event)
		if err != nil {
			h.renderToggleError(w, r, loc, err)
			return
		}
		contentType.Localized = change.Localized
		toggle.Sync(change.Localized)
		committed++
	}
	if committed > 0 {
		sharedhtmx.Trigger(w, localizationChangedEvent)
	}

	renderPage(w, r, http.StatusOK, templates.ConfirmToggle(toggle.View(loc), toggleActions(uid)), nil, "")
}

// commitLocalization persists one toggle commit.
func (h *Handler) commitLocalization(ctx context.Context, uid string, event confirmtoggle.ChangeEvent) (storage.LocalizationChange, error) {
	ctx, span := h.tracer.Start(ctx, "content_type.set_localized", trace.WithAttributes(
		attribute.String("content_type.uid", uid),
		attribute.Bool("localized", event.Value),
	))
	defer span.End()

	change, err := h.store.SetLocalized(ctx, uid, event.Value, h.defaultLocale)
	if err != nil {
		span.RecordError(err)
		log.Printf("admin commit %s=%t for %s: %v", event.Name, event.Value, uid, err)
		return storage.LocalizationChange{}, err
	}
	span.AddEvent("toggle.commit", trace.WithAttributes(
		attribute.String("change.id", change.ID),
		attribute.Int("entries.deleted", change.DeletedEntries),
	))
	log.Printf("admin %s=%t committed for %s by %s (change %s, %d entries deleted)",
		event.Name, event.Value, uid, operatorFromContext(ctx), change.ID, change.DeletedEntries)
	return change, nil
}

func (h *Handler) renderNewPage(w http.ResponseWriter, r *http.Request, loc *i18n.Localizer, page templates.PageContext, status int, form templates.ContentTypeForm, localized bool) {
	toggle, err := newLocalizationToggle(localized, true, func(confirmtoggle.ChangeEvent) {})
	if err != nil {
		h.renderError(w, r, loc, page, err)
		return
	}
	title := templates.T(loc, "admin.content_types.new_title")
	fragment := templates.ContentTypeNewPage(page, form, templates.ConfirmToggle(toggle.View(loc), newFormToggleActions()))
	renderPage(w, r, status, fragment, withLayout(page, title, fragment), templates.ComposeAdminPageTitle(loc, title))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, loc *i18n.Localizer, page templates.PageContext, err error) {
	status := apperrors.CodeOf(err).HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Printf("admin %s %s: %v", r.Method, r.URL.Path, err)
	}
	fragment := templates.ErrorPage(localizeError(loc, err))
	renderPage(w, r, status, fragment, withLayout(page, "", fragment), templates.ComposeAdminPageTitle(loc, ""))
}

func (h *Handler) renderToggleError(w http.ResponseWriter, r *http.Request, loc *i18n.Localizer, err error) {
	status := apperrors.CodeOf(err).HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Printf("admin %s %s: %v", r.Method, r.URL.Path, err)
	}
	renderPage(w, r, status, templates.ErrorPage(localizeError(loc, err)), nil, "")
}

// newLocalizationToggle builds the localization toggle for one request.
func newLocalizationToggle(value bool, creating bool, onChange func(confirmtoggle.ChangeEvent)) (*confirmtoggle.Toggle, error) {
	return confirmtoggle.New(confirmtoggle.Config{
		Name:       localizedField,
		Label:      localizedLabel,
		Hint:       localizedHint,
		Value:      value,
		IsCreating: creating,
		OnChange:   onChange,
	})
}

func toggleActions(uid string) templates.ToggleActions {
	return templates.ToggleActions{
		ChangeURL:  routepath.ContentTypeLocalization(uid),
		ConfirmURL: routepath.ContentTypeLocalizationConfirm(uid),
		CancelURL:  routepath.ContentTypeLocalizationCancel(uid),
	}
}

func newFormToggleActions() templates.ToggleActions {
	return templates.ToggleActions{ChangeURL: routepath.ContentTypesNewLocalization}
}

// requestedValue reads a boolean form field.
func requestedValue(r *http.Request, field string) (bool, bool) {
	if err := r.ParseForm(); err != nil {
		return false, false
	}
	value, err := strconv.ParseBool(strings.TrimSpace(r.PostFormValue(field)))
	if err != nil {
		return false, false
	}
	return value, true
}

func entryRows(counts []storage.EntryCount) []templates.EntryCountRow {
	rows := make([]templates.EntryCountRow, 0, len(counts))
	for _, count := range counts {
		rows = append(rows, templates.EntryCountRow{Locale: count.Locale, Count: count.Count})
	}
	return rows
}

// localizeError renders the catalog message of err's code.
func localizeError(loc *i18n.Localizer, err error) string {
	locale := i18n.Default().String()
	if loc != nil {
		locale = loc.Locale()
	}
	return errori18n.GetCatalog(locale).Format(string(apperrors.CodeOf(err)), apperrors.MetadataOf(err))
}

func withLayout(page templates.PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templates.Layout(page, title).Render(templ.WithChildren(ctx, body), w)
	})
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component, full templ.Component, title string) {
	sharedhtmx.RenderPageStatus(w, r, status, fragment, full, title)
}
