package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/contentadmin/internal/services/admin/routepath"
)

// ContentTypeRow holds formatted content type data for the list view.
type ContentTypeRow struct {
	UID         string
	DisplayName string
	Localized   bool
}

// EntryCountRow holds the number of entries stored in one locale.
type EntryCountRow struct {
	Locale string
	Count  int
}

// ContentTypeDetail holds data for the content type settings page.
type ContentTypeDetail struct {
	UID         string
	DisplayName string
	Entries     []EntryCountRow
}

// ContentTypeForm holds submitted values of the create form.
type ContentTypeForm struct {
	UID         string
	DisplayName string
	Error       string
}

// ContentTypesPage lists content types.
func ContentTypesPage(page PageContext, rows []ContentTypeRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="flex items-center justify-between"><h1 class="text-2xl font-bold">`)
		h.text(T(page.Loc, "admin.content_types.title"))
		h.raw(`</h1><a class="btn btn-primary"`)
		h.attr("href", routepath.ContentTypesNew)
		h.raw(`>`)
		h.text(T(page.Loc, "admin.content_types.create"))
		h.raw(`</a></div>`)
		if len(rows) == 0 {
			h.raw(`<p class="py-4">`)
			h.text(T(page.Loc, "admin.content_types.empty"))
			h.raw(`</p>`)
			return h.err
		}
		h.raw(`<table class="table"><thead><tr><th>`)
		h.text(T(page.Loc, "admin.content_types.display_name"))
		h.raw(`</th><th>`)
		h.text(T(page.Loc, "admin.content_types.uid"))
		h.raw(`</th><th>`)
		h.text(T(page.Loc, "admin.content_types.localized"))
		h.raw(`</th></tr></thead><tbody>`)
		for _, row := range rows {
			h.raw(`<tr><td><a class="link"`)
			h.attr("href", routepath.ContentType(row.UID))
			h.raw(`>`)
			h.text(row.DisplayName)
			h.raw(`</a></td><td><code>`)
			h.text(row.UID)
			h.raw(`</code></td><td>`)
			if row.Localized {
				h.text(T(page.Loc, "admin.content_types.yes"))
			} else {
				h.text(T(page.Loc, "admin.content_types.no"))
			}
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

// ContentTypeEditPage renders the settings of one content type.
func ContentTypeEditPage(page PageContext, detail ContentTypeDetail, toggle templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<a class="link"`)
		h.attr("href", routepath.ContentTypes)
		h.raw(`>`)
		h.text(T(page.Loc, "admin.content_types.back"))
		h.raw(`</a><h1 class="text-2xl font-bold">`)
		h.text(detail.DisplayName)
		h.raw(`</h1><p><code>`)
		h.text(detail.UID)
		h.raw(`</code></p><section class="py-4">`)
		if h.err != nil {
			return h.err
		}
		if toggle != nil {
			if err := toggle.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</section><section><h2 class="text-xl font-bold">`)
		h.text(T(page.Loc, "admin.content_types.entries"))
		h.raw(`</h2>`)
		if len(detail.Entries) == 0 {
			h.raw(`<p>`)
			h.text(T(page.Loc, "admin.content_types.no_entries"))
			h.raw(`</p></section>`)
			return h.err
		}
		h.raw(`<table class="table"><thead><tr><th>`)
		h.text(T(page.Loc, "admin.content_types.locale"))
		h.raw(`</th><th>`)
		h.text(T(page.Loc, "admin.content_types.count"))
		h.raw(`</th></tr></thead><tbody>`)
		for _, entry := range detail.Entries {
			h.raw(`<tr><td>`)
			h.text(entry.Locale)
			h.raw(`</td><td>`)
			h.text(strconv.Itoa(entry.Count))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
		return h.err
	})
}

// ContentTypeNewPage renders the create form with the localization toggle
// in creating mode.
func ContentTypeNewPage(page PageContext, form ContentTypeForm, toggle templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1 class="text-2xl font-bold">`)
		h.text(T(page.Loc, "admin.content_types.new_title"))
		h.raw(`</h1>`)
		if form.Error != "" {
			h.raw(`<div role="alert" class="alert alert-error">`)
			h.text(form.Error)
			h.raw(`</div>`)
		}
		h.raw(`<form method="post" class="flex flex-col gap-4"`)
		h.attr("action", routepath.ContentTypes)
		h.raw(`><label class="form-control"><span class="label-text">`)
		h.text(T(page.Loc, "admin.content_types.uid"))
		h.raw(`</span><input type="text" name="uid" class="input input-bordered" required`)
		h.attr("value", form.UID)
		h.raw(`></label><label class="form-control"><span class="label-text">`)
		h.text(T(page.Loc, "admin.content_types.display_name"))
		h.raw(`</span><input type="text" name="display_name" class="input input-bordered" required`)
		h.attr("value", form.DisplayName)
		h.raw(`></label>`)
		if h.err != nil {
			return h.err
		}
		if toggle != nil {
			if err := toggle.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`<button type="submit" class="btn btn-primary">`)
		h.text(T(page.Loc, "admin.content_types.save"))
		h.raw(`</button></form>`)
		return h.err
	})
}

// ErrorPage renders a localized error message.
func ErrorPage(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div role="alert" class="alert alert-error">`)
		h.text(message)
		h.raw(`</div>`)
		return h.err
	})
}
