package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	admini18n "github.com/louisbranch/contentadmin/internal/services/admin/i18n"
	"github.com/louisbranch/contentadmin/internal/services/admin/routepath"
)

// htmxScriptURL is the pinned HTMX build loaded by the layout.
const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// AppName returns the localized application name.
func AppName(loc Localizer) string {
	name := strings.TrimSpace(T(loc, "core.app.name"))
	if name == "" || name == "core.app.name" {
		return "Content Admin"
	}
	return name
}

// ComposeAdminPageTitle appends the application name to a page title.
func ComposeAdminPageTitle(loc Localizer, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return AppName(loc)
	}
	return title + " | " + AppName(loc)
}

// Layout renders the admin shell around the children of ctx.
func Layout(page PageContext, title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		lang := page.Lang
		if lang == "" {
			lang = admini18n.Default().String()
		}
		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(ComposeAdminPageTitle(page.Loc, title))
		h.raw(`</title><script`)
		h.attr("src", htmxScriptURL)
		h.raw(`></script></head><body hx-boost="true"><header class="navbar"><a class="btn btn-ghost text-xl"`)
		h.attr("href", routepath.ContentTypes)
		h.raw(`>`)
		h.text(AppName(page.Loc))
		h.raw(`</a><nav class="flex gap-2">`)
		for _, option := range LanguageOptions(page) {
			h.raw(`<a class="link"`)
			h.attr("href", LanguageURL(page, option.Tag))
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.raw(` aria-current="true"`)
			}
			h.raw(`>`)
			h.text(option.Label)
			h.raw(`</a>`)
		}
		h.raw(`</nav></header><main class="container mx-auto p-4">`)
		if h.err != nil {
			return h.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></body></html>`)
		return h.err
	})
}
