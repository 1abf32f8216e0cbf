package htmx

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// TriggerHeaderKey asks HTMX to dispatch client events after the swap.
const TriggerHeaderKey = "HX-Trigger"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// Trigger appends a client event to the HX-Trigger response header.
func Trigger(w http.ResponseWriter, event string) {
	event = strings.TrimSpace(event)
	if w == nil || event == "" {
		return
	}
	if existing := w.Header().Get(TriggerHeaderKey); existing != "" {
		event = existing + ", " + event
	}
	w.Header().Set(TriggerHeaderKey, event)
}

// RenderPage renders a page with status 200 for normal or HTMX requests.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	RenderPageStatus(w, r, http.StatusOK, fragment, full, htmxTitle)
}

// RenderPageStatus renders a page for normal or HTMX requests.
//
// HTMX requests receive fragment, or the <main> content of full when fragment
// is nil, prefixed with a title tag for history updates. Other requests
// receive full, or fragment when full is nil.
func RenderPageStatus(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component, full templ.Component, htmxTitle string) {
	if status <= 0 {
		status = http.StatusOK
	}
	if IsHTMXRequest(r) {
		target := fragment
		if target == nil && full != nil {
			target = mainContent(full)
		}
		if target == nil {
			return
		}
		if title := TitleTag(htmxTitle); title != "" {
			target = withTitle(title, target)
		}
		templ.Handler(target, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	if full == nil {
		full = fragment
	}
	if full == nil {
		return
	}
	templ.Handler(full, templ.WithStatus(status)).ServeHTTP(w, r)
}

func withTitle(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, title); err != nil {
			return err
		}
		return body.Render(ctx, w)
	})
}

// mainContent renders full into memory and keeps what sits inside <main>.
func mainContent(full templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := full.Render(ctx, &buf); err != nil {
			return err
		}
		body := buf.Bytes()
		if content, ok := extractMainContent(body); ok {
			body = content
		}
		_, err := w.Write(body)
		return err
	})
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.Index(body[start:], []byte(">"))
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.LastIndex(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
