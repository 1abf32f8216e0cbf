// Package i18n renders user-facing messages for domain error codes.
package i18n

import (
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/contentadmin/internal/platform/i18n/catalog"
)

// Namespace is the catalog namespace holding error templates.
const Namespace = "errors"

// Code is a machine-readable error code, kept as a string so this package
// does not import the errors package.
type Code = string

// Catalog renders error templates for one locale.
type Catalog struct {
	locale    string
	raw       map[Code]string
	templates map[Code]*template.Template
}

// catalogs caches one Catalog per resolved locale.
var catalogs sync.Map

// GetCatalog returns the catalog for locale, or for the base locale when
// locale has no error templates.
func GetCatalog(locale string) *Catalog {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = i18ncatalog.BaseLocale
	}
	if cached, ok := catalogs.Load(locale); ok {
		return cached.(*Catalog)
	}

	resolved, messages := i18ncatalog.Default().NamespaceMessagesWithFallback(locale, Namespace)
	cat, _ := catalogs.LoadOrStore(resolved, NewCatalog(resolved, messages))
	if resolved != locale {
		catalogs.Store(locale, cat)
	}
	return cat.(*Catalog)
}

// NewCatalog parses messages into a catalog. Messages that are not valid
// templates are kept and rendered verbatim.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cat := &Catalog{
		locale:    locale,
		raw:       make(map[Code]string, len(messages)),
		templates: make(map[Code]*template.Template, len(messages)),
	}
	for code, text := range messages {
		cat.raw[code] = text
		tmpl, err := template.New(code).Option("missingkey=zero").Parse(text)
		if err == nil {
			cat.templates[code] = tmpl
		}
	}
	return cat
}

// Locale returns the locale the catalog renders.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message of code with metadata. Unknown codes render as
// the code itself.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	text, ok := c.raw[code]
	if !ok {
		return code
	}
	tmpl, ok := c.templates[code]
	if !ok {
		return text
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, metadata); err != nil {
		return text
	}
	return b.String()
}
