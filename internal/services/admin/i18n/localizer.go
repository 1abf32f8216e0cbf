package i18n

import (
	"strings"

	"github.com/louisbranch/contentadmin/internal/platform/i18n/catalog"
	"github.com/louisbranch/contentadmin/internal/services/admin/confirmtoggle"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer prints catalog messages for one language.
type Localizer struct {
	tag     language.Tag
	bundle  *catalog.Bundle
	printer *message.Printer
}

// NewLocalizer returns a localizer backed by the embedded catalogs.
func NewLocalizer(tag language.Tag) (*Localizer, error) {
	return NewLocalizerFromBundle(catalog.Default(), tag)
}

// NewLocalizerFromBundle returns a localizer backed by bundle.
func NewLocalizerFromBundle(bundle *catalog.Bundle, tag language.Tag) (*Localizer, error) {
	builder, err := bundle.Builder()
	if err != nil {
		return nil, err
	}
	return &Localizer{
		tag:     tag,
		bundle:  bundle,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Tag returns the language served by the localizer.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Locale returns the catalog locale identifier.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// Sprintf formats a catalog message.
func (l *Localizer) Sprintf(key message.Reference, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Resolve returns the catalog text for msg.ID with msg.Values interpolated,
// or an empty string when the id is not in the catalog.
func (l *Localizer) Resolve(msg confirmtoggle.Message) string {
	id := strings.TrimSpace(msg.ID)
	if id == "" {
		return ""
	}
	text, ok := l.bundle.Message(l.Locale(), id)
	if !ok {
		return ""
	}
	return confirmtoggle.Interpolate(text, msg.Values)
}

var _ confirmtoggle.Resolver = (*Localizer)(nil)
