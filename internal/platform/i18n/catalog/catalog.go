package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	textcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog is translated from.
const BaseLocale = "en-US"

// CoreNamespace owns every key under the "core." prefix.
const CoreNamespace = "core"

const catalogGlob = "locales/*/*.yaml"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = sync.OnceValue(func() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
})

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle()
}

// document is the on-disk shape of one locale/namespace file.
type document struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

type localeSet struct {
	byNamespace map[string]map[string]string
	byKey       map[string]string
}

// Bundle holds the messages of every locale, keyed by locale then message id.
type Bundle struct {
	locales map[string]*localeSet

	buildOnce sync.Once
	builder   *textcatalog.Builder
	buildErr  error
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files under %s", catalogGlob)
	}
	slices.Sort(paths)

	b := &Bundle{locales: make(map[string]*localeSet)}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
		if err := b.add(p, doc); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s has no catalogs", BaseLocale)
	}
	return b, nil
}

func decodeDocument(data []byte) (document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return document{}, fmt.Errorf("decode yaml: %w", err)
	}
	doc.Locale = strings.TrimSpace(doc.Locale)
	doc.Namespace = strings.TrimSpace(doc.Namespace)
	switch {
	case doc.Locale == "":
		return document{}, fmt.Errorf("locale is required")
	case doc.Namespace == "":
		return document{}, fmt.Errorf("namespace is required")
	case len(doc.Messages) == 0:
		return document{}, fmt.Errorf("messages are required")
	}
	return doc, nil
}

// add merges doc into the bundle. The file path must agree with the declared
// locale and namespace, and keys must be unique within a locale.
func (b *Bundle) add(p string, doc document) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if doc.Locale != dirLocale {
		return fmt.Errorf("locale %q does not match directory %q", doc.Locale, dirLocale)
	}
	if doc.Namespace != fileNamespace {
		return fmt.Errorf("namespace %q does not match file name %q", doc.Namespace, fileNamespace)
	}

	set := b.locales[doc.Locale]
	if set == nil {
		set = &localeSet{byNamespace: make(map[string]map[string]string), byKey: make(map[string]string)}
		b.locales[doc.Locale] = set
	}
	if _, dup := set.byNamespace[doc.Namespace]; dup {
		return fmt.Errorf("namespace %q declared twice for %s", doc.Namespace, doc.Locale)
	}

	messages := make(map[string]string, len(doc.Messages))
	for rawKey, value := range doc.Messages {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return fmt.Errorf("blank message key")
		}
		if strings.HasPrefix(key, CoreNamespace+".") && doc.Namespace != CoreNamespace {
			return fmt.Errorf("key %q belongs to the %s namespace", key, CoreNamespace)
		}
		if _, dup := set.byKey[key]; dup {
			return fmt.Errorf("key %q already defined for %s", key, doc.Locale)
		}
		set.byKey[key] = value
		messages[key] = value
	}
	set.byNamespace[doc.Namespace] = messages
	return nil
}

// Builder returns an x/text catalog with every message of the bundle.
// Printers for unknown languages fall back to BaseLocale.
func (b *Bundle) Builder() (*textcatalog.Builder, error) {
	if b == nil {
		return nil, fmt.Errorf("catalog bundle is nil")
	}
	b.buildOnce.Do(func() {
		b.builder, b.buildErr = b.build()
	})
	return b.builder, b.buildErr
}

func (b *Bundle) build() (*textcatalog.Builder, error) {
	builder := textcatalog.NewBuilder(textcatalog.Fallback(language.MustParse(BaseLocale)))
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		set := b.locales[locale]
		for _, key := range sortedKeys(set.byKey) {
			if err := builder.SetString(tag, key, set.byKey[key]); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	return builder, nil
}

// HasLocale reports whether locale has at least one catalog file.
func (b *Bundle) HasLocale(locale string) bool {
	return b.set(locale) != nil
}

// Locales returns the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	slices.Sort(out)
	return out
}

// LocaleMessages returns a copy of every message declared for locale.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	set := b.set(locale)
	if set == nil {
		return map[string]string{}
	}
	return clone(set.byKey)
}

// Message looks key up in locale, then in BaseLocale.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	for _, candidate := range []string{locale, BaseLocale} {
		if set := b.set(candidate); set != nil {
			if value, ok := set.byKey[key]; ok {
				return value, true
			}
		}
	}
	return "", false
}

// NamespaceMessages returns a copy of one namespace of locale.
func (b *Bundle) NamespaceMessages(locale string, namespace string) map[string]string {
	set := b.set(locale)
	if set == nil {
		return map[string]string{}
	}
	return clone(set.byNamespace[strings.TrimSpace(namespace)])
}

// NamespaceMessagesWithFallback returns the namespace of locale, or of
// BaseLocale when locale has none, along with the locale that served it.
func (b *Bundle) NamespaceMessagesWithFallback(locale string, namespace string) (string, map[string]string) {
	locale = strings.TrimSpace(locale)
	if messages := b.NamespaceMessages(locale, namespace); len(messages) > 0 {
		return locale, messages
	}
	return BaseLocale, b.NamespaceMessages(BaseLocale, namespace)
}

// MissingKeys lists the BaseLocale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	base := b.set(BaseLocale)
	if base == nil {
		return nil
	}
	target := b.set(locale)
	var missing []string
	for _, key := range sortedKeys(base.byKey) {
		if target == nil {
			missing = append(missing, key)
			continue
		}
		if _, ok := target.byKey[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func (b *Bundle) set(locale string) *localeSet {
	if b == nil {
		return nil
	}
	return b.locales[strings.TrimSpace(locale)]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for key, value := range m {
		out[key] = value
	}
	return out
}
