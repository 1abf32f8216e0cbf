// Package catalog loads the embedded locale message catalogs.
//
// Catalog files live under locales/<locale>/<namespace>.yaml. Every key is
// unique per locale across namespaces, and keys under the "core." prefix may
// only be declared in the core namespace.
package catalog
