// Package sqlite provides SQLite-backed content-type settings persistence.
//
// Disabling localization is applied in a single transaction together with the
// removal of entries outside the default locale and an audit record.
package sqlite
