// Package storage defines persistence contracts for content-type settings.
//
// Admin handlers depend on these interfaces so the confirmation flow stays
// testable without a concrete SQLite schema.
package storage
