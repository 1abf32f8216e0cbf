package storage

import (
	"context"
	"time"
)

// ContentType is the persisted settings record of a content type.
type ContentType struct {
	UID         string
	DisplayName string
	Localized   bool
	CreatedAt   time.Time
}

// EntryCount counts stored entries of a content type in one locale.
type EntryCount struct {
	Locale string
	Count  int
}

// LocalizationChange is the audit record of a committed localization change.
type LocalizationChange struct {
	ID             string
	UID            string
	Localized      bool
	DeletedEntries int
	ChangedAt      time.Time
}

// ContentTypeStore persists content-type settings.
type ContentTypeStore interface {
	ListContentTypes(ctx context.Context) ([]ContentType, error)
	GetContentType(ctx context.Context, uid string) (ContentType, error)
	CreateContentType(ctx context.Context, contentType ContentType) error
	// SetLocalized commits the localization flag. Disabling removes every
	// entry whose locale differs from defaultLocale.
	SetLocalized(ctx context.Context, uid string, localized bool, defaultLocale string) (LocalizationChange, error)
}

// EntryStore persists localized entries of content types.
type EntryStore interface {
	PutEntry(ctx context.Context, uid string, locale string, title string) error
	CountEntriesByLocale(ctx context.Context, uid string) ([]EntryCount, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	ContentTypeStore
	EntryStore
	Close() error
}
