package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/contentadmin/internal/platform/errors"
	"github.com/louisbranch/contentadmin/internal/platform/id"
	sqlitemigrate "github.com/louisbranch/contentadmin/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/contentadmin/internal/platform/timeouts"
	"github.com/louisbranch/contentadmin/internal/services/admin/storage"
	"github.com/louisbranch/contentadmin/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
	newID func() (string, error)
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(" +
		strconv.FormatInt(timeouts.StoreBusy.Milliseconds(), 10) +
		")&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
		newID: id.NewID,
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return apperrors.New(apperrors.CodeStoreUnavailable, "storage is not configured")
	}
	return nil
}

// ListContentTypes returns all content types ordered by uid.
func (s *Store) ListContentTypes(ctx context.Context) ([]storage.ContentType, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT uid, display_name, localized, created_at FROM content_types ORDER BY uid`)
	if err != nil {
		return nil, fmt.Errorf("list content types: %w", err)
	}
	defer rows.Close()

	var out []storage.ContentType
	for rows.Next() {
		contentType, err := scanContentType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, contentType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content types: %w", err)
	}
	return out, nil
}

// GetContentType returns one content type by uid.
func (s *Store) GetContentType(ctx context.Context, uid string) (storage.ContentType, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ContentType{}, err
	}
	uid = strings.TrimSpace(uid)
	row := s.sqlDB.QueryRowContext(ctx, `SELECT uid, display_name, localized, created_at FROM content_types WHERE uid = ?`, uid)
	contentType, err := scanContentType(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ContentType{}, notFound(uid)
	}
	if err != nil {
		return storage.ContentType{}, err
	}
	return contentType, nil
}

// CreateContentType inserts a new content type.
func (s *Store) CreateContentType(ctx context.Context, contentType storage.ContentType) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	contentType.UID = strings.TrimSpace(contentType.UID)
	contentType.DisplayName = strings.TrimSpace(contentType.DisplayName)
	if contentType.UID == "" {
		return invalidField("uid", "content type uid is required")
	}
	if contentType.DisplayName == "" {
		return invalidField("display_name", "content type display name is required")
	}
	if contentType.CreatedAt.IsZero() {
		contentType.CreatedAt = s.now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO content_types (uid, display_name, localized, created_at) VALUES (?, ?, ?, ?)`,
		contentType.UID,
		contentType.DisplayName,
		boolToInt(contentType.Localized),
		contentType.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return apperrors.WithMetadata(apperrors.CodeContentTypeExists, "content type already exists", map[string]string{"UID": contentType.UID})
		}
		return fmt.Errorf("insert content type: %w", err)
	}
	return nil
}

// SetLocalized commits the localization flag of a content type.
func (s *Store) SetLocalized(ctx context.Context, uid string, localized bool, defaultLocale string) (storage.LocalizationChange, error) {
	if err := s.ready(ctx); err != nil {
		return storage.LocalizationChange{}, err
	}
	uid = strings.TrimSpace(uid)
	defaultLocale = strings.TrimSpace(defaultLocale)
	if !localized && defaultLocale == "" {
		return storage.LocalizationChange{}, invalidField("default_locale", "default locale is required to disable localization")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.LocalizationChange{}, fmt.Errorf("begin localization change: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, `UPDATE content_types SET localized = ? WHERE uid = ?`, boolToInt(localized), uid)
	if err != nil {
		return storage.LocalizationChange{}, fmt.Errorf("update localized flag: %w", err)
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return storage.LocalizationChange{}, fmt.Errorf("update localized flag: %w", err)
	}
	if updated == 0 {
		return storage.LocalizationChange{}, notFound(uid)
	}

	changeID, err := s.newID()
	if err != nil {
		return storage.LocalizationChange{}, err
	}
	change := storage.LocalizationChange{
		ID:        changeID,
		UID:       uid,
		Localized: localized,
		ChangedAt: s.now(),
	}
	if !localized {
		deleted, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE content_type_uid = ? AND locale <> ?`, uid, defaultLocale)
		if err != nil {
			return storage.LocalizationChange{}, fmt.Errorf("delete localized entries: %w", err)
		}
		count, err := deleted.RowsAffected()
		if err != nil {
			return storage.LocalizationChange{}, fmt.Errorf("delete localized entries: %w", err)
		}
		change.DeletedEntries = int(count)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO localization_changes (id, content_type_uid, localized, deleted_entries, changed_at) VALUES (?, ?, ?, ?, ?)`,
		change.ID,
		change.UID,
		boolToInt(change.Localized),
		change.DeletedEntries,
		change.ChangedAt.UTC().Format(timeFormat),
	); err != nil {
		return storage.LocalizationChange{}, fmt.Errorf("record localization change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.LocalizationChange{}, fmt.Errorf("commit localization change: %w", err)
	}
	return change, nil
}

// PutEntry stores an entry of a content type in a locale.
func (s *Store) PutEntry(ctx context.Context, uid string, locale string, title string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	uid = strings.TrimSpace(uid)
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return invalidField("locale", "entry locale is required")
	}
	if _, err := s.GetContentType(ctx, uid); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO entries (content_type_uid, locale, title) VALUES (?, ?, ?)`,
		uid, locale, strings.TrimSpace(title),
	); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// CountEntriesByLocale returns entry counts per locale ordered by locale.
func (s *Store) CountEntriesByLocale(ctx context.Context, uid string) ([]storage.EntryCount, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT locale, COUNT(*) FROM entries WHERE content_type_uid = ? GROUP BY locale ORDER BY locale`,
		strings.TrimSpace(uid),
	)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}
	defer rows.Close()

	var out []storage.EntryCount
	for rows.Next() {
		var count storage.EntryCount
		if err := rows.Scan(&count.Locale, &count.Count); err != nil {
			return nil, fmt.Errorf("scan entry count: %w", err)
		}
		out = append(out, count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry counts: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContentType(row rowScanner) (storage.ContentType, error) {
	var (
		contentType storage.ContentType
		localized   int
		createdAt   string
	)
	if err := row.Scan(&contentType.UID, &contentType.DisplayName, &localized, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ContentType{}, err
		}
		return storage.ContentType{}, fmt.Errorf("scan content type: %w", err)
	}
	parsed, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return storage.ContentType{}, fmt.Errorf("parse created_at: %w", err)
	}
	contentType.Localized = localized != 0
	contentType.CreatedAt = parsed
	return contentType, nil
}

func notFound(uid string) error {
	return apperrors.WithMetadata(apperrors.CodeContentTypeNotFound, "content type not found", map[string]string{"UID": uid})
}

func invalidField(field string, message string) error {
	return apperrors.WithMetadata(apperrors.CodeContentTypeInvalid, message, map[string]string{"Field": field})
}

func isUniqueConstraintError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

var _ storage.Store = (*Store)(nil)
