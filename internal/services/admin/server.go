package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/contentadmin/internal/platform/timeouts"
	"github.com/louisbranch/contentadmin/internal/services/admin/storage"
	adminsqlite "github.com/louisbranch/contentadmin/internal/services/admin/storage/sqlite"
)

// Config defines the inputs for the admin process.
type Config struct {
	HTTPAddr      string
	DBPath        string
	DefaultLocale string
	// AuthConfig enables operator tokens when its secret is set.
	AuthConfig AuthConfig
}

// Server hosts the content-type admin and owns its store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store, err := OpenStore(config.DBPath)
	if err != nil {
		return nil, err
	}
	return newServerWithStore(httpAddr, store, config)
}

func newServerWithStore(httpAddr string, store storage.Store, config Config) (*Server, error) {
	handler, err := NewHandler(store, HandlerConfig{
		DefaultLocale: config.DefaultLocale,
		Auth:          config.AuthConfig,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if config.AuthConfig.Enabled() {
		log.Printf("admin operator tokens required (issuer %q)", config.AuthConfig.Issuer)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store: store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the store held by the server.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close admin store: %v", err)
	}
}

// OpenStore creates the storage directory when needed and opens the SQLite
// store at path.
func OpenStore(path string) (*adminsqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}
