// Package admin parses admin command configuration and runs the content
// admin HTTP service.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/contentadmin/internal/platform/cmd"
	"github.com/louisbranch/contentadmin/internal/platform/config"
	"github.com/louisbranch/contentadmin/internal/platform/otel"
	"github.com/louisbranch/contentadmin/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr      string        `env:"CONTENTADMIN_HTTP_ADDR"       envDefault:":8082"`
	DBPath        string        `env:"CONTENTADMIN_DB_PATH"         envDefault:"data/contentadmin.db"`
	DefaultLocale string        `env:"CONTENTADMIN_DEFAULT_LOCALE"  envDefault:"en"`
	AuthSecret    string        `env:"CONTENTADMIN_AUTH_SECRET"`
	AuthIssuer    string        `env:"CONTENTADMIN_AUTH_ISSUER"     envDefault:"contentadmin"`
	TokenTTL      time.Duration `env:"CONTENTADMIN_AUTH_TOKEN_TTL"  envDefault:"12h"`
	Telemetry     otel.Config

	// IssueTokenFor prints an operator token for this subject instead of
	// serving.
	IssueTokenFor string
}

// ParseConfig parses environment and flags into a Config. A nil environment
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	var cfg Config
	var err error
	if environment == nil {
		err = platformcmd.ParseConfig(&cfg)
	} else {
		err = config.ParseEnvFrom(&cfg, environment)
	}
	if err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the sqlite database")
	fs.StringVar(&cfg.DefaultLocale, "default-locale", cfg.DefaultLocale, "locale kept when localization is disabled")
	fs.StringVar(&cfg.AuthIssuer, "auth-issuer", cfg.AuthIssuer, "operator token issuer")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "lifetime of tokens printed by -issue-token")
	fs.StringVar(&cfg.IssueTokenFor, "issue-token", "", "print an operator token for this subject and exit")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) authConfig() admin.AuthConfig {
	return admin.AuthConfig{Secret: c.AuthSecret, Issuer: c.AuthIssuer}
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	server, err := admin.NewServer(ctx, admin.Config{
		HTTPAddr:      cfg.HTTPAddr,
		DBPath:        cfg.DBPath,
		DefaultLocale: cfg.DefaultLocale,
		AuthConfig:    cfg.authConfig(),
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}

// PrintToken writes a signed operator token for cfg.IssueTokenFor to out.
func PrintToken(out io.Writer, cfg Config, now time.Time) error {
	if out == nil {
		return errors.New("token output is required")
	}
	subject := strings.TrimSpace(cfg.IssueTokenFor)
	if subject == "" {
		return errors.New("token subject is required")
	}
	token, err := admin.IssueToken(cfg.authConfig(), subject, cfg.TokenTTL, now)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
