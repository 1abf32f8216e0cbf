// Package console parses console command configuration and runs the
// terminal content admin.
package console

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	platformcmd "github.com/louisbranch/contentadmin/internal/platform/cmd"
	"github.com/louisbranch/contentadmin/internal/platform/config"
	"github.com/louisbranch/contentadmin/internal/platform/otel"
	"github.com/louisbranch/contentadmin/internal/services/admin"
	adminconsole "github.com/louisbranch/contentadmin/internal/services/admin/console"
	"github.com/louisbranch/contentadmin/internal/services/admin/i18n"
)

// Config holds the console command configuration.
type Config struct {
	DBPath        string `env:"CONTENTADMIN_DB_PATH"        envDefault:"data/contentadmin.db"`
	DefaultLocale string `env:"CONTENTADMIN_DEFAULT_LOCALE" envDefault:"en"`
	Lang          string `env:"CONTENTADMIN_CONSOLE_LANG"   envDefault:"en-US"`
	LogFile       string `env:"CONTENTADMIN_CONSOLE_LOG"`
	Telemetry     otel.Config
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

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the sqlite database")
	fs.StringVar(&cfg.DefaultLocale, "default-locale", cfg.DefaultLocale, "locale kept when localization is disabled")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "console language")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file while the console runs")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ProgramOptions customizes the bubbletea program, mostly for tests.
type ProgramOptions struct {
	Input  io.Reader
	Output io.Writer
}

// Run opens the store and runs the console until the user quits or ctx ends.
func Run(ctx context.Context, cfg Config, opts ProgramOptions) error {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("db path is required")
	}
	if strings.TrimSpace(cfg.LogFile) != "" {
		logFile, err := tea.LogToFile(cfg.LogFile, "[CONSOLE] ")
		if err != nil {
			return fmt.Errorf("open console log: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := admin.OpenStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close console store: %v", err)
		}
	}()

	loc, err := i18n.NewLocalizer(i18n.NormalizeTag(cfg.Lang))
	if err != nil {
		return fmt.Errorf("load console catalog: %w", err)
	}
	model, err := adminconsole.NewModel(adminconsole.Config{
		Store:         store,
		DefaultLocale: cfg.DefaultLocale,
		Localizer:     loc,
	})
	if err != nil {
		return err
	}

	options := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		options = append(options, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		options = append(options, tea.WithOutput(opts.Output))
	}
	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
