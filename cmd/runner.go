package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pixelthorn/gdx/internal/catalog"
	"github.com/pixelthorn/gdx/internal/services"
	"github.com/pixelthorn/gdx/internal/session"
	"github.com/pixelthorn/gdx/internal/shared"
	"github.com/pixelthorn/gdx/internal/storage"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	catalog    *catalog.Store
	session    *session.Store
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	db         *sql.DB
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Catalog and Session may be injected directly (tests do this); when nil they
// are constructed on first use from the configured database.
type RunnerOpts struct {
	Config     *shared.Config
	Catalog    *catalog.Store
	Session    *session.Store
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		catalog:    opts.Catalog,
		session:    opts.Session,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, catalogCommand, authCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// bootstrap constructs the stores from configuration unless they were
// injected. The stores are built exactly once per process and reused by every
// subsequent command action; consumers receive them by reference.
func (r *Runner) bootstrap(ctx context.Context, cmd *cli.Command) error {
	if r.catalog != nil && r.session != nil {
		return nil
	}

	if configPath := cmd.String("config"); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			config, err := shared.LoadConfig(configPath)
			if err != nil {
				r.logger.Warn("failed to load config, using defaults", "error", err)
			} else {
				r.config = config
			}
		}
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := storage.RunMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.db = db

	kv := storage.NewSQLiteKV(db)

	var fetcher services.Fetcher
	if r.config.Remote.APIKey != "" {
		fetcher = services.NewRAWGService(services.RAWGOpts{
			BaseURL:    r.config.Remote.BaseURL,
			APIKey:     r.config.Remote.APIKey,
			Ordering:   r.config.Remote.Ordering,
			PageSize:   r.config.Remote.PageSize,
			RPS:        r.config.Remote.RPS,
			HTTPClient: r.httpClient,
		})
	}

	r.catalog = catalog.New(catalog.Opts{
		KV:          kv,
		Key:         r.config.Storage.CatalogKey,
		Fetcher:     fetcher,
		RemoteFetch: r.config.Features.RemoteFetch,
		Logger:      r.logger,
	})
	r.session = session.New(session.Opts{
		KV:         kv,
		SessionKey: r.config.Storage.SessionKey,
		UsersKey:   r.config.Storage.UsersKey,
		Logger:     r.logger,
	})

	return r.catalog.Initialize(ctx)
}

// Close releases the database handle, if one was opened.
func (r *Runner) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// requireAuth rejects mutating catalog operations for anonymous sessions.
func (r *Runner) requireAuth() error {
	if r.session == nil || !r.session.IsAuthenticated() {
		return fmt.Errorf("%w: run 'gdx auth login' first", shared.ErrNotAuthenticated)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
