// Package app provides the application context and dependency management
// for the sheetfuse CLI. It centralizes configuration, logging, and the
// profile store behind a single struct commands can depend on.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/sheetfuse/sheetfuse/internal/profile"
	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
)

// App represents the sheetfuse application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Profile store (lazy-initialized, singleton)
	mu       sync.Mutex
	profiles *profile.Store
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// and config file, optionally adjusted with functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// CSVOptions returns the configured CSV defaults.
func (a *App) CSVOptions() tabio.CSVOptions {
	opts := tabio.DefaultCSVOptions()
	if a.config.CSVEncoding != "" {
		opts.Encoding = a.config.CSVEncoding
	}
	if a.config.CSVDelimiter != "" {
		if d, err := tabio.ParseDelimiter(a.config.CSVDelimiter); err == nil {
			opts.Delimiter = d
		} else {
			a.logger.Warn().
				Str("csv_delimiter", a.config.CSVDelimiter).
				Msg("Ignoring invalid CSV delimiter from configuration")
		}
	}
	return opts
}

// Profiles returns the profile store, creating it lazily. The store
// location comes from configuration, falling back to the per-user default.
func (a *App) Profiles() (*profile.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.profiles != nil {
		return a.profiles, nil
	}

	dir := a.config.ProfileDir
	if dir == "" {
		resolved, err := profile.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = resolved
	}
	a.profiles = profile.NewStore(dir)
	return a.profiles, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithProfileStore sets a custom profile store (useful for testing).
func WithProfileStore(store *profile.Store) Option {
	return func(a *App) error {
		a.profiles = store
		return nil
	}
}
