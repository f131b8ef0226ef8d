// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/sheetfuse/sheetfuse/internal/profile"
	"github.com/sheetfuse/sheetfuse/internal/tabio"
)

// Interface defines the application context that commands need. The App
// struct from cmd/sheetfuse/app implements it, injecting dependencies into
// commands while keeping them testable.
//
// Commands should accept this interface, or a narrower one of their own,
// rather than the concrete App type.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Profiles returns the saved-merge-profile store, creating it lazily.
	Profiles() (*profile.Store, error)

	// CSVOptions returns the configured CSV delimiter and encoding defaults.
	CSVOptions() tabio.CSVOptions

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
