// Package profile persists named merge configurations as YAML files so a
// recurring merge can be rerun without respecifying files, keys, and options.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/merge"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// Profile is a saved merge configuration.
type Profile struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	CreatedAt   time.Time `yaml:"createdAt"`

	Primary   Input  `yaml:"primary"`
	Reference Input  `yaml:"reference"`
	Output    Output `yaml:"output,omitempty"`

	MatchMode         string `yaml:"matchMode,omitempty"`
	OnMultipleMatches string `yaml:"onMultipleMatches,omitempty"`
	MissingValue      string `yaml:"missingValue,omitempty"`
	AddMatchColumn    bool   `yaml:"addMatchColumn,omitempty"`
	MatchesOnly       bool   `yaml:"matchesOnly,omitempty"`
}

// Input identifies one side of the merge.
type Input struct {
	File      string `yaml:"file"`
	Sheet     string `yaml:"sheet,omitempty"`
	KeyColumn string `yaml:"keyColumn"`
}

// Output describes where the merged result goes.
type Output struct {
	File   string `yaml:"file,omitempty"`
	Sheet  string `yaml:"sheet,omitempty"`
	Styled bool   `yaml:"styled,omitempty"`
}

// Validate checks the profile for the fields a merge run cannot do without.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.NewValidationError("name", p.Name, "profile name is required")
	}
	for side, in := range map[string]Input{"primary": p.Primary, "reference": p.Reference} {
		if in.File == "" {
			return errors.NewValidationError(side+".file", in.File, "input file is required")
		}
		if in.KeyColumn == "" {
			return errors.NewValidationError(side+".keyColumn", in.KeyColumn, "key column is required")
		}
	}
	return p.MergeOptions().Validate()
}

// MergeOptions converts the stored option fields into engine options,
// falling back to the defaults for fields the profile leaves empty.
func (p *Profile) MergeOptions() merge.Options {
	opts := merge.DefaultOptions()
	if p.MatchMode != "" {
		opts.MatchMode = merge.MatchMode(p.MatchMode)
	}
	if p.OnMultipleMatches != "" {
		opts.OnMultipleMatches = merge.MultiplePolicy(p.OnMultipleMatches)
	}
	opts.MissingValue = tabular.String(p.MissingValue)
	opts.AddMatchColumn = p.AddMatchColumn
	opts.MatchesOnly = p.MatchesOnly
	return opts
}

// Store reads and writes profiles under a directory, one YAML file each.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the per-user profile directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigError("profiles", "cannot resolve user config directory", err)
	}
	return filepath.Join(base, "sheetfuse", "profiles"), nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// Save validates and writes a profile, stamping CreatedAt if unset.
func (s *Store) Save(p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.NewConfigError("profiles", "cannot encode profile "+p.Name, err)
	}
	if err := os.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}
	if err := os.WriteFile(s.path(p.Name), data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", s.path(p.Name), err)
	}
	return nil
}

// Load reads a profile by name.
func (s *Store) Load(name string) (*Profile, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError("profiles", fmt.Sprintf("profile %q not found", name), err)
		}
		return nil, errors.WrapIO("read", s.path(name), err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.NewParseError("yaml", s.path(name), "invalid profile", err)
	}
	return &p, nil
}

// List returns the stored profile names, sorted. A missing directory is an
// empty store, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", s.dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a stored profile.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return errors.NewConfigError("profiles", fmt.Sprintf("profile %q not found", name), err)
		}
		return errors.WrapIO("delete", s.path(name), err)
	}
	return nil
}
