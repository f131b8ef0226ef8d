// Package profile implements the profile command for managing saved merge
// configurations.
package profile

import (
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sheetfuse/sheetfuse/internal/cmd/output"
	"github.com/sheetfuse/sheetfuse/internal/profile"
)

// AppContext defines the interface that profile commands need from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	Profiles() (*profile.Store, error)
	OutputFormat() string
}

// NewCommand creates the profile command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved merge profiles",
		Long: `Profiles store a complete merge configuration, files, key columns, and
options, under a name so a recurring merge can be rerun with
"sheetfuse merge --profile <name>". Profiles are created with
"sheetfuse merge --save-profile <name>".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newShowCommand(app))
	cmd.AddCommand(newDeleteCommand(app))

	return cmd
}

func newListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Profiles()
			if err != nil {
				return err
			}
			names, err := store.List()
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), names)
			}
			if len(names) == 0 {
				cmd.Println("No profiles saved")
				return nil
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
}

func newShowCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Profiles()
			if err != nil {
				return err
			}
			p, err := store.Load(args[0])
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if format == output.FormatJSON {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), p)
			}
			// Profiles are YAML on disk, so YAML is the natural rendering
			data, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}

func newDeleteCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Profiles()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			app.Logger().Info().Str("profile", args[0]).Msg("Profile deleted")
			cmd.Printf("Deleted profile %q\n", args[0])
			return nil
		},
	}
}
