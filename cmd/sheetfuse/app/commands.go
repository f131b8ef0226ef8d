package app

import (
	"github.com/spf13/cobra"

	"github.com/sheetfuse/sheetfuse/cmd/sheetfuse/cmd/concat"
	"github.com/sheetfuse/sheetfuse/cmd/sheetfuse/cmd/convert"
	"github.com/sheetfuse/sheetfuse/cmd/sheetfuse/cmd/inspect"
	"github.com/sheetfuse/sheetfuse/cmd/sheetfuse/cmd/merge"
	"github.com/sheetfuse/sheetfuse/cmd/sheetfuse/cmd/profile"
)

// NewMergeCommand creates the merge command with app dependencies.
func (a *App) NewMergeCommand() *cobra.Command {
	return merge.NewCommand(a)
}

// NewConvertCommand creates the convert command with app dependencies.
func (a *App) NewConvertCommand() *cobra.Command {
	return convert.NewCommand(a)
}

// NewConcatCommand creates the concat command with app dependencies.
func (a *App) NewConcatCommand() *cobra.Command {
	return concat.NewCommand(a)
}

// NewInspectCommand creates the inspect command with app dependencies.
func (a *App) NewInspectCommand() *cobra.Command {
	return inspect.NewCommand(a)
}

// NewProfileCommand creates the profile command with app dependencies.
func (a *App) NewProfileCommand() *cobra.Command {
	return profile.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("sheetfuse %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
