package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tagger/internal/session"
)

// createRenameCommand создает команду rename
func (app *Application) createRenameCommand(ctx context.Context) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rename [path]",
		Short: "Rename files after their tags",
		Long:  `Rename every file to {tracknumber}_{title}{ext}. The batch stops at the first error and never overwrites existing files.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runOnce(ctx, pathArg(args), app.Config.ConfirmEnabled() && !yes, session.RenameCommand{})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// createCleanCommand создает команду clean
func (app *Application) createCleanCommand(ctx context.Context) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Normalize track titles",
		Long:  `Replace underscores with spaces and title-case every track title.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runOnce(ctx, pathArg(args), app.Config.ConfirmEnabled() && !yes, session.CleanCommand{})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
