package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tagger/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [path]",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch full-screen editor: edit tags, reorder tracks, clean titles and rename files.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.launchTUI(ctx, pathArg(args))
		},
	}
}

func (app *Application) launchTUI(ctx context.Context, path string) error {
	// Сообщения о записи не печатаются: экран принадлежит TUI
	coll, err := app.openCollection(path, nil)
	if err != nil {
		return err
	}
	return tui.NewApp(coll, app.newRenamer(nil)).Run(ctx)
}
