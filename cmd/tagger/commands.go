package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tagger/internal/session"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagger [path]",
		Short: "Interactive batch editor for audio file tags",
		Long: `Edit artist, album, genre and title tags of flac, ogg and mp3 files in a directory,
keep track numbers in sync with the track order and rename files after their tags.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.setup()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return app.runSession(ctx, pathArg(args))
		},
	}
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "path to config file")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createRenameCommand(ctx))
	rootCmd.AddCommand(app.createCleanCommand(ctx))
	rootCmd.AddCommand(app.createInfoCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand(ctx))

	return rootCmd
}

// runSession запускает интерактивную сессию над коллекцией
func (app *Application) runSession(ctx context.Context, path string) error {
	printer := app.newPrinter()
	coll, err := app.openCollection(path, printer)
	if err != nil {
		return err
	}

	s := session.New(session.Options{
		Collection: coll,
		Renamer:    app.newRenamer(printer),
		Printer:    printer,
		Input:      app.input(),
		Confirm:    app.Config.ConfirmEnabled(),
		Logger:     app.Logger,
	})
	return s.Run(ctx)
}

// runOnce выполняет одну команду сессии без цикла ввода
func (app *Application) runOnce(ctx context.Context, path string, confirm bool, cmd session.Command) error {
	printer := app.newPrinter()
	coll, err := app.openCollection(path, printer)
	if err != nil {
		return err
	}

	s := session.New(session.Options{
		Collection: coll,
		Renamer:    app.newRenamer(printer),
		Printer:    printer,
		Input:      app.input(),
		Confirm:    confirm,
		Logger:     app.Logger,
	})
	defer s.Close()

	if err := s.Execute(ctx, cmd); err != nil {
		return err
	}
	printer.Table(coll.Tracks())
	return nil
}
