package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "List tracks in a directory",
		Long:  `Load a file or directory, sync track numbers with the track order and print the tags as a table.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.listTracks(pathArg(args))
		},
	}
}

func (app *Application) listTracks(path string) error {
	printer := app.newPrinter()
	coll, err := app.openCollection(path, printer)
	if err != nil {
		return err
	}

	fmt.Fprintf(printer.Writer(), "📚 Найдено треков: %d\n\n", coll.Len())
	printer.Table(coll.Tracks())
	return nil
}
