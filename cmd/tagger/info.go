package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tagger/internal/metadata"
	)

// createInfoCommand создает команду info
func (app *Application) createInfoCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "info [path]",
		Short: "Show container and tag format of tracks",
		Long:  `Probe every track and print file type, tag format and size. Files are not modified beyond track number sync.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.showInfo(ctx, pathArg(args))
		},
	}
}

func (app *Application) showInfo(ctx context.Context, path string) error {
	printer := app.newPrinter()
	coll, err := app.openCollection(path, printer)
	if err != nil {
		return err
	}

	extractor := metadata.NewExtractor()
	probes := make([]metadata.TrackMetadata, 0, coll.Len())
	for _, t := range coll.Tracks() {
		if err := ctx.Err(); err != nil {
			return err
		}
		probe, err := extractor.ExtractFromFile(t.Path())
		if err != nil {
			return err
		}
		probes = append(probes, probe)
	}

	printer.Info("Info", fmt.Sprintf("%d file(s)", len(probes)))
	printer.Probes(probes)
	return nil
}
