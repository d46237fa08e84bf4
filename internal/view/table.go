package view

import (
	"fmt"
	"path/filepath"

	"github.com/olekukonko/tablewriter"

	"github.com/hazadus/go-tagger/internal/metadata"
	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
	"github.com/hazadus/go-tagger/internal/utils"
)

const maxCellWidth = 30

// Table выводит треки таблицей для команды list
func (p *Printer) Table(tracks []*track.Track) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"#", "Artist", "Album", "Genre", "Title", "File"})
	table.SetAutoWrapText(false)
	table.SetRowLine(false)
	if p.color {
		table.SetHeaderColor(
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgBlueColor},
			tablewriter.Colors{tablewriter.Bold},
			tablewriter.Colors{tablewriter.Bold},
			tablewriter.Colors{tablewriter.Bold},
			tablewriter.Colors{tablewriter.Bold},
			tablewriter.Colors{tablewriter.Bold},
		)
	}

	for _, t := range tracks {
		table.Append([]string{
			t.TrackNumber(),
			utils.TruncateString(t.Get(tagstore.FieldArtist), maxCellWidth),
			utils.TruncateString(t.Get(tagstore.FieldAlbum), maxCellWidth),
			utils.TruncateString(t.Get(tagstore.FieldGenre), maxCellWidth),
			utils.TruncateString(t.Title(), maxCellWidth),
			utils.TruncateString(t.Name(), maxCellWidth),
		})
	}
	table.Render()
}

// Probes выводит сведения о формате файлов для команды info
func (p *Printer) Probes(probes []metadata.TrackMetadata) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"File", "Type", "Tags", "Size", "Track", "Title"})
	table.SetAutoWrapText(false)

	for _, m := range probes {
		trackNumber := "-"
		if m.Track > 0 {
			trackNumber = fmt.Sprintf("%d", m.Track)
			if m.Total > 0 {
				trackNumber = fmt.Sprintf("%d/%d", m.Track, m.Total)
			}
		}
		table.Append([]string{
			utils.TruncateString(filepath.Base(m.Path), maxCellWidth),
			m.FileType,
			m.Format,
			utils.FormatSize(m.Size),
			trackNumber,
			utils.TruncateString(m.Title, maxCellWidth),
		})
	}
	table.Render()
}
