// Package tui содержит тесты для TUI компонентов
package tui

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

func newTestCollection(t *testing.T) (*track.Collection, *rename.Renamer) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.mp3")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	mem := tagstore.NewMemory()
	mem.Put(path, map[tagstore.Field]string{
		tagstore.FieldTrackNumber: "1",
		tagstore.FieldArtist:      "Test Artist",
		tagstore.FieldTitle:       "Test Track",
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	coll := track.NewCollection(track.Options{Opener: mem.Open, Logger: logger})
	if err := coll.Prepare(dir); err != nil {
		t.Fatalf("Failed to load collection: %v", err)
	}
	return coll, rename.NewRenamer(mem, logger, nil)
}

func TestAppQuitsOnKey(t *testing.T) {
	coll, renamer := newTestCollection(t)

	var out bytes.Buffer
	tuiApp := NewApp(coll, renamer,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
	)

	if err := tuiApp.Run(context.Background()); err != nil {
		t.Fatalf("Expected clean exit after 'q', got: %v", err)
	}
	if out.Len() == 0 {
		t.Error("Expected rendered output")
	}
}

func TestAppStopsOnCancel(t *testing.T) {
	coll, renamer := newTestCollection(t)

	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	tuiApp := NewApp(coll, renamer, tea.WithInput(reader), tea.WithOutput(io.Discard))

	done := make(chan error, 1)
	go func() {
		done <- tuiApp.Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error after cancel, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}
