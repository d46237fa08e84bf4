package tracklist

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

func newTestModel(t *testing.T, n int) (*Model, *tagstore.Memory, string) {
	t.Helper()

	dir := t.TempDir()
	mem := tagstore.NewMemory()
	for i := 1; i <= n; i++ {
		path := filepath.Join(dir, "track"+strconv.Itoa(i)+".mp3")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		mem.Put(path, map[tagstore.Field]string{
			tagstore.FieldTrackNumber: strconv.Itoa(i),
			tagstore.FieldTitle:       "song_" + strconv.Itoa(i),
			tagstore.FieldArtist:      "Artist",
			tagstore.FieldAlbum:       "Album",
			tagstore.FieldGenre:       "Genre",
		})
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	coll := track.NewCollection(track.Options{Opener: mem.Open, Logger: logger})
	if err := coll.Prepare(dir); err != nil {
		t.Fatalf("Failed to load collection: %v", err)
	}

	return NewModel(context.Background(), coll, rename.NewRenamer(mem, logger, nil)), mem, dir
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	model, _, _ := newTestModel(t, 2)

	if len(model.list.Items()) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(model.list.Items()))
	}
	if model.Position() != 1 {
		t.Errorf("Expected first track selected, got position %d", model.Position())
	}
}

func TestEditKeySendsMessage(t *testing.T) {
	model, _, _ := newTestModel(t, 2)

	_, cmd := model.Update(key("e"))
	if cmd == nil {
		t.Fatal("Expected command after 'e'")
	}
	msg, ok := cmd().(TrackEditMsg)
	if !ok {
		t.Fatalf("Expected TrackEditMsg, got %T", cmd())
	}
	if msg.Position != 1 || msg.Track.Title() != "song_1" {
		t.Errorf("Unexpected edit message: %+v", msg)
	}
}

func TestMoveDownRenumbers(t *testing.T) {
	model, mem, dir := newTestModel(t, 3)

	model.Update(key("J"))

	if model.Position() != 2 {
		t.Errorf("Selection should follow the moved track, got position %d", model.Position())
	}
	if got := mem.Tags(filepath.Join(dir, "track1.mp3"))[tagstore.FieldTrackNumber]; got != "2" {
		t.Errorf("Expected track1 to get number 2, got %s", got)
	}
	if got := mem.Tags(filepath.Join(dir, "track2.mp3"))[tagstore.FieldTrackNumber]; got != "1" {
		t.Errorf("Expected track2 to get number 1, got %s", got)
	}
}

func TestMoveUpAtTopIsNoop(t *testing.T) {
	model, mem, _ := newTestModel(t, 2)
	saves := mem.Saves()

	model.Update(key("K"))

	if mem.Saves() != saves {
		t.Errorf("Moving the first track up should not write files")
	}
}

func TestCleanKey(t *testing.T) {
	model, mem, dir := newTestModel(t, 2)

	model.Update(key("c"))

	if got := mem.Tags(filepath.Join(dir, "track1.mp3"))[tagstore.FieldTitle]; got != "Song 1" {
		t.Errorf("Expected cleaned title 'Song 1', got %s", got)
	}
	if !strings.Contains(model.View(), "Названия очищены") {
		t.Errorf("Expected status line in view")
	}
}

func TestRenameKey(t *testing.T) {
	model, _, dir := newTestModel(t, 2)

	model.Update(key("r"))

	if _, err := os.Stat(filepath.Join(dir, "1_song_1.mp3")); err != nil {
		t.Errorf("Expected renamed file: %v", err)
	}
	if !strings.Contains(model.View(), "Переименовано файлов: 2") {
		t.Errorf("Expected rename status in view: %s", model.View())
	}
}

func TestQuit(t *testing.T) {
	model, _, _ := newTestModel(t, 1)

	_, cmd := model.Update(key("q"))
	if cmd == nil {
		t.Fatal("Expected tea.Quit command")
	}
	if !strings.Contains(model.View(), "До свидания!") {
		t.Errorf("Expected goodbye message")
	}
}
