package editor

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

func newTestEditor(t *testing.T) (*Model, *tagstore.Memory, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "song.flac")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	mem := tagstore.NewMemory()
	mem.Put(path, map[tagstore.Field]string{
		tagstore.FieldTrackNumber: "1",
		tagstore.FieldArtist:      "Artist",
		tagstore.FieldAlbum:       "Album",
		tagstore.FieldGenre:       "Genre",
		tagstore.FieldTitle:       "Title",
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	coll := track.NewCollection(track.Options{Opener: mem.Open, Logger: logger})
	if err := coll.Prepare(dir); err != nil {
		t.Fatalf("Failed to load collection: %v", err)
	}
	tr, _ := coll.At(1)
	return NewModel(coll, 1, tr), mem, path
}

func TestNewModelPrefillsInputs(t *testing.T) {
	model, _, _ := newTestEditor(t)

	expected := []string{"Artist", "Album", "Genre", "Title"}
	for i, input := range model.inputs {
		if input.Value() != expected[i] {
			t.Errorf("Input %d: expected %s, got %s", i, expected[i], input.Value())
		}
	}
	if !model.inputs[0].Focused() {
		t.Error("Expected first input to be focused")
	}
}

func TestSaveWritesOnlyChangedFields(t *testing.T) {
	model, mem, path := newTestEditor(t)
	saves := mem.Saves()

	model.inputs[1].SetValue("New Album")
	if err := model.Save(); err != nil {
		t.Fatalf("Unexpected save error: %v", err)
	}

	if got := mem.Tags(path)[tagstore.FieldAlbum]; got != "New Album" {
		t.Errorf("Expected Album: New Album, got %s", got)
	}
	if mem.Saves()-saves != 1 {
		t.Errorf("Expected exactly one write, got %d", mem.Saves()-saves)
	}
}

func TestSaveRejectsEmptyField(t *testing.T) {
	model, mem, _ := newTestEditor(t)
	saves := mem.Saves()

	model.inputs[3].SetValue("   ")
	model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if mem.Saves() != saves {
		t.Error("Empty field must not be written")
	}
	if !strings.Contains(model.View(), "не может быть пустым") {
		t.Errorf("Expected validation error in view: %s", model.View())
	}
}

func TestFocusCycling(t *testing.T) {
	model, _, _ := newTestEditor(t)

	model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if model.focusIndex != len(model.inputs) {
		t.Errorf("Expected focus on save button, got %d", model.focusIndex)
	}

	model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if model.focusIndex != 0 {
		t.Errorf("Expected focus to wrap to first input, got %d", model.focusIndex)
	}
}

func TestEscGoesBack(t *testing.T) {
	model, _, _ := newTestEditor(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected command after Esc")
	}
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Errorf("Expected GoBackMsg, got %T", cmd())
	}
}
