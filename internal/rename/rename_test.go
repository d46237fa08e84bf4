package rename

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setup создает файлы с тегами и готовую коллекцию над ними
func setup(t *testing.T, files map[string][2]string) (*track.Collection, *tagstore.Memory, string) {
	t.Helper()

	dir := t.TempDir()
	mem := tagstore.NewMemory()
	for name, tags := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("Ошибка создания тестового файла: %v", err)
		}
		mem.Put(path, map[tagstore.Field]string{
			tagstore.FieldTrackNumber: tags[0],
			tagstore.FieldTitle:       tags[1],
			tagstore.FieldArtist:      "Artist",
			tagstore.FieldAlbum:       "Album",
			tagstore.FieldGenre:       "Genre",
		})
	}

	c := track.NewCollection(track.Options{Opener: mem.Open, Logger: quietLogger()})
	if err := c.Prepare(dir); err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}
	return c, mem, dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Ошибка чтения каталога: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"My Song", "my_song"},
		{"Don't Stop (Live)!", "dont_stop_live"},
		{"already_slugged", "already_slugged"},
		{"Ночной Город", "ночной_город"},
		{"  Two  Spaces ", "__two__spaces_"},
		{"?!", ""},
	}

	for _, test := range tests {
		if got := Slug(test.title); got != test.expected {
			t.Errorf("Slug(%q) = %q; expected %q", test.title, got, test.expected)
		}
	}
}

func TestRenameAll(t *testing.T) {
	c, mem, dir := setup(t, map[string][2]string{
		"b.mp3":  {"2", "Second Song"},
		"a.flac": {"1", "First"},
	})

	var reported []Result
	r := NewRenamer(mem, quietLogger(), func(res Result) { reported = append(reported, res) })

	results, err := r.RenameAll(context.Background(), c)
	if err != nil {
		t.Fatalf("Ошибка переименования: %v", err)
	}
	if len(results) != 2 || !reflect.DeepEqual(results, reported) {
		t.Errorf("Ожидалось 2 переименования, получено %v (уведомления %v)", results, reported)
	}

	expected := []string{"1_first.flac", "2_second_song.mp3"}
	if got := listDir(t, dir); !reflect.DeepEqual(got, expected) {
		t.Errorf("Ожидались файлы %v, получено %v", expected, got)
	}

	// коллекция перезагружена и указывает на новые пути
	if got := c.Tracks()[1].Path(); got != filepath.Join(dir, "2_second_song.mp3") {
		t.Errorf("Коллекция должна указывать на новый путь, получено: %s", got)
	}
	if got := mem.Tags(filepath.Join(dir, "2_second_song.mp3"))[tagstore.FieldTitle]; got != "Second Song" {
		t.Errorf("Теги должны сохраниться после переименования, получено: %s", got)
	}
}

func TestRenameAllIdempotent(t *testing.T) {
	c, mem, _ := setup(t, map[string][2]string{
		"x.mp3": {"1", "One"},
		"y.mp3": {"2", "Two"},
	})

	moves := 0
	mover := MoverFunc(func(oldPath, newPath string) error {
		moves++
		return mem.Rename(oldPath, newPath)
	})
	r := NewRenamer(mover, quietLogger(), nil)

	if _, err := r.RenameAll(context.Background(), c); err != nil {
		t.Fatalf("Ошибка переименования: %v", err)
	}
	if moves != 2 {
		t.Fatalf("Ожидалось 2 переименования, получено %d", moves)
	}

	results, err := r.RenameAll(context.Background(), c)
	if err != nil {
		t.Fatalf("Ошибка повторного переименования: %v", err)
	}
	if len(results) != 0 || moves != 2 {
		t.Errorf("Повторный запуск не должен переименовывать файлы, получено %d", len(results))
	}
}

func TestRenameAllCollisionAborts(t *testing.T) {
	// второй трек уже носит имя, которое получит первый
	c, mem, dir := setup(t, map[string][2]string{
		"a.mp3":       {"1", "Intro"},
		"1_intro.mp3": {"2", "Outro"},
		"c.mp3":       {"3", "Coda"},
	})

	r := NewRenamer(mem, quietLogger(), nil)
	results, err := r.RenameAll(context.Background(), c)

	var collision *RenameCollisionError
	if !errors.As(err, &collision) || !errors.Is(err, ErrRenameCollision) {
		t.Fatalf("Ожидалась RenameCollisionError, получено: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("До ошибки не должно быть переименований, получено %v", results)
	}

	expected := []string{"1_intro.mp3", "a.mp3", "c.mp3"}
	if got := listDir(t, dir); !reflect.DeepEqual(got, expected) {
		t.Errorf("Пакет должен прерваться без перезаписи, файлы: %v", got)
	}
	if c.Len() != 3 {
		t.Errorf("Коллекция должна быть перезагружена, треков: %d", c.Len())
	}
}

func TestRenameAllStopsOnMoverError(t *testing.T) {
	c, mem, _ := setup(t, map[string][2]string{
		"a.mp3": {"1", "A"},
		"b.mp3": {"2", "B"},
		"c.mp3": {"3", "C"},
	})

	failure := errors.New("permission denied")
	calls := 0
	mover := MoverFunc(func(oldPath, newPath string) error {
		calls++
		if calls == 2 {
			return failure
		}
		return mem.Rename(oldPath, newPath)
	})

	results, err := NewRenamer(mover, quietLogger(), nil).RenameAll(context.Background(), c)
	if !errors.Is(err, failure) {
		t.Fatalf("Ожидалась ошибка перемещения, получено: %v", err)
	}
	if len(results) != 1 || filepath.Base(results[0].NewPath) != "1_a.mp3" {
		t.Errorf("Ожидалось одно выполненное переименование, получено %v", results)
	}
	if calls != 2 {
		t.Errorf("Пакет должен прерваться после ошибки, вызовов: %d", calls)
	}
}

func TestRenameSingleFileFollowsPath(t *testing.T) {
	dir := t.TempDir()
	mem := tagstore.NewMemory()
	path := filepath.Join(dir, "track.ogg")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	mem.Put(path, map[tagstore.Field]string{tagstore.FieldTrackNumber: "5", tagstore.FieldTitle: "Solo"})

	c := track.NewCollection(track.Options{Opener: mem.Open, Logger: quietLogger()})
	if err := c.Prepare(path); err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}

	if _, err := NewRenamer(mem, quietLogger(), nil).RenameAll(context.Background(), c); err != nil {
		t.Fatalf("Ошибка переименования: %v", err)
	}
	expected := filepath.Join(dir, "5_solo.ogg")
	if c.Root() != expected {
		t.Errorf("Ожидался путь %s, получено %s", expected, c.Root())
	}
	if c.Len() != 1 || c.Tracks()[0].Path() != expected {
		t.Errorf("Коллекция должна указывать на переименованный файл")
	}
}

func TestRenameAllCancelled(t *testing.T) {
	c, mem, dir := setup(t, map[string][2]string{"a.mp3": {"1", "A"}, "b.mp3": {"2", "B"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenamer(mem, quietLogger(), nil).RenameAll(ctx, c)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Ожидалась context.Canceled, получено: %v", err)
	}
	if got := listDir(t, dir); !reflect.DeepEqual(got, []string{"a.mp3", "b.mp3"}) {
		t.Errorf("Файлы не должны переименовываться, получено %v", got)
	}
}
