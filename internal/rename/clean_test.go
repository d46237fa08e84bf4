package rename

import (
	"path/filepath"
	"testing"

	"github.com/hazadus/go-tagger/internal/tagstore"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"my_song_title", "My Song Title"},
		{"My Song Title", "My Song Title"},
		{"LOUD_NOISES", "Loud Noises"},
		{"don't stop", "Don't Stop"},
		{"", ""},
	}

	for _, test := range tests {
		got := CleanTitle(test.title)
		if got != test.expected {
			t.Errorf("CleanTitle(%q) = %q; expected %q", test.title, got, test.expected)
		}
		if again := CleanTitle(got); again != got {
			t.Errorf("CleanTitle должна быть идемпотентной: %q -> %q", got, again)
		}
	}
}

func TestCleanTitles(t *testing.T) {
	c, mem, dir := setup(t, map[string][2]string{
		"a.mp3": {"1", "first_track"},
		"b.mp3": {"2", "Already Clean"},
	})

	saves := mem.Saves()
	if err := CleanTitles(c); err != nil {
		t.Fatalf("Ошибка нормализации: %v", err)
	}

	if got := mem.Tags(filepath.Join(dir, "a.mp3"))[tagstore.FieldTitle]; got != "First Track" {
		t.Errorf("Ожидался Title: First Track, получено: %s", got)
	}
	if mem.Saves()-saves != 1 {
		t.Errorf("Должно записаться только измененное название, записей: %d", mem.Saves()-saves)
	}

	saves = mem.Saves()
	if err := CleanTitles(c); err != nil {
		t.Fatalf("Ошибка повторной нормализации: %v", err)
	}
	if mem.Saves() != saves {
		t.Error("Повторная нормализация не должна записывать файлы")
	}
}
