// Package track содержит логику управления треками
package track

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hazadus/go-tagger/internal/tagstore"
)

// Track хранит путь к файлу и кэш его тегов.
// Путь является идентификатором трека, пока файл не переименован.
type Track struct {
	path   string
	tags   map[tagstore.Field]string
	opener tagstore.Opener
}

// Update описывает одно записанное в файл значение тега
type Update struct {
	Path  string
	Field tagstore.Field
	Value string
}

// readTrack читает все поддерживаемые теги файла
func readTrack(path string, opener tagstore.Opener) (*Track, error) {
	store, err := opener(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения тегов %s: %w", filepath.Base(path), err)
	}
	defer store.Close()

	t := &Track{
		path:   path,
		tags:   make(map[tagstore.Field]string, len(tagstore.Fields)),
		opener: opener,
	}
	for _, f := range tagstore.Fields {
		t.tags[f] = strings.TrimSpace(store.Get(f))
	}
	return t, nil
}

// Path возвращает путь к файлу
func (t *Track) Path() string {
	return t.path
}

// Name возвращает имя файла
func (t *Track) Name() string {
	return filepath.Base(t.path)
}

// Get возвращает кэшированное значение тега
func (t *Track) Get(field tagstore.Field) string {
	return t.tags[field]
}

// Title возвращает название трека
func (t *Track) Title() string { return t.tags[tagstore.FieldTitle] }

// TrackNumber возвращает номер трека в виде текста
func (t *Track) TrackNumber() string { return t.tags[tagstore.FieldTrackNumber] }

// titleFromFileName возвращает имя файла без расширения
func (t *Track) titleFromFileName() string {
	name := t.Name()
	return strings.TrimSpace(strings.TrimSuffix(name, filepath.Ext(name)))
}

// write записывает изменения в файл одним сохранением и обновляет кэш.
// Поля записываются в порядке tagstore.Fields.
func (t *Track) write(changes map[tagstore.Field]string) ([]Update, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	store, err := t.opener(t.path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия %s: %w", t.Name(), err)
	}
	defer store.Close()

	var updates []Update
	for _, f := range tagstore.Fields {
		value, ok := changes[f]
		if !ok {
			continue
		}
		store.Set(f, value)
		updates = append(updates, Update{Path: t.path, Field: f, Value: value})
	}

	if err := store.Save(); err != nil {
		return nil, fmt.Errorf("ошибка записи тегов %s: %w", t.Name(), err)
	}

	for _, u := range updates {
		t.tags[u.Field] = u.Value
	}
	return updates, nil
}
