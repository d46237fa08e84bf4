package tagstore

import (
	"fmt"
	"strings"

	"go.senan.xyz/taglib"
)

// taglibKeys сопоставляет поля с ключами TagLib
var taglibKeys = map[Field]string{
	FieldTrackNumber: taglib.TrackNumber,
	FieldTitle:       taglib.Title,
	FieldArtist:      taglib.Artist,
	FieldAlbum:       taglib.Album,
	FieldGenre:       taglib.Genre,
}

// oggStore хранит теги Ogg Vorbis файла через TagLib
type oggStore struct {
	path    string
	tags    map[string][]string
	changed map[string][]string
}

func openOGG(path string) (Store, error) {
	tags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения Ogg тегов: %w", err)
	}
	return &oggStore{
		path:    path,
		tags:    tags,
		changed: make(map[string][]string),
	}, nil
}

func (s *oggStore) Get(field Field) string {
	key, ok := taglibKeys[field]
	if !ok {
		return ""
	}
	if values := s.tags[key]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

func (s *oggStore) Set(field Field, value string) {
	key, ok := taglibKeys[field]
	if !ok {
		return
	}
	s.tags[key] = []string{value}
	s.changed[key] = []string{value}
}

func (s *oggStore) Save() error {
	if len(s.changed) == 0 {
		return nil
	}
	// Без taglib.Clear остальные теги файла сохраняются
	if err := taglib.WriteTags(s.path, s.changed, 0); err != nil {
		return fmt.Errorf("ошибка сохранения Ogg тегов: %w", err)
	}
	s.changed = make(map[string][]string)
	return nil
}

func (s *oggStore) Close() error {
	return nil
}
