package tagstore

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// id3Frames сопоставляет поля с кадрами ID3v2
var id3Frames = map[Field]string{
	FieldTrackNumber: "TRCK",
	FieldTitle:       "TIT2",
	FieldArtist:      "TPE1",
	FieldAlbum:       "TALB",
	FieldGenre:       "TCON",
}

// mp3Store хранит теги MP3 файла в ID3v2
type mp3Store struct {
	tag *id3v2.Tag
}

func openMP3(path string) (Store, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ID3 тегов: %w", err)
	}
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	return &mp3Store{tag: tag}, nil
}

func (s *mp3Store) Get(field Field) string {
	id, ok := id3Frames[field]
	if !ok {
		return ""
	}
	return strings.TrimSpace(s.tag.GetTextFrame(id).Text)
}

func (s *mp3Store) Set(field Field, value string) {
	id, ok := id3Frames[field]
	if !ok {
		return
	}
	// Текстовые кадры не повторяются, AddTextFrame заменяет прежнее значение
	s.tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
}

func (s *mp3Store) Save() error {
	if err := s.tag.Save(); err != nil {
		return fmt.Errorf("ошибка сохранения ID3 тегов: %w", err)
	}
	return nil
}

func (s *mp3Store) Close() error {
	return s.tag.Close()
}
