// Package tagstore даёт единый доступ к тегам аудио файлов разных форматов
package tagstore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Field определяет имя тега, доступного для чтения и записи
type Field string

// Поддерживаемые поля
const (
	FieldTrackNumber Field = "tracknumber"
	FieldTitle       Field = "title"
	FieldArtist      Field = "artist"
	FieldAlbum       Field = "album"
	FieldGenre       Field = "genre"
)

// Fields перечисляет все поля в порядке отображения
var Fields = []Field{FieldTrackNumber, FieldArtist, FieldAlbum, FieldGenre, FieldTitle}

// EditableFields перечисляет поля, которые оператор меняет напрямую.
// Номер трека меняется только через перемещение.
var EditableFields = []Field{FieldArtist, FieldAlbum, FieldGenre, FieldTitle}

// ParseField возвращает поле по его имени
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// IsEditable сообщает, можно ли менять поле командой редактирования
func (f Field) IsEditable() bool {
	for _, e := range EditableFields {
		if e == f {
			return true
		}
	}
	return false
}

// ErrUnsupportedFormat возвращается для файлов с неизвестным расширением
var ErrUnsupportedFormat = errors.New("неподдерживаемый формат файла")

// Store хранит теги одного файла.
// Отсутствующее поле и пустое значение не различаются: Get возвращает "".
type Store interface {
	Get(field Field) string
	Set(field Field, value string)
	// Save записывает изменения в файл
	Save() error
	Close() error
}

// Opener открывает Store для файла
type Opener func(path string) (Store, error)

// Format описывает поддерживаемый формат
type Format struct {
	Extension string
	open      Opener
}

var formats = []Format{
	{Extension: ".flac", open: openFLAC},
	{Extension: ".ogg", open: openOGG},
	{Extension: ".mp3", open: openMP3},
}

// DefaultExtensions возвращает порядок расширений при сканировании каталога
func DefaultExtensions() []string {
	exts := make([]string, 0, len(formats))
	for _, f := range formats {
		exts = append(exts, f.Extension)
	}
	return exts
}

// IsSupported сообщает, есть ли адаптер для расширения
func IsSupported(ext string) bool {
	_, ok := lookup(ext)
	return ok
}

func lookup(ext string) (Format, bool) {
	ext = strings.ToLower(ext)
	for _, f := range formats {
		if f.Extension == ext {
			return f, true
		}
	}
	return Format{}, false
}

// Open открывает Store, выбирая адаптер по расширению файла
func Open(path string) (Store, error) {
	f, ok := lookup(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	return f.open(path)
}
