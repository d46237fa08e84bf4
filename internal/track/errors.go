package track

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrNoFilesFound возвращается, если по пути нет ни одного аудио файла.
	// Работа с таким путем невозможна, повторять загрузку нет смысла.
	ErrNoFilesFound = errors.New("аудио файлы не найдены")

	// ErrMalformedTrackNumber означает номер трека без цифр
	ErrMalformedTrackNumber = errors.New("некорректный номер трека")
)

// MalformedTrackNumberError указывает файл с испорченным номером трека
type MalformedTrackNumberError struct {
	Path  string
	Value string
}

func (e *MalformedTrackNumberError) Error() string {
	return fmt.Sprintf("%v %q в %s", ErrMalformedTrackNumber, e.Value, filepath.Base(e.Path))
}

func (e *MalformedTrackNumberError) Unwrap() error {
	return ErrMalformedTrackNumber
}
