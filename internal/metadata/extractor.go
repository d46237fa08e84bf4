// Package metadata предоставляет функционал для чтения сведений о формате аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Unknown обозначает формат, который не удалось определить
const Unknown = "unknown"

// TrackMetadata хранит сведения о файле и его тегах
type TrackMetadata struct {
	Path     string
	Size     int64
	FileType string
	Format   string
	Artist   string
	Title    string
	Album    string
	Genre    string
	Track    int
	Total    int
	// Tagged равен false, если теги не удалось прочитать
	Tagged bool
}

// Extractor читает метаданные аудио файлов только для просмотра.
// Запись тегов выполняет пакет tagstore.
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	result := e.getDefaultMetadata(source)

	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return result
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return result
	}

	track, total := metadata.Track()
	result.FileType = orUnknown(string(metadata.FileType()))
	result.Format = orUnknown(string(metadata.Format()))
	result.Artist = strings.TrimSpace(metadata.Artist())
	result.Title = strings.TrimSpace(metadata.Title())
	result.Album = strings.TrimSpace(metadata.Album())
	result.Genre = strings.TrimSpace(metadata.Genre())
	result.Track = track
	result.Total = total
	result.Tagged = true
	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) (TrackMetadata, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return TrackMetadata{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return TrackMetadata{}, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	result := e.ExtractFromReader(file, filePath)
	result.Size = info.Size()
	return result, nil
}

// getDefaultMetadata возвращает метаданные для файла без читаемых тегов
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	ext := strings.TrimPrefix(strings.ToUpper(filepath.Ext(source)), ".")
	return TrackMetadata{
		Path:     source,
		FileType: orUnknown(ext),
		Format:   Unknown,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
