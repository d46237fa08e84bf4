package tagstore

import (
	"fmt"
	"os"
)

// Memory хранит теги в памяти вместо файлов.
// Используется для пробного прогона и в тестах.
type Memory struct {
	files map[string]map[Field]string
	fail  map[string]error
	saves int
}

// NewMemory создает пустое хранилище в памяти
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string]map[Field]string),
		fail:  make(map[string]error),
	}
}

// Put задает теги файла
func (m *Memory) Put(path string, tags map[Field]string) {
	copied := make(map[Field]string, len(tags))
	for k, v := range tags {
		copied[k] = v
	}
	m.files[path] = copied
}

// Tags возвращает копию сохраненных тегов файла
func (m *Memory) Tags(path string) map[Field]string {
	copied := make(map[Field]string)
	for k, v := range m.files[path] {
		copied[k] = v
	}
	return copied
}

// FailSave заставляет Save для файла возвращать ошибку
func (m *Memory) FailSave(path string, err error) {
	m.fail[path] = err
}

// Saves возвращает количество успешных сохранений
func (m *Memory) Saves() int {
	return m.saves
}

// Open реализует Opener
func (m *Memory) Open(path string) (Store, error) {
	if _, ok := m.files[path]; !ok {
		m.files[path] = make(map[Field]string)
	}
	return &memStore{mem: m, path: path, pending: make(map[Field]string)}, nil
}

// Rename переименовывает файл на диске и переносит его теги
func (m *Memory) Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}
	if tags, ok := m.files[oldPath]; ok {
		m.files[newPath] = tags
		delete(m.files, oldPath)
	}
	return nil
}

type memStore struct {
	mem     *Memory
	path    string
	pending map[Field]string
}

func (s *memStore) Get(field Field) string {
	if v, ok := s.pending[field]; ok {
		return v
	}
	return s.mem.files[s.path][field]
}

func (s *memStore) Set(field Field, value string) {
	s.pending[field] = value
}

func (s *memStore) Save() error {
	if err := s.mem.fail[s.path]; err != nil {
		return fmt.Errorf("ошибка сохранения %s: %w", s.path, err)
	}
	for k, v := range s.pending {
		s.mem.files[s.path][k] = v
	}
	s.pending = make(map[Field]string)
	s.mem.saves++
	return nil
}

func (s *memStore) Close() error {
	return nil
}
