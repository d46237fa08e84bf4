package track

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/tagstore"
)

// DefaultValue подставляется вместо пустых исполнителя, альбома и жанра
const DefaultValue = "Unknown"

var digitsPattern = regexp.MustCompile(`\d+`)

// Options задает зависимости коллекции
type Options struct {
	// Opener открывает теги файла; по умолчанию tagstore.Open
	Opener tagstore.Opener
	// Extensions задает порядок групп при сканировании каталога
	Extensions []string
	// DefaultValue подставляется в пустые artist, album и genre
	DefaultValue string
	Logger       logrus.FieldLogger
	// OnUpdate вызывается после каждой записи тега в файл
	OnUpdate func(Update)
}

// Collection хранит упорядоченный список треков.
// Порядок определяет номера треков: после каждой изменяющей операции
// трек на позиции i имеет номер i+1, кроме коллекции из одного трека.
type Collection struct {
	root   string
	single bool
	tracks []*Track

	opener       tagstore.Opener
	extensions   []string
	defaultValue string
	logger       logrus.FieldLogger
	onUpdate     func(Update)
}

// NewCollection создает пустую коллекцию
func NewCollection(opts Options) *Collection {
	c := &Collection{
		opener:       opts.Opener,
		extensions:   opts.Extensions,
		defaultValue: opts.DefaultValue,
		logger:       opts.Logger,
		onUpdate:     opts.OnUpdate,
	}
	if c.opener == nil {
		c.opener = tagstore.Open
	}
	if len(c.extensions) == 0 {
		c.extensions = tagstore.DefaultExtensions()
	}
	if c.defaultValue == "" {
		c.defaultValue = DefaultValue
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}
	return c
}

// Root возвращает путь, из которого загружена коллекция
func (c *Collection) Root() string {
	return c.root
}

// SingleFile сообщает, загружена ли коллекция из одного файла
func (c *Collection) SingleFile() bool {
	return c.single
}

// Len возвращает количество треков
func (c *Collection) Len() int {
	return len(c.tracks)
}

// Tracks возвращает треки в текущем порядке
func (c *Collection) Tracks() []*Track {
	out := make([]*Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// At возвращает трек по позиции, начиная с 1
func (c *Collection) At(pos int) (*Track, bool) {
	if pos < 1 || pos > len(c.tracks) {
		return nil, false
	}
	return c.tracks[pos-1], true
}

// Load заново читает треки из каталога или одного файла
func (c *Collection) Load(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNoFilesFound, root)
		}
		return fmt.Errorf("ошибка получения информации о пути: %w", err)
	}

	var paths []string
	single := !info.IsDir()
	if single {
		paths = []string{root}
	} else {
		paths, err = c.scan(root)
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s", ErrNoFilesFound, root)
	}

	tracks := make([]*Track, 0, len(paths))
	for _, p := range paths {
		t, err := readTrack(p, c.opener)
		if err != nil {
			return err
		}
		tracks = append(tracks, t)
	}

	c.root = root
	c.single = single
	c.tracks = tracks
	c.logger.WithFields(logrus.Fields{"root": root, "tracks": len(tracks)}).Debug("коллекция загружена")
	return nil
}

// scan собирает файлы каталога группами по расширению, внутри группы по имени
func (c *Collection) scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения каталога: %w", err)
	}

	var paths []string
	for _, ext := range c.extensions {
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// Prepare загружает коллекцию и приводит ее в согласованное состояние:
// заполняет пустые теги, сортирует по номеру и перенумеровывает.
// Загрузка идет в отдельную копию: при ошибке прежний порядок треков сохраняется.
func (c *Collection) Prepare(root string) error {
	next := *c
	next.tracks = nil
	if err := next.Load(root); err != nil {
		return err
	}
	if err := next.EnsureDefaults(); err != nil {
		return err
	}
	if err := next.SortByTrackNumber(); err != nil {
		return err
	}
	if err := next.Renumber(); err != nil {
		return err
	}

	c.root = next.root
	c.single = next.single
	c.tracks = next.tracks
	return nil
}

// Reload перечитывает коллекцию с того же пути
func (c *Collection) Reload() error {
	return c.Prepare(c.root)
}

// Retarget меняет путь коллекции из одного файла после переименования
func (c *Collection) Retarget(path string) {
	if c.single {
		c.root = path
	}
}

// EnsureDefaults заполняет пустые теги значениями по умолчанию.
// Непустые значения не перезаписываются.
func (c *Collection) EnsureDefaults() error {
	var errs []error
	for _, t := range c.tracks {
		changes := make(map[tagstore.Field]string)
		for _, f := range tagstore.Fields {
			if strings.TrimSpace(t.Get(f)) != "" {
				continue
			}
			changes[f] = c.fallback(t, f)
		}
		if err := c.write(t, changes); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Collection) fallback(t *Track, field tagstore.Field) string {
	switch field {
	case tagstore.FieldTrackNumber:
		return "1"
	case tagstore.FieldTitle:
		if title := t.titleFromFileName(); title != "" {
			return title
		}
		return DefaultValue
	default:
		return c.defaultValue
	}
}

// ParseTrackNumber извлекает первую группу цифр из номера трека
func ParseTrackNumber(value string) (int, bool) {
	digits := digitsPattern.FindString(value)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortByTrackNumber сортирует треки по номеру с сохранением порядка равных
func (c *Collection) SortByTrackNumber() error {
	keys := make(map[*Track]int, len(c.tracks))
	for _, t := range c.tracks {
		n, ok := ParseTrackNumber(t.TrackNumber())
		if !ok {
			return &MalformedTrackNumberError{Path: t.Path(), Value: t.TrackNumber()}
		}
		keys[t] = n
	}

	sort.SliceStable(c.tracks, func(i, j int) bool {
		return keys[c.tracks[i]] < keys[c.tracks[j]]
	})
	return nil
}

// Move переносит трек с позиции oldPos на позицию newPos (начиная с 1).
// Недопустимая oldPos игнорируется, newPos прижимается к [1, Len].
// Возвращает false, если перемещение не выполнялось.
func (c *Collection) Move(oldPos, newPos int) bool {
	n := len(c.tracks)
	if oldPos < 1 || oldPos > n {
		return false
	}
	newPos = max(1, min(newPos, n))

	t := c.tracks[oldPos-1]
	rest := append(c.tracks[:oldPos-1:oldPos-1], c.tracks[oldPos:]...)
	c.tracks = append(rest[:newPos-1], append([]*Track{t}, rest[newPos-1:]...)...)
	return true
}

// Renumber записывает номер i+1 треку на позиции i, если он отличается.
// Коллекция из одного трека не перенумеровывается.
func (c *Collection) Renumber() error {
	if len(c.tracks) == 1 {
		return nil
	}

	var errs []error
	for i, t := range c.tracks {
		want := strconv.Itoa(i + 1)
		if t.TrackNumber() == want {
			continue
		}
		if err := c.write(t, map[tagstore.Field]string{tagstore.FieldTrackNumber: want}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetField записывает значение тега трека на позиции pos.
// Недопустимая позиция игнорируется.
func (c *Collection) SetField(pos int, field tagstore.Field, value string) error {
	t, ok := c.At(pos)
	if !ok {
		return nil
	}
	return c.write(t, map[tagstore.Field]string{field: value})
}

// SetFieldForAll записывает значение тега всем трекам по порядку.
// Ошибка на одном треке не останавливает запись остальных.
func (c *Collection) SetFieldForAll(field tagstore.Field, value string) error {
	var errs []error
	for pos := 1; pos <= len(c.tracks); pos++ {
		if err := c.SetField(pos, field, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetTrackNumber задает номер трека в коллекции из одного файла.
// Для нескольких треков номер определяется позицией.
func (c *Collection) SetTrackNumber(value string) error {
	if len(c.tracks) != 1 {
		return nil
	}
	return c.write(c.tracks[0], map[tagstore.Field]string{tagstore.FieldTrackNumber: value})
}

func (c *Collection) write(t *Track, changes map[tagstore.Field]string) error {
	updates, err := t.write(changes)
	if err != nil {
		c.logger.WithError(err).WithField("path", t.Path()).Error("ошибка записи тегов")
		return err
	}
	for _, u := range updates {
		c.logger.WithFields(logrus.Fields{
			"path":  u.Path,
			"field": u.Field,
			"value": u.Value,
		}).Info("тег обновлен")
		if c.onUpdate != nil {
			c.onUpdate(u)
		}
	}
	return nil
}
