// Package rename переименовывает файлы по их тегам и нормализует названия треков
package rename

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

var slugStrip = regexp.MustCompile(`[^\p{L}\p{N}_ ]`)

// ErrRenameCollision означает, что имя уже занято другим файлом
var ErrRenameCollision = errors.New("файл с таким именем уже существует")

// RenameCollisionError указывает переименование, которое перезаписало бы другой файл
type RenameCollisionError struct {
	OldPath string
	NewPath string
}

func (e *RenameCollisionError) Error() string {
	return fmt.Sprintf("нельзя переименовать %s в %s: %v",
		filepath.Base(e.OldPath), filepath.Base(e.NewPath), ErrRenameCollision)
}

func (e *RenameCollisionError) Unwrap() error {
	return ErrRenameCollision
}

// Mover переименовывает файлы
type Mover interface {
	Rename(oldPath, newPath string) error
}

// MoverFunc позволяет использовать функцию как Mover
type MoverFunc func(oldPath, newPath string) error

// Rename реализует Mover
func (f MoverFunc) Rename(oldPath, newPath string) error {
	return f(oldPath, newPath)
}

// Result описывает одно выполненное переименование
type Result struct {
	OldPath string
	NewPath string
}

// Slug приводит название к виду, пригодному для имени файла:
// нижний регистр, только буквы, цифры, подчеркивания и пробелы, пробелы заменены на "_"
func Slug(title string) string {
	s := strings.ToLower(slugStrip.ReplaceAllString(title, ""))
	return strings.ReplaceAll(s, " ", "_")
}

// CanonicalName возвращает имя файла вида {tracknumber}_{slug(title)}{ext}
func CanonicalName(t *track.Track) string {
	return fmt.Sprintf("%s_%s%s",
		t.Get(tagstore.FieldTrackNumber),
		Slug(t.Get(tagstore.FieldTitle)),
		filepath.Ext(t.Path()),
	)
}

// Renamer переименовывает треки коллекции по тегам
type Renamer struct {
	mover    Mover
	logger   logrus.FieldLogger
	onRename func(Result)
}

// NewRenamer создает Renamer. Если mover равен nil, используется os.Rename.
func NewRenamer(mover Mover, logger logrus.FieldLogger, onRename func(Result)) *Renamer {
	if mover == nil {
		mover = MoverFunc(os.Rename)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Renamer{mover: mover, logger: logger, onRename: onRename}
}

// Rename переименовывает один трек. Возвращает false, если имя уже каноническое.
func (r *Renamer) Rename(t *track.Track) (Result, bool, error) {
	oldPath := t.Path()
	newPath := filepath.Join(filepath.Dir(oldPath), CanonicalName(t))
	if newPath == oldPath {
		return Result{}, false, nil
	}

	if err := checkCollision(oldPath, newPath); err != nil {
		return Result{}, false, err
	}
	if err := r.mover.Rename(oldPath, newPath); err != nil {
		return Result{}, false, fmt.Errorf("ошибка переименования %s: %w", filepath.Base(oldPath), err)
	}

	res := Result{OldPath: oldPath, NewPath: newPath}
	r.logger.WithFields(logrus.Fields{"old": oldPath, "new": newPath}).Info("файл переименован")
	if r.onRename != nil {
		r.onRename(res)
	}
	return res, true, nil
}

// checkCollision не дает перезаписать другой существующий файл.
// Совпадение с самим собой (смена регистра имени) допускается.
func checkCollision(oldPath, newPath string) error {
	newInfo, err := os.Stat(newPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка проверки %s: %w", filepath.Base(newPath), err)
	}
	oldInfo, err := os.Stat(oldPath)
	if err == nil && os.SameFile(oldInfo, newInfo) {
		return nil
	}
	return &RenameCollisionError{OldPath: oldPath, NewPath: newPath}
}

// RenameAll переименовывает все треки коллекции по порядку.
// Первая ошибка прерывает пакет; выполненные переименования возвращаются.
// После пакета коллекция всегда перезагружается, так как пути треков изменились.
func (r *Renamer) RenameAll(ctx context.Context, c *track.Collection) ([]Result, error) {
	var (
		results []Result
		runErr  error
	)

	for _, t := range c.Tracks() {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		res, renamed, err := r.Rename(t)
		if err != nil {
			runErr = err
			break
		}
		if renamed {
			results = append(results, res)
			c.Retarget(res.NewPath)
		}
	}

	if runErr != nil {
		r.logger.WithError(runErr).WithField("renamed", len(results)).Warn("переименование прервано")
	}
	if err := c.Reload(); err != nil {
		return results, errors.Join(runErr, fmt.Errorf("ошибка перезагрузки: %w", err))
	}
	return results, runErr
}
