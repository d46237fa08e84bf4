package rename

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

// CleanTitle заменяет подчеркивания пробелами и переводит слова в заглавный регистр:
// "my_song_title" -> "My Song Title"
func CleanTitle(title string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(title, "_", " "))
}

// CleanTitles нормализует названия всех треков.
// Записываются только изменившиеся названия.
func CleanTitles(c *track.Collection) error {
	var errs []error
	for i, t := range c.Tracks() {
		cleaned := CleanTitle(t.Title())
		if cleaned == t.Title() {
			continue
		}
		if err := c.SetField(i+1, tagstore.FieldTitle, cleaned); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
