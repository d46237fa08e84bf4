// Package view выводит таблицу треков, меню и сообщения оператору
package view

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
	"github.com/hazadus/go-tagger/internal/utils"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	promptStyle = lipgloss.NewStyle().Bold(true)
)

// MenuItem описывает команду в меню
type MenuItem struct {
	Name        string
	Description string
}

// Printer выводит сообщения в out, раскрашивая их, если включен цвет
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter создает Printer
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

// Writer возвращает поток вывода
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Space выводит пустую строку
func (p *Printer) Space() {
	fmt.Fprintln(p.out)
}

// Tracks выводит треки в колонках, выровненных по самому длинному значению
func (p *Printer) Tracks(tracks []*track.Track) {
	p.Space()
	if len(tracks) == 0 {
		return
	}

	columns := []tagstore.Field{
		tagstore.FieldTrackNumber,
		tagstore.FieldArtist,
		tagstore.FieldAlbum,
		tagstore.FieldGenre,
	}
	widths := make(map[tagstore.Field]int, len(columns))
	for _, f := range columns {
		values := make([]string, 0, len(tracks))
		for _, t := range tracks {
			values = append(values, t.Get(f))
		}
		widths[f] = utils.MaxWidth(values)
	}

	for _, t := range tracks {
		var b strings.Builder
		for _, f := range columns {
			fmt.Fprintf(&b, "%s %s | ", p.paint(labelStyle, columnLabel(f)), utils.PadRight(t.Get(f), widths[f]))
		}
		fmt.Fprintf(&b, "%s %s", p.paint(labelStyle, columnLabel(tagstore.FieldTitle)), t.Title())
		fmt.Fprintln(p.out, b.String())
	}
}

// columnLabel возвращает подпись колонки: "#" для номера, "Artist:" для исполнителя
func columnLabel(f tagstore.Field) string {
	if f == tagstore.FieldTrackNumber {
		return "#"
	}
	return FieldLabel(f) + ":"
}

// FieldLabel возвращает имя поля с заглавной буквы
func FieldLabel(f tagstore.Field) string {
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Menu выводит короткое меню в одну строку или полное с описаниями
func (p *Printer) Menu(items []MenuItem, full bool) {
	if !full {
		p.Space()
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Name)
		}
		fmt.Fprintln(p.out, strings.Join(names, " | "))
		return
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	width := utils.MaxWidth(names)
	for _, item := range items {
		fmt.Fprintf(p.out, "%s - %s\n", utils.PadRight(item.Name, width), item.Description)
	}
}

// Prompt выводит приглашение ко вводу без перевода строки
func (p *Printer) Prompt(text string) {
	fmt.Fprint(p.out, p.paint(promptStyle, text))
}

// Info выводит сообщение с заголовком: "Header: message"
func (p *Printer) Info(header, message string) {
	p.Space()
	fmt.Fprintf(p.out, "%s %s\n", p.paint(headerStyle, header+":"), message)
}

// Action выводит сообщение о выполненном действии
func (p *Printer) Action(message string) {
	p.Space()
	fmt.Fprintln(p.out, p.paint(headerStyle, message))
}

// Error выводит ошибку
func (p *Printer) Error(err error) {
	p.Space()
	fmt.Fprintln(p.out, p.paint(errorStyle, "❌ Ошибка: "+err.Error()))
}

// Update сообщает о записи тега в файл
func (p *Printer) Update(u track.Update) {
	p.Info("Update", fmt.Sprintf("%s set to %s in %s",
		p.paint(labelStyle, string(u.Field)),
		p.paint(labelStyle, u.Value),
		filepath.Base(u.Path)))
}

// Rename сообщает о переименовании файла
func (p *Printer) Rename(res rename.Result) {
	p.Info("Rename", fmt.Sprintf("%s to %s", filepath.Base(res.OldPath), filepath.Base(res.NewPath)))
}
