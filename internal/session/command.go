// Package session реализует построчный цикл команд оператора
package session

import (
	"strings"

	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/view"
)

// Command является одной из команд цикла
type Command interface {
	command()
}

// EditCommand меняет тег у выбранных треков
type EditCommand struct {
	Field  tagstore.Field
	Target string
}

// MoveCommand переносит трек на новую позицию
type MoveCommand struct {
	From string
}

// InfoCommand показывает формат выбранных файлов
type InfoCommand struct {
	Target string
}

// RenameCommand переименовывает файлы по тегам
type RenameCommand struct{}

// CleanCommand нормализует названия
type CleanCommand struct{}

// ReloadCommand перечитывает файлы
type ReloadCommand struct{}

// HelpCommand выводит полное меню
type HelpCommand struct{}

// ExitCommand завершает цикл
type ExitCommand struct{}

// UnknownCommand хранит нераспознанное имя команды
type UnknownCommand struct {
	Name string
}

func (EditCommand) command()    {}
func (MoveCommand) command()    {}
func (InfoCommand) command()    {}
func (RenameCommand) command()  {}
func (CleanCommand) command()   {}
func (ReloadCommand) command()  {}
func (HelpCommand) command()    {}
func (ExitCommand) command()    {}
func (UnknownCommand) command() {}

// Menu перечисляет команды в порядке вывода
var Menu = []view.MenuItem{
	{Name: "artist", Description: "Change track artists"},
	{Name: "album", Description: "Change track albums"},
	{Name: "genre", Description: "Change track genres"},
	{Name: "title", Description: "Change track titles"},
	{Name: "move", Description: "Move track to a new position"},
	{Name: "rename", Description: "Apply filename changes"},
	{Name: "clean", Description: "Clean track titles"},
	{Name: "reload", Description: "Reload files"},
	{Name: "info", Description: "Show file format details"},
	{Name: "help", Description: "Show this message"},
	{Name: "exit", Description: "Exit the application"},
}

// ParseCommand разбирает строку ввода. Пустая строка дает false.
// Второе слово строки становится аргументом команды, остальные игнорируются.
func ParseCommand(line string) (Command, bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil, false
	}

	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}

	name := args[0]
	if field, ok := tagstore.ParseField(name); ok && field.IsEditable() {
		return EditCommand{Field: field, Target: arg}, true
	}

	switch name {
	case "move":
		return MoveCommand{From: arg}, true
	case "info":
		return InfoCommand{Target: arg}, true
	case "rename":
		return RenameCommand{}, true
	case "clean":
		return CleanCommand{}, true
	case "reload":
		return ReloadCommand{}, true
	case "help":
		return HelpCommand{}, true
	case "exit":
		return ExitCommand{}, true
	}
	return UnknownCommand{Name: name}, true
}
