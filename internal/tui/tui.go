// Package tui содержит полноэкранный редактор коллекции треков
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/track"
	"github.com/hazadus/go-tagger/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	coll    *track.Collection
	renamer *rename.Renamer
	options []tea.ProgramOption
}

// NewApp создает новый экземпляр TUI приложения.
// Дополнительные опции передаются в tea.NewProgram, например ввод и вывод.
func NewApp(coll *track.Collection, renamer *rename.Renamer, options ...tea.ProgramOption) *App {
	return &App{coll: coll, renamer: renamer, options: options}
}

// Run запускает TUI приложение до выхода или отмены контекста
func (tuiApp *App) Run(ctx context.Context) error {
	model := app.NewMainModel(ctx, tuiApp.coll, tuiApp.renamer)

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, tuiApp.options...)
	p := tea.NewProgram(model, options...)
	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
