// Package app содержит основную логику TUI приложения
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/track"
	"github.com/hazadus/go-tagger/internal/tui/editor"
	"github.com/hazadus/go-tagger/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// EditorScreen - экран редактирования
	EditorScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	coll           *track.Collection
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	editorModel    *editor.Model
}

// NewMainModel создает новую главную модель
func NewMainModel(ctx context.Context, coll *track.Collection, renamer *rename.Renamer) *MainModel {
	return &MainModel{
		coll:           coll,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(ctx, coll, renamer),
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tracklist.TrackEditMsg:
		m.currentScreen = EditorScreen
		m.editorModel = editor.NewModel(m.coll, msg.Position, msg.Track)
		return m, m.editorModel.Init()

	case editor.GoBackMsg:
		if m.currentScreen != EditorScreen {
			return m, nil
		}
		m.currentScreen = TracklistScreen
		m.editorModel = nil
		m.tracklistModel.RefreshData()
		return m, nil

	case editor.TrackSavedMsg:
		m.tracklistModel.RefreshData()
		return m, nil

	case tea.WindowSizeMsg:
		// Размеры нужны обоим экранам, редактор может открыться позже
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
		if m.editorModel != nil {
			m.editorModel, _ = m.editorModel.Update(msg)
		}
		return m, cmd
	}

	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	}
	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
