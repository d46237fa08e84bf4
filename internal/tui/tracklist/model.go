// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
	"github.com/hazadus/go-tagger/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("46"))
	errorStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("196"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// TrackEditMsg отправляется при выборе трека для редактирования
type TrackEditMsg struct {
	Position int
	Track    *track.Track
}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track *track.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.track.Get(tagstore.FieldArtist), i.track.Title())
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Номер | Исполнитель | Альбом | Жанр | Название
	str := fmt.Sprintf("%s %s %s %s %s",
		utils.PadRight(i.track.TrackNumber(), 4),
		utils.PadRight(utils.TruncateString(i.track.Get(tagstore.FieldArtist), 20), 20),
		utils.PadRight(utils.TruncateString(i.track.Get(tagstore.FieldAlbum), 20), 20),
		utils.PadRight(utils.TruncateString(i.track.Get(tagstore.FieldGenre), 12), 12),
		utils.TruncateString(i.track.Title(), 50))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков
type Model struct {
	ctx      context.Context
	list     list.Model
	coll     *track.Collection
	renamer  *rename.Renamer
	status   string
	err      error
	quitting bool
}

// NewModel создает новую модель списка треков
func NewModel(ctx context.Context, coll *track.Collection, renamer *rename.Renamer) *Model {
	l := list.New(nil, trackItemDelegate{}, 0, 0)
	l.Title = "Треки"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{
		ctx:     ctx,
		list:    l,
		coll:    coll,
		renamer: renamer,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет элементы списка из коллекции
func (m *Model) RefreshData() {
	tracks := m.coll.Tracks()
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	m.list.SetItems(items)
}

// Position возвращает позицию выделенного трека (начиная с 1)
func (m *Model) Position() int {
	return m.list.Index() + 1
}

// SetStatus задает строку состояния под списком
func (m *Model) SetStatus(status string, err error) {
	m.status = status
	m.err = err
}

// move переносит выделенный трек на delta позиций и перенумеровывает коллекцию
func (m *Model) move(delta int) {
	from := m.Position()
	to := max(1, min(from+delta, m.coll.Len()))
	if from == to || !m.coll.Move(from, to) {
		return
	}
	err := m.coll.Renumber()
	m.RefreshData()
	m.list.Select(to - 1)
	m.SetStatus(fmt.Sprintf("Трек перемещен: %d → %d", from, to), err)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для справки и строки состояния
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "e", "enter":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				pos := m.Position()
				return m, func() tea.Msg {
					return TrackEditMsg{Position: pos, Track: item.track}
				}
			}
			return m, nil

		case "K", "shift+up":
			m.move(-1)
			return m, nil

		case "J", "shift+down":
			m.move(1)
			return m, nil

		case "c":
			err := rename.CleanTitles(m.coll)
			m.RefreshData()
			m.SetStatus("Названия очищены", err)
			return m, nil

		case "r":
			results, err := m.renamer.RenameAll(m.ctx, m.coll)
			m.RefreshData()
			m.SetStatus(fmt.Sprintf("Переименовано файлов: %d", len(results)), err)
			return m, nil

		case "R":
			err := m.coll.Reload()
			m.RefreshData()
			m.SetStatus("Файлы перечитаны", err)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	status := ""
	switch {
	case m.err != nil:
		status = errorStyle.Render("Ошибка: " + m.err.Error())
	case m.status != "":
		status = statusStyle.Render(m.status)
	}
	extraHelp := helpStyle.Render("e: редактировать • J/K: переместить • c: очистить названия • r: переименовать • R: перечитать • q: выход")
	return view + "\n" + status + "\n" + extraHelp
}
