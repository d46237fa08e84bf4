// Package editor содержит модель экрана редактирования тегов трека для TUI
package editor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Margin(1, 0)
)

// TrackSavedMsg отправляется когда теги трека записаны
type TrackSavedMsg struct{}

// GoBackMsg отправляется при выходе из редактора
type GoBackMsg struct{}

var labels = map[tagstore.Field]string{
	tagstore.FieldArtist: "Исполнитель:",
	tagstore.FieldAlbum:  "Альбом:",
	tagstore.FieldGenre:  "Жанр:",
	tagstore.FieldTitle:  "Название:",
}

// Model представляет модель экрана редактирования трека
type Model struct {
	coll       *track.Collection
	position   int
	track      *track.Track
	fields     []tagstore.Field
	inputs     []textinput.Model
	focusIndex int
	err        string
	success    string
}

// NewModel создает редактор для трека на позиции position
func NewModel(coll *track.Collection, position int, t *track.Track) *Model {
	fields := tagstore.EditableFields
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.TrimSuffix(labels[f], ":")
		inputs[i].SetValue(t.Get(f))
		inputs[i].PromptStyle = blurredStyle
		inputs[i].TextStyle = blurredStyle
	}
	inputs[0].Focus()
	inputs[0].PromptStyle = focusedStyle
	inputs[0].TextStyle = focusedStyle

	return &Model{
		coll:     coll,
		position: position,
		track:    t,
		fields:   fields,
		inputs:   inputs,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.saveTrack()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveTrack()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle
				} else {
					m.inputs[i].Blur()
					m.inputs[i].PromptStyle = blurredStyle
					m.inputs[i].TextStyle = blurredStyle
				}
			}
			return m, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = msg.Width - 20
		}
		return m, nil
	}

	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}
	return m, nil
}

// Save записывает изменившиеся поля. Пустые значения не допускаются.
func (m *Model) Save() error {
	var errs []error
	for i, f := range m.fields {
		value := strings.TrimSpace(m.inputs[i].Value())
		if value == "" {
			return fmt.Errorf("поле '%s' не может быть пустым", strings.TrimSuffix(labels[f], ":"))
		}
		if value == m.track.Get(f) {
			continue
		}
		if err := m.coll.SetField(m.position, f, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// saveTrack записывает теги и возвращается к списку через небольшую задержку
func (m *Model) saveTrack() tea.Cmd {
	if err := m.Save(); err != nil {
		m.err = err.Error()
		m.success = ""
		return nil
	}

	m.err = ""
	m.success = "Теги успешно записаны!"
	return tea.Batch(
		func() tea.Msg { return TrackSavedMsg{} },
		tea.Tick(time.Second, func(time.Time) tea.Msg { return GoBackMsg{} }),
	)
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Редактирование трека #%s: %s", m.track.TrackNumber(), m.track.Name())))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[m.fields[i]]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	saveButton := "[ Сохранить ]"
	if m.focusIndex == len(m.inputs) {
		saveButton = focusedStyle.Render(saveButton)
	} else {
		saveButton = blurredStyle.Render(saveButton)
	}
	b.WriteString(saveButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	if m.success != "" {
		b.WriteString(successStyle.Render(m.success))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле • Ctrl+S: сохранить • Esc: отмена"))
	return b.String()
}
