// Package tui renders the conversation controller's state and forwards user
// intents into it. All state transitions live in the controller; this layer
// only maps key presses to operations and effects to tea commands.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"asistente/internal/chat"
	"asistente/internal/config"
)

type mode int

const (
	modeChat mode = iota
	modeSettings
	modeConfirmClear
	modeAttach
)

// Settings panel fields, in focus order.
const (
	fieldName = iota
	fieldAPIKey
	fieldModel
	fieldVoice
	fieldCount
)

type Model struct {
	ctrl   *chat.Controller
	logger zerolog.Logger

	width  int
	height int
	dark   bool
	styles Styles

	mode      mode
	focus     int
	pathInput string
	confirmNo bool
	scroll    int
}

func New(ctrl *chat.Controller, logger zerolog.Logger) Model {
	return Model{
		ctrl:   ctrl,
		logger: logger,
		width:  80,
		height: 24,
		dark:   true,
		styles: newStyles(true),
	}
}

func (m Model) Init() tea.Cmd {
	return runEffect(m.ctrl.Init())
}

// runEffect lifts a controller effect into a tea command; the settled event
// flows back through Update.
func runEffect(eff chat.Effect) tea.Cmd {
	if eff == nil {
		return nil
	}
	return func() tea.Msg {
		return eff(context.Background())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case chat.Event:
		follow := m.ctrl.Apply(msg)
		if loaded, ok := msg.(chat.ConfigLoaded); ok && loaded.Err == nil {
			m.setTheme(loaded.Config.Theme == config.ThemeDark)
		}
		// A successful save closes the panel inside the controller.
		if m.mode == modeSettings && !m.ctrl.SettingsOpen() {
			m.mode = modeChat
		}
		m.scroll = 0
		return m, runEffect(follow)

	case tea.KeyMsg:
		switch m.mode {
		case modeSettings:
			return m.updateSettings(msg)
		case modeConfirmClear:
			return m.updateConfirm(msg)
		case modeAttach:
			return m.updateAttach(msg)
		default:
			return m.updateChat(msg)
		}
	}

	return m, nil
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.ctrl.ClearNotice()
		return m, runEffect(m.ctrl.Send(m.ctrl.Input()))
	case "ctrl+r":
		m.ctrl.ClearNotice()
		return m, runEffect(m.ctrl.ToggleCapture())
	case "ctrl+o":
		m.ctrl.ClearNotice()
		m.mode = modeAttach
		m.pathInput = ""
		return m, nil
	case "ctrl+s":
		m.ctrl.ClearNotice()
		m.ctrl.OpenSettings()
		m.mode = modeSettings
		m.focus = fieldName
		return m, nil
	case "ctrl+t":
		m.setTheme(!m.dark)
		return m, nil
	case "esc":
		m.ctrl.ClearNotice()
		return m, nil
	case "up":
		m.scroll++
		return m, nil
	case "down":
		if m.scroll > 0 {
			m.scroll--
		}
		return m, nil
	case "pgup":
		m.scroll += 10
		return m, nil
	case "pgdown":
		m.scroll -= 10
		if m.scroll < 0 {
			m.scroll = 0
		}
		return m, nil
	case "backspace":
		m.ctrl.SetInput(trimLastRune(m.ctrl.Input()))
		return m, nil
	}

	if key := keyText(msg); key != "" {
		m.ctrl.SetInput(m.ctrl.Input() + key)
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	draft := m.ctrl.Draft()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.ctrl.CancelSettings()
		m.mode = modeChat
		return m, nil
	case "enter":
		return m, runEffect(m.ctrl.SaveSettings())
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil
	case "ctrl+d":
		if m.ctrl.Config().DocumentCount > 0 {
			m.mode = modeConfirmClear
			m.confirmNo = true
		}
		return m, nil
	case "backspace":
		switch m.focus {
		case fieldName:
			draft.AssistantName = trimLastRune(draft.AssistantName)
		case fieldAPIKey:
			draft.APIKey = trimLastRune(draft.APIKey)
		case fieldModel:
			draft.Model = trimLastRune(draft.Model)
		}
		return m, nil
	case " ":
		if m.focus == fieldVoice {
			m.ctrl.ToggleVoice()
			return m, nil
		}
	}

	if key := keyText(msg); key != "" && m.focus != fieldVoice {
		switch m.focus {
		case fieldName:
			draft.AssistantName += key
		case fieldAPIKey:
			draft.APIKey += key
		case fieldModel:
			draft.Model += key
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "left", "right", "tab":
		m.confirmNo = !m.confirmNo
		return m, nil
	case "esc":
		m.mode = modeSettings
		return m, nil
	case "enter":
		m.mode = modeSettings
		if m.confirmNo {
			// declined: nothing is sent
			return m, nil
		}
		return m, runEffect(m.ctrl.ClearDocuments())
	}
	return m, nil
}

func (m Model) updateAttach(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeChat
		return m, nil
	case "enter":
		m.mode = modeChat
		if m.pathInput == "" {
			return m, nil
		}
		m.logger.Debug().Str("path", m.pathInput).Msg("document selected")
		return m, runEffect(m.ctrl.Upload(m.pathInput))
	case "backspace":
		m.pathInput = trimLastRune(m.pathInput)
		return m, nil
	}

	if key := keyText(msg); key != "" {
		m.pathInput += key
	}
	return m, nil
}

func (m *Model) setTheme(dark bool) {
	m.dark = dark
	m.styles = newStyles(dark)
}

func keyText(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	}
	return ""
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
