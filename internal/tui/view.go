package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"asistente/internal/chat"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.mode {
	case modeSettings:
		b.WriteString(m.viewSettings())
	case modeConfirmClear:
		b.WriteString(m.viewConfirm())
	default:
		b.WriteString(m.viewChat())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewInput())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) bodyHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) viewHeader() string {
	cfg := m.ctrl.Config()
	title := m.styles.Header.Render(cfg.AssistantName)
	if cfg.DocumentCount > 0 {
		badge := m.styles.Badge.Render(fmt.Sprintf("%d docs", cfg.DocumentCount))
		return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badge)
	}
	return title
}

func (m Model) viewChat() string {
	msgs := m.ctrl.Messages()
	bodyH := m.bodyHeight()

	if len(msgs) == 0 && !m.ctrl.Thinking() {
		greeting := m.styles.Muted.Render(chat.Greeting) + "\n" + m.styles.Muted.Render(chat.GreetingHint)
		return lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, greeting)
	}

	bubbleWidth := m.width * 7 / 10
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	var lines []string
	for _, msg := range msgs {
		// wrap long messages, keep short bubbles snug
		w := lipgloss.Width(msg.Text) + 2
		if w > bubbleWidth {
			w = bubbleWidth
		}
		var bubble string
		if msg.Sender == chat.SenderUser {
			bubble = m.styles.UserBubble.Width(w).Render(msg.Text)
			bubble = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
		} else {
			bubble = m.styles.AssistantBubble.Width(w).Render(msg.Text)
		}
		lines = append(lines, strings.Split(bubble, "\n")...)
		lines = append(lines, "")
	}
	if m.ctrl.Thinking() {
		lines = append(lines, m.styles.AssistantBubble.Render("● ● ●"))
	}

	// window the lines so the newest stay visible; scroll walks backwards
	start := len(lines) - bodyH - m.scroll
	if start < 0 {
		start = 0
	}
	end := start + bodyH
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[start:end]
	for len(visible) < bodyH {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

func (m Model) viewSettings() string {
	draft := m.ctrl.Draft()
	masked := strings.Repeat("*", len([]rune(draft.APIKey)))

	voiceMark := " "
	if m.ctrl.VoiceEnabled() {
		voiceMark = "x"
	}

	rows := []string{
		m.styles.PanelTitle.Render("Ajustes del Asistente"),
		"",
		m.renderField(fieldName, "Nombre del Asistente:", draft.AssistantName),
		m.renderField(fieldAPIKey, "Clave de Gemini API:", masked),
		m.renderField(fieldModel, "Modelo de IA:", draft.Model),
		m.renderField(fieldVoice, fmt.Sprintf("[%s] Activar síntesis de voz", voiceMark), ""),
		"",
		m.styles.Muted.Render("tab campo · espacio alternar voz · enter guardar · esc cancelar"),
		m.styles.Danger.Render("ctrl+d limpiar documentos"),
	}

	panel := strings.Join(rows, "\n")
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) renderField(field int, label, value string) string {
	cursor := ""
	style := m.styles.FieldLabel
	if m.focus == field {
		style = m.styles.FieldFocused
		if field != fieldVoice {
			cursor = "█"
		}
	}
	if field == fieldVoice {
		return style.Render(label)
	}
	return style.Render(label) + " " + m.styles.Input.Render(value) + cursor
}

func (m Model) viewConfirm() string {
	yes := "Eliminar"
	no := "Cancelar"
	if m.confirmNo {
		no = m.styles.FieldFocused.Render("[ " + no + " ]")
		yes = m.styles.Muted.Render("  " + yes + "  ")
	} else {
		yes = m.styles.Danger.Render("[ " + yes + " ]")
		no = m.styles.Muted.Render("  " + no + "  ")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(m.styles.PanelTitle.Render(chat.ConfirmClearDocuments) + "\n\n" + no + "  " + yes)

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewStatus() string {
	if m.ctrl.Listening() {
		return m.styles.Listening.Render("Escuchando...")
	}
	if notice := m.ctrl.Notice(); notice != "" {
		return m.styles.Notice.Render(notice)
	}
	return ""
}

func (m Model) viewInput() string {
	if m.mode == modeAttach {
		return m.styles.Input.Render("Ruta del documento (.pdf/.txt): "+m.pathInput) + "█"
	}
	prompt := "Escribe tu mensaje o comando..."
	if input := m.ctrl.Input(); input != "" {
		return m.styles.Input.Render("> "+input) + "█"
	}
	return m.styles.Muted.Render("> " + prompt)
}

func (m Model) viewFooter() string {
	return m.styles.Footer.Render("enter enviar · ctrl+r voz · ctrl+o adjuntar · ctrl+s ajustes · ctrl+t tema · ctrl+c salir")
}
