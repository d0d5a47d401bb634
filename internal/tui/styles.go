package tui

import "github.com/charmbracelet/lipgloss"

// Styles is the palette for one theme. The two palettes mirror the dark and
// light classes of the reference web client.
type Styles struct {
	Header          lipgloss.Style
	Badge           lipgloss.Style
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	Muted           lipgloss.Style
	Notice          lipgloss.Style
	Listening       lipgloss.Style
	Input           lipgloss.Style
	Footer          lipgloss.Style
	PanelTitle      lipgloss.Style
	FieldLabel      lipgloss.Style
	FieldFocused    lipgloss.Style
	Danger          lipgloss.Style
}

func newStyles(dark bool) Styles {
	if dark {
		return Styles{
			Header:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("235")).Padding(0, 1),
			Badge:           lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")).Padding(0, 1),
			UserBubble:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("26")).Padding(0, 1),
			AssistantBubble: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238")).Padding(0, 1),
			Muted:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Notice:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Listening:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			Input:           lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Footer:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			PanelTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			FieldLabel:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			FieldFocused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
			Danger:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		}
	}
	return Styles{
		Header:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")).Padding(0, 1),
		Badge:           lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("252")).Padding(0, 1),
		UserBubble:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")).Padding(0, 1),
		AssistantBubble: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("252")).Padding(0, 1),
		Muted:           lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Notice:          lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		Listening:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("32")),
		Input:           lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Footer:          lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		PanelTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		FieldLabel:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FieldFocused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		Danger:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
	}
}
