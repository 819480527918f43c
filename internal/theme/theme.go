package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header           *lipgloss.Style
	Cell             *lipgloss.Style
	CursorCell       *lipgloss.Style
	MarkedRow        *lipgloss.Style
	ToggleCell       *lipgloss.Style
	Menu             *lipgloss.Style
	MenuGroup        *lipgloss.Style
	MenuItem         *lipgloss.Style
	MenuSelectedItem *lipgloss.Style
	MenuInactiveItem *lipgloss.Style
	Error            *lipgloss.Style
	Info             *lipgloss.Style
	Footer           *lipgloss.Style
	Filter           *lipgloss.Style
	FilterPrompt     *lipgloss.Style
	Cursor           *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Cell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	CursorCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	MarkedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	ToggleCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Menu: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	),
	MenuGroup: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	MenuSelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	MenuInactiveItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
