package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is the first page of the sign-in flow: a two-item choice
// between logging in and registering.
type WelcomeModel struct {
	items  []string
	idx    int
	status string
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{items: []string{"Log in", "Create an account"}}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: "register"} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString("Your dating life, remembered.\n\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("DATEBOOK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate")
}
