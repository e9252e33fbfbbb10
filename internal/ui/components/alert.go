package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"projectbrain/internal/ui/theme"
)

// AlertDismissedMsg is emitted once the user acknowledges an alert.
type AlertDismissedMsg struct{}

// Alert is a modal notice. While visible it swallows every key except the
// ones that dismiss it, so the screen underneath cannot be used.
type Alert struct {
	title   string
	body    string
	visible bool
}

func (a *Alert) Show(title, body string) {
	a.title = title
	a.body = body
	a.visible = true
}

func (a Alert) Visible() bool { return a.visible }

func (a Alert) Body() string { return a.body }

func (a Alert) Update(msg tea.Msg) (Alert, tea.Cmd) {
	if !a.visible {
		return a, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", " ":
			a.visible = false
			return a, func() tea.Msg { return AlertDismissedMsg{} }
		}
	}
	return a, nil
}

func (a Alert) View() string {
	if !a.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(a.title) + "\n\n")
	sb.WriteString(a.body + "\n\n")
	sb.WriteString(theme.Muted.Render("enter: OK"))
	return theme.Alert.Render(sb.String())
}
