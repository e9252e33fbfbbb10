package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"projectbrain/internal/ui/theme"
)

// SubmitMsg carries the email exactly as typed.
type SubmitMsg struct {
	Email string
}

// Model is the login gate shown until a session is authenticated.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "you@company.com"
	ti.Prompt = "✉  "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Lavender)
	ti.CharLimit = 254
	ti.Width = 40
	ti.Focus()
	return Model{input: ti}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			email := m.input.Value()
			return m, func() tea.Msg { return SubmitMsg{Email: email} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Reset clears the field, used after logout.
func (m *Model) Reset() {
	m.input.SetValue("")
	m.input.Focus()
}

func (m Model) Value() string { return m.input.Value() }

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Project Brain 🧠") + "\n")
	sb.WriteString(theme.Muted.Render("Construction Intelligence") + "\n\n")
	sb.WriteString("Sign in with your work email\n\n")
	sb.WriteString(m.input.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("enter: sign in  ctrl+c: quit"))

	card := theme.PaneActive.Padding(1, 3).Render(sb.String())
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
