package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"projectbrain/internal/modules/workspace/domain"
	"projectbrain/internal/ui/components"
	"projectbrain/internal/ui/theme"
)

const (
	emptyHint   = "Ask a question about the specs..."
	emptySample = `"What is the fire rating?"`
)

// Model renders the transcript and owns the question input. It holds a
// snapshot of the transcript; the caller pushes a fresh one after every
// workspace change.
type Model struct {
	viewport   viewport.Model
	input      textinput.Model
	spinner    spinner.Model
	renderer   *glamour.TermRenderer
	style      string
	transcript []domain.Message
	pending    bool
	focused    bool
	width      int
	height     int
}

func New(glamourStyle string) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Lavender)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	m := Model{
		viewport: viewport.New(0, 0),
		input:    ti,
		spinner:  sp,
		style:    glamourStyle,
		focused:  true,
	}
	m.renderer, _ = components.NewMarkdownRenderer(glamourStyle, 0)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if m.focused && !m.pending {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	footer := m.renderFooter()
	input := m.renderInput()
	vpHeight := m.height - lipgloss.Height(footer) - lipgloss.Height(input)
	if vpHeight < 1 {
		vpHeight = 1
	}
	vp := m.viewport
	vp.Height = vpHeight
	return lipgloss.JoinVertical(lipgloss.Left, vp.View(), footer, input)
}

// SetTranscript replaces the rendered transcript and scrolls to the newest
// message.
func (m *Model) SetTranscript(msgs []domain.Message) {
	m.transcript = msgs
	m.refresh()
	m.viewport.GotoBottom()
}

// SetPending disables the input while a request is outstanding. The
// returned command drives the spinner.
func (m *Model) SetPending(pending bool) tea.Cmd {
	m.pending = pending
	if pending {
		m.input.Blur()
		return m.spinner.Tick
	}
	if m.focused {
		return m.input.Focus()
	}
	return nil
}

func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.pending {
		return nil
	}
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

func (m Model) Focused() bool { return m.focused }

// Input is the text exactly as typed.
func (m Model) Input() string { return m.input.Value() }

func (m *Model) ClearInput() { m.input.SetValue("") }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 4
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.input.Width = m.width - 6
	if r, err := components.NewMarkdownRenderer(m.style, m.bubbleWidth()-4); err == nil {
		m.renderer = r
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
}

// bubbleWidth caps a bubble at three quarters of the pane.
func (m Model) bubbleWidth() int {
	w := m.width * 3 / 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		hint := theme.Muted.Render(emptyHint) + "\n" + theme.Muted.Italic(true).Render(emptySample)
		if m.width == 0 {
			return hint
		}
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hint)
	}
	blocks := make([]string, 0, len(m.transcript))
	for _, msg := range m.transcript {
		blocks = append(blocks, m.renderMessage(msg))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderMessage(msg domain.Message) string {
	if msg.Role == domain.RoleUser {
		text := msg.Content
		inner := lipgloss.Width(text)
		if limit := m.bubbleWidth() - 4; inner > limit {
			inner = limit
		}
		bubble := theme.UserBubble.Width(inner + 2).Render(text)
		return m.place(lipgloss.Right, bubble)
	}

	body := theme.AIBubble.Render(components.RenderMarkdown(m.renderer, msg.Content))
	if badges := renderBadges(msg.Sources); badges != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, badges)
	}
	return m.place(lipgloss.Left, body)
}

func (m Model) place(pos lipgloss.Position, block string) string {
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, pos, block)
}

func renderBadges(sources []domain.Source) string {
	if len(sources) == 0 {
		return ""
	}
	badges := make([]string, 0, len(sources)*2)
	for i, s := range sources {
		if i > 0 {
			badges = append(badges, " ")
		}
		badges = append(badges, theme.Badge.Render(BadgeText(s)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

// BadgeText is the citation label for one source.
func BadgeText(s domain.Source) string {
	return fmt.Sprintf("🔍 %s (Pg %d)", s.File, s.Page)
}

func (m Model) renderFooter() string {
	if m.pending {
		return m.spinner.View() + " " + theme.Muted.Render("Thinking...")
	}
	return theme.Muted.Render(fmt.Sprintf("%d messages", len(m.transcript)))
}

func (m Model) renderInput() string {
	style := theme.Pane
	if m.focused && !m.pending {
		style = theme.PaneActive
	}
	w := m.width - 2
	if w < 10 {
		w = 10
	}
	return style.Width(w).Render(m.input.View())
}
