package schedule

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"projectbrain/internal/modules/workspace/domain"
	"projectbrain/internal/ui/theme"
)

const ButtonLabel = "📄 Generate Door Schedule"

// Model is the door schedule side panel: the generate button above a
// read-only table of the latest extraction.
type Model struct {
	table   table.Model
	doors   []domain.Door
	pending bool
	focused bool
	width   int
	height  int
}

func New() Model {
	t := table.New(
		table.WithColumns(columnsFor(40)),
		table.WithFocused(false),
		table.WithHeight(5),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Sapphire).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)
	return Model{table: t}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	button := theme.Button.Render(ButtonLabel)
	if m.pending {
		button = theme.ButtonDisabled.Render(ButtonLabel)
	}

	var body string
	if len(m.doors) == 0 {
		body = theme.Muted.Render("No schedule yet.")
	} else {
		body = m.table.View() + "\n" + theme.Muted.Render(fmt.Sprintf("%d doors", len(m.doors)))
	}

	style := theme.Pane
	if m.focused {
		style = theme.PaneActive
	}
	inner := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Door Schedule"),
		"",
		button,
		"",
		body,
	)
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(inner)
}

// SetDoors shows doors in the order received.
func (m *Model) SetDoors(doors []domain.Door) {
	m.doors = doors
	rows := make([]table.Row, len(doors))
	for i, d := range doors {
		rows[i] = table.Row{d.Mark, d.Location, d.FireRating, d.Material}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *Model) SetPending(pending bool) { m.pending = pending }

func (m *Model) Focus() {
	m.focused = true
	m.table.Focus()
}

func (m *Model) Blur() {
	m.focused = false
	m.table.Blur()
}

func (m Model) Focused() bool { return m.focused }

// Rows exposes the table contents for callers that mirror the panel.
func (m Model) Rows() []table.Row { return m.table.Rows() }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	m.table.SetColumns(columnsFor(inner))
	m.table.SetWidth(inner)
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

func columnsFor(width int) []table.Column {
	// Each bubbles/table cell carries one column of padding on both sides.
	usable := width - 8
	if usable < 16 {
		usable = 16
	}
	mark := usable * 15 / 100
	rating := usable * 20 / 100
	loc := (usable - mark - rating) / 2
	material := usable - mark - rating - loc
	return []table.Column{
		{Title: "Mark", Width: mark},
		{Title: "Loc", Width: loc},
		{Title: "Rating", Width: rating},
		{Title: "Material", Width: material},
	}
}
