package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "projectbrain/internal/modules/auth/dto"
	"projectbrain/internal/modules/workspace/domain"
	apperrors "projectbrain/internal/platform/errors"
	"projectbrain/internal/ui/components"
	"projectbrain/internal/ui/theme"
	chatview "projectbrain/internal/ui/views/chat"
	loginview "projectbrain/internal/ui/views/login"
	scheduleview "projectbrain/internal/ui/views/schedule"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type authPort interface {
	Login(ctx context.Context, email string) (authdto.SessionOutput, error)
	Logout(ctx context.Context) error
}

type workspacePort interface {
	Ask(ctx context.Context, query string) (domain.Reply, error)
	Extract(ctx context.Context) ([]domain.Door, error)
}

// ─── screens & focus ─────────────────────────────────────────────────────────

type screen int

const (
	screenLogin screen = iota
	screenDashboard
)

type pane int

const (
	paneChat pane = iota
	paneSchedule
)

// Below this width the schedule panel is hidden and the chat takes the
// whole screen.
const splitMinWidth = 80

// ─── async messages ───────────────────────────────────────────────────────────

type loginResultMsg struct {
	email   string
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

type chatRepliedMsg struct {
	reply domain.Reply
	err   error
}

type scheduleExtractedMsg struct {
	doors []domain.Door
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Send     key.Binding
	Focus    key.Binding
	Generate key.Binding
	Logout   key.Binding
	Scroll   key.Binding
	Palette  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send / generate")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Generate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate schedule")),
		Logout:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
		Scroll:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll chat")),
		Palette:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "palette")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Focus, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Focus, k.Scroll},
		{k.Generate, k.Logout},
		{k.Palette, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the workspace state machine
// and is the only code that mutates it; network calls run in commands and
// come back as messages.
type Model struct {
	auth      authPort
	workspace workspacePort
	ws        *domain.Workspace

	loginView    loginview.Model
	chatView     chatview.Model
	scheduleView scheduleview.Model

	screen   screen
	focus    pane
	session  authdto.SessionOutput
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	alert    components.Alert
	status   string
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(auth authPort, workspace workspacePort, glamourStyle string) Model {
	return Model{
		auth:         auth,
		workspace:    workspace,
		ws:           domain.New(),
		loginView:    loginview.New(),
		chatView:     chatview.New(glamourStyle),
		scheduleView: scheduleview.New(),
		screen:       screenLogin,
		focus:        paneChat,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.loginView.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.palette.SetWidth(min(m.width-4, 60))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil
	}

	// The alert blocks every key until it is acknowledged.
	if km, ok := msg.(tea.KeyMsg); ok && m.alert.Visible() {
		if km.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.alert, cmd = m.alert.Update(msg)
		return m, cmd
	}

	// Replies still reach the workspace while the palette is open.
	if _, ok := msg.(tea.KeyMsg); ok && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case loginview.SubmitMsg:
		return m, m.loginCmd(msg.Email)

	case loginResultMsg:
		if msg.err != nil {
			m.status = "sign-in rejected"
			m.alert.Show("Access denied", deniedText(msg.email, msg.err))
			return m, nil
		}
		m.session = msg.session
		m.screen = screenDashboard
		m.status = "signed in"
		m.setFocus(paneChat)
		cmd := tea.Batch(m.syncWorkspace(), m.chatView.Focus())
		return m, cmd

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout failed: " + msg.err.Error()
			return m, nil
		}
		m.session = authdto.SessionOutput{}
		m.screen = screenLogin
		m.showHelp = false
		m.status = "signed out"
		m.loginView.Reset()
		return m, nil

	case chatRepliedMsg:
		m.ws.CompleteChat(msg.reply, msg.err)
		if msg.err != nil {
			m.status = "chat failed"
		} else {
			m.status = "answer received"
		}
		cmd := m.syncWorkspace()
		return m, cmd

	case scheduleExtractedMsg:
		m.ws.CompleteSchedule(msg.doors, msg.err)
		switch {
		case msg.err != nil:
			m.status = "schedule failed"
		case len(msg.doors) == 0:
			m.status = "no doors found"
		default:
			m.status = fmt.Sprintf("schedule: %d doors", len(msg.doors))
		}
		cmd := m.syncWorkspace()
		return m, cmd

	case components.AlertDismissedMsg:
		m.status = "ready"
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenLogin {
			break
		}
		if m.showHelp {
			if msg.String() == "f1" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+k":
			cmd := m.palette.Open()
			return m, cmd
		case "f1":
			m.showHelp = true
			return m, nil
		case "tab":
			if m.focus == paneChat && m.splitLayout() {
				m.setFocus(paneSchedule)
				return m, nil
			}
			m.setFocus(paneChat)
			cmd := m.chatView.Focus()
			return m, cmd
		case "ctrl+g":
			return m.generate()
		case "ctrl+l":
			return m, m.logoutCmd()
		case "enter":
			if m.focus == paneSchedule {
				return m.generate()
			}
			return m.send()
		}
	}

	var cmd tea.Cmd
	_, isKey := msg.(tea.KeyMsg)
	switch {
	case m.screen == screenLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case isKey && m.focus == paneSchedule:
		m.scheduleView, cmd = m.scheduleView.Update(msg)
	default:
		m.chatView, cmd = m.chatView.Update(msg)
	}
	return m, cmd
}

// ─── actions ─────────────────────────────────────────────────────────────────

func (m Model) send() (tea.Model, tea.Cmd) {
	if m.ws.Pending() {
		m.status = "waiting for the current request"
		return m, nil
	}
	query, ok := m.ws.Submit(m.chatView.Input())
	if !ok {
		return m, nil
	}
	m.chatView.ClearInput()
	m.status = "asking..."
	cmd := tea.Batch(m.syncWorkspace(), m.askCmd(query))
	return m, cmd
}

func (m Model) generate() (tea.Model, tea.Cmd) {
	if m.ws.Pending() {
		m.status = "waiting for the current request"
		return m, nil
	}
	m.ws.BeginSchedule()
	m.status = "extracting door schedule..."
	cmd := tea.Batch(m.syncWorkspace(), m.extractCmd())
	return m, cmd
}

// syncWorkspace pushes the workspace state into the views.
func (m *Model) syncWorkspace() tea.Cmd {
	m.chatView.SetTranscript(m.ws.Transcript())
	m.scheduleView.SetDoors(m.ws.Schedule())
	m.scheduleView.SetPending(m.ws.Pending())
	return m.chatView.SetPending(m.ws.Pending())
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	if p == paneSchedule {
		m.chatView.Blur()
		m.scheduleView.Focus()
		return
	}
	m.scheduleView.Blur()
}

func deniedText(email string, err error) string {
	if errors.Is(err, apperrors.ErrUnauthorized) {
		return fmt.Sprintf("%q is not authorized to use Project Brain.", email)
	}
	return "Sign-in failed: " + err.Error()
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.screen == screenLogin {
		if m.alert.Visible() {
			return m.overlay(m.alert.View(), m.height)
		}
		return m.loginView.View()
	}

	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.alert.Visible():
		content = m.overlay(m.alert.View(), contentH)
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = m.overlay(m.palette.View(), contentH)
	case m.splitLayout():
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.chatView.View(), m.scheduleView.View())
	default:
		content = m.chatView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) overlay(box string, height int) string {
	if m.width == 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHeader() string {
	left := theme.Title.Render("Project Brain 🧠") + theme.Muted.Render("  Construction Intelligence")
	right := theme.Hot.Render("Welcome, " + m.session.Email)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.ws.Pending() {
		left = theme.Hot.Render("● busy") + "  " + left
	}
	right := theme.Muted.Render("f1:help  tab:pane  ctrl+k:palette  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "schedule:generate":
		return m.generate()
	case "session:logout":
		return m, m.logoutCmd()
	case "help":
		m.showHelp = true
	case "quit":
		return m, tea.Quit
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) splitLayout() bool {
	return m.width >= splitMinWidth
}

func (m *Model) propagateSize() {
	m.loginView, _ = m.loginView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})

	// header (1) + status bar (2)
	contentH := m.height - 3
	if contentH < 1 {
		contentH = 1
	}
	chatW := m.width
	if m.splitLayout() {
		schedW := m.width * 2 / 5
		chatW = m.width - schedW
		m.scheduleView, _ = m.scheduleView.Update(tea.WindowSizeMsg{Width: schedW, Height: contentH})
	} else if m.focus == paneSchedule {
		m.setFocus(paneChat)
		m.chatView.Focus()
	}
	m.chatView, _ = m.chatView.Update(tea.WindowSizeMsg{Width: chatW, Height: contentH})
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loginCmd(email string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Login(context.Background(), email)
		return loginResultMsg{email: email, session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}

func (m Model) askCmd(query string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.workspace.Ask(context.Background(), query)
		return chatRepliedMsg{reply: reply, err: err}
	}
}

func (m Model) extractCmd() tea.Cmd {
	return func() tea.Msg {
		doors, err := m.workspace.Extract(context.Background())
		return scheduleExtractedMsg{doors: doors, err: err}
	}
}
