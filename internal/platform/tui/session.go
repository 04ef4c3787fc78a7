package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/mapfile"
	"github.com/vovakirdan/icemaze/internal/report"
	"github.com/vovakirdan/icemaze/internal/storage"
)

// SessionOptions configures a menu-driven session.
type SessionOptions struct {
	Maps          []mapfile.Map
	Store         *storage.Store
	Player        string
	Theme         report.Theme
	Runtime       core.RuntimeConfig
	AnimateEvery  time.Duration
	MaxExpansions int
}

type screenKind int

const (
	screenMenu screenKind = iota
	screenPlay
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> play or leaderboard -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	opts       SessionOptions
	current    screenKind
	menu       MenuModel
	playModel  *PlayModel
	scoreboard *ScoreboardModel
	status     string
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Maps, opts.Store, opts.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case screenPlay:
		return m.updatePlay(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.opts.Maps, m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scoreboard = &sb
		m.current = screenScoreboard
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		pm, err := NewPlayModel(*selected, PlayOptions{
			Store:         m.opts.Store,
			Player:        m.opts.Player,
			Theme:         m.opts.Theme,
			Runtime:       m.opts.Runtime,
			AnimateEvery:  m.opts.AnimateEvery,
			MaxExpansions: m.opts.MaxExpansions,
		})
		if err != nil {
			m.status = err.Error()
			m.resetMenu()
			return m, nil
		}
		m.playModel = &pm
		m.current = screenPlay
		return m, pm.Init()
	}

	return m, cmd
}

// updatePlay handles updates when a map is being played.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.playModel.Update(msg)
	if pm, ok := newModel.(PlayModel); ok {
		m.playModel = &pm
	}

	if m.playModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.playModel.BackToMenu() {
		// The pending tick reaches the menu, which ignores it.
		m.playModel = nil
		m.status = ""
		m.resetMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the leaderboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.resetMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// resetMenu rebuilds the menu so best-move columns pick up new records.
func (m *SessionModel) resetMenu() {
	cursor := m.menu.cursor
	m.menu = NewMenuModel(m.opts.Maps, m.opts.Store, m.opts.Runtime)
	m.menu.cursor = min(cursor, max(len(m.opts.Maps)-1, 0))
	m.current = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenPlay:
		return m.playModel.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}

	if m.status != "" {
		return m.menu.View() + "\n" + centerText(m.menu.styles.Stuck.Render(m.status), m.opts.Runtime.ScreenW)
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
