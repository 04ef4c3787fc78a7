package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/mapfile"
	"github.com/vovakirdan/icemaze/internal/play"
	"github.com/vovakirdan/icemaze/internal/report"
	"github.com/vovakirdan/icemaze/internal/solver"
	"github.com/vovakirdan/icemaze/internal/storage"
)

// hudLines is the number of rows drawn around the framed map.
const hudLines = 8

// PlayOptions configures a play screen.
type PlayOptions struct {
	Store         *storage.Store // nil disables records
	Player        string
	Theme         report.Theme
	Runtime       core.RuntimeConfig
	AnimateEvery  time.Duration // delay between solution playback moves
	MaxExpansions int
}

// PlayModel is the Bubble Tea model for playing one map.
type PlayModel struct {
	m        mapfile.Map
	session  *play.Session
	solution []core.Coord
	solveErr error
	opts     PlayOptions

	tickID int64
	screen *core.Screen
	keys   PlayKeyMap
	help   help.Model
	styles Styles

	best     int // fewest recorded moves, 0 when none
	playing  bool
	playStep int
	lastStep time.Time
	assisted bool // playback was used this attempt, so a win is not recorded
	saved    bool
	status   string

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewPlayModel solves the map up front and prepares a play session.
func NewPlayModel(m mapfile.Map, opts PlayOptions) (PlayModel, error) {
	if opts.AnimateEvery <= 0 {
		opts.AnimateEvery = 250 * time.Millisecond
	}
	if opts.Player == "" {
		opts.Player = "anonymous"
	}

	res, solveErr := solver.Solve(m.Grid, solver.WithMaxExpansions(opts.MaxExpansions))
	optimal := 0
	if solveErr == nil {
		optimal = res.Moves()
	}

	session, err := play.New(m.Grid, optimal)
	if err != nil {
		return PlayModel{}, fmt.Errorf("map %s: %w", m.ID, err)
	}

	pm := PlayModel{
		m:        m,
		session:  session,
		solution: res.Path,
		solveErr: solveErr,
		opts:     opts,
		tickID:   nextTickID(),
		screen:   core.NewScreen(m.Grid.Cols()+2, m.Grid.Rows()+2),
		keys:     DefaultPlayKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
	}
	pm.help.Width = opts.Runtime.ScreenW
	pm.loadBest()
	return pm, nil
}

func (m *PlayModel) loadBest() {
	if m.opts.Store == nil {
		return
	}
	rec, err := m.opts.Store.BestPlay(m.m.ID)
	if err == nil && rec != nil {
		m.best = rec.Moves
	}
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		m.handleTick(msg.Time)
		return m, tickCmd(m.opts.Runtime.TickRate, m.tickID)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionSolve:
		m.toggleSolution()

	case core.ActionUndo:
		m.playing = false
		if !m.session.Undo() {
			m.status = "Nothing to undo."
		} else {
			m.status = ""
		}

	case core.ActionRestart:
		// A fresh attempt counts again even after the solution was shown.
		m.playing = false
		m.assisted = false
		m.session.Reset()
		m.status = ""

	default:
		if !action.IsMove() || m.playing {
			return m, nil
		}
		d, _ := play.DirFor(action)
		if !m.session.Move(d) {
			if !m.session.Won() {
				m.status = fmt.Sprintf("Can't slide %s.", d)
			}
			return m, nil
		}
		m.status = ""
		m.afterMove()
	}

	return m, nil
}

// toggleSolution starts or stops solution playback from the start cell.
func (m *PlayModel) toggleSolution() {
	if m.solution == nil {
		line, ok := report.OutcomeLine(m.solveErr, m.m.Alphabet)
		if !ok {
			line = fmt.Sprintf("No solution: %v", m.solveErr)
		}
		m.status = line
		return
	}
	if m.playing {
		m.playing = false
		return
	}
	m.session.Reset()
	m.playing = true
	m.playStep = 0
	m.lastStep = time.Time{}
	m.assisted = true
	m.status = ""
}

// handleTick advances solution playback by at most one move.
func (m *PlayModel) handleTick(now time.Time) {
	if !m.playing || now.Sub(m.lastStep) < m.opts.AnimateEvery {
		return
	}
	m.lastStep = now

	if m.playStep >= len(m.solution)-1 {
		m.playing = false
		return
	}
	d, ok := solver.DirBetween(m.session.Pos(), m.solution[m.playStep+1])
	if !ok || !m.session.Move(d) {
		// Player position diverged from the solution; give up quietly.
		m.playing = false
		return
	}
	m.playStep++
	if m.playStep == len(m.solution)-1 {
		m.playing = false
	}
}

// afterMove records a win, once per session, unless playback was used.
func (m *PlayModel) afterMove() {
	if !m.session.Won() || m.saved || m.assisted {
		return
	}
	m.saved = true
	if m.opts.Store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.opts.Store.SavePlay(storage.PlayRecord{
		MapID:   m.m.ID,
		Player:  m.opts.Player,
		Moves:   m.session.Moves(),
		Optimal: m.session.Optimal(),
	})
	if m.best == 0 || m.session.Moves() < m.best {
		m.best = m.session.Moves()
	}
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	g := m.m.Grid
	w, h := m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH
	needW, needH := m.screen.Width(), m.screen.Height()+hudLines
	if w > 0 && h > 0 && (needW > w || needH > h) {
		return centerText(fmt.Sprintf("Window too small: need %dx%d", needW, needH), w)
	}

	pos := m.session.Pos()
	overlay := report.Overlay{Player: &pos}
	if m.playing || (m.assisted && m.session.Won()) {
		overlay.Path = solver.Trace(m.solution)
	} else {
		overlay.Path = solver.Trace(m.session.Trail())
	}
	m.screen.Clear()
	m.screen.DrawBox(core.NewRect(0, 0, m.screen.Width(), m.screen.Height()))
	report.RenderGrid(m.screen, 1, 1, g, m.m.Alphabet, m.opts.Theme, overlay)

	// The title goes on the top border when it fits, above the HUD otherwise.
	var lines []string
	if title := " " + m.m.Title() + " "; len([]rune(title))+2 <= m.screen.Width() {
		m.screen.DrawTextCentered(0, title)
	} else {
		lines = append(lines, m.styles.HUDTitle.Render(m.m.Title()))
	}

	lines = append(lines,
		m.hudLine(),
		"",
		RenderScreen(m.screen),
		"",
		m.statusLine(),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if w <= 0 || h <= 0 {
		return block
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, block)
}

func (m PlayModel) hudLine() string {
	parts := []string{
		m.field("Moves", fmt.Sprint(m.session.Moves())),
	}
	if m.session.Optimal() > 0 {
		parts = append(parts, m.field("Optimal", fmt.Sprint(m.session.Optimal())))
	}
	if m.best > 0 {
		parts = append(parts, m.field("Best", fmt.Sprint(m.best)))
	}
	return strings.Join(parts, m.styles.HUDLabel.Render("  |  "))
}

func (m PlayModel) field(label, value string) string {
	return m.styles.HUDLabel.Render(label+": ") + m.styles.HUDValue.Render(value)
}

func (m PlayModel) statusLine() string {
	switch {
	case m.playing:
		return m.styles.Playback.Render(fmt.Sprintf("Solution %d/%d", m.playStep, len(m.solution)-1))
	case m.session.Won() && m.assisted:
		return m.styles.Playback.Render("Solution shown. Press r to try it yourself.")
	case m.session.Won():
		msg := fmt.Sprintf("Done in %d moves!", m.session.Moves())
		if m.session.Moves() == m.session.Optimal() {
			msg += " That's optimal."
		}
		return m.styles.Won.Render(msg)
	case m.status != "":
		return m.styles.Stuck.Render(m.status)
	}

	left, ok := m.session.Remaining()
	if !ok {
		return m.styles.Stuck.Render("No way to the finish from here. Undo or reset.")
	}
	return m.styles.HUDHint.Render(fmt.Sprintf("%d moves to go", left))
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single map in the terminal until the player quits.
func Run(mp mapfile.Map, opts PlayOptions) error {
	model, err := NewPlayModel(mp, opts)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
