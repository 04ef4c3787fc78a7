package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/icemaze/internal/mapfile"
	"github.com/vovakirdan/icemaze/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show map list sidebar
	sidebarWidth       = 22  // Width of map list sidebar
	maxPlays           = 100 // Max records to load per map
)

// ScoreboardKeyMap defines the key bindings for the leaderboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextMap key.Binding
	PrevMap key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMap, k.PrevMap, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMap, k.PrevMap},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMap: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next map"),
		),
		PrevMap: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev map"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the fewest-move plays recorded for each map.
type ScoreboardModel struct {
	maps        []mapfile.Map
	mapCursor   int
	store       *storage.Store
	plays       []storage.PlayRecord
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	styles      Styles
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new leaderboard model.
func NewScoreboardModel(maps []mapfile.Map, store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		maps:        maps,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		styles:      DefaultStyles(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	if len(m.maps) > 0 {
		m.loadPlays(m.maps[0].ID)
	}
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Moves", Width: 6},
		{Title: "Par", Width: 4},
		{Title: "Date", Width: 13},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Give spare room to the player column.
	if extra := tableWidth - 52; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadPlays loads the leaderboard for the given map ID.
func (m *ScoreboardModel) loadPlays(mapID string) {
	m.plays = nil
	if m.store != nil {
		if plays, err := m.store.TopPlays(mapID, maxPlays); err == nil {
			m.plays = plays
		}
	}
	m.updateTableRows()
}

// updateTableRows refreshes the table from m.plays.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.plays))
	for i, p := range m.plays {
		moves := fmt.Sprint(p.Moves)
		if p.Perfect() {
			moves += "*"
		}
		par := "-"
		if p.Optimal > 0 {
			par = fmt.Sprint(p.Optimal)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			p.Player,
			moves,
			par,
			p.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveMap(delta int) {
	if len(m.maps) == 0 {
		return
	}
	m.mapCursor = (m.mapCursor + delta + len(m.maps)) % len(m.maps)
	m.loadPlays(m.maps[m.mapCursor].ID)
}

// Init initializes the leaderboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextMap):
			m.moveMap(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMap):
			m.moveMap(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "LEADERBOARD"
	if len(m.maps) > 0 {
		title = fmt.Sprintf("LEADERBOARD - %s", m.maps[m.mapCursor].Title())
	}
	b.WriteString(centerText(m.styles.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableBox := boxStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableBox))
	} else {
		if len(m.maps) > 0 {
			b.WriteString(centerText(fmt.Sprintf("< %s >", m.maps[m.mapCursor].Title()), m.width))
			b.WriteString("\n\n")
		}
		b.WriteString(centerText(tableBox, m.width))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the map list.
func (m ScoreboardModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Maps\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, mp := range m.maps {
		cursor := "  "
		itemStyle := m.styles.MenuItem
		if i == m.mapCursor {
			cursor = "> "
			itemStyle = m.styles.MenuActive
		}

		name := mp.Title()
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sb.WriteString(itemStyle.Render(cursor + name))
		sb.WriteString("\n")
	}

	return style.Render(sb.String())
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.plays) == 0 {
		return m.styles.EmptyNotice.Render("No finished plays yet.\nSolve a map by hand to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
