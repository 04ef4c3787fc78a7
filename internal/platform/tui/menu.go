package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/icemaze/internal/core"
	"github.com/vovakirdan/icemaze/internal/mapfile"
	"github.com/vovakirdan/icemaze/internal/storage"
)

// MenuModel is the Bubble Tea model for the map picker.
type MenuModel struct {
	maps           []mapfile.Map
	best           map[string]int // map ID -> fewest recorded moves
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	styles         Styles
	quitting       bool
	selected       *mapfile.Map // Set when user selects a map
	openScoreboard bool         // True if user pressed Tab for the leaderboard
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(maps []mapfile.Map, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	best := make(map[string]int, len(maps))
	if store != nil {
		for _, mp := range maps {
			if rec, err := store.BestPlay(mp.ID); err == nil && rec != nil {
				best[mp.ID] = rec.Moves
			}
		}
	}

	return MenuModel{
		maps:   maps,
		best:   best,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		styles: DefaultStyles(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.maps)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.maps) > 0 {
			selected := m.maps[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.MenuTitle.Render("  I C E   M A Z E  "), m.width))
	b.WriteString("\n\n")

	if len(m.maps) == 0 {
		b.WriteString(centerText(m.styles.EmptyNotice.Render("No maps found."), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(centerText("Select a map", m.width))
		b.WriteString("\n\n")
	}

	for i, mp := range m.maps {
		style := m.styles.MenuItem
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			style = m.styles.MenuActive
		}

		detail := fmt.Sprintf(" %dx%d", mp.Grid.Cols(), mp.Grid.Rows())
		if best, ok := m.best[mp.ID]; ok {
			detail += fmt.Sprintf("  best %d", best)
		}
		line := style.Render(cursor+mp.Title()) + m.styles.MenuDetail.Render(detail)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Leaderboard  |  Q: Quit"
	b.WriteString(centerText(m.styles.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected map, or nil if none selected.
func (m MenuModel) Selected() *mapfile.Map {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the leaderboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
