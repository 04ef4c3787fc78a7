package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for text around the map: the HUD,
// menus and status banners.
type Styles struct {
	HUDTitle    lipgloss.Style
	HUDLabel    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDHint     lipgloss.Style
	Help        lipgloss.Style
	Won         lipgloss.Style
	Stuck       lipgloss.Style
	Playback    lipgloss.Style
	MenuTitle   lipgloss.Style
	MenuItem    lipgloss.Style
	MenuActive  lipgloss.Style
	MenuDetail  lipgloss.Style
	EmptyNotice lipgloss.Style
}

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	return Styles{
		HUDTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Italic(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Won:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Stuck:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Playback: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),

		MenuTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDetail: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		EmptyNotice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
	}
}
