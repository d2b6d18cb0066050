package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Card        lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Tip         lipgloss.Style
	TipKey      lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Badge       lipgloss.Style
	BadgeActive lipgloss.Style
	Gear        lipgloss.Style
	GearActive  lipgloss.Style
	Panel       lipgloss.Style
	PanelRow    lipgloss.Style
	PanelFocus  lipgloss.Style
	SwitchOn    lipgloss.Style
	SwitchOff   lipgloss.Style
	ItemTitle   lipgloss.Style
	ItemDetail  lipgloss.Style
	Icon        lipgloss.Style
	Avatar      lipgloss.Style
	Presence    lipgloss.Style
	Chat        lipgloss.Style
	List        lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Spinner     lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
	InfoBox     lipgloss.Style
	Main        lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Tip:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TipKey:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Bold(true).Padding(0, 1),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		BadgeActive: lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
		Gear:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		GearActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		PanelRow:    lipgloss.NewStyle(),
		PanelFocus:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SwitchOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		SwitchOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ItemTitle:   lipgloss.NewStyle().Bold(true),
		ItemDetail:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Avatar:      lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("60")),
		Presence:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Chat:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		List:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:        lipgloss.NewStyle().Faint(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
