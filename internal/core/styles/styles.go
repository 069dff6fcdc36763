// Package styles provides shared lipgloss styles for console output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// Light marks palettes meant for light terminal backgrounds.
	Light bool
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	HeaderStyle  lipgloss.Style
	TextStyle    lipgloss.Style
	MutedStyle   lipgloss.Style
	DividerStyle lipgloss.Style

	SuccessStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	WarnStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Dry-run preview styles.
	TitleStyle    lipgloss.Style
	DeadlineStyle lipgloss.Style
	TagStyle      lipgloss.Style
	URLStyle      lipgloss.Style
)

// ColorPool is used for deterministic color hashing of course names.
var ColorPool []lipgloss.Color

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	TextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Surface)

	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	InfoStyle = lipgloss.NewStyle().Foreground(p.Primary)
	WarnStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	DeadlineStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	TagStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Secondary).
		Padding(0, 1)
	URLStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Underline(true)

	ColorPool = []lipgloss.Color{
		p.Primary,
		p.Secondary,
		p.Success,
		p.Warning,
		p.Error,
	}
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) lipgloss.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return ColorPool[hash%uint32(len(ColorPool))]
}

// CourseStyle returns a bold style colored by the course name.
func CourseStyle(name string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorForString(name)).Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
