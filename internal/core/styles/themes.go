package styles

import (
	"sort"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// hexPalette builds a Palette from hex strings in field order.
func hexPalette(primary, secondary, fg, muted, bg, surface, success, warning, errColor string) Palette {
	return Palette{
		Primary:    lipgloss.Color(primary),
		Secondary:  lipgloss.Color(secondary),
		Foreground: lipgloss.Color(fg),
		Muted:      lipgloss.Color(muted),
		Background: lipgloss.Color(bg),
		Surface:    lipgloss.Color(surface),
		Success:    lipgloss.Color(success),
		Warning:    lipgloss.Color(warning),
		Error:      lipgloss.Color(errColor),
	}
}

func lightPalette(p Palette) Palette {
	p.Light = true
	return p
}

// themes holds the built-in named palettes. Columns: primary, secondary,
// foreground, muted, background, surface, success, warning, error.
var themes = map[string]Palette{
	"tokyo-night": hexPalette("#7aa2f7", "#7dcfff", "#c0caf5", "#565f89", "#1a1b26", "#3b4261", "#9ece6a", "#e0af68", "#f7768e"),
	"gruvbox":     hexPalette("#83a598", "#8ec07c", "#ebdbb2", "#665c54", "#282828", "#3c3836", "#b8bb26", "#fabd2f", "#fb4934"),
	"catppuccin":  hexPalette("#89b4fa", "#94e2d5", "#cdd6f4", "#6c7086", "#1e1e2e", "#313244", "#a6e3a1", "#f9e2af", "#f38ba8"),
	"nord":        hexPalette("#88c0d0", "#8fbcbb", "#eceff4", "#4c566a", "#2e3440", "#3b4252", "#a3be8c", "#ebcb8b", "#bf616a"),
	"light":       lightPalette(hexPalette("#0969da", "#1b7c83", "#1f2328", "#656d76", "#ffffff", "#eaeef2", "#1a7f37", "#9a6700", "#cf222e")),
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
// Only the colors assignment descriptions commonly use are overridden.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if CurrentPalette.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := colorHexPtr(CurrentPalette.Foreground)
	primary := colorHexPtr(CurrentPalette.Primary)
	secondary := colorHexPtr(CurrentPalette.Secondary)
	muted := colorHexPtr(CurrentPalette.Muted)
	surface := colorHexPtr(CurrentPalette.Surface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg
	cfg.Table.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	for _, h := range []*glamouransi.StyleBlock{&cfg.H2, &cfg.H3, &cfg.H4, &cfg.H5, &cfg.H6} {
		h.Color = primary
	}

	// Canvas descriptions are mostly links, lists and the odd quote.
	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary
	cfg.Item.Color = fg
	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted
	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
