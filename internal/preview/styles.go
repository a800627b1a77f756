package preview

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/subliminal-nightfall/colorloom/internal/color"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

// Styles contains lipgloss styles derived from a resolved variant.
type Styles struct {
	renderer *lipgloss.Renderer

	Title   lipgloss.Style
	Heading lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Dim     lipgloss.Style
	Panel   lipgloss.Style
}

// NewRenderer returns a renderer for w. Color output is forced on or off
// rather than detected so previews are stable when piped.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	} else {
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// BuildStyles converts resolved UI and border colors into lipgloss styles.
// Alpha channels are dropped since terminals cannot show them.
func BuildStyles(r *lipgloss.Renderer, ui theme.UIPalette, border theme.BorderPalette) Styles {
	fg := hexColor(ui.Foreground)

	return Styles{
		renderer: r,
		Title:    r.NewStyle().Foreground(fg).Bold(true),
		Heading:  r.NewStyle().Foreground(hexColor(ui.Cursor)).Bold(true),
		Text:     r.NewStyle().Foreground(fg),
		Muted:    r.NewStyle().Foreground(hexColor(ui.ForegroundMuted)),
		Dim:      r.NewStyle().Foreground(hexColor(ui.ForegroundDim)),
		Panel: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(hexColor(border.Border)).
			Padding(0, 1),
	}
}

// Swatch renders a solid block in the given color.
func (s Styles) Swatch(hex string) string {
	return s.renderer.NewStyle().Foreground(hexColor(hex)).Render(swatchBlock)
}

func hexColor(hex string) lipgloss.Color {
	return lipgloss.Color(color.StripAlpha(hex))
}
