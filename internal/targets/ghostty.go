package targets

import (
	"fmt"
	"strings"

	"github.com/subliminal-nightfall/colorloom/internal/color"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
	"github.com/subliminal-nightfall/colorloom/internal/variant"
)

// Ghostty renders one key = value config file per variant.
// Ghostty colors carry no alpha, so UI colors are written as #RRGGBB.
type Ghostty struct{}

func (Ghostty) Kind() theme.TargetKind { return theme.TargetGhostty }

func (Ghostty) Encode(cfg *theme.Config, target theme.Target) ([]File, error) {
	files := make([]File, 0, len(cfg.Variants))
	for _, r := range variant.All(cfg) {
		files = append(files, File{
			Name:    perVariantName(cfg, target, r.Variant, ""),
			Content: []byte(renderGhostty(cfg, r)),
		})
	}
	return files, nil
}

func renderGhostty(cfg *theme.Config, r variant.Resolved) string {
	ui := r.UI

	var b strings.Builder
	fmt.Fprintf(&b, "# %s for Ghostty\n", cfg.Meta.Name)
	for slot, hex := range TerminalPalette(cfg.Palette.Base.ANSI) {
		fmt.Fprintf(&b, "palette = %d=%s\n", slot, hex)
	}
	fmt.Fprintf(&b, "background = %s\n", color.StripAlpha(ui.Background))
	fmt.Fprintf(&b, "foreground = %s\n", color.StripAlpha(ui.Foreground))
	fmt.Fprintf(&b, "cursor-color = %s\n", color.StripAlpha(ui.Cursor))
	fmt.Fprintf(&b, "cursor-text = %s\n", selectionText)
	fmt.Fprintf(&b, "selection-background = %s\n", color.StripAlpha(ui.Selection))
	fmt.Fprintf(&b, "selection-foreground = %s\n", selectionText)
	if r.Variant.BlurRadius != nil {
		fmt.Fprintf(&b, "background-blur-radius = %d\n", *r.Variant.BlurRadius)
	}
	return b.String()
}

// TerminalPalette returns the 16 terminal colors in slot order. Black and
// white slots use fixed grays; 1-6 and 9-14 come from the ANSI palette.
func TerminalPalette(ansi theme.ANSIPalette) [16]string {
	return [16]string{
		0:  ansiGray,
		1:  ansi.Red.Base,
		2:  ansi.Green.Base,
		3:  ansi.Yellow.Base,
		4:  ansi.Blue.Base,
		5:  ansi.Magenta.Base,
		6:  ansi.Cyan.Base,
		7:  ansiWhite,
		8:  ansiGray,
		9:  ansi.Red.Bright,
		10: ansi.Green.Bright,
		11: ansi.Yellow.Bright,
		12: ansi.Blue.Bright,
		13: ansi.Magenta.Bright,
		14: ansi.Cyan.Bright,
		15: ansiBrightWhite,
	}
}
