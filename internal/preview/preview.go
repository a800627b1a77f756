// Package preview renders a terminal swatch sheet for one theme variant.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/subliminal-nightfall/colorloom/internal/targets"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
	"github.com/subliminal-nightfall/colorloom/internal/variant"
)

const (
	swatchBlock = "███"
	labelWidth  = 22
	titleLayout = "%s (%s)"
)

// Options configures Render.
type Options struct {
	// Variant selects the variant to show. Empty means the base variant, or
	// the first variant when there is no base.
	Variant string
	// NoColor renders plain text without escape sequences.
	NoColor bool
}

// UnknownVariantError reports a variant name the document does not define.
type UnknownVariantError struct {
	Name      string
	Available []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Render writes the preview for the selected variant to w.
func Render(w io.Writer, cfg *theme.Config, opts Options) error {
	v, err := selectVariant(cfg, opts.Variant)
	if err != nil {
		return err
	}

	ui := variant.Resolve(cfg.Palette.UI, v)
	s := BuildStyles(NewRenderer(w, opts.NoColor), ui, cfg.Palette.Border)

	var b strings.Builder
	b.WriteString(s.Title.Render(v.Title(cfg.Meta.Name, titleLayout)))
	if v.Alpha != nil {
		fmt.Fprintf(&b, " %s", s.Dim.Render(fmt.Sprintf("alpha %.2f", *v.Alpha)))
	}
	b.WriteString("\n")

	terminal := targets.TerminalPalette(cfg.Palette.Base.ANSI)
	section(&b, s, "Terminal")
	row(&b, s, "normal", terminal[:8]...)
	row(&b, s, "bright", terminal[8:]...)

	section(&b, s, "ANSI")
	for _, slot := range cfg.Palette.Base.ANSI.Slots() {
		row(&b, s, slot.Name, slot.Color.Base, slot.Color.Bright, slot.Color.Dim)
	}

	syntax := cfg.Palette.Syntax
	section(&b, s, "Syntax")
	row(&b, s, "teal", syntax.Teal)
	row(&b, s, "blue_green", syntax.BlueGreen)
	row(&b, s, "lavender", syntax.Lavender)
	row(&b, s, "gray", syntax.Gray)

	section(&b, s, "UI")
	for _, f := range theme.UIFields() {
		row(&b, s, f.String(), ui.Get(f))
	}

	border := cfg.Palette.Border
	section(&b, s, "Border")
	row(&b, s, "border", border.Border)
	row(&b, s, "border_variant", border.BorderVariant)
	row(&b, s, "border_focused", border.BorderFocused)
	row(&b, s, "border_selected", border.BorderSelected)

	_, err = io.WriteString(w, s.Panel.Render(strings.TrimRight(b.String(), "\n"))+"\n")
	return err
}

func selectVariant(cfg *theme.Config, name string) (theme.Variant, error) {
	if name == "" {
		if v, ok := cfg.Variant(theme.BaseVariant); ok {
			return v, nil
		}
		if len(cfg.Variants) > 0 {
			return cfg.Variants[0], nil
		}
		return theme.Variant{Name: theme.BaseVariant}, nil
	}
	v, ok := cfg.Variant(name)
	if !ok {
		return theme.Variant{}, &UnknownVariantError{Name: name, Available: cfg.VariantNames()}
	}
	return v, nil
}

func section(b *strings.Builder, s Styles, title string) {
	b.WriteString("\n")
	b.WriteString(s.Heading.Render(title))
	b.WriteString("\n")
}

func row(b *strings.Builder, s Styles, label string, colors ...string) {
	b.WriteString(s.Muted.Width(labelWidth).Render(label))
	for _, hex := range colors {
		fmt.Fprintf(b, " %s %s", s.Swatch(hex), s.Text.Render(hex))
	}
	b.WriteString("\n")
}
