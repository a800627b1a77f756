package targets

import (
	"github.com/subliminal-nightfall/colorloom/internal/theme"
	"github.com/subliminal-nightfall/colorloom/internal/variant"
)

const zedSchema = "https://zed.dev/schema/themes/v0.2.0.json"

// Zed renders a single theme family file holding every variant.
type Zed struct{}

type zedFamily struct {
	Schema string     `json:"$schema"`
	Name   string     `json:"name"`
	Author string     `json:"author"`
	Themes []zedTheme `json:"themes"`
}

type zedTheme struct {
	Name       string                    `json:"name"`
	Appearance string                    `json:"appearance"`
	Style      map[string]string         `json:"style"`
	Syntax     map[string]zedSyntaxStyle `json:"syntax"`
}

type zedSyntaxStyle struct {
	Color     string `json:"color"`
	FontStyle string `json:"font_style,omitempty"`
}

func (Zed) Kind() theme.TargetKind { return theme.TargetZed }

func (Zed) Encode(cfg *theme.Config, target theme.Target) ([]File, error) {
	family := zedFamily{
		Schema: zedSchema,
		Name:   cfg.Meta.Name,
		Author: cfg.Meta.Author,
		Themes: make([]zedTheme, 0, len(cfg.Variants)),
	}
	for _, r := range variant.All(cfg) {
		family.Themes = append(family.Themes, zedVariant(cfg, r))
	}

	content, err := marshalJSON(family)
	if err != nil {
		return nil, err
	}
	name := singleFileName(target, cfg.Slug()+".json")
	return []File{{Name: name, Content: content}}, nil
}

func zedVariant(cfg *theme.Config, r variant.Resolved) zedTheme {
	p := cfg.Palette
	ansi := p.Base.ANSI
	ui := r.UI

	return zedTheme{
		Name:       r.Variant.Title(cfg.Meta.Name, "%s %s"),
		Appearance: "dark",
		Style: map[string]string{
			"border":                        p.Border.Border,
			"border.variant":                p.Border.BorderVariant,
			"border.focused":                p.Border.BorderFocused,
			"border.selected":               p.Border.BorderSelected,
			"text":                          ui.Foreground,
			"text.muted":                    p.UI.ForegroundMuted,
			"background":                    ui.Background,
			"surface.background":            ui.BackgroundAlt,
			"editor.background":             ui.Background,
			"editor.foreground":             ui.Foreground,
			"editor.selection.background":   ui.Selection,
			"editor.selection.foreground":   selectionText,
			"editor.active_line.background": ui.LineHighlight,
			"terminal.background":           ui.Background,
			"terminal.foreground":           ui.Foreground,
			"terminal.ansi.black":           p.UI.ForegroundDim,
			"terminal.ansi.red":             ansi.Red.Base,
			"terminal.ansi.green":           ansi.Green.Base,
			"terminal.ansi.yellow":          ansi.Yellow.Base,
			"terminal.ansi.blue":            ansi.Blue.Base,
			"terminal.ansi.magenta":         ansi.Magenta.Base,
			"terminal.ansi.cyan":            ansi.Cyan.Base,
			"terminal.ansi.white":           ansiWhite,
			"terminal.ansi.bright_black":    p.UI.ForegroundDim,
			"terminal.ansi.bright_red":      ansi.Red.Bright,
			"terminal.ansi.bright_green":    ansi.Green.Bright,
			"terminal.ansi.bright_yellow":   ansi.Yellow.Bright,
			"terminal.ansi.bright_blue":     ansi.Blue.Bright,
			"terminal.ansi.bright_magenta":  ansi.Magenta.Bright,
			"terminal.ansi.bright_cyan":     ansi.Cyan.Bright,
			"terminal.ansi.bright_white":    ansiBrightWhite,
		},
		Syntax: map[string]zedSyntaxStyle{
			"comment":   {Color: p.Syntax.Gray, FontStyle: "italic"},
			"keyword":   {Color: p.Syntax.BlueGreen},
			"function":  {Color: p.Syntax.Teal},
			"string":    {Color: p.Syntax.Teal},
			"number":    {Color: p.Syntax.Lavender},
			"operator":  {Color: ansi.Cyan.Base},
			"attribute": {Color: ansi.Magenta.Base, FontStyle: "italic"},
		},
	}
}
