package targets

import (
	"github.com/subliminal-nightfall/colorloom/internal/theme"
	"github.com/subliminal-nightfall/colorloom/internal/variant"
)

// Cursor renders one VS Code compatible color theme per variant.
type Cursor struct{}

type vscodeTheme struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Colors      map[string]string `json:"colors"`
	TokenColors []tokenColor      `json:"tokenColors"`
}

type tokenColor struct {
	Scope    []string      `json:"scope"`
	Settings tokenSettings `json:"settings"`
}

type tokenSettings struct {
	Foreground string `json:"foreground"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

func (Cursor) Kind() theme.TargetKind { return theme.TargetCursor }

func (Cursor) Encode(cfg *theme.Config, target theme.Target) ([]File, error) {
	files := make([]File, 0, len(cfg.Variants))
	for _, r := range variant.All(cfg) {
		content, err := marshalJSON(cursorVariant(cfg, r))
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name:    perVariantName(cfg, target, r.Variant, ".json"),
			Content: content,
		})
	}
	return files, nil
}

func cursorVariant(cfg *theme.Config, r variant.Resolved) vscodeTheme {
	p := cfg.Palette
	ansi := p.Base.ANSI
	ui := r.UI

	return vscodeTheme{
		Name: r.Variant.Title(cfg.Meta.Name, "%s (%s)"),
		Type: "dark",
		Colors: map[string]string{
			"editor.background":              ui.Background,
			"editor.foreground":              ui.Foreground,
			"editor.lineHighlightBackground": ui.LineHighlight,
			"editor.selectionBackground":     ui.Selection,
			"editorCursor.foreground":        ui.Cursor,
			"sideBar.background":             p.UI.BackgroundAlt,
			"sideBar.foreground":             p.UI.Foreground,
			"sideBar.border":                 p.Border.Border,
			"terminal.background":            ui.Background,
			"terminal.foreground":            ui.Foreground,
			"terminal.ansiBlack":             p.UI.ForegroundDim,
			"terminal.ansiRed":               ansi.Red.Base,
			"terminal.ansiGreen":             ansi.Green.Base,
			"terminal.ansiYellow":            ansi.Yellow.Base,
			"terminal.ansiBlue":              ansi.Blue.Base,
			"terminal.ansiMagenta":           ansi.Magenta.Base,
			"terminal.ansiCyan":              ansi.Cyan.Base,
			"terminal.ansiWhite":             ansiWhite,
			"terminal.ansiBrightBlack":       p.UI.ForegroundDim,
			"terminal.ansiBrightRed":         ansi.Red.Bright,
			"terminal.ansiBrightGreen":       ansi.Green.Bright,
			"terminal.ansiBrightYellow":      ansi.Yellow.Bright,
			"terminal.ansiBrightBlue":        ansi.Blue.Bright,
			"terminal.ansiBrightMagenta":     ansi.Magenta.Bright,
			"terminal.ansiBrightCyan":        ansi.Cyan.Bright,
			"terminal.ansiBrightWhite":       ansiBrightWhite,
		},
		TokenColors: []tokenColor{
			{Scope: []string{"keyword", "storage.type", "storage.modifier"}, Settings: tokenSettings{Foreground: p.Syntax.BlueGreen}},
			{Scope: []string{"entity.name.function", "support.function"}, Settings: tokenSettings{Foreground: p.Syntax.Teal}},
			{Scope: []string{"string", "string.quoted"}, Settings: tokenSettings{Foreground: p.Syntax.Teal}},
			{Scope: []string{"constant.numeric", "constant.language"}, Settings: tokenSettings{Foreground: p.Syntax.Lavender}},
			{Scope: []string{"comment", "punctuation.definition.comment"}, Settings: tokenSettings{Foreground: p.Syntax.Gray, FontStyle: "italic"}},
		},
	}
}
