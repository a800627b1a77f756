package targets

import (
	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

const websiteFile = "palette.json"

// Website renders the palette swatch data used by the showcase site.
// It always renders the base palette; variants do not apply.
type Website struct{}

type websitePalette struct {
	Meta             websiteMeta     `json:"meta"`
	Colors           []websiteANSI   `json:"colors"`
	SyntaxColors     []websiteSwatch `json:"syntaxColors"`
	BackgroundColors []websiteSwatch `json:"backgroundColors"`
}

type websiteMeta struct {
	Name   string  `json:"name"`
	Author *string `json:"author"`
}

type websiteANSI struct {
	Name   string `json:"name"`
	Base   string `json:"base"`
	Bright string `json:"bright"`
	Dim    string `json:"dim"`
	Usage  string `json:"usage"`
}

type websiteSwatch struct {
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	Usage     string `json:"usage"`
	TextColor string `json:"textColor,omitempty"`
}

var ansiUsage = map[string]string{
	"red":     "Errors, deletions, keywords",
	"green":   "Success, additions",
	"yellow":  "Warnings, modifications",
	"blue":    "Info, titles, headings",
	"magenta": "Attributes, emphasis, operators",
	"cyan":    "Focus borders",
}

func (Website) Kind() theme.TargetKind { return theme.TargetWebsite }

func (Website) Encode(cfg *theme.Config, target theme.Target) ([]File, error) {
	p := cfg.Palette

	doc := websitePalette{
		Meta: websiteMeta{Name: cfg.Meta.Name},
		SyntaxColors: []websiteSwatch{
			{Name: "Cyan Teal", Hex: p.Syntax.Teal, Usage: "Functions, methods, strings"},
			{Name: "Blue Green", Hex: p.Syntax.BlueGreen, Usage: "Keywords, types, constructors"},
			{Name: "Lavender", Hex: p.Syntax.Lavender, Usage: "Numbers, constants, inline code"},
			{Name: "Gray", Hex: p.Syntax.Gray, Usage: "Comments"},
		},
		BackgroundColors: []websiteSwatch{
			{Name: "Background", Hex: p.UI.Background, Usage: "Deep purple-black editor background"},
			{Name: "Background Alt", Hex: p.UI.BackgroundAlt, Usage: "Sidebar, panels, inactive tabs"},
			{Name: "Foreground", Hex: p.UI.Foreground, Usage: "Soft white text", TextColor: "#000"},
		},
	}
	if cfg.Meta.Author != "" {
		author := cfg.Meta.Author
		doc.Meta.Author = &author
	}
	for _, slot := range p.Base.ANSI.Slots() {
		doc.Colors = append(doc.Colors, websiteANSI{
			Name:   theme.Capitalize(slot.Name),
			Base:   slot.Color.Base,
			Bright: slot.Color.Bright,
			Dim:    slot.Color.Dim,
			Usage:  ansiUsage[slot.Name],
		})
	}

	content, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	return []File{{Name: singleFileName(target, websiteFile), Content: content}}, nil
}
