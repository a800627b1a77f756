package targets

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/subliminal-nightfall/colorloom/internal/theme"
	"github.com/subliminal-nightfall/colorloom/internal/variant"
)

// Neovim renders one Lua colorscheme per variant.
type Neovim struct{}

const neovimTemplate = `-- Generated by colorloom
vim.cmd('highlight clear')
if vim.fn.exists('syntax_on') then vim.cmd('syntax reset') end
vim.g.colors_name = '{{lua .Title}}'
vim.o.background = 'dark'
local c = {
  bg = '{{.UI.Background}}', bg_alt = '{{.Base.BackgroundAlt}}', fg = '{{.UI.Foreground}}', fg_muted = '{{.Base.ForegroundMuted}}', fg_dim = '{{.Base.ForegroundDim}}',
  selection = '{{.UI.Selection}}', cursor = '{{.UI.Cursor}}', line = '{{.UI.LineHighlight}}',
  red = '{{.ANSI.Red.Base}}', green = '{{.ANSI.Green.Base}}', yellow = '{{.ANSI.Yellow.Base}}', blue = '{{.ANSI.Blue.Base}}', magenta = '{{.ANSI.Magenta.Base}}', cyan = '{{.ANSI.Cyan.Base}}', purple = '{{.Syntax.Lavender}}', teal = '{{.Syntax.Teal}}', dark_blue = '{{.Syntax.BlueGreen}}'
}
local function hl(g, o) vim.api.nvim_set_hl(0, g, o) end
hl('Normal', { fg = c.fg, bg = c.bg })
hl('CursorLine', { bg = c.line })
hl('Visual', { bg = c.selection, fg = '{{.SelectionText}}' })
hl('Comment', { fg = c.fg_dim, italic = true })
hl('String', { fg = c.teal })
hl('Number', { fg = c.purple })
hl('Function', { fg = c.teal })
hl('Keyword', { fg = c.dark_blue })
`

var neovimScript = template.Must(template.New("neovim").
	Funcs(template.FuncMap{"lua": luaString}).
	Option("missingkey=error").
	Parse(neovimTemplate))

type neovimData struct {
	Title         string
	UI            theme.UIPalette
	Base          theme.UIPalette
	ANSI          theme.ANSIPalette
	Syntax        theme.SyntaxPalette
	SelectionText string
}

func (Neovim) Kind() theme.TargetKind { return theme.TargetNeovim }

func (Neovim) Encode(cfg *theme.Config, target theme.Target) ([]File, error) {
	files := make([]File, 0, len(cfg.Variants))
	for _, r := range variant.All(cfg) {
		data := neovimData{
			Title:         r.Variant.Title(cfg.Meta.Name, "%s (%s)"),
			UI:            r.UI,
			Base:          cfg.Palette.UI,
			ANSI:          cfg.Palette.Base.ANSI,
			Syntax:        cfg.Palette.Syntax,
			SelectionText: selectionText,
		}

		var out strings.Builder
		if err := neovimScript.Execute(&out, data); err != nil {
			return nil, fmt.Errorf("render variant %q: %w", r.Variant.Name, err)
		}
		files = append(files, File{
			Name:    perVariantName(cfg, target, r.Variant, ".lua"),
			Content: []byte(out.String()),
		})
	}
	return files, nil
}

// luaString escapes s for a single-quoted Lua string literal.
func luaString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(s)
}
