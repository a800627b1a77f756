package targets

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subliminal-nightfall/colorloom/internal/color"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
	"github.com/subliminal-nightfall/colorloom/internal/theme/themetest"
)

func baseOnly(cfg *theme.Config) *theme.Config {
	cfg.Variants = []theme.Variant{{Name: "base"}}
	return cfg
}

func TestGhosttyBaseVariant(t *testing.T) {
	cfg := baseOnly(themetest.Sample())
	cfg.Palette.Base.ANSI.Red.Base = "#FF0000"
	target := theme.Target{Kind: theme.TargetGhostty, Enabled: true, Path: "out/ghostty"}

	out, err := Generate(cfg, target)
	require.NoError(t, err)

	require.Len(t, out.Files, 1)
	require.Equal(t, "subliminal-nightfall-base", out.Files[0].Name)
	require.Equal(t, []string{filepath.Join("root", "out", "ghostty", "subliminal-nightfall-base")}, out.Paths("root"))

	lines := strings.Split(string(out.Files[0].Content), "\n")
	require.Equal(t, "# Subliminal Nightfall for Ghostty", lines[0])
	require.Contains(t, lines, "palette = 1=#FF0000")
	require.Contains(t, lines, "palette = 0=#7f7f7f")
	require.Contains(t, lines, "palette = 7=#d4d4d4")
	require.Contains(t, lines, "palette = 8=#7f7f7f")
	require.Contains(t, lines, "palette = 9=#e2848d")
	require.Contains(t, lines, "palette = 15=#ffffff")
	require.Contains(t, lines, "background = #191724")
	require.Contains(t, lines, "cursor-text = #ffffff")
	require.Contains(t, lines, "selection-foreground = #ffffff")
	require.NotContains(t, string(out.Files[0].Content), "background-blur-radius")
}

func TestGhosttyStripsAlphaAndHonoursOutNames(t *testing.T) {
	cfg := themetest.Sample()
	target := theme.Target{
		Kind:     theme.TargetGhostty,
		Enabled:  true,
		Path:     "ghostty",
		OutNames: map[string]string{"transparent": "nightfall-glass"},
	}

	files, err := Ghostty{}.Encode(cfg, target)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "subliminal-nightfall-base", files[0].Name)
	require.Equal(t, "nightfall-glass", files[1].Name)

	content := string(files[1].Content)
	require.Contains(t, content, "background = #191724\n")
	require.Contains(t, content, "selection-background = #484e5b\n")
	require.Contains(t, content, "cursor-color = #82d6d6\n")
	require.Contains(t, content, "background-blur-radius = 20\n")
}

func TestZedFamily(t *testing.T) {
	cfg := themetest.Sample()

	out, err := Generate(cfg, themetest.Target(cfg, theme.TargetZed))
	require.NoError(t, err)
	require.Len(t, out.Files, 1)
	require.Equal(t, "subliminal-nightfall.json", out.Files[0].Name)
	require.Equal(t, "out/zed", out.Dir)

	var doc struct {
		Schema string `json:"$schema"`
		Name   string `json:"name"`
		Author string `json:"author"`
		Themes []struct {
			Name       string                       `json:"name"`
			Appearance string                       `json:"appearance"`
			Style      map[string]string            `json:"style"`
			Syntax     map[string]map[string]string `json:"syntax"`
		} `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(out.Files[0].Content, &doc))

	require.Equal(t, zedSchema, doc.Schema)
	require.Equal(t, "Subliminal", doc.Author)
	require.Len(t, doc.Themes, 2)
	require.Equal(t, "Subliminal Nightfall", doc.Themes[0].Name)
	require.Equal(t, "Subliminal Nightfall Transparent", doc.Themes[1].Name)
	require.Equal(t, "dark", doc.Themes[1].Appearance)

	bg := cfg.Palette.UI.Background
	require.Equal(t, bg, doc.Themes[0].Style["editor.background"])
	require.Equal(t, color.ApplyAlpha(bg, 0.8), doc.Themes[1].Style["editor.background"])
	require.Equal(t, "#a0a0a0", doc.Themes[1].Style["text.muted"])
	require.Equal(t, "#ffffff", doc.Themes[1].Style["editor.selection.foreground"])

	require.Len(t, doc.Themes[0].Syntax, 7)
	require.Equal(t, map[string]string{"color": "#7f7f7f", "font_style": "italic"}, doc.Themes[0].Syntax["comment"])
	require.Equal(t, map[string]string{"color": "#31748f"}, doc.Themes[0].Syntax["keyword"])
	require.Equal(t, "italic", doc.Themes[0].Syntax["attribute"]["font_style"])
}

func TestZedOutFile(t *testing.T) {
	cfg := themetest.Sample()
	target := theme.Target{Kind: theme.TargetZed, Enabled: true, Path: "zed", OutFile: "nightfall.json"}

	files, err := Zed{}.Encode(cfg, target)
	require.NoError(t, err)
	require.Equal(t, "nightfall.json", files[0].Name)
	require.True(t, strings.HasSuffix(string(files[0].Content), "}\n"))
}

func TestCursorPerVariant(t *testing.T) {
	cfg := themetest.Sample()

	files, err := Cursor{}.Encode(cfg, themetest.Target(cfg, theme.TargetCursor))
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "subliminal-nightfall-color-theme.json", files[0].Name)
	require.Equal(t, "subliminal-nightfall-transparent.json", files[1].Name)

	var doc vscodeTheme
	require.NoError(t, json.Unmarshal(files[1].Content, &doc))
	require.Equal(t, "Subliminal Nightfall (Transparent)", doc.Name)
	require.Equal(t, "dark", doc.Type)
	require.Equal(t, "#191724CC", doc.Colors["editor.background"])
	require.Equal(t, "#1f1d2e", doc.Colors["sideBar.background"], "sidebar uses the base palette")
	require.Equal(t, "#82d6d6", doc.Colors["editorCursor.foreground"])

	require.Len(t, doc.TokenColors, 5)
	require.Equal(t, []string{"keyword", "storage.type", "storage.modifier"}, doc.TokenColors[0].Scope)
	require.Equal(t, "#31748f", doc.TokenColors[0].Settings.Foreground)
	require.Equal(t, "italic", doc.TokenColors[4].Settings.FontStyle)
	require.Empty(t, doc.TokenColors[2].Settings.FontStyle)
}

func TestNeovimScript(t *testing.T) {
	cfg := themetest.Sample()

	files, err := Neovim{}.Encode(cfg, themetest.Target(cfg, theme.TargetNeovim))
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "subliminal-nightfall-base.lua", files[0].Name)

	base := string(files[0].Content)
	require.True(t, strings.HasPrefix(base, "-- Generated by colorloom\n"))
	require.Contains(t, base, "vim.g.colors_name = 'Subliminal Nightfall'\n")
	require.Contains(t, base, "bg = '#191724', bg_alt = '#1f1d2e'")
	require.Contains(t, base, "hl('Visual', { bg = c.selection, fg = '#ffffff' })")
	require.Contains(t, base, "dark_blue = '#31748f'")
	for _, group := range []string{"Normal", "CursorLine", "Visual", "Comment", "String", "Number", "Function", "Keyword"} {
		require.Contains(t, base, "hl('"+group+"'")
	}

	transparent := string(files[1].Content)
	require.Contains(t, transparent, "vim.g.colors_name = 'Subliminal Nightfall (Transparent)'\n")
	require.Contains(t, transparent, "bg = '#191724CC', bg_alt = '#1f1d2e'")
	require.Contains(t, transparent, "line = '#2e3239CC'")
}

func TestNeovimEscapesTitle(t *testing.T) {
	cfg := baseOnly(themetest.Sample())
	cfg.Meta.Name = "Night's Watch"

	files, err := Neovim{}.Encode(cfg, theme.Target{Kind: theme.TargetNeovim, Path: "nvim"})
	require.NoError(t, err)
	require.Equal(t, "night's-watch-base.lua", files[0].Name)
	require.Contains(t, string(files[0].Content), `vim.g.colors_name = 'Night\'s Watch'`)
}

func TestWebsiteIgnoresVariants(t *testing.T) {
	cfg := themetest.Sample()

	files, err := Website{}.Encode(cfg, themetest.Target(cfg, theme.TargetWebsite))
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "palette.json", files[0].Name)

	var doc websitePalette
	require.NoError(t, json.Unmarshal(files[0].Content, &doc))
	require.Equal(t, "Subliminal Nightfall", doc.Meta.Name)
	require.NotNil(t, doc.Meta.Author)
	require.Len(t, doc.Colors, 6)
	require.Equal(t, websiteANSI{Name: "Red", Base: "#bf616a", Bright: "#e2848d", Dim: "#85434a", Usage: "Errors, deletions, keywords"}, doc.Colors[0])
	require.Len(t, doc.SyntaxColors, 4)
	require.Len(t, doc.BackgroundColors, 3)
	require.Equal(t, "#191724", doc.BackgroundColors[0].Hex)
	require.Equal(t, "#000", doc.BackgroundColors[2].TextColor)
}

func TestWebsiteNullAuthor(t *testing.T) {
	cfg := themetest.Sample()
	cfg.Meta.Author = ""

	files, err := Website{}.Encode(cfg, theme.Target{Kind: theme.TargetWebsite, OutFile: "colors.json"})
	require.NoError(t, err)
	require.Equal(t, "colors.json", files[0].Name)
	require.Contains(t, string(files[0].Content), `"author": null`)
}

func TestGenerateUnknownTarget(t *testing.T) {
	cfg := themetest.Sample()

	out, err := Generate(cfg, theme.Target{Kind: "unknown-app", Enabled: true, Path: "out/x"})

	var unknown *theme.UnknownTargetError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "unknown-app", unknown.ID)
	require.Empty(t, out.Files)
}

func TestGenerateAllSkipsDisabled(t *testing.T) {
	cfg := themetest.Sample()

	outputs, err := NewDispatcher().GenerateAll(cfg)
	require.NoError(t, err)
	require.Len(t, outputs, 4)
	for _, out := range outputs {
		require.NotEqual(t, theme.TargetWebsite, out.Target.Kind)
	}
}

func TestGenerateAllStopsAtFirstFailure(t *testing.T) {
	cfg := themetest.Sample()
	cfg.Targets = append([]theme.Target{{Kind: "bogus", Enabled: true, Path: "x"}}, cfg.Targets...)

	outputs, err := NewDispatcher().GenerateAll(cfg)
	require.Nil(t, outputs)
	require.ErrorContains(t, err, "generate target bogus")
}

type stubEncoder struct{ err error }

func (stubEncoder) Kind() theme.TargetKind { return theme.TargetZed }

func (s stubEncoder) Encode(*theme.Config, theme.Target) ([]File, error) {
	return nil, s.err
}

func TestDispatcherWithRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubEncoder{err: errors.New("boom")})
	d := NewDispatcher(WithRegistry(registry))

	_, err := d.Generate(themetest.Sample(), theme.Target{Kind: theme.TargetZed})
	require.ErrorContains(t, err, "encode zed: boom")

	_, err = d.Generate(themetest.Sample(), theme.Target{Kind: theme.TargetGhostty})
	var unknown *theme.UnknownTargetError
	require.True(t, errors.As(err, &unknown))
}

func TestRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	require.Equal(t, theme.TargetKinds(), r.Kinds())
	require.Error(t, r.Register(Zed{}))
	require.Panics(t, func() { r.MustRegister(Zed{}) })
	require.Nil(t, NewRegistry().Get(theme.TargetZed))
}

func TestTerminalPaletteFixedSlots(t *testing.T) {
	ansi := themetest.Palette().Base.ANSI

	slots := TerminalPalette(ansi)
	require.Equal(t, "#7f7f7f", slots[0])
	require.Equal(t, "#7f7f7f", slots[8])
	require.Equal(t, "#d4d4d4", slots[7])
	require.Equal(t, "#ffffff", slots[15])
	require.Equal(t, ansi.Red.Base, slots[1])
	require.Equal(t, ansi.Cyan.Bright, slots[14])
}
