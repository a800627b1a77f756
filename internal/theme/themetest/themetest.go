// Package themetest provides theme fixtures for tests.
package themetest

import "github.com/subliminal-nightfall/colorloom/internal/theme"

// SampleTOML is a complete theme document with two variants and one target
// of each kind.
const SampleTOML = `version = "1"

[meta]
name = "Subliminal Nightfall"
author = "Subliminal"
description = "A calm, dark theme"
license = "MIT"

[palette.base.ansi.red]
base = "#bf616a"
bright = "#e2848d"
dim = "#85434a"

[palette.base.ansi.green]
base = "#a9cfa4"
bright = "#ccf2c7"
dim = "#769072"

[palette.base.ansi.yellow]
base = "#ffe2a9"
bright = "#ffffcc"
dim = "#b29e76"

[palette.base.ansi.blue]
base = "#6699cc"
bright = "#89bcef"
dim = "#476b8e"

[palette.base.ansi.magenta]
base = "#f1a5ab"
bright = "#ffc8ce"
dim = "#a87377"

[palette.base.ansi.cyan]
base = "#5fb3b3"
bright = "#82d6d6"
dim = "#427d7d"

[palette.syntax]
teal = "#9ccfd8"
blue_green = "#31748f"
lavender = "#c4a7e7"
gray = "#7f7f7f"

[palette.ui]
background = "#191724"
background_alt = "#1f1d2e"
background_elevated = "#26233a"
foreground = "#e0def4"
foreground_muted = "#a0a0a0"
foreground_dim = "#7f7f7f"
selection = "#484e5b"
cursor = "#5fb3b3"
line_highlight = "#2e3239bf"

[palette.border]
border = "#484e5b"
border_variant = "#363b45"
border_focused = "#6699cc"
border_selected = "#5fb3b3"

[[variants]]
name = "base"

[[variants]]
name = "transparent"
alpha = 0.8
blur_radius = 20

[variants.overrides.ui]
cursor = "#82d6d6"

[[targets]]
id = "ghostty"
path = "out/ghostty"

[[targets]]
id = "zed"
path = "out/zed"

[[targets]]
id = "cursor"
path = "out/cursor"

[targets.out_names]
base = "subliminal-nightfall-color-theme.json"

[[targets]]
id = "neovim"
path = "out/neovim"

[[targets]]
id = "website"
path = "out/website"
enabled = false
`

// Sample returns the configuration described by SampleTOML.
func Sample() *theme.Config {
	alpha := 0.8
	blur := uint32(20)
	cursor := "#82d6d6"

	return &theme.Config{
		Version: "1",
		Meta: theme.Meta{
			Name:        "Subliminal Nightfall",
			Author:      "Subliminal",
			Description: "A calm, dark theme",
			License:     "MIT",
		},
		Palette: Palette(),
		Variants: []theme.Variant{
			{Name: "base"},
			{
				Name:       "transparent",
				Alpha:      &alpha,
				BlurRadius: &blur,
				Overrides:  &theme.Overrides{UI: &theme.UIOverrides{Cursor: &cursor}},
			},
		},
		Targets: []theme.Target{
			{Kind: theme.TargetGhostty, Enabled: true, Path: "out/ghostty"},
			{Kind: theme.TargetZed, Enabled: true, Path: "out/zed"},
			{
				Kind:     theme.TargetCursor,
				Enabled:  true,
				Path:     "out/cursor",
				OutNames: map[string]string{"base": "subliminal-nightfall-color-theme.json"},
			},
			{Kind: theme.TargetNeovim, Enabled: true, Path: "out/neovim"},
			{Kind: theme.TargetWebsite, Enabled: false, Path: "out/website"},
		},
	}
}

// Palette returns the sample base palette.
func Palette() theme.Palette {
	return theme.Palette{
		Base: theme.BasePalette{ANSI: theme.ANSIPalette{
			Red:     theme.ColorVariant{Base: "#bf616a", Bright: "#e2848d", Dim: "#85434a"},
			Green:   theme.ColorVariant{Base: "#a9cfa4", Bright: "#ccf2c7", Dim: "#769072"},
			Yellow:  theme.ColorVariant{Base: "#ffe2a9", Bright: "#ffffcc", Dim: "#b29e76"},
			Blue:    theme.ColorVariant{Base: "#6699cc", Bright: "#89bcef", Dim: "#476b8e"},
			Magenta: theme.ColorVariant{Base: "#f1a5ab", Bright: "#ffc8ce", Dim: "#a87377"},
			Cyan:    theme.ColorVariant{Base: "#5fb3b3", Bright: "#82d6d6", Dim: "#427d7d"},
		}},
		Syntax: theme.SyntaxPalette{
			Teal:      "#9ccfd8",
			BlueGreen: "#31748f",
			Lavender:  "#c4a7e7",
			Gray:      "#7f7f7f",
		},
		UI: theme.UIPalette{
			Background:         "#191724",
			BackgroundAlt:      "#1f1d2e",
			BackgroundElevated: "#26233a",
			Foreground:         "#e0def4",
			ForegroundMuted:    "#a0a0a0",
			ForegroundDim:      "#7f7f7f",
			Selection:          "#484e5b",
			Cursor:             "#5fb3b3",
			LineHighlight:      "#2e3239bf",
		},
		Border: theme.BorderPalette{
			Border:         "#484e5b",
			BorderVariant:  "#363b45",
			BorderFocused:  "#6699cc",
			BorderSelected: "#5fb3b3",
		},
	}
}

// Target returns the first target of the given kind in cfg, enabled.
func Target(cfg *theme.Config, kind theme.TargetKind) theme.Target {
	for _, t := range cfg.Targets {
		if t.Kind == kind {
			t.Enabled = true
			return t
		}
	}
	return theme.Target{Kind: kind, Enabled: true, Path: "out/" + string(kind)}
}
