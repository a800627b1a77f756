// Package theme defines the declarative theme document: metadata, the color
// palette, named variants and the output targets to render.
//
// A Config is built once by Load or Parse and treated as read-only afterwards.
package theme

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BaseVariant is the variant name rendered without a title suffix.
const BaseVariant = "base"

// Config is the root of a theme document.
type Config struct {
	Version  string
	Meta     Meta
	Palette  Palette
	Variants []Variant
	Targets  []Target
}

// Meta describes the theme.
type Meta struct {
	Name        string `toml:"name" yaml:"name"`
	Author      string `toml:"author" yaml:"author"`
	Description string `toml:"description" yaml:"description"`
	License     string `toml:"license" yaml:"license"`
}

// Palette holds every base color definition shared by all variants.
type Palette struct {
	Base   BasePalette   `toml:"base" yaml:"base"`
	Syntax SyntaxPalette `toml:"syntax" yaml:"syntax"`
	UI     UIPalette     `toml:"ui" yaml:"ui"`
	Border BorderPalette `toml:"border" yaml:"border"`
}

// BasePalette groups the terminal colors.
type BasePalette struct {
	ANSI ANSIPalette `toml:"ansi" yaml:"ansi"`
}

// ANSIPalette holds the six chromatic ANSI slots.
type ANSIPalette struct {
	Red     ColorVariant `toml:"red" yaml:"red"`
	Green   ColorVariant `toml:"green" yaml:"green"`
	Yellow  ColorVariant `toml:"yellow" yaml:"yellow"`
	Blue    ColorVariant `toml:"blue" yaml:"blue"`
	Magenta ColorVariant `toml:"magenta" yaml:"magenta"`
	Cyan    ColorVariant `toml:"cyan" yaml:"cyan"`
}

// ColorVariant is one ANSI hue at three intensities.
type ColorVariant struct {
	Base   string `toml:"base" yaml:"base"`
	Bright string `toml:"bright" yaml:"bright"`
	Dim    string `toml:"dim" yaml:"dim"`
}

// NamedColor pairs an ANSI slot name with its colors.
type NamedColor struct {
	Name  string
	Color ColorVariant
}

// Slots returns the ANSI colors in terminal order (red through cyan).
func (a ANSIPalette) Slots() []NamedColor {
	return []NamedColor{
		{Name: "red", Color: a.Red},
		{Name: "green", Color: a.Green},
		{Name: "yellow", Color: a.Yellow},
		{Name: "blue", Color: a.Blue},
		{Name: "magenta", Color: a.Magenta},
		{Name: "cyan", Color: a.Cyan},
	}
}

// SyntaxPalette holds the colors used for syntax-highlighting roles.
type SyntaxPalette struct {
	Teal      string `toml:"teal" yaml:"teal"`
	BlueGreen string `toml:"blue_green" yaml:"blue_green"`
	Lavender  string `toml:"lavender" yaml:"lavender"`
	Gray      string `toml:"gray" yaml:"gray"`
}

// BorderPalette holds border colors. Variants never adjust these.
type BorderPalette struct {
	Border         string `toml:"border" yaml:"border"`
	BorderVariant  string `toml:"border_variant" yaml:"border_variant"`
	BorderFocused  string `toml:"border_focused" yaml:"border_focused"`
	BorderSelected string `toml:"border_selected" yaml:"border_selected"`
}

// Variant is a named appearance derived from the base palette.
type Variant struct {
	Name string `toml:"name" yaml:"name"`
	// Alpha is a normalized opacity applied to the background family of UI
	// colors. Nil leaves them untouched.
	Alpha      *float64   `toml:"alpha" yaml:"alpha"`
	BlurRadius *uint32    `toml:"blur_radius" yaml:"blur_radius"`
	Overrides  *Overrides `toml:"overrides" yaml:"overrides"`
}

// Overrides holds explicit per-variant replacements.
type Overrides struct {
	UI *UIOverrides `toml:"ui" yaml:"ui"`
}

// Title returns the theme name for the base variant. Other variants are
// formatted with layout, which receives the theme name and the capitalized
// variant name, e.g. "%s (%s)".
func (v Variant) Title(themeName, layout string) string {
	if v.Name == BaseVariant {
		return themeName
	}
	return fmt.Sprintf(layout, themeName, Capitalize(v.Name))
}

// Target is one output destination.
type Target struct {
	Kind    TargetKind
	Enabled bool
	// Path is the output directory, relative to the caller's output root.
	Path string
	// OutFile overrides the file name for single-file formats.
	OutFile string
	// OutNames maps variant names to file names for per-variant formats.
	OutNames map[string]string
}

// FileFor returns the configured file name for a variant, if any.
func (t Target) FileFor(variant string) (string, bool) {
	name, ok := t.OutNames[variant]
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// Slug returns the lowercase, hyphenated theme name used in default file names.
func (c *Config) Slug() string {
	return strings.ReplaceAll(strings.ToLower(c.Meta.Name), " ", "-")
}

// VariantNames returns variant names in document order.
func (c *Config) VariantNames() []string {
	names := make([]string, 0, len(c.Variants))
	for _, v := range c.Variants {
		names = append(names, v.Name)
	}
	return names
}

// Variant returns the first variant with the given name.
func (c *Config) Variant(name string) (Variant, bool) {
	for _, v := range c.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// DuplicateVariantNames lists variant names that appear more than once.
// Duplicates are rendered in order, so later ones overwrite earlier output
// for per-variant formats.
func (c *Config) DuplicateVariantNames() []string {
	seen := make(map[string]int, len(c.Variants))
	var dups []string
	for _, v := range c.Variants {
		seen[v.Name]++
		if seen[v.Name] == 2 {
			dups = append(dups, v.Name)
		}
	}
	return dups
}

// EnabledTargets returns the enabled targets in document order.
func (c *Config) EnabledTargets() []Target {
	enabled := make([]Target, 0, len(c.Targets))
	for _, t := range c.Targets {
		if t.Enabled {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
