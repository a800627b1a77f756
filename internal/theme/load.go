package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a theme document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension. Anything other than
// .yaml or .yml is read as TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

type document struct {
	Version  string      `toml:"version" yaml:"version"`
	Meta     Meta        `toml:"meta" yaml:"meta"`
	Palette  Palette     `toml:"palette" yaml:"palette"`
	Variants []Variant   `toml:"variants" yaml:"variants"`
	Targets  []targetDoc `toml:"targets" yaml:"targets"`
}

// Load reads and parses the theme document at path.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("theme path is required")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return nil, perr
		}
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a theme document and checks that required data is present
// and every target id is known.
func Parse(data []byte, format Format) (*Config, error) {
	var doc document
	if err := decode(data, format, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	if missing := doc.missingFields(); len(missing) > 0 {
		return nil, &ParseError{Err: &MissingFieldsError{Fields: missing}}
	}

	cfg := &Config{
		Version:  strings.TrimSpace(doc.Version),
		Meta:     doc.Meta,
		Palette:  doc.Palette,
		Variants: doc.Variants,
		Targets:  make([]Target, 0, len(doc.Targets)),
	}
	if cfg.Variants == nil {
		cfg.Variants = []Variant{}
	}

	for i, td := range doc.Targets {
		target, err := td.target()
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i+1, err)
		}
		cfg.Targets = append(cfg.Targets, target)
	}

	return cfg, nil
}

func decode(data []byte, format Format, doc *document) error {
	switch format {
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return fmt.Errorf("empty document")
		}
		return yaml.Unmarshal(data, doc)
	case FormatTOML, "":
		return toml.Unmarshal(data, doc)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func (d *document) missingFields() []string {
	var missing []string
	require := func(path, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, path)
		}
	}

	require("version", d.Version)
	require("meta.name", d.Meta.Name)

	for _, slot := range d.Palette.Base.ANSI.Slots() {
		prefix := "palette.base.ansi." + slot.Name
		require(prefix+".base", slot.Color.Base)
		require(prefix+".bright", slot.Color.Bright)
		require(prefix+".dim", slot.Color.Dim)
	}

	syntax := d.Palette.Syntax
	require("palette.syntax.teal", syntax.Teal)
	require("palette.syntax.blue_green", syntax.BlueGreen)
	require("palette.syntax.lavender", syntax.Lavender)
	require("palette.syntax.gray", syntax.Gray)

	for _, field := range UIFields() {
		require("palette.ui."+field.String(), d.Palette.UI.Get(field))
	}

	border := d.Palette.Border
	require("palette.border.border", border.Border)
	require("palette.border.border_variant", border.BorderVariant)
	require("palette.border.border_focused", border.BorderFocused)
	require("palette.border.border_selected", border.BorderSelected)

	for i, v := range d.Variants {
		require(fmt.Sprintf("variants[%d].name", i), v.Name)
	}
	for i, t := range d.Targets {
		require(fmt.Sprintf("targets[%d].id", i), t.ID)
		// An empty path is allowed and means the output root itself.
		if t.Path == nil {
			missing = append(missing, fmt.Sprintf("targets[%d].path", i))
		}
	}

	return missing
}
