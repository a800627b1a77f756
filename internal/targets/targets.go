// Package targets renders a theme into application-specific theme files.
//
// Each target kind has an Encoder. Encoders are pure: they return file names
// and contents and leave writing to the caller.
package targets

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

// Fixed terminal colors shared by the terminal-palette encoders.
const (
	ansiGray        = "#7f7f7f"
	ansiWhite       = "#d4d4d4"
	ansiBrightWhite = "#ffffff"
	selectionText   = "#ffffff"
)

// File is one rendered file.
type File struct {
	Name    string
	Content []byte
}

// Output is everything rendered for one target.
type Output struct {
	Target theme.Target
	// Dir is the output directory relative to the caller's root.
	Dir   string
	Files []File
}

// Paths returns the full path of every file under root.
func (o Output) Paths(root string) []string {
	paths := make([]string, 0, len(o.Files))
	for _, f := range o.Files {
		paths = append(paths, filepath.Join(root, o.Dir, f.Name))
	}
	return paths
}

// Encoder renders one target kind.
type Encoder interface {
	Kind() theme.TargetKind
	Encode(cfg *theme.Config, target theme.Target) ([]File, error)
}

// perVariantName returns the explicit out_names entry for a variant, or
// "<slug>-<variant><ext>".
func perVariantName(cfg *theme.Config, target theme.Target, v theme.Variant, ext string) string {
	if name, ok := target.FileFor(v.Name); ok {
		return name
	}
	return cfg.Slug() + "-" + v.Name + ext
}

// singleFileName returns the target's out_file, or def.
func singleFileName(target theme.Target, def string) string {
	if target.OutFile != "" {
		return target.OutFile
	}
	return def
}

// marshalJSON pretty-prints v with two-space indentation and a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
