// Package variant derives the effective UI palette for a theme variant.
package variant

import (
	"github.com/subliminal-nightfall/colorloom/internal/color"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

// Resolve returns the UI palette a variant renders with.
//
// Alpha is composited onto the background family first, then explicit
// overrides are applied, so an override always wins for its field.
// The base palette is passed by value and never modified.
func Resolve(base theme.UIPalette, v theme.Variant) theme.UIPalette {
	return base.Apply(Patch(base, v))
}

// Patch returns the ordered assignments Resolve applies for v.
func Patch(base theme.UIPalette, v theme.Variant) theme.Patch {
	var patch theme.Patch
	if v.Alpha != nil {
		for _, field := range theme.BackgroundFields() {
			patch = append(patch, theme.FieldValue{
				Field: field,
				Value: color.ApplyAlpha(base.Get(field), *v.Alpha),
			})
		}
	}
	return append(patch, v.UIPatch()...)
}

// Resolved pairs a variant with its effective UI palette.
type Resolved struct {
	Variant theme.Variant
	UI      theme.UIPalette
}

// All resolves every variant of cfg in document order.
func All(cfg *theme.Config) []Resolved {
	resolved := make([]Resolved, 0, len(cfg.Variants))
	for _, v := range cfg.Variants {
		resolved = append(resolved, Resolved{Variant: v, UI: Resolve(cfg.Palette.UI, v)})
	}
	return resolved
}
