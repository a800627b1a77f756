package theme

// UIPalette holds the editor and terminal UI colors.
type UIPalette struct {
	Background         string `toml:"background" yaml:"background"`
	BackgroundAlt      string `toml:"background_alt" yaml:"background_alt"`
	BackgroundElevated string `toml:"background_elevated" yaml:"background_elevated"`
	Foreground         string `toml:"foreground" yaml:"foreground"`
	ForegroundMuted    string `toml:"foreground_muted" yaml:"foreground_muted"`
	ForegroundDim      string `toml:"foreground_dim" yaml:"foreground_dim"`
	Selection          string `toml:"selection" yaml:"selection"`
	Cursor             string `toml:"cursor" yaml:"cursor"`
	LineHighlight      string `toml:"line_highlight" yaml:"line_highlight"`
}

// UIField names one UIPalette field.
type UIField int

const (
	FieldBackground UIField = iota
	FieldBackgroundAlt
	FieldBackgroundElevated
	FieldForeground
	FieldForegroundMuted
	FieldForegroundDim
	FieldSelection
	FieldCursor
	FieldLineHighlight
)

var uiFieldNames = [...]string{
	FieldBackground:         "background",
	FieldBackgroundAlt:      "background_alt",
	FieldBackgroundElevated: "background_elevated",
	FieldForeground:         "foreground",
	FieldForegroundMuted:    "foreground_muted",
	FieldForegroundDim:      "foreground_dim",
	FieldSelection:          "selection",
	FieldCursor:             "cursor",
	FieldLineHighlight:      "line_highlight",
}

// UIFields lists every UI field in document order.
func UIFields() []UIField {
	fields := make([]UIField, len(uiFieldNames))
	for i := range uiFieldNames {
		fields[i] = UIField(i)
	}
	return fields
}

// BackgroundFields are the fields a variant's alpha applies to.
func BackgroundFields() []UIField {
	return []UIField{
		FieldBackground,
		FieldBackgroundAlt,
		FieldBackgroundElevated,
		FieldSelection,
		FieldLineHighlight,
	}
}

func (f UIField) String() string {
	if f < 0 || int(f) >= len(uiFieldNames) {
		return "unknown"
	}
	return uiFieldNames[f]
}

func (p *UIPalette) ref(f UIField) *string {
	switch f {
	case FieldBackground:
		return &p.Background
	case FieldBackgroundAlt:
		return &p.BackgroundAlt
	case FieldBackgroundElevated:
		return &p.BackgroundElevated
	case FieldForeground:
		return &p.Foreground
	case FieldForegroundMuted:
		return &p.ForegroundMuted
	case FieldForegroundDim:
		return &p.ForegroundDim
	case FieldSelection:
		return &p.Selection
	case FieldCursor:
		return &p.Cursor
	case FieldLineHighlight:
		return &p.LineHighlight
	default:
		return nil
	}
}

// Get returns the value of a field, or "" for an unknown field.
func (p UIPalette) Get(f UIField) string {
	if ref := p.ref(f); ref != nil {
		return *ref
	}
	return ""
}

// FieldValue is a single field assignment.
type FieldValue struct {
	Field UIField
	Value string
}

// Patch is an ordered list of field assignments. Later entries win.
type Patch []FieldValue

// Apply returns a copy of p with the patch applied. Unknown fields are ignored.
func (p UIPalette) Apply(patch Patch) UIPalette {
	out := p
	for _, fv := range patch {
		if ref := out.ref(fv.Field); ref != nil {
			*ref = fv.Value
		}
	}
	return out
}

// UIOverrides is a sparse set of UI field replacements.
type UIOverrides struct {
	Background         *string `toml:"background" yaml:"background"`
	BackgroundAlt      *string `toml:"background_alt" yaml:"background_alt"`
	BackgroundElevated *string `toml:"background_elevated" yaml:"background_elevated"`
	Foreground         *string `toml:"foreground" yaml:"foreground"`
	ForegroundMuted    *string `toml:"foreground_muted" yaml:"foreground_muted"`
	ForegroundDim      *string `toml:"foreground_dim" yaml:"foreground_dim"`
	Selection          *string `toml:"selection" yaml:"selection"`
	Cursor             *string `toml:"cursor" yaml:"cursor"`
	LineHighlight      *string `toml:"line_highlight" yaml:"line_highlight"`
}

// Patch converts the set fields into a patch in field order.
func (o *UIOverrides) Patch() Patch {
	if o == nil {
		return nil
	}
	candidates := []struct {
		field UIField
		value *string
	}{
		{FieldBackground, o.Background},
		{FieldBackgroundAlt, o.BackgroundAlt},
		{FieldBackgroundElevated, o.BackgroundElevated},
		{FieldForeground, o.Foreground},
		{FieldForegroundMuted, o.ForegroundMuted},
		{FieldForegroundDim, o.ForegroundDim},
		{FieldSelection, o.Selection},
		{FieldCursor, o.Cursor},
		{FieldLineHighlight, o.LineHighlight},
	}

	var patch Patch
	for _, c := range candidates {
		if c.value != nil {
			patch = append(patch, FieldValue{Field: c.field, Value: *c.value})
		}
	}
	return patch
}

// UIPatch returns the variant's UI overrides as a patch.
func (v Variant) UIPatch() Patch {
	if v.Overrides == nil {
		return nil
	}
	return v.Overrides.UI.Patch()
}
