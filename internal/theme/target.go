package theme

import "strings"

// TargetKind identifies the application a target renders for.
type TargetKind string

const (
	TargetGhostty TargetKind = "ghostty"
	TargetZed     TargetKind = "zed"
	TargetCursor  TargetKind = "cursor"
	TargetNeovim  TargetKind = "neovim"
	TargetWebsite TargetKind = "website"
)

// TargetKinds lists every supported kind.
func TargetKinds() []TargetKind {
	return []TargetKind{TargetGhostty, TargetZed, TargetCursor, TargetNeovim, TargetWebsite}
}

// ParseTargetKind maps a target id to its kind. Matching is exact.
func ParseTargetKind(id string) (TargetKind, error) {
	for _, kind := range TargetKinds() {
		if string(kind) == id {
			return kind, nil
		}
	}
	return "", &UnknownTargetError{ID: id}
}

func (k TargetKind) String() string {
	return string(k)
}

// targetDoc is the serialized form of a Target.
type targetDoc struct {
	ID       string            `toml:"id" yaml:"id"`
	Enabled  *bool             `toml:"enabled" yaml:"enabled"`
	Path     *string           `toml:"path" yaml:"path"`
	OutFile  string            `toml:"out_file" yaml:"out_file"`
	OutNames map[string]string `toml:"out_names" yaml:"out_names"`
}

func (d targetDoc) target() (Target, error) {
	kind, err := ParseTargetKind(strings.TrimSpace(d.ID))
	if err != nil {
		return Target{}, err
	}
	enabled := true
	if d.Enabled != nil {
		enabled = *d.Enabled
	}
	var path string
	if d.Path != nil {
		path = *d.Path
	}
	return Target{
		Kind:     kind,
		Enabled:  enabled,
		Path:     path,
		OutFile:  strings.TrimSpace(d.OutFile),
		OutNames: d.OutNames,
	}, nil
}
