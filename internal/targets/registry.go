package targets

import (
	"fmt"
	"sync"

	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

// Registry maps target kinds to encoders.
type Registry struct {
	mu       sync.RWMutex
	encoders map[theme.TargetKind]Encoder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[theme.TargetKind]Encoder),
	}
}

// NewDefaultRegistry creates a registry holding every built-in encoder.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Ghostty{})
	r.MustRegister(Zed{})
	r.MustRegister(Cursor{})
	r.MustRegister(Neovim{})
	r.MustRegister(Website{})
	return r
}

// Register adds an encoder.
// Returns an error if the kind already has one.
func (r *Registry) Register(encoder Encoder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := encoder.Kind()
	if _, exists := r.encoders[kind]; exists {
		return fmt.Errorf("encoder for %q already registered", kind)
	}

	r.encoders[kind] = encoder
	return nil
}

// MustRegister adds an encoder, panicking on error.
func (r *Registry) MustRegister(encoder Encoder) {
	if err := r.Register(encoder); err != nil {
		panic(err)
	}
}

// Get returns the encoder for a kind, or nil.
func (r *Registry) Get(kind theme.TargetKind) Encoder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.encoders[kind]
}

// Kinds returns the registered kinds in canonical order.
func (r *Registry) Kinds() []theme.TargetKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]theme.TargetKind, 0, len(r.encoders))
	for _, kind := range theme.TargetKinds() {
		if _, ok := r.encoders[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
