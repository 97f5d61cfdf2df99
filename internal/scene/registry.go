package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/fractalfx/internal/effects"
)

// MaxRipples caps live ripples per scene.
const MaxRipples = 256

type Builder func(w, h int, seed int64) []Layer

type entry struct {
	description string
	build       Builder
}

type Registry struct {
	scenes map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]entry)}

	r.Register("background", "gradient, speckles and swaying fractal tree", func(w, h int, seed int64) []Layer {
		return []Layer{NewBackgroundLayer(seed)}
	})
	r.Register("interactive", "rotating nested circles with pointer ripples", func(w, h int, seed int64) []Layer {
		return []Layer{PatternLayer{}, NewRippleLayer(MaxRipples)}
	})
	r.Register("particles", "drifting particle field", func(w, h int, seed int64) []Layer {
		return []Layer{ClearLayer{}, NewParticleLayer(effects.ParticleCount, w, h, seed)}
	})
	r.Register("ripples", "pointer ripples on an empty surface", func(w, h int, seed int64) []Layer {
		return []Layer{ClearLayer{}, NewRippleLayer(MaxRipples)}
	})
	r.Register("page", "background with particles and pointer ripples", func(w, h int, seed int64) []Layer {
		return []Layer{
			NewBackgroundLayer(seed),
			NewParticleLayer(effects.ParticleCount, w, h, seed+1),
			NewRippleLayer(MaxRipples),
		}
	})

	return r
}

func (r *Registry) Register(name, description string, build Builder) {
	r.scenes[name] = entry{description: description, build: build}
}

func (r *Registry) Build(name string, w, h int, seed int64) ([]Layer, error) {
	e, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	return e.build(w, h, seed), nil
}

func (r *Registry) Describe(name string) string {
	return r.scenes[name].description
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
