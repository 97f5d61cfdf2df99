package scene

import (
	"context"
	"sync"

	"github.com/san-kum/fractalfx/internal/surface"
)

// Variant is one ensemble member: its seed, the surface it drew on and the
// run result.
type Variant struct {
	Seed    int64
	Surface surface.Surface
	Result  *Result
}

// Ensemble renders the same scene with consecutive seeds, each on its own
// surface and loop, in parallel.
type Ensemble struct {
	registry  *Registry
	scene     string
	numRuns   int
	seedStart int64
}

func NewEnsemble(r *Registry, scene string, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{registry: r, scene: scene, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config, newSurface func() surface.Surface) ([]*Variant, error) {
	if _, err := e.registry.Build(e.scene, 1, 1, 0); err != nil {
		return nil, err
	}

	variants := make([]*Variant, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			s := newSurface()
			w, h := s.Size()
			layers, err := e.registry.Build(e.scene, w, h, seed)
			if err != nil {
				errs[idx] = err
				return
			}

			res, err := New(s, layers...).Run(ctx, cfg)
			variants[idx], errs[idx] = &Variant{Seed: seed, Surface: s, Result: res}, err
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return variants, nil
}
