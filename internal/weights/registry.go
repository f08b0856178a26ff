package weights

import (
	"fmt"

	"github.com/gsabatini/match-engine/internal/types"
)

// Registry holds the base weight matrix and one full replacement matrix per
// known listening reason. It is built once at startup, validated, and never
// mutated afterwards, so concurrent readers need no locking.
type Registry struct {
	base      Matrix
	overrides map[types.ListeningReason]Matrix
}

func newRegistry(base Matrix, overrides map[types.ListeningReason]Matrix) (*Registry, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("base matrix: %w", err)
	}
	for reason, m := range overrides {
		if types.NormalizeListeningReason(reason) != reason || reason == types.ReasonUnspecified {
			return nil, fmt.Errorf("override for unknown listening reason %q", reason)
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("matrix for %s: %w", reason, err)
		}
	}
	// Every known reason must resolve to a complete matrix, its own or base.
	out := make(map[types.ListeningReason]Matrix, len(types.ListeningReasons()))
	for _, reason := range types.ListeningReasons() {
		if m, ok := overrides[reason]; ok {
			out[reason] = m
		} else {
			out[reason] = base
		}
	}
	return &Registry{base: base, overrides: out}, nil
}

// NewRegistry builds a registry from the built-in default matrices.
func NewRegistry() *Registry {
	r, err := newRegistry(defaultBase, defaultOverrides())
	if err != nil {
		// The defaults are compile-time constants; failing here is a bug.
		panic(fmt.Sprintf("built-in weight matrices invalid: %v", err))
	}
	return r
}

// Base returns the base matrix.
func (r *Registry) Base() Matrix {
	return r.base
}

// Matrix returns the matrix for the given listening reason. Unknown or
// unspecified reasons resolve to the base matrix.
func (r *Registry) Matrix(reason types.ListeningReason) Matrix {
	if m, ok := r.overrides[types.NormalizeListeningReason(reason)]; ok {
		return m
	}
	return r.base
}

// Boost returns how far the component's weight under the given reason
// departs from its base weight. Zero whenever the reason resolves to base.
func (r *Registry) Boost(c Component, reason types.ListeningReason) float64 {
	return r.Matrix(reason).Weight(c) - r.base.Weight(c)
}

// Matrices returns every active matrix keyed by name ("base" plus each
// known reason), for introspection surfaces.
func (r *Registry) Matrices() map[string]Matrix {
	out := make(map[string]Matrix, len(r.overrides)+1)
	out["base"] = r.base
	for reason, m := range r.overrides {
		out[string(reason)] = m
	}
	return out
}
