package weights

import (
	"fmt"
	"math"
)

// SumTolerance is the allowed deviation of a matrix sum from 1.0.
const SumTolerance = 1e-6

// Matrix is a complete weight assignment, one weight per component. It is an
// array, not a map: a Matrix cannot omit a component or carry an unknown one.
type Matrix [NumComponents]float64

// Weight returns the weight assigned to the component.
func (m Matrix) Weight(c Component) float64 {
	return m[c]
}

// Sum returns the total of all weights.
func (m Matrix) Sum() float64 {
	var sum float64
	for _, w := range m {
		sum += w
	}
	return sum
}

// Validate checks the matrix invariants: every weight non-negative and the
// sum within SumTolerance of 1.0.
func (m Matrix) Validate() error {
	for i, w := range m {
		if w < 0 {
			return fmt.Errorf("component %s has negative weight %v", Component(i), w)
		}
	}
	if sum := m.Sum(); math.Abs(sum-1.0) > SumTolerance {
		return fmt.Errorf("weights sum to %v, want 1.0 within %v", sum, SumTolerance)
	}
	return nil
}

// Map returns the matrix keyed by component identifier, for JSON surfaces.
func (m Matrix) Map() map[string]float64 {
	out := make(map[string]float64, NumComponents)
	for i, w := range m {
		out[Component(i).String()] = w
	}
	return out
}

// MatrixFromMap builds a Matrix from component-keyed weights. The map must be
// complete: every component present, no unknown keys. Partial matrices are
// rejected so an override can never silently inherit weights it meant to
// replace.
func MatrixFromMap(weights map[string]float64) (Matrix, error) {
	var m Matrix
	if len(weights) != NumComponents {
		return m, fmt.Errorf("matrix has %d weights, want all %d components", len(weights), NumComponents)
	}
	for name, w := range weights {
		c, err := ParseComponent(name)
		if err != nil {
			return m, err
		}
		m[c] = w
	}
	return m, m.Validate()
}
