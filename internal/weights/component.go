// Package weights defines the scored components and the listening-reason
// weight matrices that combine them. The component set is closed: adding a
// component is a code change, not a configuration change, so a matrix can
// never silently miss one.
package weights

import "fmt"

// Component identifies one scored dimension of a candidate/position match.
type Component int

// Components in canonical evaluation order.
const (
	Semantic Component = iota
	Compensation
	CompProgression
	Experience
	Location
	Sector
	Contract
	Timing
	WorkMode
	Motivations
	ListeningReason
	Status

	numComponents
)

// NumComponents is the size of the closed component set.
const NumComponents = int(numComponents)

var componentNames = [NumComponents]string{
	Semantic:        "semantic",
	Compensation:    "compensation",
	CompProgression: "comp_progression",
	Experience:      "experience",
	Location:        "location",
	Sector:          "sector",
	Contract:        "contract",
	Timing:          "timing",
	WorkMode:        "work_mode",
	Motivations:     "motivations",
	ListeningReason: "listening_reason",
	Status:          "status",
}

// String returns the component's stable identifier.
func (c Component) String() string {
	if c < 0 || int(c) >= NumComponents {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return componentNames[c]
}

// Components returns all components in canonical evaluation order.
func Components() []Component {
	out := make([]Component, NumComponents)
	for i := range out {
		out[i] = Component(i)
	}
	return out
}

// ParseComponent resolves a component identifier, e.g. from a configuration
// file key.
func ParseComponent(name string) (Component, error) {
	for i, n := range componentNames {
		if n == name {
			return Component(i), nil
		}
	}
	return 0, fmt.Errorf("unknown component %q", name)
}
