// Package types provides the data model shared by the scoring, hierarchy, engine, and API layers.
package types

// HierarchicalLevel is an ordinal seniority level from junior (1) to
// direction (5). Levels are detected per evaluation and never stored.
type HierarchicalLevel int

// Hierarchical levels in ascending order of seniority.
const (
	LevelJunior HierarchicalLevel = iota + 1
	LevelConfirmed
	LevelSenior
	LevelManager
	LevelDirection
)

// String returns the level name, or "unknown" outside the 1..5 range.
func (l HierarchicalLevel) String() string {
	switch l {
	case LevelJunior:
		return "junior"
	case LevelConfirmed:
		return "confirmed"
	case LevelSenior:
		return "senior"
	case LevelManager:
		return "manager"
	case LevelDirection:
		return "direction"
	default:
		return "unknown"
	}
}

// Valid reports whether the level is inside the defined 1..5 range.
func (l HierarchicalLevel) Valid() bool {
	return l >= LevelJunior && l <= LevelDirection
}
