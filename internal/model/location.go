package model

// Loc is a grid position on a level.
// Value type, passed by value (immutable).
type Loc struct {
	X int
	Y int
}

// NewLoc creates Loc with the given coordinates.
func NewLoc(x, y int) Loc {
	return Loc{X: x, Y: y}
}

// Sum returns the grid offset by other.
func (l Loc) Sum(other Loc) Loc {
	return Loc{X: l.X + other.X, Y: l.Y + other.Y}
}

// Distance returns the approximate game distance to other.
// The longer axis counts fully, the shorter one counts half.
func (l Loc) Distance(other Loc) int {
	dx := abs(l.X - other.X)
	dy := abs(l.Y - other.Y)
	if dy > dx {
		return dy + (dx >> 1)
	}
	return dx + (dy >> 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
