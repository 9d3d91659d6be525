package world

// Feature is the terrain of a grid.
type Feature uint8

const (
	FeatNone Feature = iota
	FeatFloor
	FeatGranite
	FeatRubble
	FeatClosedDoor
	FeatOpenDoor
)

func (f Feature) String() string {
	switch f {
	case FeatFloor:
		return "floor"
	case FeatGranite:
		return "granite"
	case FeatRubble:
		return "rubble"
	case FeatClosedDoor:
		return "closed door"
	case FeatOpenDoor:
		return "open door"
	default:
		return "none"
	}
}

// IsPassable reports whether creatures can stand on the feature.
func (f Feature) IsPassable() bool {
	return f == FeatFloor || f == FeatOpenDoor
}

// IsProjectable reports whether sight passes through the feature.
func (f Feature) IsProjectable() bool {
	return f == FeatFloor || f == FeatOpenDoor
}

// square holds a grid's terrain and markers.
type square struct {
	feat   Feature
	ward   bool // glyph of warding
	decoy  bool
	monIdx int // 0 = no monster
}
