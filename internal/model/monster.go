package model

// TimedEffect indexes a monster's timed status counters.
type TimedEffect uint8

const (
	TimedSleep TimedEffect = iota
	TimedHold
	TimedStun
	TimedConfused
	TimedFear

	TimedCount
)

// Awareness values for Wake.
const (
	AlertnessNone = 0
	AlertnessFull = 100
)

// Origin tags how a monster came to exist.
type Origin uint8

const (
	OriginNone Origin = iota
	OriginFloor
	OriginDropSummon
	OriginDropSpecial
)

func (o Origin) String() string {
	switch o {
	case OriginFloor:
		return "floor"
	case OriginDropSummon:
		return "summon"
	case OriginDropSpecial:
		return "special"
	default:
		return "none"
	}
}

// Monster represents a live monster on a level.
// A monster whose race is nil is dead and its table slot is free.
type Monster struct {
	idx       int
	race      *Race
	grid      Loc
	energy    int
	alertness int
	timed     [TimedCount]int
	group     GroupInfo
	origin    Origin
}

// NewMonster creates a monster of the given race at grid.
func NewMonster(idx int, race *Race, grid Loc, origin Origin) *Monster {
	return &Monster{
		idx:    idx,
		race:   race,
		grid:   grid,
		origin: origin,
	}
}

// Index returns the monster's slot in the level monster table.
func (m *Monster) Index() int { return m.idx }

// Race returns the monster race (nil for a dead monster).
func (m *Monster) Race() *Race { return m.race }

// IsAlive reports whether the monster still has a race.
func (m *Monster) IsAlive() bool { return m != nil && m.race != nil }

// Kill clears the race; the slot becomes reusable.
func (m *Monster) Kill() { m.race = nil }

func (m *Monster) Grid() Loc               { return m.grid }
func (m *Monster) SetGrid(grid Loc)        { m.grid = grid }
func (m *Monster) Energy() int             { return m.energy }
func (m *Monster) SetEnergy(e int)         { m.energy = e }
func (m *Monster) Alertness() int          { return m.alertness }
func (m *Monster) Origin() Origin          { return m.origin }
func (m *Monster) Group() GroupInfo        { return m.group }
func (m *Monster) SetGroup(info GroupInfo) { m.group = info }

// Timed returns the counter of a timed effect.
func (m *Monster) Timed(eff TimedEffect) int {
	return m.timed[eff]
}

// SetTimed sets a timed effect counter directly, without any resistance check.
func (m *Monster) SetTimed(eff TimedEffect, turns int) {
	if turns < 0 {
		turns = 0
	}
	m.timed[eff] = turns
}

// IsAsleep reports whether the monster is sleeping.
func (m *Monster) IsAsleep() bool {
	return m.timed[TimedSleep] > 0
}

// IsHeld reports whether the monster is held in place.
func (m *Monster) IsHeld() bool {
	return m.timed[TimedHold] > 0
}

// Wake clears sleep and raises alertness to aware (clamped to AlertnessFull).
func (m *Monster) Wake(aware int) {
	m.timed[TimedSleep] = 0
	if aware > AlertnessFull {
		aware = AlertnessFull
	}
	if aware > m.alertness {
		m.alertness = aware
	}
}

// Level returns the race level, or 0 for a dead monster.
func (m *Monster) Level() int {
	if m.race == nil {
		return 0
	}
	return m.race.Level()
}
