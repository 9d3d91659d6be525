// Package world holds the level a turn is played on: terrain, wards and
// decoys, the monster table, line of sight and monster groups.
package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/udisondev/cavesummon/internal/model"
)

// DefaultMonsterLimit is the monster table size, slot 0 included.
const DefaultMonsterLimit = 1024

var (
	ErrOutOfBounds  = errors.New("grid out of bounds")
	ErrGridOccupied = errors.New("grid is not empty")
	ErrMonsterLimit = errors.New("monster table is full")
)

// Level is one dungeon level.
// Not safe for concurrent use: the game loop processes one actor at a time.
type Level struct {
	width  int
	height int
	depth  int

	squares []square

	monsters     []*model.Monster // index 0 reserved for the player
	monsterLimit int
	current      int // acting monster, 0 = player

	groups []*model.Group // index 0 unused

	player *model.Player
	rng    *rand.Rand
}

// NewLevel creates a level of solid granite.
func NewLevel(width, height, depth int, rng *rand.Rand) *Level {
	l := &Level{
		width:        width,
		height:       height,
		depth:        depth,
		squares:      make([]square, width*height),
		monsters:     []*model.Monster{nil},
		monsterLimit: DefaultMonsterLimit,
		groups:       []*model.Group{nil},
		rng:          rng,
	}
	for i := range l.squares {
		l.squares[i].feat = FeatGranite
	}
	return l
}

func (l *Level) Width() int  { return l.width }
func (l *Level) Height() int { return l.height }
func (l *Level) Depth() int  { return l.depth }

// SetMonsterLimit caps the monster table size (slot 0 included).
func (l *Level) SetMonsterLimit(limit int) {
	l.monsterLimit = limit
}

// InBounds checks if grid lies on the level.
func (l *Level) InBounds(grid model.Loc) bool {
	return grid.X >= 0 && grid.X < l.width && grid.Y >= 0 && grid.Y < l.height
}

// InBoundsFully checks if grid lies on the level and is not on the outer wall.
func (l *Level) InBoundsFully(grid model.Loc) bool {
	return grid.X > 0 && grid.X < l.width-1 && grid.Y > 0 && grid.Y < l.height-1
}

func (l *Level) square(grid model.Loc) *square {
	return &l.squares[grid.Y*l.width+grid.X]
}

// Feature returns the terrain at grid (FeatNone out of bounds).
func (l *Level) Feature(grid model.Loc) Feature {
	if !l.InBounds(grid) {
		return FeatNone
	}
	return l.square(grid).feat
}

// SetFeature changes the terrain at grid.
func (l *Level) SetFeature(grid model.Loc, feat Feature) {
	if l.InBounds(grid) {
		l.square(grid).feat = feat
	}
}

// SetWard places or removes a glyph of warding.
func (l *Level) SetWard(grid model.Loc, on bool) {
	if l.InBounds(grid) {
		l.square(grid).ward = on
	}
}

// SetDecoy places or removes a decoy.
func (l *Level) SetDecoy(grid model.Loc, on bool) {
	if l.InBounds(grid) {
		l.square(grid).decoy = on
	}
}

// IsWarded checks for a glyph of warding.
func (l *Level) IsWarded(grid model.Loc) bool {
	return l.InBounds(grid) && l.square(grid).ward
}

// IsDecoyed checks for a decoy.
func (l *Level) IsDecoyed(grid model.Loc) bool {
	return l.InBounds(grid) && l.square(grid).decoy
}

// IsEmpty checks that grid is passable and holds neither a monster nor the player.
func (l *Level) IsEmpty(grid model.Loc) bool {
	if !l.InBounds(grid) {
		return false
	}
	sq := l.square(grid)
	if !sq.feat.IsPassable() || sq.monIdx != 0 {
		return false
	}
	return l.player == nil || l.player.Grid() != grid
}

// Player returns the player on this level (may be nil).
func (l *Level) Player() *model.Player { return l.player }

// SetPlayer puts the player on the level.
func (l *Level) SetPlayer(p *model.Player) {
	l.player = p
}

// CurrentMonster returns the index of the acting monster, 0 if the player acts.
func (l *Level) CurrentMonster() int { return l.current }

// SetCurrentMonster marks which monster is taking its turn.
func (l *Level) SetCurrentMonster(idx int) { l.current = idx }

// MonsterMax returns the size of the monster table, slot 0 included.
func (l *Level) MonsterMax() int { return len(l.monsters) }

// Monster returns the monster in slot idx, or nil.
func (l *Level) Monster(idx int) *model.Monster {
	if idx <= 0 || idx >= len(l.monsters) {
		return nil
	}
	return l.monsters[idx]
}

// MonsterAt returns the monster standing on grid, or nil.
func (l *Level) MonsterAt(grid model.Loc) *model.Monster {
	if !l.InBounds(grid) {
		return nil
	}
	return l.Monster(l.square(grid).monIdx)
}

// Monsters returns the living monsters in table order.
func (l *Level) Monsters() []*model.Monster {
	out := make([]*model.Monster, 0, len(l.monsters))
	for _, mon := range l.monsters[1:] {
		if mon.IsAlive() {
			out = append(out, mon)
		}
	}
	return out
}

// MonsterCount returns number of living monsters.
func (l *Level) MonsterCount() int {
	n := 0
	for _, mon := range l.monsters[1:] {
		if mon.IsAlive() {
			n++
		}
	}
	return n
}

// AddMonster creates a monster of race on an empty grid and counts it in the
// race census. Dead slots are reused before the table grows.
func (l *Level) AddMonster(race *model.Race, grid model.Loc, origin model.Origin) (*model.Monster, error) {
	if !l.InBounds(grid) {
		return nil, fmt.Errorf("adding %s at %v: %w", race.Name(), grid, ErrOutOfBounds)
	}
	if !l.IsEmpty(grid) {
		return nil, fmt.Errorf("adding %s at %v: %w", race.Name(), grid, ErrGridOccupied)
	}

	idx := l.freeSlot()
	if idx == 0 {
		return nil, fmt.Errorf("adding %s: %w", race.Name(), ErrMonsterLimit)
	}

	mon := model.NewMonster(idx, race, grid, origin)
	if idx == len(l.monsters) {
		l.monsters = append(l.monsters, mon)
	} else {
		l.monsters[idx] = mon
	}
	l.square(grid).monIdx = idx
	race.AddLive(1)

	return mon, nil
}

func (l *Level) freeSlot() int {
	for i := 1; i < len(l.monsters); i++ {
		if !l.monsters[i].IsAlive() {
			return i
		}
	}
	if len(l.monsters) < l.monsterLimit {
		return len(l.monsters)
	}
	return 0
}

// DeleteMonster removes the monster in slot idx from the level and its group.
func (l *Level) DeleteMonster(idx int) {
	mon := l.Monster(idx)
	if !mon.IsAlive() {
		return
	}

	l.LeaveGroup(mon)
	if sq := l.square(mon.Grid()); sq.monIdx == idx {
		sq.monIdx = 0
	}
	mon.Race().AddLive(-1)
	mon.Kill()
}

// SwapMonsters exchanges whatever stands on the two grids (monsters or player).
func (l *Level) SwapMonsters(from, to model.Loc) {
	if !l.InBounds(from) || !l.InBounds(to) {
		return
	}
	a, b := l.square(from), l.square(to)
	a.monIdx, b.monIdx = b.monIdx, a.monIdx

	if mon := l.Monster(a.monIdx); mon != nil {
		mon.SetGrid(from)
	}
	if mon := l.Monster(b.monIdx); mon != nil {
		mon.SetGrid(to)
	}

	if l.player != nil {
		switch l.player.Grid() {
		case from:
			l.player.SetGrid(to)
		case to:
			l.player.SetGrid(from)
		}
	}
}
