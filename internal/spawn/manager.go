package spawn

import (
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/cavesummon/internal/model"
	"github.com/udisondev/cavesummon/internal/world"
)

// maxEscort is how many same-race companions a grouped placement may bring.
const maxEscort = 2

// Manager places new monsters on a level.
type Manager struct {
	level *world.Level
	rng   *rand.Rand
}

// NewManager creates new spawn manager for level.
func NewManager(level *world.Level, rng *rand.Rand) *Manager {
	return &Manager{
		level: level,
		rng:   rng,
	}
}

// PlaceNewMonster creates a monster of race on grid.
//
// sleep puts it to sleep for a race-dependent time. info, when it names an
// existing group, is joined with info's role; otherwise the monster leads a
// new group. groupOK lets a non-unique race bring up to two companions of
// its own race on adjacent grids.
func (m *Manager) PlaceNewMonster(grid model.Loc, race *model.Race, sleep, groupOK bool, info model.GroupInfo, origin model.Origin) (*model.Monster, bool) {
	mon, ok := m.placeOne(grid, race, sleep, origin)
	if !ok {
		return nil, false
	}

	if info.Index <= 0 || !m.level.JoinGroup(mon, info) {
		m.level.StartGroup(mon)
	}

	if groupOK && !race.IsUnique() {
		m.placeEscort(mon, sleep, origin)
	}

	slog.Debug("monster placed",
		"index", mon.Index(),
		"race", race.Name(),
		"grid", grid,
		"group", mon.Group().Index,
		"role", mon.Group().Role,
		"origin", origin)

	return mon, true
}

func (m *Manager) placeOne(grid model.Loc, race *model.Race, sleep bool, origin model.Origin) (*model.Monster, bool) {
	if race == nil {
		return nil, false
	}
	if race.AtLimit() {
		return nil, false
	}
	if !m.level.IsEmpty(grid) {
		return nil, false
	}

	mon, err := m.level.AddMonster(race, grid, origin)
	if err != nil {
		slog.Debug("placing monster", "race", race.Name(), "error", err)
		return nil, false
	}

	if sleep && race.Sleep() > 0 {
		val := race.Sleep()
		mon.SetTimed(model.TimedSleep, val*2+1+m.rng.IntN(val*10))
	}

	// Give a random starting energy
	mon.SetEnergy(m.rng.IntN(10))

	return mon, true
}

func (m *Manager) placeEscort(leader *model.Monster, sleep bool, origin model.Origin) {
	want := m.rng.IntN(maxEscort + 1)
	info := model.GroupInfo{Index: leader.Group().Index, Role: model.GroupRoleMember}

	for _, d := range m.rng.Perm(8) {
		if want == 0 {
			return
		}
		grid := leader.Grid().Sum(adjacent[d])
		if m.level.IsWarded(grid) || m.level.IsDecoyed(grid) {
			continue
		}
		mate, ok := m.placeOne(grid, leader.Race(), sleep, origin)
		if !ok {
			continue
		}
		m.level.JoinGroup(mate, info)
		want--
	}
}

var adjacent = [8]model.Loc{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}
