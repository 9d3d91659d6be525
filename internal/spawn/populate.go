package spawn

import (
	"log/slog"

	"github.com/udisondev/cavesummon/internal/model"
)

// Populate fills the level with up to count sleeping monsters drawn from
// pool at the level's depth, each on a random empty grid.
// Returns the number of monsters placed (escorts included).
func (m *Manager) Populate(pool *Pool, count int) int {
	before := m.level.MonsterCount()

	for range count {
		grid, ok := m.level.RandomEmptyGrid()
		if !ok {
			break
		}
		race := pool.Draw(m.level.Depth())
		if race == nil {
			continue
		}
		m.PlaceNewMonster(grid, race, true, true, model.GroupInfo{}, model.OriginFloor)
	}

	placed := m.level.MonsterCount() - before
	slog.Info("level populated", "depth", m.level.Depth(), "requested", count, "placed", placed)
	return placed
}
