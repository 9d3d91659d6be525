package summon

import "github.com/udisondev/cavesummon/internal/model"

// callMonster moves a random eligible monster that cannot see grid onto it.
func (s *Summoner) callMonster(grid model.Loc, okay func(*model.Race) bool) (Result, bool) {
	var (
		chosen *model.Monster
		seen   int
	)

	// Reservoir sample: each candidate ends up chosen with probability 1/seen.
	for i := 1; i < s.level.MonsterMax(); i++ {
		mon := s.level.Monster(i)
		if !s.canCall(grid, mon, okay) {
			continue
		}
		seen++
		if s.rng.IntN(seen) == 0 {
			chosen = mon
		}
	}

	if chosen == nil {
		return Result{}, false
	}

	s.level.SwapMonsters(chosen.Grid(), grid)

	chosen.Wake(model.AlertnessFull)
	chosen.SetEnergy(0)

	return Result{Monster: chosen, Level: chosen.Level(), Called: true}, true
}

func (s *Summoner) canCall(grid model.Loc, mon *model.Monster, okay func(*model.Race) bool) bool {
	if !mon.IsAlive() {
		return false
	}
	if !okay(mon.Race()) {
		return false
	}
	// The called monster must not be in view of the summon point
	return !s.level.LOS(grid, mon.Grid())
}
