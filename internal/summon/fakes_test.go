package summon

import (
	"github.com/udisondev/cavesummon/internal/model"
)

// fakeLevel — уровень на картах для тестов.
type fakeLevel struct {
	blocked  map[model.Loc]bool
	warded   map[model.Loc]bool
	decoyed  map[model.Loc]bool
	visible  func(from, to model.Loc) bool
	scatter  []model.Loc // returned in turn; origin once exhausted
	radii    []int
	monsters []*model.Monster // index 0 reserved
	current  int
	groups   map[int]*model.Group
	swaps    [][2]model.Loc
}

func newFakeLevel() *fakeLevel {
	return &fakeLevel{
		blocked:  map[model.Loc]bool{},
		warded:   map[model.Loc]bool{},
		decoyed:  map[model.Loc]bool{},
		visible:  func(model.Loc, model.Loc) bool { return false },
		monsters: []*model.Monster{nil},
		groups:   map[int]*model.Group{},
	}
}

func (l *fakeLevel) IsEmpty(grid model.Loc) bool {
	if l.blocked[grid] {
		return false
	}
	for _, mon := range l.monsters {
		if mon.IsAlive() && mon.Grid() == grid {
			return false
		}
	}
	return true
}

func (l *fakeLevel) IsWarded(grid model.Loc) bool  { return l.warded[grid] }
func (l *fakeLevel) IsDecoyed(grid model.Loc) bool { return l.decoyed[grid] }
func (l *fakeLevel) LOS(from, to model.Loc) bool   { return l.visible(from, to) }

func (l *fakeLevel) Scatter(origin model.Loc, dist int) model.Loc {
	l.radii = append(l.radii, dist)
	if len(l.scatter) == 0 {
		return origin
	}
	grid := l.scatter[0]
	l.scatter = l.scatter[1:]
	return grid
}

func (l *fakeLevel) MonsterMax() int { return len(l.monsters) }

func (l *fakeLevel) Monster(idx int) *model.Monster {
	if idx <= 0 || idx >= len(l.monsters) {
		return nil
	}
	return l.monsters[idx]
}

func (l *fakeLevel) SwapMonsters(from, to model.Loc) {
	l.swaps = append(l.swaps, [2]model.Loc{from, to})
	for _, mon := range l.monsters {
		if !mon.IsAlive() {
			continue
		}
		switch mon.Grid() {
		case from:
			mon.SetGrid(to)
		case to:
			mon.SetGrid(from)
		}
	}
}

func (l *fakeLevel) CurrentMonster() int { return l.current }

func (l *fakeLevel) GroupOf(monIdx int) *model.Group { return l.groups[monIdx] }

func (l *fakeLevel) addMonster(race *model.Race, grid model.Loc) *model.Monster {
	mon := model.NewMonster(len(l.monsters), race, grid, model.OriginFloor)
	l.monsters = append(l.monsters, mon)
	return mon
}

// fakePool returns the first race accepted by the current filter.
type fakePool struct {
	races      []*model.Race
	filter     func(*model.Race) bool
	drawLevels []int
	restricted []bool // restriction state at each draw
	preps      int
}

func (p *fakePool) Prep(filter func(*model.Race) bool) {
	p.preps++
	p.filter = filter
}

func (p *fakePool) Draw(level int) *model.Race {
	p.drawLevels = append(p.drawLevels, level)
	p.restricted = append(p.restricted, p.filter != nil)
	for _, r := range p.races {
		if p.filter == nil || p.filter(r) {
			return r
		}
	}
	return nil
}

type placeCall struct {
	grid    model.Loc
	race    *model.Race
	sleep   bool
	groupOK bool
	info    model.GroupInfo
	origin  model.Origin
}

type fakePlacer struct {
	refuse bool
	calls  []placeCall
	level  *fakeLevel
}

func (p *fakePlacer) PlaceNewMonster(grid model.Loc, race *model.Race, sleep, groupOK bool, info model.GroupInfo, origin model.Origin) (*model.Monster, bool) {
	p.calls = append(p.calls, placeCall{grid, race, sleep, groupOK, info, origin})
	if p.refuse {
		return nil, false
	}
	mon := p.level.addMonster(race, grid)
	mon.SetEnergy(7)
	return mon, true
}
