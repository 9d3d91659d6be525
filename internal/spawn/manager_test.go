package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cavesummon/internal/model"
	"github.com/udisondev/cavesummon/internal/world"
)

func newTestLevel(t *testing.T) *world.Level {
	t.Helper()
	return world.GenerateArena(newTestRng(), world.ArenaOptions{Width: 30, Height: 12, Depth: 10})
}

func TestManager_PlaceNewMonster(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())
	wolf := race(1, 10, 1, model.RaceFlagAnimal)
	grid := model.NewLoc(3, 3)

	mon, ok := mgr.PlaceNewMonster(grid, wolf, false, false, model.GroupInfo{}, model.OriginDropSummon)
	require.True(t, ok)

	assert.Equal(t, grid, mon.Grid())
	assert.Same(t, mon, level.MonsterAt(grid))
	assert.False(t, mon.IsAsleep())
	assert.Less(t, mon.Energy(), 10)
	assert.Equal(t, model.OriginDropSummon, mon.Origin())
	assert.Equal(t, 1, wolf.CurNum())

	// Без группы монстр возглавляет новую
	assert.Equal(t, model.GroupRoleLeader, mon.Group().Role)
	require.NotNil(t, level.GroupOf(mon.Index()))
	assert.Equal(t, 1, level.GroupOf(mon.Index()).MemberCount())
}

func TestManager_PlaceNewMonster_Refusals(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())
	wolf := race(1, 10, 1)

	_, ok := mgr.PlaceNewMonster(model.NewLoc(3, 3), nil, false, false, model.GroupInfo{}, model.OriginFloor)
	assert.False(t, ok, "nil race")

	_, ok = mgr.PlaceNewMonster(model.NewLoc(0, 0), wolf, false, false, model.GroupInfo{}, model.OriginFloor)
	assert.False(t, ok, "granite")

	_, ok = mgr.PlaceNewMonster(model.NewLoc(3, 3), wolf, false, false, model.GroupInfo{}, model.OriginFloor)
	require.True(t, ok)
	_, ok = mgr.PlaceNewMonster(model.NewLoc(3, 3), wolf, false, false, model.GroupInfo{}, model.OriginFloor)
	assert.False(t, ok, "occupied")

	boss := race(2, 20, 1, model.RaceFlagUnique)
	_, ok = mgr.PlaceNewMonster(model.NewLoc(5, 5), boss, false, false, model.GroupInfo{}, model.OriginFloor)
	require.True(t, ok)
	_, ok = mgr.PlaceNewMonster(model.NewLoc(6, 6), boss, false, false, model.GroupInfo{}, model.OriginFloor)
	assert.False(t, ok, "unique already alive")

	assert.Equal(t, 2, level.MonsterCount())
}

func TestManager_PlaceNewMonster_Sleep(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())
	sleeper := race(1, 10, 1) // sleep 10

	mon, ok := mgr.PlaceNewMonster(model.NewLoc(3, 3), sleeper, true, false, model.GroupInfo{}, model.OriginFloor)
	require.True(t, ok)
	assert.GreaterOrEqual(t, mon.Timed(model.TimedSleep), 21)
	assert.LessOrEqual(t, mon.Timed(model.TimedSleep), 120)

	insomniac := model.NewRace(2, "Insomniac", testBase, 5, 1, model.NormalSpeed, 0, 0)
	mon, ok = mgr.PlaceNewMonster(model.NewLoc(4, 4), insomniac, true, false, model.GroupInfo{}, model.OriginFloor)
	require.True(t, ok)
	assert.False(t, mon.IsAsleep())
}

func TestManager_PlaceNewMonster_JoinsGroup(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())
	shaman := race(1, 10, 1)

	leader, ok := mgr.PlaceNewMonster(model.NewLoc(3, 3), shaman, false, false, model.GroupInfo{}, model.OriginFloor)
	require.True(t, ok)
	group := level.GroupOf(leader.Index())
	require.NotNil(t, group)

	info := model.GroupInfo{Index: group.Index(), Role: model.GroupRoleSummon}
	summoned, ok := mgr.PlaceNewMonster(model.NewLoc(4, 3), race(2, 5, 1), false, false, info, model.OriginDropSummon)
	require.True(t, ok)
	assert.Equal(t, info, summoned.Group())
	assert.True(t, group.HasMember(summoned.Index()))
	assert.Equal(t, 1, level.GroupCount())

	// Unknown group: start a fresh one
	stray, ok := mgr.PlaceNewMonster(model.NewLoc(5, 3), race(3, 5, 1), false, false, model.GroupInfo{Index: 99, Role: model.GroupRoleSummon}, model.OriginDropSummon)
	require.True(t, ok)
	assert.Equal(t, model.GroupRoleLeader, stray.Group().Role)
	assert.Equal(t, 2, level.GroupCount())
}

func TestManager_PlaceNewMonster_Escort(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())
	jackal := race(1, 1, 1, model.RaceFlagAnimal)

	for i := range 10 {
		grid := model.NewLoc(2+i%4*2, 2+i/4*3)
		if !level.IsEmpty(grid) {
			continue
		}
		leader, ok := mgr.PlaceNewMonster(grid, jackal, false, true, model.GroupInfo{}, model.OriginFloor)
		require.True(t, ok)

		group := level.GroupOf(leader.Index())
		require.NotNil(t, group)
		assert.LessOrEqual(t, group.MemberCount(), 1+maxEscort)
		for _, idx := range group.Members() {
			mate := level.Monster(idx)
			assert.Same(t, jackal, mate.Race())
			assert.LessOrEqual(t, leader.Grid().Distance(mate.Grid()), 1)
		}
	}
	assert.Equal(t, level.MonsterCount(), jackal.CurNum())
}

func TestManager_PlaceNewMonster_UniqueHasNoEscort(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())
	boss := race(1, 10, 1, model.RaceFlagUnique)

	_, ok := mgr.PlaceNewMonster(model.NewLoc(3, 3), boss, false, true, model.GroupInfo{}, model.OriginFloor)
	require.True(t, ok)
	assert.Equal(t, 1, level.MonsterCount())
}

func TestManager_Populate(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())
	pool := NewPool([]*model.Race{race(1, 5, 1), race(2, 8, 2)}, newTestRng(), noOOD())

	placed := mgr.Populate(pool, 5)
	assert.GreaterOrEqual(t, placed, 5)
	assert.LessOrEqual(t, placed, 5*(1+maxEscort))
	assert.Equal(t, placed, level.MonsterCount())

	for _, mon := range level.Monsters() {
		assert.Equal(t, model.OriginFloor, mon.Origin())
	}
}

func TestManager_Populate_EmptyPool(t *testing.T) {
	level := newTestLevel(t)
	mgr := NewManager(level, newTestRng())

	assert.Zero(t, mgr.Populate(NewPool(nil, newTestRng(), noOOD()), 5))
}
