package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRace(level int) *Race {
	return NewRace(1, "Cave spider", NewMonsterBase("spider", 'S', "spiders"), level, 1, 120, 80, NewRaceFlags(RaceFlagAnimal))
}

func TestMonster_Wake(t *testing.T) {
	mon := NewMonster(1, newTestRace(2), NewLoc(4, 4), OriginFloor)
	mon.SetTimed(TimedSleep, 50)
	assert.True(t, mon.IsAsleep())

	mon.Wake(AlertnessFull)
	assert.False(t, mon.IsAsleep())
	assert.Equal(t, AlertnessFull, mon.Alertness())

	// Меньшая осведомлённость не понижает текущую
	mon.Wake(10)
	assert.Equal(t, AlertnessFull, mon.Alertness())
}

func TestMonster_Wake_Clamped(t *testing.T) {
	mon := NewMonster(1, newTestRace(2), NewLoc(0, 0), OriginFloor)
	mon.Wake(250)
	assert.Equal(t, AlertnessFull, mon.Alertness())
}

func TestMonster_Timed(t *testing.T) {
	mon := NewMonster(1, newTestRace(2), NewLoc(0, 0), OriginDropSummon)
	mon.SetTimed(TimedHold, 3)
	assert.True(t, mon.IsHeld())
	assert.Equal(t, 3, mon.Timed(TimedHold))

	mon.SetTimed(TimedHold, -1)
	assert.Equal(t, 0, mon.Timed(TimedHold))
	assert.Equal(t, OriginDropSummon, mon.Origin())
	assert.Equal(t, "summon", mon.Origin().String())
}

func TestMonster_Kill(t *testing.T) {
	mon := NewMonster(3, newTestRace(7), NewLoc(0, 0), OriginFloor)
	assert.True(t, mon.IsAlive())
	assert.Equal(t, 7, mon.Level())

	mon.Kill()
	assert.False(t, mon.IsAlive())
	assert.Equal(t, 0, mon.Level())

	var none *Monster
	assert.False(t, none.IsAlive())
}

func TestGroup_Members(t *testing.T) {
	g := NewGroup(1, 10)
	g.AddMember(11)
	g.AddMember(11)
	g.AddMember(12)

	assert.Equal(t, []int{10, 11, 12}, g.Members())
	assert.True(t, g.HasMember(12))

	assert.False(t, g.RemoveMember(10))
	assert.Equal(t, 11, g.Leader(), "leadership passes to the next member")

	assert.False(t, g.RemoveMember(11))
	assert.True(t, g.RemoveMember(12))
	assert.Equal(t, 0, g.MemberCount())
}
