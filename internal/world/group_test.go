package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cavesummon/internal/model"
)

func TestLevel_Groups(t *testing.T) {
	l := newOpenLevel(10, 10)
	race := testRace("Wolf", model.NewRaceFlags(model.RaceFlagAnimal))

	leader, err := l.AddMonster(race, model.NewLoc(2, 2), model.OriginFloor)
	require.NoError(t, err)
	pup, err := l.AddMonster(race, model.NewLoc(3, 2), model.OriginDropSummon)
	require.NoError(t, err)

	group := l.StartGroup(leader)
	assert.Equal(t, 1, group.Index())
	assert.Equal(t, model.GroupInfo{Index: 1, Role: model.GroupRoleLeader}, leader.Group())
	assert.Same(t, group, l.GroupOf(leader.Index()))

	ok := l.JoinGroup(pup, model.GroupInfo{Index: group.Index(), Role: model.GroupRoleSummon})
	require.True(t, ok)
	assert.Same(t, group, l.GroupOf(pup.Index()))
	assert.Equal(t, []int{leader.Index(), pup.Index()}, group.Members())

	assert.False(t, l.JoinGroup(pup, model.GroupInfo{Index: 42}))
	assert.Nil(t, l.GroupOf(0), "the player has no group")
}

func TestLevel_DeleteMonster_LeavesGroup(t *testing.T) {
	l := newOpenLevel(10, 10)
	race := testRace("Wolf", 0)

	leader, err := l.AddMonster(race, model.NewLoc(2, 2), model.OriginFloor)
	require.NoError(t, err)
	follower, err := l.AddMonster(race, model.NewLoc(4, 4), model.OriginFloor)
	require.NoError(t, err)

	group := l.StartGroup(leader)
	require.True(t, l.JoinGroup(follower, model.GroupInfo{Index: group.Index(), Role: model.GroupRoleMember}))
	assert.Equal(t, 1, l.GroupCount())

	l.DeleteMonster(leader.Index())
	assert.Equal(t, follower.Index(), group.Leader())
	assert.Equal(t, 1, l.GroupCount())

	l.DeleteMonster(follower.Index())
	assert.Equal(t, 0, l.GroupCount(), "empty groups are dropped")

	// Освободившийся индекс группы переиспользуется
	again, err := l.AddMonster(race, model.NewLoc(5, 5), model.OriginFloor)
	require.NoError(t, err)
	assert.Equal(t, group.Index(), l.StartGroup(again).Index())
}
