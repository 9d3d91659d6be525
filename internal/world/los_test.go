package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/cavesummon/internal/model"
)

func TestLevel_LOS(t *testing.T) {
	l := newOpenLevel(12, 12)
	a := model.NewLoc(2, 5)
	b := model.NewLoc(9, 5)

	assert.True(t, l.LOS(a, b))
	assert.True(t, l.LOS(a, a))

	// Стена между точками
	l.SetFeature(model.NewLoc(5, 5), FeatGranite)
	assert.False(t, l.LOS(a, b))
	assert.False(t, l.LOS(b, a), "LOS is symmetric")

	l.SetFeature(model.NewLoc(5, 5), FeatOpenDoor)
	assert.True(t, l.LOS(a, b))

	l.SetFeature(model.NewLoc(5, 5), FeatClosedDoor)
	assert.False(t, l.LOS(a, b))
}

func TestLevel_LOS_EndpointsNeedNotBeProjectable(t *testing.T) {
	l := newOpenLevel(12, 12)
	wall := model.NewLoc(0, 5)
	assert.True(t, l.LOS(model.NewLoc(4, 5), wall), "a wall is visible")
	assert.False(t, l.LOS(model.NewLoc(4, 5), model.NewLoc(40, 5)))
}

func TestLevel_Scatter(t *testing.T) {
	l := newOpenLevel(20, 20)
	origin := model.NewLoc(10, 10)

	for dist := 1; dist <= 4; dist++ {
		for range 200 {
			grid := l.Scatter(origin, dist)
			assert.LessOrEqual(t, origin.Distance(grid), dist)
			assert.True(t, l.InBoundsFully(grid))
			assert.True(t, l.LOS(origin, grid))
		}
	}
}

func TestLevel_Scatter_RespectsSight(t *testing.T) {
	l := newOpenLevel(20, 20)
	origin := model.NewLoc(10, 10)

	// Wall the origin in on the east side
	for y := 7; y <= 13; y++ {
		l.SetFeature(model.NewLoc(11, y), FeatGranite)
	}

	for range 300 {
		grid := l.Scatter(origin, 3)
		assert.LessOrEqual(t, grid.X, 11, "grids behind the wall are out of sight: %v", grid)
	}
}

func TestLevel_Scatter_NoCandidates(t *testing.T) {
	l := newOpenLevel(3, 3)
	origin := model.NewLoc(-5, -5)
	assert.Equal(t, origin, l.Scatter(origin, 1))
}
