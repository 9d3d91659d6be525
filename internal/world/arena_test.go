package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/cavesummon/internal/model"
)

func TestGenerateArena(t *testing.T) {
	opts := ArenaOptions{Width: 30, Height: 12, Depth: 15, Wards: 4, Decoys: 2}
	l := GenerateArena(newTestRng(), opts)

	assert.Equal(t, 30, l.Width())
	assert.Equal(t, 12, l.Height())
	assert.Equal(t, 15, l.Depth())

	var wards, decoys, doors int
	for y := range opts.Height {
		for x := range opts.Width {
			grid := model.NewLoc(x, y)
			if !l.InBoundsFully(grid) {
				assert.Equal(t, FeatGranite, l.Feature(grid), "border at %v", grid)
			}
			if l.IsWarded(grid) {
				wards++
			}
			if l.IsDecoyed(grid) {
				decoys++
			}
			if l.Feature(grid) == FeatOpenDoor {
				doors++
			}
		}
	}
	assert.Equal(t, 4, wards)
	assert.Equal(t, 2, decoys)
	assert.Equal(t, 2, doors)

	// Each partition is solid except for its door
	for _, wx := range []int{opts.Width / 3, 2 * opts.Width / 3} {
		open := 0
		for y := 1; y < opts.Height-1; y++ {
			if l.Feature(model.NewLoc(wx, y)) != FeatGranite {
				open++
			}
		}
		assert.Equal(t, 1, open, "partition at x=%d", wx)
	}
}

func TestLevel_RandomEmptyGrid(t *testing.T) {
	l := GenerateArena(newTestRng(), ArenaOptions{Width: 20, Height: 10, Depth: 1})

	for range 50 {
		grid, ok := l.RandomEmptyGrid()
		require.True(t, ok)
		assert.True(t, l.IsEmpty(grid))
	}

	full := NewLevel(5, 5, 1, newTestRng())
	_, ok := full.RandomEmptyGrid()
	assert.False(t, ok, "solid granite has no empty grid")
}
