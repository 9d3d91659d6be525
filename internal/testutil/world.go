package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/udisondev/cavesummon/internal/model"
	"github.com/udisondev/cavesummon/internal/world"
)

// NewArena generates a ward-free arena at Fixtures.Depth with the player
// standing on a random empty grid.
func NewArena(tb testing.TB, rng *rand.Rand) (*world.Level, *model.Player) {
	tb.Helper()
	level := world.GenerateArena(rng, world.ArenaOptions{
		Width:  Fixtures.ArenaWidth,
		Height: Fixtures.ArenaHeight,
		Depth:  Fixtures.Depth,
	})

	grid, ok := level.RandomEmptyGrid()
	if !ok {
		tb.Fatal("arena has no empty grid for the player")
	}
	player := model.NewPlayer(grid, Fixtures.Depth, model.NormalSpeed)
	level.SetPlayer(player)
	return level, player
}
