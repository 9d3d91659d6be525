package world

import (
	"math/rand/v2"

	"github.com/udisondev/cavesummon/internal/model"
)

// ArenaOptions shapes a generated arena.
type ArenaOptions struct {
	Width  int
	Height int
	Depth  int
	Wards  int
	Decoys int
}

// GenerateArena builds a walled level split into three rooms joined by
// open doors, with wards and decoys scattered on the floor.
func GenerateArena(rng *rand.Rand, opts ArenaOptions) *Level {
	l := NewLevel(opts.Width, opts.Height, opts.Depth, rng)

	for y := 1; y < opts.Height-1; y++ {
		for x := 1; x < opts.Width-1; x++ {
			l.SetFeature(model.NewLoc(x, y), FeatFloor)
		}
	}

	// Partition walls block sight between rooms
	if opts.Width >= 9 && opts.Height >= 3 {
		for _, wx := range []int{opts.Width / 3, 2 * opts.Width / 3} {
			for y := 1; y < opts.Height-1; y++ {
				l.SetFeature(model.NewLoc(wx, y), FeatGranite)
			}
			door := model.NewLoc(wx, 1+rng.IntN(opts.Height-2))
			l.SetFeature(door, FeatOpenDoor)
		}
	}

	for range opts.Wards {
		if grid, ok := l.RandomEmptyGrid(); ok {
			l.SetWard(grid, true)
		}
	}
	for range opts.Decoys {
		if grid, ok := l.RandomEmptyGrid(); ok {
			l.SetDecoy(grid, true)
		}
	}

	return l
}

// RandomEmptyGrid picks a random empty grid, giving up after a bounded number of tries.
func (l *Level) RandomEmptyGrid() (model.Loc, bool) {
	tries := l.width * l.height
	for range tries {
		grid := model.NewLoc(l.rng.IntN(l.width), l.rng.IntN(l.height))
		if l.IsEmpty(grid) && !l.IsWarded(grid) && !l.IsDecoyed(grid) {
			return grid, true
		}
	}
	return model.Loc{}, false
}
