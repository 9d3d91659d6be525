package world

import "github.com/udisondev/cavesummon/internal/model"

// LOS checks line of sight between two grids.
// Only the grids strictly between the endpoints must be projectable;
// the line is traced in both directions so the result is symmetric.
func (l *Level) LOS(from, to model.Loc) bool {
	if !l.InBounds(from) || !l.InBounds(to) {
		return false
	}
	if from == to {
		return true
	}
	return l.clearLine(from, to) || l.clearLine(to, from)
}

func (l *Level) clearLine(from, to model.Loc) bool {
	it := NewLineIterator(from.X, from.Y, to.X, to.Y)
	it.Next() // skip start point

	for it.Next() {
		grid := model.NewLoc(it.X(), it.Y())
		if grid == to {
			return true
		}
		if !l.Feature(grid).IsProjectable() {
			return false
		}
	}
	return true
}

// Scatter picks a random grid within dist of origin that is fully in bounds
// and in line of sight of origin. Returns origin if there is none.
// The result is not guaranteed to be empty.
func (l *Level) Scatter(origin model.Loc, dist int) model.Loc {
	var candidates []model.Loc

	for y := origin.Y - dist; y <= origin.Y+dist; y++ {
		for x := origin.X - dist; x <= origin.X+dist; x++ {
			grid := model.NewLoc(x, y)
			if !l.InBoundsFully(grid) {
				continue
			}
			if origin.Distance(grid) > dist {
				continue
			}
			if !l.LOS(origin, grid) {
				continue
			}
			candidates = append(candidates, grid)
		}
	}

	if len(candidates) == 0 {
		return origin
	}
	return candidates[l.rng.IntN(len(candidates))]
}
