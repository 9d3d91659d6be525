package spawn

import (
	"math/rand/v2"
	"slices"

	"github.com/udisondev/cavesummon/internal/model"
)

// PoolOptions tunes out-of-depth generation.
type PoolOptions struct {
	OODChance int // 1 in OODChance draws get a deeper level; 0 disables
	OODAmount int // maximum level boost
}

// DefaultPoolOptions returns the standard out-of-depth settings.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{OODChance: 25, OODAmount: 10}
}

type allocEntry struct {
	race  *model.Race
	level int
	prob  int
}

// Pool is the weighted monster allocation table.
// Draws favour races close to the requested level without exceeding it
// (except for the occasional out-of-depth boost).
type Pool struct {
	table  []allocEntry // sorted by level
	filter func(*model.Race) bool
	rng    *rand.Rand
	opts   PoolOptions
}

// NewPool builds the allocation table. Races with rarity 0 are never drawn.
func NewPool(races []*model.Race, rng *rand.Rand, opts PoolOptions) *Pool {
	table := make([]allocEntry, 0, len(races))
	for _, r := range races {
		if r == nil || r.Rarity() <= 0 {
			continue
		}
		table = append(table, allocEntry{race: r, level: r.Level(), prob: 100 / r.Rarity()})
	}
	slices.SortStableFunc(table, func(a, b allocEntry) int {
		return a.level - b.level
	})

	return &Pool{table: table, rng: rng, opts: opts}
}

// Len returns number of drawable races.
func (p *Pool) Len() int { return len(p.table) }

// Prep restricts later draws to races accepted by filter.
// Prep(nil) lifts the restriction.
func (p *Pool) Prep(filter func(*model.Race) bool) {
	p.filter = filter
}

// Restricted reports whether a filter is in place.
func (p *Pool) Restricted() bool {
	return p.filter != nil
}

// Draw picks a race for the given level, or nil if nothing qualifies.
func (p *Pool) Draw(level int) *model.Race {
	// Occasionally produce a nastier monster
	if level > 0 && p.opts.OODChance > 0 && p.rng.IntN(p.opts.OODChance) == 0 {
		level += min(level/4+2, p.opts.OODAmount)
	}

	probs := make([]int, 0, len(p.table))
	total := 0
	for i := range p.table {
		e := &p.table[i]
		if e.level > level {
			break
		}
		probs = append(probs, p.weight(e, level))
		total += probs[i]
	}
	if total <= 0 {
		return nil
	}

	pick := p.pick(probs, total)

	// Power boost: sometimes keep the higher of two draws
	roll := p.rng.IntN(100)
	if roll < 60 {
		if other := p.pick(probs, total); p.table[other].level > p.table[pick].level {
			pick = other
		}
	}
	if roll < 10 {
		if other := p.pick(probs, total); p.table[other].level > p.table[pick].level {
			pick = other
		}
	}

	return p.table[pick].race
}

func (p *Pool) weight(e *allocEntry, level int) int {
	// No town monsters in the dungeon
	if level > 0 && e.level <= 0 {
		return 0
	}
	if e.race.AtLimit() {
		return 0
	}
	if p.filter != nil && !p.filter(e.race) {
		return 0
	}
	return e.prob
}

func (p *Pool) pick(probs []int, total int) int {
	value := p.rng.IntN(total)
	for i, w := range probs {
		if value < w {
			return i
		}
		value -= w
	}
	return len(probs) - 1
}
