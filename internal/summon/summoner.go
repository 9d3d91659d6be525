package summon

import (
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/cavesummon/internal/model"
)

// Location search limits: up to 60 scatter attempts, widening the
// radius by one every 15 attempts (1..4 grids away).
const (
	placeAttempts     = 60
	attemptsPerRadius = 15
)

// Level is the level state summoning reads and mutates.
type Level interface {
	IsEmpty(grid model.Loc) bool
	IsWarded(grid model.Loc) bool
	IsDecoyed(grid model.Loc) bool
	LOS(from, to model.Loc) bool
	Scatter(origin model.Loc, dist int) model.Loc

	// MonsterMax returns the size of the monster table; slot 0 is reserved.
	MonsterMax() int
	Monster(idx int) *model.Monster
	SwapMonsters(from, to model.Loc)

	// CurrentMonster returns the index of the acting monster, 0 if the player acts.
	CurrentMonster() int
	GroupOf(monIdx int) *model.Group
}

// Pool is the weighted allocation table.
// Prep(nil) lifts any restriction.
type Pool interface {
	Prep(filter func(*model.Race) bool)
	Draw(level int) *model.Race
}

// Placer creates a new monster on the level.
type Placer interface {
	PlaceNewMonster(grid model.Loc, race *model.Race, sleep, groupOK bool, info model.GroupInfo, origin model.Origin) (*model.Monster, bool)
}

// Request describes one summon event.
type Request struct {
	Grid  model.Loc // where the summon is centred
	Level int       // power of the summoner
	Type  int       // summon type index
	Delay bool      // let the player act before the summoned monster
	Call  bool      // prefer calling an existing monster over conjuring

	// KinBase is the summoner's base species, used by the KIN type.
	KinBase *model.MonsterBase
}

// Result describes a summon that happened.
type Result struct {
	Monster *model.Monster
	Level   int  // level of the summoned monster's race
	Called  bool // an existing monster was moved rather than a new one placed
}

// Summoner runs summon and shapechange selection against one level.
// Not safe for concurrent use; the game processes one actor at a time.
type Summoner struct {
	reg    *Registry
	level  Level
	pool   Pool
	placer Placer
	player *model.Player
	rng    *rand.Rand
}

// NewSummoner creates a summoner.
func NewSummoner(reg *Registry, level Level, pool Pool, placer Placer, player *model.Player, rng *rand.Rand) *Summoner {
	return &Summoner{
		reg:    reg,
		level:  level,
		pool:   pool,
		placer: placer,
		player: player,
		rng:    rng,
	}
}

// Specific places a monster of the requested summon type near req.Grid.
// Returns false if nothing was summoned; a successful summon of a level 0
// monster is reported as (Result{Level: 0}, true).
func (s *Summoner) Specific(req Request) (Result, bool) {
	grid, ok := s.findLocation(req.Grid)
	if !ok {
		slog.Debug("summon: no free grid", "origin", req.Grid)
		return Result{}, false
	}

	t := s.reg.Type(req.Type)
	if t == nil {
		slog.Debug("summon: unknown type", "type", req.Type)
		return Result{}, false
	}
	okay := filter(t, req.KinBase)

	if req.Call && req.Type != s.reg.Lookup(KindUnique) && req.Type != s.reg.Lookup(KindWraith) {
		return s.callMonster(grid, okay)
	}

	race := s.draw(okay, (s.player.Depth()+req.Level)/2+5)
	if race == nil {
		slog.Debug("summon: allocation table empty", "type", t.Name())
		return Result{}, false
	}

	// Summons join the summoner's group
	var info model.GroupInfo
	if actor := s.level.CurrentMonster(); actor > 0 {
		if group := s.level.GroupOf(actor); group != nil {
			info = model.GroupInfo{Index: group.Index(), Role: model.GroupRoleSummon}
		}
	}

	mon, ok := s.placer.PlaceNewMonster(grid, race, false, false, info, model.OriginDropSummon)
	if !ok {
		slog.Debug("summon: placement refused", "race", race.Name(), "grid", grid)
		return Result{}, false
	}

	if req.Delay {
		// Hold faster monsters long enough for the player to act first.
		// Set directly: the hold must not be resisted.
		turns := (race.Speed() + 9 - s.player.Speed()) / 10
		mon.SetEnergy(0)
		if turns > 0 {
			mon.SetTimed(model.TimedHold, turns)
		}
	}

	return Result{Monster: mon, Level: race.Level()}, true
}

// SelectShape picks a race for mon to change into, drawn from summon type typ.
// Returns nil if no race qualifies. mon's base serves as the kin base.
func (s *Summoner) SelectShape(mon *model.Monster, typ int) *model.Race {
	t := s.reg.Type(typ)
	if t == nil {
		return nil
	}

	var kin *model.MonsterBase
	if mon.IsAlive() {
		kin = mon.Race().Base()
	}

	return s.draw(filter(t, kin), s.player.Depth()+5)
}

// draw restricts the allocation table for a single draw and always lifts
// the restriction before returning.
func (s *Summoner) draw(okay func(*model.Race) bool, level int) *model.Race {
	s.pool.Prep(okay)
	defer s.pool.Prep(nil)

	return s.pool.Draw(level)
}

// findLocation looks for an empty, unwarded, undecoyed grid near origin.
func (s *Summoner) findLocation(origin model.Loc) (model.Loc, bool) {
	for i := range placeAttempts {
		dist := i/attemptsPerRadius + 1

		grid := s.level.Scatter(origin, dist)

		if !s.level.IsEmpty(grid) {
			continue
		}

		// No summons on glyphs or decoys
		if s.level.IsWarded(grid) || s.level.IsDecoyed(grid) {
			continue
		}

		return grid, true
	}
	return model.Loc{}, false
}
