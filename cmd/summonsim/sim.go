package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/cavesummon/internal/config"
	"github.com/udisondev/cavesummon/internal/data"
	"github.com/udisondev/cavesummon/internal/model"
	"github.com/udisondev/cavesummon/internal/random"
	"github.com/udisondev/cavesummon/internal/spawn"
	"github.com/udisondev/cavesummon/internal/summon"
	"github.com/udisondev/cavesummon/internal/world"
)

// sim is a populated arena with a summoner wired to it.
type sim struct {
	seed     uint64
	rng      *rand.Rand
	cat      *data.Catalog
	reg      *summon.Registry
	level    *world.Level
	player   *model.Player
	pool     *spawn.Pool
	manager  *spawn.Manager
	summoner *summon.Summoner
}

func newSim(cfg config.Summoner, cat *data.Catalog) (*sim, error) {
	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seeding rng: %w", err)
	}

	reg, err := summon.Build(cat.Summons)
	if err != nil {
		return nil, fmt.Errorf("building summon registry: %w", err)
	}

	level := world.GenerateArena(rng, world.ArenaOptions{
		Width:  cfg.Arena.Width,
		Height: cfg.Arena.Height,
		Depth:  cfg.Player.Depth,
		Wards:  cfg.Arena.Wards,
		Decoys: cfg.Arena.Decoys,
	})

	grid, ok := level.RandomEmptyGrid()
	if !ok {
		return nil, errors.New("arena has no room for the player")
	}
	player := model.NewPlayer(grid, cfg.Player.Depth, cfg.Player.Speed)
	level.SetPlayer(player)

	pool := spawn.NewPool(cat.Races, rng, spawn.PoolOptions{
		OODChance: cfg.Alloc.OODChance,
		OODAmount: cfg.Alloc.OODAmount,
	})
	manager := spawn.NewManager(level, rng)
	manager.Populate(pool, cfg.Arena.Population)

	s := &sim{
		seed:     seed,
		rng:      rng,
		cat:      cat,
		reg:      reg,
		level:    level,
		player:   player,
		pool:     pool,
		manager:  manager,
		summoner: summon.NewSummoner(reg, level, pool, manager, player, rng),
	}

	slog.Info("simulation ready",
		"seed", seed,
		"depth", cfg.Player.Depth,
		"player", grid,
		"monsters", level.MonsterCount(),
		"summon_types", reg.Len())
	return s, nil
}

// randomMonster returns a random live monster, or nil on an empty level.
func (s *sim) randomMonster() *model.Monster {
	mons := s.level.Monsters()
	if len(mons) == 0 {
		return nil
	}
	return mons[s.rng.IntN(len(mons))]
}

// lookupType resolves a summon type name.
func (s *sim) lookupType(name string) (int, error) {
	idx := s.reg.Lookup(name)
	if idx == summon.None {
		return summon.None, fmt.Errorf("unknown summon type %q (known: %v)", name, s.reg.Names())
	}
	return idx, nil
}
