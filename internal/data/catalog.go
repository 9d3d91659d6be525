// Package data parses the monster catalog: base species, races and summon
// types. Entries reference each other by name; Resolve turns them into the
// linked model objects and summon definitions.
package data

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/udisondev/cavesummon/internal/model"
	"github.com/udisondev/cavesummon/internal/summon"
)

var (
	ErrUnknownBase    = errors.New("unknown monster base")
	ErrUnknownFlag    = errors.New("unknown race flag")
	ErrUnknownMessage = errors.New("unknown message type")
	ErrDuplicateName  = errors.New("duplicate name")
)

// BaseEntry is a monster base as written in the catalog.
type BaseEntry struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Desc  string `yaml:"desc"`
}

// RaceEntry is a monster race as written in the catalog.
type RaceEntry struct {
	ID     int      `yaml:"id"`
	Name   string   `yaml:"name"`
	Base   string   `yaml:"base"`
	Level  int      `yaml:"level"`
	Rarity int      `yaml:"rarity"`
	Speed  int      `yaml:"speed,omitempty"`
	Sleep  int      `yaml:"sleep"`
	Flags  []string `yaml:"flags,omitempty"`
}

// SummonEntry is a summon type as written in the catalog.
type SummonEntry struct {
	Name     string   `yaml:"name"`
	Msgt     string   `yaml:"msgt"`
	Uniques  bool     `yaml:"uniques"`
	Bases    []string `yaml:"bases,omitempty"`
	RaceFlag string   `yaml:"race_flag,omitempty"`
	Fallback string   `yaml:"fallback,omitempty"`
	Desc     string   `yaml:"desc"`
}

// Source is the unresolved catalog, as read from files or the database.
type Source struct {
	Bases   []BaseEntry
	Races   []RaceEntry
	Summons []SummonEntry
}

// Catalog is the resolved catalog.
type Catalog struct {
	Bases   []*model.MonsterBase
	Races   []*model.Race
	Summons []summon.Def

	basesByName map[string]*model.MonsterBase
}

// Base returns the monster base with the given name, or nil.
func (c *Catalog) Base(name string) *model.MonsterBase {
	return c.basesByName[name]
}

// Race returns the first race with the given name, or nil.
func (c *Catalog) Race(name string) *model.Race {
	for _, r := range c.Races {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Resolve links races and summon types to their bases and parses flag and
// message names.
func (s *Source) Resolve() (*Catalog, error) {
	c := &Catalog{
		Bases:       make([]*model.MonsterBase, 0, len(s.Bases)),
		Races:       make([]*model.Race, 0, len(s.Races)),
		Summons:     make([]summon.Def, 0, len(s.Summons)),
		basesByName: make(map[string]*model.MonsterBase, len(s.Bases)),
	}

	for _, e := range s.Bases {
		if _, dup := c.basesByName[e.Name]; dup {
			return nil, fmt.Errorf("monster base %q: %w", e.Name, ErrDuplicateName)
		}
		glyph, _ := utf8.DecodeRuneInString(e.Glyph)
		base := model.NewMonsterBase(e.Name, glyph, e.Desc)
		c.Bases = append(c.Bases, base)
		c.basesByName[e.Name] = base
	}

	ids := make(map[int]struct{}, len(s.Races))
	for _, e := range s.Races {
		race, err := c.resolveRace(e)
		if err != nil {
			return nil, err
		}
		if _, dup := ids[e.ID]; dup {
			return nil, fmt.Errorf("race %q: id %d: %w", e.Name, e.ID, ErrDuplicateName)
		}
		ids[e.ID] = struct{}{}
		c.Races = append(c.Races, race)
	}

	for _, e := range s.Summons {
		def, err := c.resolveSummon(e)
		if err != nil {
			return nil, err
		}
		c.Summons = append(c.Summons, def)
	}

	return c, nil
}

func (c *Catalog) resolveRace(e RaceEntry) (*model.Race, error) {
	base := c.basesByName[e.Base]
	if base == nil {
		return nil, fmt.Errorf("race %q: base %q: %w", e.Name, e.Base, ErrUnknownBase)
	}

	flags := make([]model.RaceFlag, 0, len(e.Flags))
	for _, name := range e.Flags {
		f, ok := model.ParseRaceFlag(name)
		if !ok {
			return nil, fmt.Errorf("race %q: flag %q: %w", e.Name, name, ErrUnknownFlag)
		}
		flags = append(flags, f)
	}

	speed := e.Speed
	if speed == 0 {
		speed = model.NormalSpeed
	}

	return model.NewRace(e.ID, e.Name, base, e.Level, e.Rarity, speed, e.Sleep, model.NewRaceFlags(flags...)), nil
}

func (c *Catalog) resolveSummon(e SummonEntry) (summon.Def, error) {
	def := summon.Def{
		Name:           e.Name,
		UniquesAllowed: e.Uniques,
		Fallback:       e.Fallback,
		Desc:           e.Desc,
	}

	if e.Msgt != "" {
		msgt, ok := model.ParseMessageType(e.Msgt)
		if !ok {
			return def, fmt.Errorf("summon %q: msgt %q: %w", e.Name, e.Msgt, ErrUnknownMessage)
		}
		def.MessageType = msgt
	}

	if e.RaceFlag != "" {
		f, ok := model.ParseRaceFlag(e.RaceFlag)
		if !ok {
			return def, fmt.Errorf("summon %q: race flag %q: %w", e.Name, e.RaceFlag, ErrUnknownFlag)
		}
		def.RaceFlag = f
	}

	for _, name := range e.Bases {
		base := c.basesByName[name]
		if base == nil {
			return def, fmt.Errorf("summon %q: base %q: %w", e.Name, name, ErrUnknownBase)
		}
		def.Bases = append(def.Bases, base)
	}

	return def, nil
}
