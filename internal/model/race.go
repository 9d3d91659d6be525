package model

// MonsterBase is a base species shared by several races ("zephyr hound", "dragon").
// Identity is by pointer: two races share a base iff they point to the same MonsterBase.
type MonsterBase struct {
	name  string
	glyph rune
	desc  string
}

// NewMonsterBase creates a new monster base.
func NewMonsterBase(name string, glyph rune, desc string) *MonsterBase {
	return &MonsterBase{name: name, glyph: glyph, desc: desc}
}

func (b *MonsterBase) Name() string { return b.name }
func (b *MonsterBase) Glyph() rune  { return b.glyph }
func (b *MonsterBase) Desc() string { return b.desc }

// Race represents a monster race from the race catalog.
// Catalog fields are immutable; only the live census changes during play.
type Race struct {
	id     int
	name   string
	base   *MonsterBase
	level  int
	rarity int
	speed  int // 110 = normal speed
	sleep  int
	flags  RaceFlags

	maxNum int // 0 = unlimited
	curNum int // monsters of this race currently alive
}

// NewRace creates a new race. Uniques are limited to one living instance.
func NewRace(id int, name string, base *MonsterBase, level, rarity, speed, sleep int, flags RaceFlags) *Race {
	r := &Race{
		id:     id,
		name:   name,
		base:   base,
		level:  level,
		rarity: rarity,
		speed:  speed,
		sleep:  sleep,
		flags:  flags,
	}
	if flags.Has(RaceFlagUnique) {
		r.maxNum = 1
	}
	return r
}

func (r *Race) ID() int             { return r.id }
func (r *Race) Name() string        { return r.name }
func (r *Race) Base() *MonsterBase  { return r.base }
func (r *Race) Level() int          { return r.level }
func (r *Race) Rarity() int         { return r.rarity }
func (r *Race) Speed() int          { return r.speed }
func (r *Race) Sleep() int          { return r.sleep }
func (r *Race) Flags() RaceFlags    { return r.flags }
func (r *Race) Has(f RaceFlag) bool { return r.flags.Has(f) }

// IsUnique reports whether the race carries the UNIQUE flag.
func (r *Race) IsUnique() bool {
	return r.flags.Has(RaceFlagUnique)
}

// MaxNum returns the live instance limit (0 = unlimited).
func (r *Race) MaxNum() int { return r.maxNum }

// CurNum returns how many monsters of this race are alive.
func (r *Race) CurNum() int { return r.curNum }

// AtLimit reports whether no more monsters of this race may exist.
func (r *Race) AtLimit() bool {
	return r.maxNum > 0 && r.curNum >= r.maxNum
}

// AddLive adjusts the live census by delta.
func (r *Race) AddLive(delta int) {
	r.curNum += delta
	if r.curNum < 0 {
		r.curNum = 0
	}
}
