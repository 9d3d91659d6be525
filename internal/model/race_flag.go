package model

import "strings"

// RaceFlag is a monster race capability flag.
// Zero value (RaceFlagNone) means "no flag".
type RaceFlag uint8

const (
	RaceFlagNone RaceFlag = iota
	RaceFlagUnique
	RaceFlagQuestor
	RaceFlagMale
	RaceFlagFemale
	RaceFlagAnimal
	RaceFlagEvil
	RaceFlagDemon
	RaceFlagUndead
	RaceFlagDragon
	RaceFlagOrc
	RaceFlagTroll
	RaceFlagGiant
	RaceFlagInvisible
	RaceFlagColdBlood
	RaceFlagNeverMove

	raceFlagCount
)

var raceFlagNames = [raceFlagCount]string{
	RaceFlagNone:      "NONE",
	RaceFlagUnique:    "UNIQUE",
	RaceFlagQuestor:   "QUESTOR",
	RaceFlagMale:      "MALE",
	RaceFlagFemale:    "FEMALE",
	RaceFlagAnimal:    "ANIMAL",
	RaceFlagEvil:      "EVIL",
	RaceFlagDemon:     "DEMON",
	RaceFlagUndead:    "UNDEAD",
	RaceFlagDragon:    "DRAGON",
	RaceFlagOrc:       "ORC",
	RaceFlagTroll:     "TROLL",
	RaceFlagGiant:     "GIANT",
	RaceFlagInvisible: "INVISIBLE",
	RaceFlagColdBlood: "COLD_BLOOD",
	RaceFlagNeverMove: "NEVER_MOVE",
}

// String returns the catalog name of the flag.
func (f RaceFlag) String() string {
	if f >= raceFlagCount {
		return "UNKNOWN"
	}
	return raceFlagNames[f]
}

// ParseRaceFlag looks up a flag by its catalog name (case-insensitive).
func ParseRaceFlag(name string) (RaceFlag, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for f := RaceFlagNone + 1; f < raceFlagCount; f++ {
		if raceFlagNames[f] == name {
			return f, true
		}
	}
	return RaceFlagNone, false
}

// RaceFlags is a set of RaceFlag values.
type RaceFlags uint64

// NewRaceFlags builds a set from the given flags.
func NewRaceFlags(flags ...RaceFlag) RaceFlags {
	var s RaceFlags
	for _, f := range flags {
		s = s.With(f)
	}
	return s
}

// Has reports whether f is in the set. RaceFlagNone is never present.
func (s RaceFlags) Has(f RaceFlag) bool {
	if f == RaceFlagNone {
		return false
	}
	return s&(1<<f) != 0
}

// With returns the set with f added.
func (s RaceFlags) With(f RaceFlag) RaceFlags {
	if f == RaceFlagNone {
		return s
	}
	return s | 1<<f
}

// List returns the flags in the set in declaration order.
func (s RaceFlags) List() []RaceFlag {
	var out []RaceFlag
	for f := RaceFlagNone + 1; f < raceFlagCount; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
