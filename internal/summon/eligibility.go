package summon

import (
	"slices"

	"github.com/udisondev/cavesummon/internal/model"
)

// Eligible decides whether race may be summoned as summon type t.
//
// kinBase is the base species of the summoner; it is only consulted for
// the KIN type, which additionally admits non-unique races of that base.
func Eligible(t *Type, race *model.Race, kinBase *model.MonsterBase) bool {
	if t == nil || race == nil {
		return false
	}
	unique := race.IsUnique()

	if !t.uniquesAllowed && unique {
		return false
	}

	if len(t.bases) > 0 && !slices.Contains(t.bases, race.Base()) {
		return false
	}

	if t.raceFlag != model.RaceFlagNone && !race.Has(t.raceFlag) {
		return false
	}

	if t.name == KindKin {
		return !unique && kinBase != nil && race.Base() == kinBase
	}

	return true
}

// filter binds a summon type and kin base into an allocation table filter.
func filter(t *Type, kinBase *model.MonsterBase) func(*model.Race) bool {
	return func(race *model.Race) bool {
		return Eligible(t, race, kinBase)
	}
}
