// Package summon selects and places monsters in response to summon events:
// calling an existing monster to a grid or conjuring a new one from the
// weighted allocation table.
package summon

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/cavesummon/internal/model"
)

// None is the index returned when a summon type is not found or has no fallback.
const None = -1

// Special-cased summon type names.
const (
	KindKin    = "KIN"
	KindUnique = "UNIQUE"
	KindWraith = "WRAITH"
)

var (
	ErrEmptyName     = errors.New("summon type has empty name")
	ErrDuplicateName = errors.New("duplicate summon type name")
)

// Def is a summon type as produced by the catalog parser, before it is
// indexed. Fallback is referenced by name and resolved by Build.
type Def struct {
	Name           string
	MessageType    model.MessageType
	UniquesAllowed bool
	Bases          []*model.MonsterBase
	RaceFlag       model.RaceFlag
	Fallback       string
	Desc           string
}

// Type is an indexed, read-only summon type.
type Type struct {
	name           string
	desc           string
	messageType    model.MessageType
	fallback       int
	uniquesAllowed bool
	raceFlag       model.RaceFlag
	bases          []*model.MonsterBase
}

func (t *Type) Name() string                   { return t.name }
func (t *Type) Desc() string                   { return t.desc }
func (t *Type) MessageType() model.MessageType { return t.messageType }
func (t *Type) Fallback() int                  { return t.fallback }
func (t *Type) UniquesAllowed() bool           { return t.uniquesAllowed }
func (t *Type) RaceFlag() model.RaceFlag       { return t.raceFlag }

// Bases returns the allowed base species. Empty means no base restriction.
func (t *Type) Bases() []*model.MonsterBase {
	return append([]*model.MonsterBase(nil), t.bases...)
}

// Registry is the immutable summon type table, indexed 0..Len()-1.
type Registry struct {
	types []Type
}

// Build indexes parsed definitions in order and resolves fallback names.
// Fallbacks are resolved after every type is indexed, so forward references work.
func Build(defs []Def) (*Registry, error) {
	r := &Registry{types: make([]Type, 0, len(defs))}
	seen := make(map[string]struct{}, len(defs))

	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("summon type #%d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("summon type %q: %w", d.Name, ErrDuplicateName)
		}
		seen[d.Name] = struct{}{}

		r.types = append(r.types, Type{
			name:           d.Name,
			desc:           d.Desc,
			messageType:    d.MessageType,
			fallback:       None,
			uniquesAllowed: d.UniquesAllowed,
			raceFlag:       d.RaceFlag,
			bases:          append([]*model.MonsterBase(nil), d.Bases...),
		})
	}

	for i, d := range defs {
		if d.Fallback == "" {
			continue
		}
		idx := r.Lookup(d.Fallback)
		if idx == None {
			slog.Warn("summon fallback does not resolve", "summon", d.Name, "fallback", d.Fallback)
		}
		r.types[i].fallback = idx
	}

	return r, nil
}

// Lookup translates a summon type name to its index, or None.
func (r *Registry) Lookup(name string) int {
	if name == "" {
		return None
	}
	for i := range r.types {
		if r.types[i].name == name {
			return i
		}
	}
	return None
}

// Describe returns the description of a summon type.
// Returns "", false for an out-of-range index.
func (r *Registry) Describe(idx int) (string, bool) {
	if idx < 0 || idx >= len(r.types) {
		return "", false
	}
	return r.types[idx].desc, true
}

// MessageType returns the message type of a summon type.
// idx must come from Lookup.
func (r *Registry) MessageType(idx int) model.MessageType {
	return r.types[idx].messageType
}

// Fallback returns the fallback summon type index (or None).
// idx must come from Lookup.
func (r *Registry) Fallback(idx int) int {
	return r.types[idx].fallback
}

// Type returns the summon type at idx, or nil if out of range.
func (r *Registry) Type(idx int) *Type {
	if idx < 0 || idx >= len(r.types) {
		return nil
	}
	return &r.types[idx]
}

// Len returns number of summon types.
func (r *Registry) Len() int {
	return len(r.types)
}

// Names returns summon type names in index order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.types))
	for i := range r.types {
		names[i] = r.types[i].name
	}
	return names
}

// Release drops the table. Later lookups report not found.
func (r *Registry) Release() {
	r.types = nil
}
