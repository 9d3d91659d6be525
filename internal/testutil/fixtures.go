package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/udisondev/cavesummon/internal/data"
	"github.com/udisondev/cavesummon/internal/summon"
)

// Fixtures содержит общие тестовые константы.
var Fixtures = struct {
	Seed1, Seed2 uint64

	// Arena size used by integration tests
	ArenaWidth, ArenaHeight int

	Depth int
}{
	Seed1:       3,
	Seed2:       5,
	ArenaWidth:  40,
	ArenaHeight: 15,
	Depth:       30,
}

// NewRng returns a deterministic generator.
func NewRng() *rand.Rand {
	return rand.New(rand.NewPCG(Fixtures.Seed1, Fixtures.Seed2))
}

// Catalog loads the built-in catalog.
// Each call returns fresh races, so live counts never leak between tests.
func Catalog(tb testing.TB) *data.Catalog {
	tb.Helper()
	cat, err := data.LoadCatalog("")
	if err != nil {
		tb.Fatalf("loading catalog: %v", err)
	}
	return cat
}

// Registry builds the summon registry of cat.
func Registry(tb testing.TB, cat *data.Catalog) *summon.Registry {
	tb.Helper()
	reg, err := summon.Build(cat.Summons)
	if err != nil {
		tb.Fatalf("building summon registry: %v", err)
	}
	tb.Cleanup(reg.Release)
	return reg
}
