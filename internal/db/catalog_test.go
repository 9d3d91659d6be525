package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/udisondev/cavesummon/internal/data"
	"github.com/udisondev/cavesummon/internal/summon"
	"github.com/udisondev/cavesummon/internal/testutil"
)

// CatalogSuite проверяет импорт и загрузку каталога в PostgreSQL.
type CatalogSuite struct {
	suite.Suite
	ctx     context.Context
	service *CatalogService
	dsn     string
}

func (s *CatalogSuite) SetupSuite() {
	s.ctx = context.Background()
	pool := testutil.SetupTestDB(s.T())
	s.service = NewCatalogService(pool)
	s.dsn = testutil.TestDSN(pool)
}

func (s *CatalogSuite) SetupTest() {
	_, err := s.service.pool.Exec(s.ctx, "TRUNCATE TABLE summon_types, monster_races, monster_bases")
	s.Require().NoError(err)
}

func (s *CatalogSuite) TestImportLoadRoundTrip() {
	src, err := data.LoadDefault()
	s.Require().NoError(err)

	s.Require().NoError(s.service.Import(s.ctx, src))

	loaded, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(src.Bases, loaded.Bases)
	s.ElementsMatch(src.Races, loaded.Races)
	s.Equal(src.Summons, loaded.Summons, "summon order is the type index")

	cat, err := loaded.Resolve()
	s.Require().NoError(err)
	reg, err := summon.Build(cat.Summons)
	s.Require().NoError(err)
	s.Equal(len(src.Summons), reg.Len())
	s.NotEqual(summon.None, reg.Fallback(reg.Lookup("HOUND")))
}

func (s *CatalogSuite) TestImportReplaces() {
	first := &data.Source{
		Bases:   []data.BaseEntry{{Name: "canine", Glyph: "C"}},
		Races:   []data.RaceEntry{{ID: 1, Name: "Jackal", Base: "canine", Level: 1, Rarity: 1}},
		Summons: []data.SummonEntry{{Name: "ANIMAL", Msgt: "SUM_ANIMAL", RaceFlag: "ANIMAL"}},
	}
	s.Require().NoError(s.service.Import(s.ctx, first))

	second := &data.Source{
		Bases: []data.BaseEntry{{Name: "orc", Glyph: "o"}},
		Races: []data.RaceEntry{{ID: 7, Name: "Cave orc", Base: "orc", Level: 7, Rarity: 1, Flags: []string{"ORC", "EVIL"}}},
	}
	s.Require().NoError(s.service.Import(s.ctx, second))

	loaded, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(second.Bases, loaded.Bases)
	s.Equal(second.Races, loaded.Races)
	s.Empty(loaded.Summons)
}

func (s *CatalogSuite) TestImportFailureKeepsPreviousCatalog() {
	good := &data.Source{
		Bases: []data.BaseEntry{{Name: "canine", Glyph: "C"}},
		Races: []data.RaceEntry{{ID: 1, Name: "Jackal", Base: "canine", Level: 1, Rarity: 1}},
	}
	s.Require().NoError(s.service.Import(s.ctx, good))

	// Race base violates the foreign key
	bad := &data.Source{
		Bases: []data.BaseEntry{{Name: "orc", Glyph: "o"}},
		Races: []data.RaceEntry{{ID: 2, Name: "Wolf", Base: "canine", Level: 5, Rarity: 1}},
	}
	s.Error(s.service.Import(s.ctx, bad))

	loaded, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(good.Bases, loaded.Bases)
	s.Equal(good.Races, loaded.Races)
}

func (s *CatalogSuite) TestMigrationsIdempotent() {
	s.Require().NoError(RunMigrations(s.ctx, s.dsn))

	version, err := SchemaVersion(s.ctx, s.dsn)
	s.Require().NoError(err)
	s.GreaterOrEqual(version, int64(1))
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}
