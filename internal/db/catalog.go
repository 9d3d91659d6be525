package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/cavesummon/internal/data"
)

// CatalogService replaces or reads the whole monster catalog.
type CatalogService struct {
	pool    *pgxpool.Pool
	bases   *BaseRepository
	races   *RaceRepository
	summons *SummonRepository
}

// NewCatalogService creates a new catalog service over pool.
func NewCatalogService(pool *pgxpool.Pool) *CatalogService {
	return &CatalogService{
		pool:    pool,
		bases:   NewBaseRepository(pool),
		races:   NewRaceRepository(pool),
		summons: NewSummonRepository(pool),
	}
}

func (s *CatalogService) Bases() *BaseRepository     { return s.bases }
func (s *CatalogService) Races() *RaceRepository     { return s.races }
func (s *CatalogService) Summons() *SummonRepository { return s.summons }

// Import replaces the stored catalog with src in a single transaction.
func (s *CatalogService) Import(ctx context.Context, src *data.Source) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog import: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "error", err)
		}
	}()

	for _, table := range []string{"summon_types", "monster_races", "monster_bases"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := s.bases.SaveAllTx(ctx, tx, src.Bases); err != nil {
		return err
	}
	if err := s.races.SaveAllTx(ctx, tx, src.Races); err != nil {
		return err
	}
	if err := s.summons.SaveAllTx(ctx, tx, src.Summons); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog import: %w", err)
	}

	slog.Info("catalog imported",
		"bases", len(src.Bases),
		"races", len(src.Races),
		"summons", len(src.Summons))
	return nil
}

// Load reads the stored catalog.
func (s *CatalogService) Load(ctx context.Context) (*data.Source, error) {
	bases, err := s.bases.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	races, err := s.races.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	summons, err := s.summons.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &data.Source{Bases: bases, Races: races, Summons: summons}, nil
}
