package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/cavesummon/internal/data"
)

// RaceRepository stores monster races.
type RaceRepository struct {
	pool *pgxpool.Pool
}

// NewRaceRepository creates a new monster race repository.
func NewRaceRepository(pool *pgxpool.Pool) *RaceRepository {
	return &RaceRepository{pool: pool}
}

// LoadAll loads all races ordered by ID.
func (r *RaceRepository) LoadAll(ctx context.Context) ([]data.RaceEntry, error) {
	query := `
		SELECT race_id, name, base, level, rarity, speed, sleep, flags
		FROM monster_races
		ORDER BY race_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading monster races: %w", err)
	}
	defer rows.Close()

	var races []data.RaceEntry
	for rows.Next() {
		var e data.RaceEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Base, &e.Level, &e.Rarity, &e.Speed, &e.Sleep, &e.Flags); err != nil {
			return nil, fmt.Errorf("scanning monster race: %w", err)
		}
		if len(e.Flags) == 0 {
			e.Flags = nil
		}
		races = append(races, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monster races: %w", err)
	}

	return races, nil
}

// SaveAllTx inserts races within a transaction.
func (r *RaceRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, races []data.RaceEntry) error {
	if len(races) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(races))
	for _, e := range races {
		flags := e.Flags
		if flags == nil {
			flags = []string{}
		}
		rows = append(rows, []any{e.ID, e.Name, e.Base, e.Level, e.Rarity, e.Speed, e.Sleep, flags})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"monster_races"},
		[]string{"race_id", "name", "base", "level", "rarity", "speed", "sleep", "flags"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting monster races: %w", err)
	}
	return nil
}
