package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/cavesummon/internal/data"
)

// SummonRepository stores summon types.
type SummonRepository struct {
	pool *pgxpool.Pool
}

// NewSummonRepository creates a new summon type repository.
func NewSummonRepository(pool *pgxpool.Pool) *SummonRepository {
	return &SummonRepository{pool: pool}
}

// LoadAll loads summon types in index order.
func (r *SummonRepository) LoadAll(ctx context.Context) ([]data.SummonEntry, error) {
	query := `
		SELECT name, msgt, uniques, bases, race_flag, fallback, descr
		FROM summon_types
		ORDER BY ord
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading summon types: %w", err)
	}
	defer rows.Close()

	var summons []data.SummonEntry
	for rows.Next() {
		var e data.SummonEntry
		if err := rows.Scan(&e.Name, &e.Msgt, &e.Uniques, &e.Bases, &e.RaceFlag, &e.Fallback, &e.Desc); err != nil {
			return nil, fmt.Errorf("scanning summon type: %w", err)
		}
		if len(e.Bases) == 0 {
			e.Bases = nil
		}
		summons = append(summons, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating summon types: %w", err)
	}

	return summons, nil
}

// SaveAllTx inserts summon types within a transaction; slice order becomes
// the summon type index.
func (r *SummonRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, summons []data.SummonEntry) error {
	if len(summons) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, e := range summons {
		bases := e.Bases
		if bases == nil {
			bases = []string{}
		}
		batch.Queue(
			`INSERT INTO summon_types (name, ord, msgt, uniques, bases, race_flag, fallback, descr)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			e.Name, i, e.Msgt, e.Uniques, bases, e.RaceFlag, e.Fallback, e.Desc,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, e := range summons {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("inserting summon type %q: %w", e.Name, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("closing summon type batch: %w", err)
	}
	return nil
}
