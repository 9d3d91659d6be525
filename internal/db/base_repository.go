package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/cavesummon/internal/data"
)

// BaseRepository stores monster bases.
type BaseRepository struct {
	pool *pgxpool.Pool
}

// NewBaseRepository creates a new monster base repository.
func NewBaseRepository(pool *pgxpool.Pool) *BaseRepository {
	return &BaseRepository{pool: pool}
}

// LoadAll loads all monster bases in catalog order.
func (r *BaseRepository) LoadAll(ctx context.Context) ([]data.BaseEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, glyph, descr FROM monster_bases ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("loading monster bases: %w", err)
	}
	defer rows.Close()

	var bases []data.BaseEntry
	for rows.Next() {
		var e data.BaseEntry
		if err := rows.Scan(&e.Name, &e.Glyph, &e.Desc); err != nil {
			return nil, fmt.Errorf("scanning monster base: %w", err)
		}
		bases = append(bases, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monster bases: %w", err)
	}

	return bases, nil
}

// SaveAllTx inserts bases within a transaction, keeping their order.
func (r *BaseRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, bases []data.BaseEntry) error {
	if len(bases) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(bases))
	for i, e := range bases {
		rows = append(rows, []any{e.Name, e.Glyph, e.Desc, i})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"monster_bases"},
		[]string{"name", "glyph", "descr", "ord"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting monster bases: %w", err)
	}
	return nil
}
