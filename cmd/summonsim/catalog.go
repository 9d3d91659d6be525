package main

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/cavesummon/internal/config"
	"github.com/udisondev/cavesummon/internal/data"
	"github.com/udisondev/cavesummon/internal/db"
)

// loadCatalog reads the monster catalog from the configured source.
func (a *app) loadCatalog(ctx context.Context) (*data.Catalog, error) {
	if a.cfg.Catalog.Source != config.SourceDatabase {
		return data.LoadCatalog(a.cfg.Catalog.Dir)
	}

	src, err := loadSourceFromDB(ctx, a.cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	cat, err := src.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving database catalog: %w", err)
	}
	slog.Info("loaded monster catalog from database",
		"bases", len(cat.Bases),
		"races", len(cat.Races),
		"summons", len(cat.Summons))
	return cat, nil
}

// loadSourceFromDB reads the three catalog tables concurrently.
func loadSourceFromDB(ctx context.Context, dsn string) (*data.Source, error) {
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	svc := db.NewCatalogService(database.Pool())
	src := &data.Source{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		src.Bases, err = svc.Bases().LoadAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		src.Races, err = svc.Races().LoadAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		src.Summons, err = svc.Summons().LoadAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading catalog from database: %w", err)
	}
	return src, nil
}

// readSource reads the unresolved catalog from dir, or the built-in one.
func readSource(dir string) (*data.Source, error) {
	if dir == "" {
		return data.LoadDefault()
	}
	return data.LoadDir(dir)
}
