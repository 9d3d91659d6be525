package data

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog file names inside a catalog directory.
const (
	BasesFile   = "monster_base.yaml"
	RacesFile   = "monster.yaml"
	SummonsFile = "summon.yaml"
)

//go:embed catalog/*.yaml
var defaultCatalog embed.FS

type basesDoc struct {
	Bases []BaseEntry `yaml:"bases"`
}

type racesDoc struct {
	Races []RaceEntry `yaml:"races"`
}

type summonsDoc struct {
	Summons []SummonEntry `yaml:"summons"`
}

// LoadDefault reads the catalog compiled into the binary.
func LoadDefault() (*Source, error) {
	sub, err := fs.Sub(defaultCatalog, "catalog")
	if err != nil {
		return nil, fmt.Errorf("opening default catalog: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir reads the catalog files from dir.
func LoadDir(dir string) (*Source, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads the three catalog files from fsys.
func LoadFS(fsys fs.FS) (*Source, error) {
	var (
		bases   basesDoc
		races   racesDoc
		summons summonsDoc
	)

	if err := decodeFile(fsys, BasesFile, &bases); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, RacesFile, &races); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, SummonsFile, &summons); err != nil {
		return nil, err
	}

	return &Source{
		Bases:   bases.Bases,
		Races:   races.Races,
		Summons: summons.Summons,
	}, nil
}

// LoadCatalog reads and resolves the catalog in dir, or the built-in
// catalog when dir is empty.
func LoadCatalog(dir string) (*Catalog, error) {
	var (
		src *Source
		err error
	)
	if dir == "" {
		src, err = LoadDefault()
	} else {
		src, err = LoadDir(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	cat, err := src.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving catalog: %w", err)
	}

	slog.Info("loaded monster catalog",
		"dir", dir,
		"bases", len(cat.Bases),
		"races", len(cat.Races),
		"summons", len(cat.Summons))

	return cat, nil
}

// decodeFile parses a YAML file strictly: unknown keys are errors.
// An empty file decodes to the zero document.
func decodeFile(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Marshal encodes src as the three catalog documents, keyed by file name.
func (s *Source) Marshal() (map[string][]byte, error) {
	docs := map[string]any{
		BasesFile:   basesDoc{Bases: s.Bases},
		RacesFile:   racesDoc{Races: s.Races},
		SummonsFile: summonsDoc{Summons: s.Summons},
	}

	out := make(map[string][]byte, len(docs))
	for name, doc := range docs {
		raw, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", name, err)
		}
		out[name] = raw
	}
	return out, nil
}
