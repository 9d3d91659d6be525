package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAVESUMMON_"

// Catalog sources.
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Summoner holds all configuration for the summon simulator.
type Summoner struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"` // debug, info, warn, error

	// Seed for the simulation RNG; 0 picks a random seed
	Seed uint64 `yaml:"seed" env:"SEED"`

	Catalog  CatalogConfig  `yaml:"catalog" envPrefix:"CATALOG_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`
	Alloc    AllocConfig    `yaml:"alloc" envPrefix:"ALLOC_"`
	Arena    ArenaConfig    `yaml:"arena" envPrefix:"ARENA_"`
	Player   PlayerConfig   `yaml:"player" envPrefix:"PLAYER_"`
}

// CatalogConfig selects where the monster catalog comes from.
type CatalogConfig struct {
	Source string `yaml:"source" env:"SOURCE"` // file or database
	Dir    string `yaml:"dir" env:"DIR"`       // empty = built-in catalog
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// AllocConfig tunes the monster allocation table.
type AllocConfig struct {
	OODChance int `yaml:"ood_chance" env:"OOD_CHANCE"` // 1 in N draws are out of depth; 0 disables
	OODAmount int `yaml:"ood_amount" env:"OOD_AMOUNT"` // max levels added by an out-of-depth draw
}

// ArenaConfig shapes the generated test level.
type ArenaConfig struct {
	Width      int `yaml:"width" env:"WIDTH"`
	Height     int `yaml:"height" env:"HEIGHT"`
	Wards      int `yaml:"wards" env:"WARDS"`
	Decoys     int `yaml:"decoys" env:"DECOYS"`
	Population int `yaml:"population" env:"POPULATION"`
}

// PlayerConfig places the player.
type PlayerConfig struct {
	Depth int `yaml:"depth" env:"DEPTH"`
	Speed int `yaml:"speed" env:"SPEED"` // 110 = normal
}

// Default returns Summoner config with sensible defaults.
func Default() Summoner {
	return Summoner{
		LogLevel: "info",
		Catalog: CatalogConfig{
			Source: SourceFile,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "cavesummon",
			Password: "cavesummon",
			DBName:   "cavesummon",
			SSLMode:  "disable",
		},
		Alloc: AllocConfig{
			OODChance: 25,
			OODAmount: 10,
		},
		Arena: ArenaConfig{
			Width:      66,
			Height:     22,
			Wards:      2,
			Decoys:     1,
			Population: 14,
		},
		Player: PlayerConfig{
			Depth: 20,
			Speed: 110,
		},
	}
}

// Load loads config from a YAML file and applies CAVESUMMON_* environment
// overrides on top. If the file doesn't exist, defaults are used.
func Load(path string) (Summoner, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would break the simulation.
func (c Summoner) Validate() error {
	var errs []error

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel))
	}
	if c.Catalog.Source != SourceFile && c.Catalog.Source != SourceDatabase {
		errs = append(errs, fmt.Errorf("catalog.source %q: want %s or %s", c.Catalog.Source, SourceFile, SourceDatabase))
	}
	if c.Alloc.OODChance < 0 || c.Alloc.OODAmount < 0 {
		errs = append(errs, errors.New("alloc: chances must not be negative"))
	}
	if c.Arena.Width < 3 || c.Arena.Height < 3 {
		errs = append(errs, fmt.Errorf("arena %dx%d: need at least 3x3", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.Wards < 0 || c.Arena.Decoys < 0 || c.Arena.Population < 0 {
		errs = append(errs, errors.New("arena: counts must not be negative"))
	}
	if c.Player.Depth < 0 {
		errs = append(errs, fmt.Errorf("player.depth %d: must not be negative", c.Player.Depth))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed %d: must be positive", c.Player.Speed))
	}

	return errors.Join(errs...)
}
