package sim

import (
	"fmt"

	"github.com/louisbranch/dugout/internal/platform/config"
	"github.com/louisbranch/dugout/internal/telemetry"
	"github.com/louisbranch/dugout/storage/sqlite"
)

// Config is the environment configuration for an engine.
type Config struct {
	// Seed fixes the RNG for reproducible runs. Zero seeds from entropy.
	Seed int64 `env:"DUGOUT_SEED"`
	// DatabasePath locates the SQLite season-stats database. Empty
	// leaves the id-based simulation path unconfigured.
	DatabasePath string `env:"DUGOUT_DATABASE_PATH"`
	// TunablesPath locates a YAML tunables overlay. Empty or missing
	// means defaults.
	TunablesPath string `env:"DUGOUT_TUNABLES_PATH"`
}

// LoadConfig reads engine configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewEngineFromConfig builds an engine from configuration: seeded RNG,
// tunables overlaid from the configured path, and the SQLite store wired
// as stats provider, park-factor source, and simulation log when a
// database path is set. The returned close function releases the
// database and is safe to call when no database was opened.
func NewEngineFromConfig(cfg Config) (*Engine, func() error, error) {
	tunables, err := LoadTunables(cfg.TunablesPath)
	if err != nil {
		return nil, nil, err
	}

	deps := Dependencies{Tunables: tunables}
	if cfg.Seed != 0 {
		deps.RNG = NewRNG(cfg.Seed)
	}

	closeStore := func() error { return nil }
	if cfg.DatabasePath != "" {
		store, err := sqlite.Open(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		deps.Stats = store
		deps.Teams = store
		deps.Telemetry = telemetry.NewEmitter(store)
		closeStore = store.Close
	}

	engine, err := NewEngine(deps)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	return engine, closeStore, nil
}
