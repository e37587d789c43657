// Package storage defines the persistence boundaries of the simulator:
// historical season statistics coming in, completed simulation records going
// out. Implementations live in subpackages; the simulation core depends only
// on these interfaces.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/dugout/stats"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// StatsProvider looks up aggregated season totals by player id and year.
// A missing player or season is reported as ErrNotFound, never as zeroed
// totals, so callers can distinguish "no data" from "bad season".
type StatsProvider interface {
	BattingTotals(ctx context.Context, playerID string, year int) (stats.BattingTotals, error)
	PitchingTotals(ctx context.Context, playerID string, year int) (stats.PitchingTotals, error)
}

// PlayerStore looks up player identity records.
type PlayerStore interface {
	PlayerInfo(ctx context.Context, playerID string) (stats.PlayerInfo, error)
}

// TeamStore looks up team seasons, including park factors.
type TeamStore interface {
	TeamSeason(ctx context.Context, teamID string, year int) (stats.TeamSeason, error)
}

// SimulationRecord is one completed at-bat simulation as persisted.
type SimulationRecord struct {
	ID         string
	BatterID   string
	PitcherID  string
	Year       int
	Outcome    string
	RunsScored int
	Seed       int64
	CreatedAt  time.Time
}

// SimulationLog appends completed simulation records.
type SimulationLog interface {
	RecordSimulation(ctx context.Context, record SimulationRecord) error
}
