package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/dugout/internal/telemetry"
	"github.com/louisbranch/dugout/stats"
	"github.com/louisbranch/dugout/storage"
)

// ErrNoStatsProvider indicates an id-based simulation was requested on an
// engine constructed without a stats provider.
var ErrNoStatsProvider = errors.New("no stats provider configured")

// Engine runs at-bat simulations. It owns one RNG, so a single engine is
// not safe for concurrent use; run one engine per goroutine instead.
type Engine struct {
	rng       *RNG
	tunables  Tunables
	stats     storage.StatsProvider
	teams     storage.TeamStore
	telemetry *telemetry.Emitter
}

// Dependencies carries everything an Engine needs. Only the RNG and
// Tunables are exercised on every simulation; the stores back the
// id-based path and the emitter records completed matchups.
type Dependencies struct {
	// RNG drives every stochastic decision. Nil means seed from entropy.
	RNG *RNG
	// Tunables configures outcome resolution. The zero value means
	// DefaultTunables.
	Tunables Tunables
	// Stats backs SimulateMatchup lookups. Optional.
	Stats storage.StatsProvider
	// Teams supplies park factors for SimulateMatchup. Optional.
	Teams storage.TeamStore
	// Telemetry records completed matchups. Optional; nil is a no-op.
	Telemetry *telemetry.Emitter
}

// NewEngine creates an engine from its dependencies, filling in an
// entropy-seeded RNG and default tunables where none were given.
func NewEngine(deps Dependencies) (*Engine, error) {
	rng := deps.RNG
	if rng == nil {
		var err error
		rng, err = NewRNGFromEntropy()
		if err != nil {
			return nil, err
		}
	}

	tunables := deps.Tunables
	if tunables.OutTypes == (OutDistribution{}) {
		tunables = DefaultTunables()
	}
	if err := tunables.Validate(); err != nil {
		return nil, fmt.Errorf("tunables: %w", err)
	}

	return &Engine{
		rng:       rng,
		tunables:  tunables,
		stats:     deps.Stats,
		teams:     deps.Teams,
		telemetry: deps.Telemetry,
	}, nil
}

// AtBatRequest describes one matchup to simulate.
type AtBatRequest struct {
	Batter  stats.BattingTotals
	Pitcher stats.PitchingTotals
	// Bases is the pre-pitch base state; the zero value means empty.
	Bases BaseState
	// Year selects the era baseline. Zero means the batter's season year.
	Year int
	// ParkFactor is the batter's home park on the 100-neutral scale.
	// Zero means neutral.
	ParkFactor int
}

// year returns the baseline year, defaulting to the batter's season.
func (r AtBatRequest) year() int {
	if r.Year != 0 {
		return r.Year
	}
	return r.Batter.Year
}

// parkFactor returns the park factor, defaulting to neutral.
func (r AtBatRequest) parkFactor() int {
	if r.ParkFactor != 0 {
		return r.ParkFactor
	}
	return 100
}

// SimulationResult is one simulated at-bat: the outcome, where the
// runners ended up, the unnormalized matchup probabilities behind the
// draws, and the audit entries this at-bat consumed.
type SimulationResult struct {
	Outcome       Outcome
	Advancement   Advancement
	Probabilities EventProbabilities
	Audit         []AuditEntry
}

// SimulateAtBat runs one at-bat from season totals.
//
// The matchup probabilities feed the resolver unnormalized: their
// shortfall from 1.0 is the implicit batted-ball-out probability, and
// normalizing it away would inflate every event. The audit slice covers
// exactly this at-bat's draws, so replaying the seed replays the result.
func (e *Engine) SimulateAtBat(req AtBatRequest) (SimulationResult, error) {
	start := e.rng.AuditLen()

	matchup, err := e.matchupProbabilities(req)
	if err != nil {
		return SimulationResult{}, err
	}

	occ := req.Bases.Occupancy()
	situation := Situation{OnFirst: occ[0], OnSecond: occ[1], OnThird: occ[2]}

	outcome := ResolveAtBat(e.rng, DeriveConditionals(matchup), situation, e.tunables)
	advancement, err := AdvanceRunners(e.rng, req.Bases, outcome, req.Batter.PlayerID)
	if err != nil {
		return SimulationResult{}, err
	}

	return SimulationResult{
		Outcome:       outcome,
		Advancement:   advancement,
		Probabilities: matchup,
		Audit:         e.rng.AuditTrail()[start:],
	}, nil
}

// SimulateMatchup runs one at-bat looked up by player ids. A batter or
// pitcher season the provider does not have yields ok == false with a
// nil error; the caller decides whether that is fatal. The batter's
// team season supplies the park factor when a team store is configured
// and has the season.
func (e *Engine) SimulateMatchup(ctx context.Context, batterID, pitcherID string, year int, bases BaseState) (SimulationResult, bool, error) {
	if e.stats == nil {
		return SimulationResult{}, false, ErrNoStatsProvider
	}

	batting, err := e.stats.BattingTotals(ctx, batterID, year)
	if errors.Is(err, storage.ErrNotFound) {
		return SimulationResult{}, false, nil
	}
	if err != nil {
		return SimulationResult{}, false, fmt.Errorf("batting totals: %w", err)
	}

	pitching, err := e.stats.PitchingTotals(ctx, pitcherID, year)
	if errors.Is(err, storage.ErrNotFound) {
		return SimulationResult{}, false, nil
	}
	if err != nil {
		return SimulationResult{}, false, fmt.Errorf("pitching totals: %w", err)
	}

	parkFactor := 0
	if e.teams != nil && batting.TeamID != "" {
		season, err := e.teams.TeamSeason(ctx, batting.TeamID, year)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			// No season record; play in a neutral park.
		case err != nil:
			return SimulationResult{}, false, fmt.Errorf("team season: %w", err)
		default:
			parkFactor = season.BattingParkFactor
		}
	}

	result, err := e.SimulateAtBat(AtBatRequest{
		Batter:     batting,
		Pitcher:    pitching,
		Bases:      bases,
		Year:       year,
		ParkFactor: parkFactor,
	})
	if err != nil {
		return SimulationResult{}, false, err
	}

	record := storage.SimulationRecord{
		BatterID:   batterID,
		PitcherID:  pitcherID,
		Year:       year,
		Outcome:    result.Outcome.String(),
		RunsScored: result.Advancement.RunsScored,
		Seed:       e.rng.Seed(),
	}
	if err := e.telemetry.SimulationCompleted(ctx, record); err != nil {
		return result, true, fmt.Errorf("record simulation: %w", err)
	}

	return result, true, nil
}

// ExpectedProbabilities returns the unnormalized matchup probabilities
// for a request without consuming any randomness.
func (e *Engine) ExpectedProbabilities(req AtBatRequest) (EventProbabilities, error) {
	return e.matchupProbabilities(req)
}

// matchupProbabilities derives batter and pitcher event rates, adjusts
// the batter for the park, and combines both against the era baseline.
func (e *Engine) matchupProbabilities(req AtBatRequest) (EventProbabilities, error) {
	year := req.year()

	batter := BatterEventProbabilities(req.Batter, year, e.tunables.Baselines)
	batter = AdjustForPark(batter, req.parkFactor())
	pitcher := PitcherEventProbabilities(req.Pitcher, year, e.tunables.Baselines)
	league := e.tunables.Baselines.For(year)

	matchup, err := CombineAll(batter, pitcher, league)
	if err != nil {
		return nil, fmt.Errorf("matchup probabilities: %w", err)
	}
	return matchup, nil
}
