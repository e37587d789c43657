package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("probability must be between 0 and 1")

// ErrInvalidOdds indicates negative odds passed to ToProbability.
var ErrInvalidOdds = errors.New("odds must be non-negative")

// ErrInvalidLeagueBaseline indicates a league probability outside the open
// interval (0, 1); the combiner divides by league odds.
var ErrInvalidLeagueBaseline = errors.New("league probability must be strictly between 0 and 1")

// ErrDegenerateNormalization indicates an all-zero probability set.
var ErrDegenerateNormalization = errors.New("cannot normalize all-zero probabilities")

// ToOdds converts a probability to odds (p against 1-p). Zero maps to zero
// and one maps to +Inf.
func ToOdds(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, ErrInvalidProbability
	}
	if p == 0 {
		return 0, nil
	}
	if p == 1 {
		return math.Inf(1), nil
	}
	return p / (1 - p), nil
}

// ToProbability converts odds back to a probability. +Inf maps to one.
func ToProbability(odds float64) (float64, error) {
	if math.IsInf(odds, 1) {
		return 1, nil
	}
	if odds < 0 {
		return 0, ErrInvalidOdds
	}
	return odds / (1 + odds), nil
}

// Combine blends a batter and a pitcher probability against a league
// baseline with the odds-ratio method:
//
//	matchupOdds = (batterOdds · pitcherOdds) / leagueOdds
//
// The operation is symmetric in batter and pitcher, and when both inputs
// equal the league value the result is the league value. A zero on either
// side short-circuits to 0 and a one to 1; the league value must be strictly
// inside (0, 1).
//
// This is deliberately not an average: two above-league inputs produce a
// result above both, which is what distinguishes a real matchup model from
// naive rate blending.
func Combine(batterP, pitcherP, leagueP float64) (float64, error) {
	if leagueP <= 0 || leagueP >= 1 {
		return 0, ErrInvalidLeagueBaseline
	}

	if batterP == 0 || pitcherP == 0 {
		return 0, nil
	}
	if batterP == 1 || pitcherP == 1 {
		return 1, nil
	}

	batterOdds, err := ToOdds(batterP)
	if err != nil {
		return 0, err
	}
	pitcherOdds, err := ToOdds(pitcherP)
	if err != nil {
		return 0, err
	}
	leagueOdds, err := ToOdds(leagueP)
	if err != nil {
		return 0, err
	}

	return ToProbability(batterOdds * pitcherOdds / leagueOdds)
}

// CombineAll applies Combine to every canonical event. A batter or pitcher
// key that is absent falls back to the league value for that event, so a
// player with no signal for an event is treated as league average.
//
// The result is NOT normalized: the shortfall from 1.0 is the implicit
// batted-ball-out probability consumed by the outcome resolver.
func CombineAll(batter, pitcher, league EventProbabilities) (EventProbabilities, error) {
	matchup := make(EventProbabilities, len(Events()))

	for _, event := range Events() {
		leagueP := league[event]

		batterP, ok := batter[event]
		if !ok {
			batterP = leagueP
		}
		pitcherP, ok := pitcher[event]
		if !ok {
			pitcherP = leagueP
		}

		combined, err := Combine(batterP, pitcherP, leagueP)
		if err != nil {
			return nil, fmt.Errorf("combine %s: %w", event, err)
		}
		matchup[event] = combined
	}

	return matchup, nil
}

// Normalize scales probabilities so they sum to 1.0, preserving pairwise
// ratios. The input map is left untouched.
func Normalize(probs EventProbabilities) (EventProbabilities, error) {
	total := probs.Total()
	if total == 0 {
		return nil, ErrDegenerateNormalization
	}

	out := make(EventProbabilities, len(probs))
	for event, value := range probs {
		out[event] = value / total
	}
	return out, nil
}
