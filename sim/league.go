package sim

import "fmt"

// Era identifies the league-baseline bucket a season year falls into.
type Era int

const (
	EraDeadball Era = iota
	EraLiveball
	EraModern
)

func (e Era) String() string {
	switch e {
	case EraDeadball:
		return "deadball"
	case EraLiveball:
		return "liveball"
	case EraModern:
		return "modern"
	}
	return "unknown"
}

// EraFor buckets a season year. Years before 1920 are deadball, 1920
// through 1960 are liveball, and 1961 onward is modern.
func EraFor(year int) Era {
	switch {
	case year < 1920:
		return EraDeadball
	case year < 1961:
		return EraLiveball
	default:
		return EraModern
	}
}

// EraBaselines holds the league-average event probabilities for each
// era. The baseline is the third leg of the odds-ratio combination and
// the fallback for players with no recorded opportunities.
type EraBaselines struct {
	Deadball EventProbabilities `yaml:"deadball"`
	Liveball EventProbabilities `yaml:"liveball"`
	Modern   EventProbabilities `yaml:"modern"`
}

// For returns a copy of the baseline for the year's era. Callers may
// mutate the result freely.
func (b EraBaselines) For(year int) EventProbabilities {
	switch EraFor(year) {
	case EraDeadball:
		return b.Deadball.Clone()
	case EraLiveball:
		return b.Liveball.Clone()
	default:
		return b.Modern.Clone()
	}
}

// Validate checks that every era carries all seven events with
// probabilities strictly inside (0, 1), the range the odds-ratio
// combination requires of its baseline.
func (b EraBaselines) Validate() error {
	eras := []struct {
		era   Era
		probs EventProbabilities
	}{
		{EraDeadball, b.Deadball},
		{EraLiveball, b.Liveball},
		{EraModern, b.Modern},
	}
	for _, e := range eras {
		for _, event := range Events() {
			p, ok := e.probs[event]
			if !ok || p <= 0 || p >= 1 {
				return fmt.Errorf("%s %s: %w", e.era, event, ErrInvalidLeagueBaseline)
			}
		}
	}
	return nil
}

func defaultBaselines() EraBaselines {
	return EraBaselines{
		Deadball: EventProbabilities{
			EventStrikeout:  0.10,
			EventWalk:       0.08,
			EventHitByPitch: 0.008,
			EventSingle:     0.18,
			EventDouble:     0.04,
			EventTriple:     0.02,
			EventHomeRun:    0.005,
		},
		Liveball: EventProbabilities{
			EventStrikeout:  0.12,
			EventWalk:       0.09,
			EventHitByPitch: 0.008,
			EventSingle:     0.17,
			EventDouble:     0.04,
			EventTriple:     0.015,
			EventHomeRun:    0.02,
		},
		Modern: EventProbabilities{
			EventStrikeout:  0.21,
			EventWalk:       0.08,
			EventHitByPitch: 0.01,
			EventSingle:     0.15,
			EventDouble:     0.045,
			EventTriple:     0.005,
			EventHomeRun:    0.03,
		},
	}
}
