package sim

import "github.com/louisbranch/dugout/stats"

// BatterEventProbabilities derives per-plate-appearance event rates
// from a batter's season totals. A batter with no plate appearances
// gets the era baseline for the year unchanged.
func BatterEventProbabilities(totals stats.BattingTotals, year int, baselines EraBaselines) EventProbabilities {
	pa := totals.PlateAppearances()
	if pa == 0 {
		return baselines.For(year)
	}
	n := float64(pa)
	return EventProbabilities{
		EventStrikeout:  float64(totals.Strikeouts) / n,
		EventWalk:       float64(totals.Walks) / n,
		EventHitByPitch: float64(totals.HitByPitch) / n,
		EventSingle:     float64(totals.Singles()) / n,
		EventDouble:     float64(totals.Doubles) / n,
		EventTriple:     float64(totals.Triples) / n,
		EventHomeRun:    float64(totals.HomeRuns) / n,
	}
}

// PitcherEventProbabilities derives per-batter-faced event rates from a
// pitcher's season totals. Strikeouts, walks, hit batters, and home
// runs come straight off the pitching line. Pitching lines do not break
// hits allowed down by type, so the non-homer hits are split across
// single, double, and triple in the era baseline's ratio between them.
// A pitcher with no batters faced gets the era baseline unchanged.
func PitcherEventProbabilities(totals stats.PitchingTotals, year int, baselines EraBaselines) EventProbabilities {
	if totals.BattersFaced == 0 {
		return baselines.For(year)
	}
	n := float64(totals.BattersFaced)
	league := baselines.For(year)

	probs := EventProbabilities{
		EventStrikeout:  float64(totals.Strikeouts) / n,
		EventWalk:       float64(totals.WalksAllowed) / n,
		EventHitByPitch: float64(totals.HitBatters) / n,
		EventHomeRun:    float64(totals.HomeRunsAllowed) / n,
	}

	nonHRHits := float64(totals.HitsAllowed - totals.HomeRunsAllowed)
	leagueNonHR := league[EventSingle] + league[EventDouble] + league[EventTriple]
	for _, event := range []Event{EventSingle, EventDouble, EventTriple} {
		if leagueNonHR > 0 {
			probs[event] = (league[event] / leagueNonHR) * (nonHRHits / n)
		} else {
			probs[event] = 0
		}
	}
	return probs
}

// AdjustForPark scales the hit probabilities for the batter's home
// park. Factor 100 is neutral and returns an unmodified copy; away from
// neutral, half the factor's distance applies, reflecting the half-home
// schedule. Strikeouts, walks, and hit-by-pitch are left alone, and
// only events present in the map are touched.
func AdjustForPark(probs EventProbabilities, parkFactor int) EventProbabilities {
	adjusted := probs.Clone()
	if parkFactor == 100 {
		return adjusted
	}
	multiplier := 1 + (float64(parkFactor-100)/100)*0.5
	for _, event := range []Event{EventSingle, EventDouble, EventTriple, EventHomeRun} {
		if p, ok := adjusted[event]; ok {
			adjusted[event] = p * multiplier
		}
	}
	return adjusted
}
