package sim

import "math"

// ConditionalProbabilities sequences matchup event probabilities into
// the chained decision tree the resolver walks. Each field is the
// probability of its branch given that every earlier branch failed, so
// a single uniform draw per level reproduces the joint distribution.
type ConditionalProbabilities struct {
	// HitByPitch is the unconditional plunking probability.
	HitByPitch float64
	// Walk is conditioned on no hit-by-pitch.
	Walk float64
	// Strikeout is conditioned on no hit-by-pitch and no walk.
	Strikeout float64
	// HomeRun is conditioned on contact.
	HomeRun float64
	// Hit is conditioned on contact that stayed in the park.
	Hit float64
	// ExtraBase is conditioned on a non-homer hit.
	ExtraBase float64
	// Triple is conditioned on an extra-base hit.
	Triple float64
}

// DeriveConditionals converts matchup event probabilities into the
// chained conditionals. Events absent from the map default to typical
// modern-era rates. Divisions with a zero or negative denominator yield
// zero, and every result is clamped to [0, 1], so the derivation is
// total even on degenerate inputs.
func DeriveConditionals(probs EventProbabilities) ConditionalProbabilities {
	hbp := eventOr(probs, EventHitByPitch, 0.01)
	walk := eventOr(probs, EventWalk, 0.08)
	strikeout := eventOr(probs, EventStrikeout, 0.20)
	single := eventOr(probs, EventSingle, 0.15)
	double := eventOr(probs, EventDouble, 0.04)
	triple := eventOr(probs, EventTriple, 0.005)
	homeRun := eventOr(probs, EventHomeRun, 0.03)

	contact := 1 - hbp - walk - strikeout
	hits := single + double + triple
	extraBase := double + triple

	return ConditionalProbabilities{
		HitByPitch: clamp01(hbp),
		Walk:       clamp01(ratio(walk, 1-hbp)),
		Strikeout:  clamp01(ratio(strikeout, 1-hbp-walk)),
		HomeRun:    clamp01(ratio(homeRun, contact)),
		Hit:        clamp01(ratio(hits, contact-homeRun)),
		ExtraBase:  clamp01(ratio(extraBase, hits)),
		Triple:     clamp01(ratio(triple, extraBase)),
	}
}

func eventOr(probs EventProbabilities, event Event, fallback float64) float64 {
	if p, ok := probs[event]; ok {
		return p
	}
	return fallback
}

// ratio guards division in the conditional chain: a denominator at or
// below zero means the branch is unreachable, so its probability is 0.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

func clamp01(p float64) float64 {
	return math.Min(1, math.Max(0, p))
}
