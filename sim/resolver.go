package sim

// Situation carries the game context that can upgrade an out subtype.
// The zero value means nobody on and nobody out.
type Situation struct {
	Outs     int
	OnFirst  bool
	OnSecond bool
	OnThird  bool
}

// ResolveAtBat walks the chained decision tree and returns the
// plate-appearance outcome: hit-by-pitch, then walk, then strikeout,
// then contact quality, each level spending one uniform draw. The
// resolver is total; every conditional set yields some outcome.
//
// # Ordering
//
// The draw order is part of the reproducibility contract. Replaying a
// seed replays these draws in exactly this sequence, so branches must
// not be reordered, batched, or short-circuited.
func ResolveAtBat(rng *RNG, cond ConditionalProbabilities, sit Situation, tun Tunables) Outcome {
	if rng.DrawUniform() < cond.HitByPitch {
		return OutcomeHitByPitch
	}
	if rng.DrawUniform() < cond.Walk {
		return OutcomeWalk
	}
	if rng.DrawUniform() < cond.Strikeout {
		if rng.DrawUniform() < tun.StrikeoutSwingingRate {
			return OutcomeStrikeoutSwinging
		}
		return OutcomeStrikeoutLooking
	}
	if rng.DrawUniform() < cond.HomeRun {
		return OutcomeHomeRun
	}
	if rng.DrawUniform() < cond.Hit {
		if rng.DrawUniform() < cond.ExtraBase {
			if rng.DrawUniform() < cond.Triple {
				return OutcomeTriple
			}
			return OutcomeDouble
		}
		if rng.DrawUniform() < tun.InfieldSingleRate {
			return OutcomeInfieldSingle
		}
		return OutcomeSingle
	}
	return resolveOut(rng, sit, tun)
}

// resolveOut picks the batted-ball out subtype. An error check comes
// first, then one cumulative draw over the out-type distribution, then
// the situational upgrades: with fewer than two outs a groundout can
// become a double play when first is occupied, and a flyout a sacrifice
// fly when third is.
func resolveOut(rng *RNG, sit Situation, tun Tunables) Outcome {
	if rng.DrawUniform() < tun.ErrorRate {
		return OutcomeReachedOnError
	}

	outTypes := []struct {
		outcome Outcome
		weight  float64
	}{
		{OutcomeGroundout, tun.OutTypes.Groundout},
		{OutcomeFlyout, tun.OutTypes.Flyout},
		{OutcomeLineout, tun.OutTypes.Lineout},
		{OutcomePopup, tun.OutTypes.Popup},
	}

	roll := rng.DrawUniform()
	outcome := OutcomeGroundout
	acc := 0.0
	for _, ot := range outTypes {
		acc += ot.weight
		if roll < acc {
			outcome = ot.outcome
			break
		}
	}

	if outcome == OutcomeGroundout && sit.Outs < 2 && sit.OnFirst {
		if rng.DrawUniform() < tun.GIDPRate {
			return OutcomeGIDP
		}
	}
	if outcome == OutcomeFlyout && sit.Outs < 2 && sit.OnThird {
		if rng.DrawUniform() < tun.SacrificeFlyRate {
			return OutcomeSacrificeFly
		}
	}
	return outcome
}
