package sim

// Outcome is the resolved result of a plate appearance.
type Outcome int

const (
	OutcomeStrikeoutSwinging Outcome = iota
	OutcomeStrikeoutLooking
	OutcomeWalk
	OutcomeHitByPitch
	OutcomeSingle
	OutcomeDouble
	OutcomeTriple
	OutcomeHomeRun
	OutcomeInfieldSingle
	OutcomeGroundout
	OutcomeFlyout
	OutcomeLineout
	OutcomePopup
	OutcomeFoulOut
	OutcomeReachedOnError
	OutcomeSacrificeFly
	OutcomeSacrificeHit
	OutcomeGIDP
	OutcomeFieldersChoice
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStrikeoutSwinging:
		return "strikeout_swinging"
	case OutcomeStrikeoutLooking:
		return "strikeout_looking"
	case OutcomeWalk:
		return "walk"
	case OutcomeHitByPitch:
		return "hit_by_pitch"
	case OutcomeSingle:
		return "single"
	case OutcomeDouble:
		return "double"
	case OutcomeTriple:
		return "triple"
	case OutcomeHomeRun:
		return "home_run"
	case OutcomeInfieldSingle:
		return "infield_single"
	case OutcomeGroundout:
		return "groundout"
	case OutcomeFlyout:
		return "flyout"
	case OutcomeLineout:
		return "lineout"
	case OutcomePopup:
		return "popup"
	case OutcomeFoulOut:
		return "foul_out"
	case OutcomeReachedOnError:
		return "reached_on_error"
	case OutcomeSacrificeFly:
		return "sacrifice_fly"
	case OutcomeSacrificeHit:
		return "sacrifice_hit"
	case OutcomeGIDP:
		return "gidp"
	case OutcomeFieldersChoice:
		return "fielders_choice"
	}
	return "unknown"
}

// IsHit reports whether the outcome counts as a base hit.
func (o Outcome) IsHit() bool {
	switch o {
	case OutcomeSingle, OutcomeDouble, OutcomeTriple, OutcomeHomeRun,
		OutcomeInfieldSingle:
		return true
	}
	return false
}

// IsOut reports whether at least one out is recorded on the play. A
// double play records two.
func (o Outcome) IsOut() bool {
	switch o {
	case OutcomeStrikeoutSwinging, OutcomeStrikeoutLooking,
		OutcomeGroundout, OutcomeFlyout, OutcomeLineout, OutcomePopup,
		OutcomeFoulOut, OutcomeSacrificeFly, OutcomeSacrificeHit,
		OutcomeGIDP, OutcomeFieldersChoice:
		return true
	}
	return false
}

// IsOnBase reports whether the batter ends the play standing on a base.
// A home run clears the bases, so it reports false here.
func (o Outcome) IsOnBase() bool {
	switch o {
	case OutcomeSingle, OutcomeDouble, OutcomeTriple, OutcomeInfieldSingle,
		OutcomeWalk, OutcomeHitByPitch, OutcomeReachedOnError:
		return true
	}
	return false
}

// BasesGained returns how many bases the batter reaches on the play,
// zero for outs.
func (o Outcome) BasesGained() int {
	switch o {
	case OutcomeSingle, OutcomeInfieldSingle, OutcomeWalk,
		OutcomeHitByPitch, OutcomeReachedOnError:
		return 1
	case OutcomeDouble:
		return 2
	case OutcomeTriple:
		return 3
	case OutcomeHomeRun:
		return 4
	}
	return 0
}

// IsStrikeout reports whether the plate appearance ended on strikes.
func (o Outcome) IsStrikeout() bool {
	return o == OutcomeStrikeoutSwinging || o == OutcomeStrikeoutLooking
}

// IsExtraBaseHit reports whether the hit went for extra bases.
func (o Outcome) IsExtraBaseHit() bool {
	return o == OutcomeDouble || o == OutcomeTriple || o == OutcomeHomeRun
}
