package sim

import "testing"

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeStrikeoutSwinging, "strikeout_swinging"},
		{OutcomeStrikeoutLooking, "strikeout_looking"},
		{OutcomeWalk, "walk"},
		{OutcomeHitByPitch, "hit_by_pitch"},
		{OutcomeSingle, "single"},
		{OutcomeDouble, "double"},
		{OutcomeTriple, "triple"},
		{OutcomeHomeRun, "home_run"},
		{OutcomeInfieldSingle, "infield_single"},
		{OutcomeGroundout, "groundout"},
		{OutcomeFlyout, "flyout"},
		{OutcomeLineout, "lineout"},
		{OutcomePopup, "popup"},
		{OutcomeFoulOut, "foul_out"},
		{OutcomeReachedOnError, "reached_on_error"},
		{OutcomeSacrificeFly, "sacrifice_fly"},
		{OutcomeSacrificeHit, "sacrifice_hit"},
		{OutcomeGIDP, "gidp"},
		{OutcomeFieldersChoice, "fielders_choice"},
		{Outcome(99), "unknown"},
	}

	for _, tc := range tcs {
		if got := tc.outcome.String(); got != tc.want {
			t.Fatalf("Outcome(%d).String() = %q, want %q", int(tc.outcome), got, tc.want)
		}
	}
}

func TestOutcomeIsHit(t *testing.T) {
	t.Parallel()

	hits := []Outcome{OutcomeSingle, OutcomeDouble, OutcomeTriple, OutcomeHomeRun, OutcomeInfieldSingle}
	for _, o := range hits {
		if !o.IsHit() {
			t.Fatalf("%s.IsHit() = false, want true", o)
		}
	}

	for _, o := range []Outcome{OutcomeWalk, OutcomeHitByPitch, OutcomeGroundout, OutcomeReachedOnError} {
		if o.IsHit() {
			t.Fatalf("%s.IsHit() = true, want false", o)
		}
	}
}

func TestOutcomeIsOut(t *testing.T) {
	t.Parallel()

	outs := []Outcome{
		OutcomeStrikeoutSwinging, OutcomeStrikeoutLooking,
		OutcomeGroundout, OutcomeFlyout, OutcomeLineout, OutcomePopup,
		OutcomeFoulOut, OutcomeSacrificeFly, OutcomeSacrificeHit,
		OutcomeGIDP, OutcomeFieldersChoice,
	}
	for _, o := range outs {
		if !o.IsOut() {
			t.Fatalf("%s.IsOut() = false, want true", o)
		}
	}

	for _, o := range []Outcome{OutcomeSingle, OutcomeWalk, OutcomeHitByPitch, OutcomeReachedOnError, OutcomeHomeRun} {
		if o.IsOut() {
			t.Fatalf("%s.IsOut() = true, want false", o)
		}
	}
}

func TestOutcomeIsOnBase(t *testing.T) {
	t.Parallel()

	onBase := []Outcome{
		OutcomeSingle, OutcomeDouble, OutcomeTriple, OutcomeInfieldSingle,
		OutcomeWalk, OutcomeHitByPitch, OutcomeReachedOnError,
	}
	for _, o := range onBase {
		if !o.IsOnBase() {
			t.Fatalf("%s.IsOnBase() = false, want true", o)
		}
	}

	// The batter rounds the bases on a homer and ends in the dugout.
	for _, o := range []Outcome{OutcomeHomeRun, OutcomeStrikeoutSwinging, OutcomeStrikeoutLooking, OutcomeGIDP} {
		if o.IsOnBase() {
			t.Fatalf("%s.IsOnBase() = true, want false", o)
		}
	}
}

func TestOutcomeBasesGained(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		outcome Outcome
		want    int
	}{
		{OutcomeSingle, 1},
		{OutcomeInfieldSingle, 1},
		{OutcomeDouble, 2},
		{OutcomeTriple, 3},
		{OutcomeHomeRun, 4},
		{OutcomeWalk, 1},
		{OutcomeHitByPitch, 1},
		{OutcomeReachedOnError, 1},
		{OutcomeGroundout, 0},
		{OutcomeStrikeoutSwinging, 0},
		{OutcomeGIDP, 0},
	}

	for _, tc := range tcs {
		if got := tc.outcome.BasesGained(); got != tc.want {
			t.Fatalf("%s.BasesGained() = %d, want %d", tc.outcome, got, tc.want)
		}
	}
}

func TestOutcomeIsStrikeout(t *testing.T) {
	t.Parallel()

	if !OutcomeStrikeoutSwinging.IsStrikeout() || !OutcomeStrikeoutLooking.IsStrikeout() {
		t.Fatal("strikeout outcomes must report IsStrikeout")
	}
	if OutcomeGroundout.IsStrikeout() {
		t.Fatal("groundout.IsStrikeout() = true, want false")
	}
}

func TestOutcomeIsExtraBaseHit(t *testing.T) {
	t.Parallel()

	for _, o := range []Outcome{OutcomeDouble, OutcomeTriple, OutcomeHomeRun} {
		if !o.IsExtraBaseHit() {
			t.Fatalf("%s.IsExtraBaseHit() = false, want true", o)
		}
	}
	for _, o := range []Outcome{OutcomeSingle, OutcomeInfieldSingle, OutcomeWalk} {
		if o.IsExtraBaseHit() {
			t.Fatalf("%s.IsExtraBaseHit() = true, want false", o)
		}
	}
}
