package sim

import (
	"math"
	"testing"
)

func TestAdvanceHomeRun(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name       string
		bases      BaseState
		wantRuns   int
		wantScored []string
	}{
		{"bases loaded", BaseState{First: "r1", Second: "r2", Third: "r3"}, 4, []string{"r1", "r2", "r3", "batter"}},
		{"solo shot", BaseState{}, 1, []string{"batter"}},
		{"two on", BaseState{First: "r1", Third: "r3"}, 3, []string{"r1", "r3", "batter"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rng := NewRNG(42)
			adv, err := AdvanceRunners(rng, tc.bases, OutcomeHomeRun, "batter")
			if err != nil {
				t.Fatalf("AdvanceRunners: %v", err)
			}

			if adv.RunsScored != tc.wantRuns {
				t.Fatalf("RunsScored = %d, want %d", adv.RunsScored, tc.wantRuns)
			}
			if !adv.Bases.Empty() {
				t.Fatalf("Bases = %+v, want cleared", adv.Bases)
			}
			if len(adv.RunnersScored) != len(tc.wantScored) {
				t.Fatalf("RunnersScored = %v, want %v", adv.RunnersScored, tc.wantScored)
			}
			for i, id := range tc.wantScored {
				if adv.RunnersScored[i] != id {
					t.Fatalf("RunnersScored[%d] = %q, want %q", i, adv.RunnersScored[i], id)
				}
			}
			if rng.AuditLen() != 0 {
				t.Fatalf("home run consumed %d draws, want 0", rng.AuditLen())
			}
		})
	}
}

func TestAdvanceWalkForces(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name     string
		bases    BaseState
		wantRuns int
		wantOcc  [3]bool
	}{
		{"bases loaded forces a run", BaseState{First: "r1", Second: "r2", Third: "r3"}, 1, basesLoaded},
		{"runner on second holds", BaseState{Second: "r2"}, 0, onFirstSecond},
		{"runner on first forced", BaseState{First: "r1"}, 0, onFirstSecond},
		{"runner on third holds", BaseState{Third: "r3"}, 0, onFirstThird},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rng := NewRNG(42)
			adv, err := AdvanceRunners(rng, tc.bases, OutcomeWalk, "batter")
			if err != nil {
				t.Fatalf("AdvanceRunners: %v", err)
			}

			if adv.RunsScored != tc.wantRuns {
				t.Fatalf("RunsScored = %d, want %d", adv.RunsScored, tc.wantRuns)
			}
			if got := adv.Bases.Occupancy(); got != tc.wantOcc {
				t.Fatalf("Occupancy = %v, want %v", got, tc.wantOcc)
			}
			// Forces are deterministic, no draw spent.
			if rng.AuditLen() != 0 {
				t.Fatalf("walk consumed %d draws, want 0", rng.AuditLen())
			}
		})
	}
}

func TestAdvanceHitByPitchMatchesWalk(t *testing.T) {
	t.Parallel()

	bases := BaseState{First: "r1", Second: "r2", Third: "r3"}

	walk, err := AdvanceRunners(NewRNG(42), bases, OutcomeWalk, "batter")
	if err != nil {
		t.Fatalf("AdvanceRunners(walk): %v", err)
	}
	hbp, err := AdvanceRunners(NewRNG(42), bases, OutcomeHitByPitch, "batter")
	if err != nil {
		t.Fatalf("AdvanceRunners(hbp): %v", err)
	}

	if walk.RunsScored != hbp.RunsScored {
		t.Fatalf("runs = %d vs %d, want identical", walk.RunsScored, hbp.RunsScored)
	}
	if walk.Bases.Occupancy() != hbp.Bases.Occupancy() {
		t.Fatalf("occupancy = %v vs %v, want identical", walk.Bases.Occupancy(), hbp.Bases.Occupancy())
	}
}

func TestAdvanceSingleEmptyBases(t *testing.T) {
	t.Parallel()

	rng := NewRNG(42)
	adv, err := AdvanceRunners(rng, BaseState{}, OutcomeSingle, "batter")
	if err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}

	if adv.RunsScored != 0 {
		t.Fatalf("RunsScored = %d, want 0", adv.RunsScored)
	}
	if got := adv.Bases.Occupancy(); got != onFirst {
		t.Fatalf("Occupancy = %v, want batter on first", got)
	}
	if rng.AuditLen() != 0 {
		t.Fatalf("single option consumed %d draws, want 0", rng.AuditLen())
	}
}

func TestAdvanceSingleRunnerOnThirdAlwaysScores(t *testing.T) {
	t.Parallel()

	adv, err := AdvanceRunners(NewRNG(42), BaseState{Third: "r3"}, OutcomeSingle, "batter")
	if err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}

	if adv.RunsScored != 1 {
		t.Fatalf("RunsScored = %d, want 1", adv.RunsScored)
	}
	if got := adv.Bases.Occupancy(); got != onFirst {
		t.Fatalf("Occupancy = %v, want batter on first only", got)
	}
}

func TestAdvanceSingleScriptedOptions(t *testing.T) {
	t.Parallel()

	// Runner on second: 60% scores, 40% holds at third.
	tcs := []struct {
		name     string
		uniform  float64
		wantRuns int
		wantOcc  [3]bool
	}{
		{"runner scores", 0.1, 1, onFirst},
		{"runner holds at third", 0.9, 0, onFirstThird},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rng := newScriptedRNG(tc.uniform)
			adv, err := AdvanceRunners(rng, BaseState{Second: "r2"}, OutcomeSingle, "batter")
			if err != nil {
				t.Fatalf("AdvanceRunners: %v", err)
			}

			if adv.RunsScored != tc.wantRuns {
				t.Fatalf("RunsScored = %d, want %d", adv.RunsScored, tc.wantRuns)
			}
			if got := adv.Bases.Occupancy(); got != tc.wantOcc {
				t.Fatalf("Occupancy = %v, want %v", got, tc.wantOcc)
			}
			if rng.AuditLen() != 1 {
				t.Fatalf("consumed %d draws, want exactly 1", rng.AuditLen())
			}
		})
	}
}

func TestAdvanceSingleBasesLoadedOptions(t *testing.T) {
	t.Parallel()

	// Cumulative weights 0.35 / 0.80 / 1.00.
	tcs := []struct {
		name     string
		uniform  float64
		wantRuns int
		wantOcc  [3]bool
	}{
		{"two score", 0.34, 2, onFirstSecond},
		{"one scores", 0.36, 1, basesLoaded},
		{"two score with trail at third", 0.99, 2, onFirstThird},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rng := newScriptedRNG(tc.uniform)
			bases := BaseState{First: "r1", Second: "r2", Third: "r3"}
			adv, err := AdvanceRunners(rng, bases, OutcomeSingle, "batter")
			if err != nil {
				t.Fatalf("AdvanceRunners: %v", err)
			}

			if adv.RunsScored != tc.wantRuns {
				t.Fatalf("RunsScored = %d, want %d", adv.RunsScored, tc.wantRuns)
			}
			if got := adv.Bases.Occupancy(); got != tc.wantOcc {
				t.Fatalf("Occupancy = %v, want %v", got, tc.wantOcc)
			}
		})
	}
}

func TestAdvanceSingleRunnerOnSecondSplits(t *testing.T) {
	t.Parallel()

	scored, held := 0, 0
	for seed := int64(0); seed < 100; seed++ {
		adv, err := AdvanceRunners(NewRNG(seed), BaseState{Second: "r2"}, OutcomeSingle, "batter")
		if err != nil {
			t.Fatalf("AdvanceRunners: %v", err)
		}
		if adv.RunsScored == 1 {
			scored++
		} else {
			held++
		}
	}

	if scored <= 30 {
		t.Fatalf("runner scored %d times of 100, want more than 30", scored)
	}
	if held <= 20 {
		t.Fatalf("runner held %d times of 100, want more than 20", held)
	}
	if scored+held != 100 {
		t.Fatalf("scored %d + held %d != 100", scored, held)
	}
}

func TestAdvanceDoubleRunnerOnFirstSplits(t *testing.T) {
	t.Parallel()

	scored, held := 0, 0
	for seed := int64(0); seed < 100; seed++ {
		adv, err := AdvanceRunners(NewRNG(seed), BaseState{First: "r1"}, OutcomeDouble, "batter")
		if err != nil {
			t.Fatalf("AdvanceRunners: %v", err)
		}
		if adv.RunsScored == 1 {
			scored++
		} else {
			held++
		}
	}

	if scored <= 30 {
		t.Fatalf("runner scored %d times of 100, want more than 30", scored)
	}
	if held <= 20 {
		t.Fatalf("runner held %d times of 100, want more than 20", held)
	}
}

func TestAdvanceTriple(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name     string
		bases    BaseState
		wantRuns int
	}{
		{"first and second", BaseState{First: "r1", Second: "r2"}, 2},
		{"bases loaded", BaseState{First: "r1", Second: "r2", Third: "r3"}, 3},
		{"bases empty", BaseState{}, 0},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			adv, err := AdvanceRunners(NewRNG(42), tc.bases, OutcomeTriple, "batter")
			if err != nil {
				t.Fatalf("AdvanceRunners: %v", err)
			}

			if adv.RunsScored != tc.wantRuns {
				t.Fatalf("RunsScored = %d, want %d", adv.RunsScored, tc.wantRuns)
			}
			if got := adv.Bases.Occupancy(); got != onThird {
				t.Fatalf("Occupancy = %v, want batter on third only", got)
			}
		})
	}
}

func TestAdvanceDoubleEmptyBases(t *testing.T) {
	t.Parallel()

	adv, err := AdvanceRunners(NewRNG(42), BaseState{}, OutcomeDouble, "batter")
	if err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}

	if adv.RunsScored != 0 {
		t.Fatalf("RunsScored = %d, want 0", adv.RunsScored)
	}
	if got := adv.Bases.Occupancy(); got != onSecond {
		t.Fatalf("Occupancy = %v, want batter on second", got)
	}
}

func TestAdvanceOutsLeaveBasesAlone(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name    string
		bases   BaseState
		outcome Outcome
	}{
		{"groundout", BaseState{First: "r1"}, OutcomeGroundout},
		{"strikeout", BaseState{First: "r1", Third: "r3"}, OutcomeStrikeoutSwinging},
		{"flyout with runner on third", BaseState{Third: "r3"}, OutcomeFlyout},
		{"reached on error", BaseState{Second: "r2"}, OutcomeReachedOnError},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rng := NewRNG(42)
			adv, err := AdvanceRunners(rng, tc.bases, tc.outcome, "batter")
			if err != nil {
				t.Fatalf("AdvanceRunners: %v", err)
			}

			if adv.RunsScored != 0 {
				t.Fatalf("RunsScored = %d, want 0", adv.RunsScored)
			}
			if adv.Bases != tc.bases {
				t.Fatalf("Bases = %+v, want unchanged %+v", adv.Bases, tc.bases)
			}
			if len(adv.RunnersScored) != 0 {
				t.Fatalf("RunnersScored = %v, want none", adv.RunnersScored)
			}
			if rng.AuditLen() != 0 {
				t.Fatalf("out consumed %d draws, want 0", rng.AuditLen())
			}
		})
	}
}

func TestAdvancePlaceholderIdentities(t *testing.T) {
	t.Parallel()

	// Matrix advancement forgets identities: the synthesized state uses
	// R1/R2/R3 and scored runners are anonymous.
	rng := newScriptedRNG(0.9)
	adv, err := AdvanceRunners(rng, BaseState{Second: "gehrilo01"}, OutcomeSingle, "ruthba01")
	if err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}

	if adv.Bases.First != "R1" || adv.Bases.Third != "R3" {
		t.Fatalf("Bases = %+v, want placeholder ids R1 and R3", adv.Bases)
	}

	rng = newScriptedRNG(0.1)
	adv, err = AdvanceRunners(rng, BaseState{Second: "gehrilo01"}, OutcomeSingle, "ruthba01")
	if err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}
	if len(adv.RunnersScored) != 1 || adv.RunnersScored[0] != "runner" {
		t.Fatalf("RunnersScored = %v, want one anonymous runner", adv.RunnersScored)
	}
}

func TestAdvanceReproducibleWithSeed(t *testing.T) {
	t.Parallel()

	bases := BaseState{Second: "r2"}

	a, err := AdvanceRunners(NewRNG(12345), bases, OutcomeSingle, "batter")
	if err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}
	b, err := AdvanceRunners(NewRNG(12345), bases, OutcomeSingle, "batter")
	if err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}

	if a.RunsScored != b.RunsScored || a.Bases.Occupancy() != b.Bases.Occupancy() {
		t.Fatalf("results differ for identical seeds: %+v vs %+v", a, b)
	}
}

func TestAdvanceDifferentSeedsCanDiffer(t *testing.T) {
	t.Parallel()

	runs := make(map[int]bool)
	for seed := int64(0); seed < 100; seed++ {
		adv, err := AdvanceRunners(NewRNG(seed), BaseState{Second: "r2"}, OutcomeSingle, "batter")
		if err != nil {
			t.Fatalf("AdvanceRunners: %v", err)
		}
		runs[adv.RunsScored] = true
	}

	if !runs[0] || !runs[1] {
		t.Fatalf("runs seen = %v, want both 0 and 1 across 100 seeds", runs)
	}
}

func TestAdvanceAuditsOneChoice(t *testing.T) {
	t.Parallel()

	rng := NewRNG(42)
	if _, err := AdvanceRunners(rng, BaseState{First: "r1"}, OutcomeSingle, "batter"); err != nil {
		t.Fatalf("AdvanceRunners: %v", err)
	}

	trail := rng.AuditTrail()
	if len(trail) != 1 {
		t.Fatalf("AuditLen = %d, want exactly 1", len(trail))
	}
	if trail[0].Kind != AuditChoice {
		t.Fatalf("Kind = %q, want %q", trail[0].Kind, AuditChoice)
	}
	if len(trail[0].Weights) != 2 {
		t.Fatalf("Weights = %v, want the two dispositions", trail[0].Weights)
	}
}

func TestAdvancementMatricesComplete(t *testing.T) {
	t.Parallel()

	matrices := map[string]*advancementMatrix{
		"single": &singleMatrix,
		"double": &doubleMatrix,
		"triple": &tripleMatrix,
		"walk":   &walkMatrix,
	}

	for name, matrix := range matrices {
		for idx, options := range matrix {
			if len(options) == 0 {
				t.Fatalf("%s matrix has no options for occupancy %d", name, idx)
			}
			total := 0.0
			for _, opt := range options {
				if opt.weight <= 0 {
					t.Fatalf("%s matrix occupancy %d has non-positive weight %v", name, idx, opt.weight)
				}
				if opt.runs < 0 || opt.runs > 3 {
					t.Fatalf("%s matrix occupancy %d scores %d runs", name, idx, opt.runs)
				}
				total += opt.weight
			}
			if math.Abs(total-1) > 1e-3 {
				t.Fatalf("%s matrix occupancy %d weights sum to %v, want 1.0", name, idx, total)
			}
		}
	}
}

func TestAdvancementMatrixRunsMatchOccupancyDelta(t *testing.T) {
	t.Parallel()

	// Runners are conserved: before-count plus the batter equals
	// after-count plus runs scored.
	matrices := map[string]*advancementMatrix{
		"single": &singleMatrix,
		"double": &doubleMatrix,
		"triple": &tripleMatrix,
		"walk":   &walkMatrix,
	}

	for name, matrix := range matrices {
		for idx, options := range matrix {
			before := 0
			for bit := 0; bit < 3; bit++ {
				if idx&(1<<bit) != 0 {
					before++
				}
			}
			for _, opt := range options {
				after := 0
				for _, occupied := range opt.occupancy {
					if occupied {
						after++
					}
				}
				if before+1 != after+opt.runs {
					t.Fatalf("%s matrix occupancy %d: %d runners + batter became %d on base + %d scored",
						name, idx, before, after, opt.runs)
				}
			}
		}
	}
}
