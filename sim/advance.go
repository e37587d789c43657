package sim

import (
	"fmt"
	"strings"
)

// Advancement describes where the runners ended up after a play.
type Advancement struct {
	Bases         BaseState
	RunsScored    int
	RunnersScored []string
}

// advanceOption is one possible disposition of the runners: the
// resulting occupancy, the runs that score, and its selection weight.
type advanceOption struct {
	occupancy [3]bool
	runs      int
	weight    float64
}

// advancementMatrix maps the pre-play occupancy index to the weighted
// dispositions for one outcome family. Every index holds at least one
// option and each option list's weights sum to 1.
type advancementMatrix [8][]advanceOption

// occupancy patterns, named by the occupied bases
var (
	onFirst       = [3]bool{true, false, false}
	onSecond      = [3]bool{false, true, false}
	onThird       = [3]bool{false, false, true}
	onFirstSecond = [3]bool{true, true, false}
	onFirstThird  = [3]bool{true, false, true}
	onSecondThird = [3]bool{false, true, true}
	basesLoaded   = [3]bool{true, true, true}
)

// Splits below follow historical play-by-play advancement patterns.

// singleMatrix: the batter takes first; lead runners advance one base
// or two.
var singleMatrix = advancementMatrix{
	{{onFirst, 0, 1.0}},                                 // bases empty
	{{onFirstSecond, 0, 0.70}, {onFirstThird, 0, 0.30}}, // runner on first
	{{onFirst, 1, 0.60}, {onFirstThird, 0, 0.40}},       // runner on second
	{{onFirstSecond, 1, 0.35}, {onFirstThird, 1, 0.25}, {basesLoaded, 0, 0.40}}, // first and second
	{{onFirst, 1, 1.0}},                                 // runner on third
	{{onFirstSecond, 1, 0.70}, {onFirstThird, 1, 0.30}}, // first and third
	{{onFirst, 2, 0.60}, {onFirstThird, 1, 0.40}},       // second and third
	{{onFirstSecond, 2, 0.35}, {basesLoaded, 1, 0.45}, {onFirstThird, 2, 0.20}}, // bases loaded
}

// doubleMatrix: the batter takes second; a runner on first either
// scores or stops at third, everyone further along scores.
var doubleMatrix = advancementMatrix{
	{{onSecond, 0, 1.0}},                            // bases empty
	{{onSecond, 1, 0.60}, {onSecondThird, 0, 0.40}}, // runner on first
	{{onSecond, 1, 1.0}},                            // runner on second
	{{onSecond, 2, 0.70}, {onSecondThird, 1, 0.30}}, // first and second
	{{onSecond, 1, 1.0}},                            // runner on third
	{{onSecond, 2, 0.85}, {onSecondThird, 1, 0.15}}, // first and third
	{{onSecond, 2, 1.0}},                            // second and third
	{{onSecond, 3, 0.75}, {onSecondThird, 2, 0.25}}, // bases loaded
}

// tripleMatrix: the batter takes third and every runner scores.
var tripleMatrix = advancementMatrix{
	{{onThird, 0, 1.0}}, // bases empty
	{{onThird, 1, 1.0}}, // runner on first
	{{onThird, 1, 1.0}}, // runner on second
	{{onThird, 2, 1.0}}, // first and second
	{{onThird, 1, 1.0}}, // runner on third
	{{onThird, 2, 1.0}}, // first and third
	{{onThird, 2, 1.0}}, // second and third
	{{onThird, 3, 1.0}}, // bases loaded
}

// walkMatrix: forced runners move up one base, nobody else budges.
var walkMatrix = advancementMatrix{
	{{onFirst, 0, 1.0}},       // bases empty
	{{onFirstSecond, 0, 1.0}}, // runner on first, forced
	{{onFirstSecond, 0, 1.0}}, // runner on second holds
	{{basesLoaded, 0, 1.0}},   // first and second, forced to third
	{{onFirstThird, 0, 1.0}},  // runner on third holds
	{{basesLoaded, 0, 1.0}},   // first and third
	{{basesLoaded, 0, 1.0}},   // second and third
	{{basesLoaded, 1, 1.0}},   // bases loaded, force scores the run
}

// AdvanceRunners applies the outcome to the bases and reports the new
// state, the runs scored, and who scored. Outs and reaching on an error
// leave the bases as they were.
//
// A home run is the one path where identity survives: every runner plus
// the batter scores, by id. Matrix-driven advancement synthesizes the
// new state with placeholder ids (R1, R2, R3 by base) and scores
// anonymous "runner" entries, since the matrices track occupancy rather
// than individual runners. A single option applies deterministically;
// several options cost exactly one weighted draw.
func AdvanceRunners(rng *RNG, bases BaseState, outcome Outcome, batterID string) (Advancement, error) {
	if outcome == OutcomeHomeRun {
		return Advancement{
			RunsScored:    bases.Count() + 1,
			RunnersScored: append(bases.RunnerIDs(), batterID),
		}, nil
	}

	var matrix *advancementMatrix
	switch outcome {
	case OutcomeSingle, OutcomeInfieldSingle:
		matrix = &singleMatrix
	case OutcomeDouble:
		matrix = &doubleMatrix
	case OutcomeTriple:
		matrix = &tripleMatrix
	case OutcomeWalk, OutcomeHitByPitch:
		matrix = &walkMatrix
	default:
		return Advancement{Bases: bases}, nil
	}

	options := matrix[occupancyIndex(bases.Occupancy())]
	selected := options[0]
	if len(options) > 1 {
		labels := make([]string, len(options))
		weights := make([]float64, len(options))
		for i, opt := range options {
			labels[i] = advanceLabel(opt)
			weights[i] = opt.weight
		}
		idx, err := rng.DrawWeighted(labels, weights)
		if err != nil {
			return Advancement{}, fmt.Errorf("advance on %s: %w", outcome, err)
		}
		selected = options[idx]
	}

	scored := make([]string, selected.runs)
	for i := range scored {
		scored[i] = "runner"
	}
	return Advancement{
		Bases:         baseStateFrom(selected.occupancy),
		RunsScored:    selected.runs,
		RunnersScored: scored,
	}, nil
}

// advanceLabel names a disposition for the audit trail, for example
// "1b,3b+1" for runners left on first and third with one run in.
func advanceLabel(opt advanceOption) string {
	names := make([]string, 0, 3)
	if opt.occupancy[0] {
		names = append(names, "1b")
	}
	if opt.occupancy[1] {
		names = append(names, "2b")
	}
	if opt.occupancy[2] {
		names = append(names, "3b")
	}
	occ := "empty"
	if len(names) > 0 {
		occ = strings.Join(names, ",")
	}
	return fmt.Sprintf("%s+%d", occ, opt.runs)
}
