// Package montecarlo runs batches of independent at-bat simulations for
// one matchup and summarizes how the observed outcomes compare with the
// matchup's expected event probabilities.
package montecarlo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/louisbranch/dugout/sim"
)

// Config describes one batch run.
type Config struct {
	// Trials is the number of at-bats to simulate. Must be positive.
	Trials int
	// Workers caps the parallel engines. Zero or negative means
	// GOMAXPROCS. Two runs with the same seed, trials, and worker count
	// produce identical results.
	Workers int
	// Seed is the base RNG seed; worker w simulates with Seed + w.
	Seed int64
	// Tunables configures every worker's engine. The zero value means
	// defaults.
	Tunables sim.Tunables
}

// Result aggregates one batch.
type Result struct {
	// Trials is the number of completed at-bats.
	Trials int
	// Counts tallies resolved outcomes across the batch.
	Counts map[sim.Outcome]int
	// Frequencies holds Counts divided by Trials.
	Frequencies map[sim.Outcome]float64
	// Expected is the matchup's unnormalized event probabilities.
	Expected sim.EventProbabilities
	// Runs summarizes runs scored per at-bat.
	Runs RunsSummary
	// Fit reports how well the outcome mix matches Expected.
	Fit GoodnessOfFit
}

// RunsSummary describes the distribution of runs scored per at-bat.
type RunsSummary struct {
	Mean   float64
	StdDev float64
	Median float64
	P95    float64
}

// FitBucket pairs one event category's observed trial count with the
// count its probability predicts.
type FitBucket struct {
	Name     string
	Observed int
	Expected float64
}

// GoodnessOfFit compares a batch's outcome mix against the matchup's
// event probabilities with Pearson's chi-squared test. Outcomes fold to
// the seven modeled events plus a batted-ball-out remainder.
type GoodnessOfFit struct {
	// Buckets holds the fold in canonical event order, remainder last.
	Buckets []FitBucket
	// ChiSquared sums over the buckets with nonzero expectation.
	ChiSquared float64
	// DegreesOfFreedom is the nonzero bucket count minus one.
	DegreesOfFreedom int
	// PValue is the upper-tail probability of the statistic. Small
	// values mean the outcome mix is unlikely under Expected.
	PValue float64
}

// workerTally is one worker's share of the batch, merged in worker
// order after the group finishes so the aggregate stays deterministic.
type workerTally struct {
	counts map[sim.Outcome]int
	runs   []float64
}

// Run simulates cfg.Trials independent at-bats of the same matchup,
// split across workers. Each worker owns a contiguous slice of the
// trials and its own engine seeded with cfg.Seed plus the worker index,
// so a fixed configuration replays to the same Result.
func Run(ctx context.Context, cfg Config, req sim.AtBatRequest) (Result, error) {
	if cfg.Trials <= 0 {
		return Result{}, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	// The reference engine validates the tunables before any worker
	// starts and derives the expected probabilities without consuming
	// randomness.
	ref, err := sim.NewEngine(sim.Dependencies{
		RNG:      sim.NewRNG(cfg.Seed),
		Tunables: cfg.Tunables,
	})
	if err != nil {
		return Result{}, err
	}
	expected, err := ref.ExpectedProbabilities(req)
	if err != nil {
		return Result{}, err
	}

	tallies := make([]workerTally, workers)
	g, ctx := errgroup.WithContext(ctx)

	base := cfg.Trials / workers
	extra := cfg.Trials % workers
	for w := 0; w < workers; w++ {
		trials := base
		if w < extra {
			trials++
		}
		seed := cfg.Seed + int64(w)
		tally := &tallies[w]

		g.Go(func() error {
			engine, err := sim.NewEngine(sim.Dependencies{
				RNG:      sim.NewRNG(seed),
				Tunables: cfg.Tunables,
			})
			if err != nil {
				return err
			}

			tally.counts = make(map[sim.Outcome]int)
			tally.runs = make([]float64, 0, trials)
			for i := 0; i < trials; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := engine.SimulateAtBat(req)
				if err != nil {
					return err
				}
				tally.counts[result.Outcome]++
				tally.runs = append(tally.runs, float64(result.Advancement.RunsScored))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	counts := make(map[sim.Outcome]int)
	runs := make([]float64, 0, cfg.Trials)
	for _, tally := range tallies {
		for outcome, n := range tally.counts {
			counts[outcome] += n
		}
		runs = append(runs, tally.runs...)
	}

	frequencies := make(map[sim.Outcome]float64, len(counts))
	for outcome, n := range counts {
		frequencies[outcome] = float64(n) / float64(cfg.Trials)
	}

	summary, err := summarizeRuns(runs)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Trials:      cfg.Trials,
		Counts:      counts,
		Frequencies: frequencies,
		Expected:    expected,
		Runs:        summary,
		Fit:         goodnessOfFit(counts, cfg.Trials, expected),
	}, nil
}

func summarizeRuns(runs []float64) (RunsSummary, error) {
	mean, err := stats.Mean(runs)
	if err != nil {
		return RunsSummary{}, fmt.Errorf("runs mean: %w", err)
	}
	stdDev, err := stats.StandardDeviation(runs)
	if err != nil {
		return RunsSummary{}, fmt.Errorf("runs stddev: %w", err)
	}
	median, err := stats.Median(runs)
	if err != nil {
		return RunsSummary{}, fmt.Errorf("runs median: %w", err)
	}
	p95, err := stats.Percentile(runs, 95)
	if err != nil {
		return RunsSummary{}, fmt.Errorf("runs p95: %w", err)
	}
	return RunsSummary{Mean: mean, StdDev: stdDev, Median: median, P95: p95}, nil
}

// outBucket is the fold target for every outcome the seven-event model
// does not name. Reached-on-error folds here too: the resolver carves
// its probability out of the batted-ball-out remainder, so that is
// where its expected mass lives.
const outBucket = "out"

func foldIndex(outcome sim.Outcome) int {
	switch outcome {
	case sim.OutcomeStrikeoutSwinging, sim.OutcomeStrikeoutLooking:
		return 0
	case sim.OutcomeWalk:
		return 1
	case sim.OutcomeHitByPitch:
		return 2
	case sim.OutcomeSingle, sim.OutcomeInfieldSingle:
		return 3
	case sim.OutcomeDouble:
		return 4
	case sim.OutcomeTriple:
		return 5
	case sim.OutcomeHomeRun:
		return 6
	}
	return 7
}

// goodnessOfFit folds the outcome counts to the event model and runs
// Pearson's chi-squared test against the expected probabilities.
// Buckets with zero expectation carry no information and are excluded,
// with the degrees of freedom reduced to match.
func goodnessOfFit(counts map[sim.Outcome]int, trials int, expected sim.EventProbabilities) GoodnessOfFit {
	events := sim.Events()
	buckets := make([]FitBucket, len(events)+1)
	for i, event := range events {
		buckets[i] = FitBucket{
			Name:     string(event),
			Expected: expected[event] * float64(trials),
		}
	}
	buckets[len(events)] = FitBucket{
		Name:     outBucket,
		Expected: expected.ImpliedOutProbability() * float64(trials),
	}
	for outcome, n := range counts {
		buckets[foldIndex(outcome)].Observed += n
	}

	var statistic float64
	df := -1
	for _, bucket := range buckets {
		if bucket.Expected <= 0 {
			continue
		}
		diff := float64(bucket.Observed) - bucket.Expected
		statistic += diff * diff / bucket.Expected
		df++
	}

	fit := GoodnessOfFit{
		Buckets:          buckets,
		ChiSquared:       statistic,
		DegreesOfFreedom: df,
		PValue:           1,
	}
	if df >= 1 {
		dist := distuv.ChiSquared{K: float64(df)}
		fit.PValue = 1 - dist.CDF(statistic)
	}
	return fit
}
