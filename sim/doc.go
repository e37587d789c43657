// Package sim models a single baseball plate appearance as a reproducible
// stochastic process.
//
// The pipeline combines batter, pitcher, and era-baseline event rates into
// matchup probabilities with the odds-ratio (log5) method, resolves one
// concrete outcome through a chained conditional decision tree, and advances
// baserunners through fixed probability matrices. Every random draw comes
// from a seeded, auditable source, so a simulation is exactly replayable
// from its seed and its audit trail explains every branch taken.
//
// The package is organized around the pipeline stages:
//   - odds: probability/odds conversion and the odds-ratio combiner
//   - league: era baselines keyed by season year
//   - rates: season totals to per-opportunity probabilities, park adjustment
//   - conditionals and resolver: the decision tree
//   - baserun and advance: base states and advancement matrices
//   - rng: the seeded, audited random source
//   - engine: orchestration plus the stats-provider boundary
package sim
