package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/louisbranch/dugout/internal/random"
)

// ErrInvalidWeights reports a weighted draw whose labels and weights do
// not line up.
var ErrInvalidWeights = errors.New("labels and weights must be non-empty and equal in length")

// uniformSource yields uniform floats in [0, 1). Satisfied by
// math/rand/v2 generators and by scripted sources in tests.
type uniformSource interface {
	Float64() float64
}

// AuditKind discriminates audit trail entries.
type AuditKind string

const (
	// AuditDraw is a bare uniform compared against a threshold.
	AuditDraw AuditKind = "draw"
	// AuditChoice is a weighted selection among labeled options.
	AuditChoice AuditKind = "choice"
)

// AuditEntry records one random decision.
type AuditEntry struct {
	Kind AuditKind
	// Value is the uniform that was drawn. Set for AuditDraw entries.
	Value float64
	// Label is the selected option. Set for AuditChoice entries.
	Label string
	// Weights maps every candidate label to its probability. Set for
	// AuditChoice entries.
	Weights map[string]float64
}

// RNG wraps a seeded generator with an audit log so a simulation can be
// replayed and inspected decision by decision.
//
// # Determinism
//
// A fixed seed yields a bit-identical sequence of draws and audit
// entries across runs and hosts. An RNG is not safe for concurrent use;
// give each goroutine its own instance.
type RNG struct {
	seed   int64
	source uniformSource
	log    []AuditEntry
}

// NewRNG returns a generator producing the reproducible sequence for
// seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed:   seed,
		source: rand.New(rand.NewPCG(uint64(seed), 0)),
	}
}

// NewRNGFromEntropy returns a generator seeded from the operating
// system. The drawn seed is retained so Seed and Reset still describe
// and reproduce the run.
func NewRNGFromEntropy() (*RNG, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("seed rng: %w", err)
	}
	return NewRNG(seed), nil
}

// Seed returns the seed the generator was last initialized with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// DrawUniform returns the next uniform in [0, 1) and logs it.
func (r *RNG) DrawUniform() float64 {
	v := r.source.Float64()
	r.log = append(r.log, AuditEntry{Kind: AuditDraw, Value: v})
	return v
}

// DrawWeighted selects one label index according to weights, consuming
// a single uniform against the cumulative distribution in label order.
// Exactly one choice entry is logged, carrying the selected label and
// the full weight table. Accumulated rounding error on the final
// boundary falls through to the last label.
func (r *RNG) DrawWeighted(labels []string, weights []float64) (int, error) {
	if len(labels) == 0 || len(labels) != len(weights) {
		return 0, ErrInvalidWeights
	}

	v := r.source.Float64()
	selected := len(labels) - 1
	acc := 0.0
	for i, w := range weights {
		acc += w
		if v < acc {
			selected = i
			break
		}
	}

	table := make(map[string]float64, len(labels))
	for i, label := range labels {
		table[label] = weights[i]
	}
	r.log = append(r.log, AuditEntry{
		Kind:    AuditChoice,
		Label:   labels[selected],
		Weights: table,
	})
	return selected, nil
}

// Reset reinitializes the generator from its current seed and clears
// the audit log, replaying the sequence from the start.
func (r *RNG) Reset() {
	r.ResetWithSeed(r.seed)
}

// ResetWithSeed rewinds the generator onto a new seed and clears the
// audit log.
func (r *RNG) ResetWithSeed(seed int64) {
	r.seed = seed
	r.source = rand.New(rand.NewPCG(uint64(seed), 0))
	r.log = nil
}

// AuditLen returns the number of decisions logged so far.
func (r *RNG) AuditLen() int {
	return len(r.log)
}

// AuditTrail returns a snapshot of the decision log. Mutating the
// returned entries, including their weight tables, does not affect the
// live log.
func (r *RNG) AuditTrail() []AuditEntry {
	trail := make([]AuditEntry, len(r.log))
	for i, entry := range r.log {
		trail[i] = entry
		if entry.Weights != nil {
			weights := make(map[string]float64, len(entry.Weights))
			for label, w := range entry.Weights {
				weights[label] = w
			}
			trail[i].Weights = weights
		}
	}
	return trail
}
