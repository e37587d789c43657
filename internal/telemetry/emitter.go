// Package telemetry records completed simulations for later analysis.
package telemetry

import (
	"context"
	"time"

	"github.com/louisbranch/dugout/internal/platform/id"
	"github.com/louisbranch/dugout/storage"
)

// Emitter appends simulation records to a log. A nil Emitter or a nil log is
// a safe no-op, so callers never guard the call.
type Emitter struct {
	log   storage.SimulationLog
	clock func() time.Time
}

// NewEmitter creates an emitter over a simulation log.
func NewEmitter(log storage.SimulationLog) *Emitter {
	return &Emitter{log: log, clock: time.Now}
}

// SimulationCompleted records one finished simulation. Missing record ids and
// timestamps are filled in before the append.
func (e *Emitter) SimulationCompleted(ctx context.Context, record storage.SimulationRecord) error {
	if e == nil || e.log == nil {
		return nil
	}
	if record.ID == "" {
		generated, err := id.NewID()
		if err != nil {
			return err
		}
		record.ID = generated
	}
	if record.CreatedAt.IsZero() {
		if e.clock == nil {
			record.CreatedAt = time.Now().UTC()
		} else {
			record.CreatedAt = e.clock().UTC()
		}
	}
	return e.log.RecordSimulation(ctx, record)
}
