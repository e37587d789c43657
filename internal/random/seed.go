// Package random provides seed generation for the simulator's
// pseudo-random sources.
//
// Seeds come from crypto/rand so that unseeded simulations are still
// unpredictable, while remaining replayable once the drawn seed is kept.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a high-entropy seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
