package sim

// BaseState tracks which runner occupies which base. An empty string
// means the base is open.
type BaseState struct {
	First  string
	Second string
	Third  string
}

// Empty reports whether no runners are on base.
func (b BaseState) Empty() bool {
	return b == BaseState{}
}

// Count returns the number of runners on base.
func (b BaseState) Count() int {
	n := 0
	for _, occupied := range b.Occupancy() {
		if occupied {
			n++
		}
	}
	return n
}

// Occupancy returns the (first, second, third) presence pattern used to
// key the advancement matrices.
func (b BaseState) Occupancy() [3]bool {
	return [3]bool{b.First != "", b.Second != "", b.Third != ""}
}

// RunnerIDs returns the ids of the runners on base, in base order.
func (b BaseState) RunnerIDs() []string {
	ids := make([]string, 0, 3)
	if b.First != "" {
		ids = append(ids, b.First)
	}
	if b.Second != "" {
		ids = append(ids, b.Second)
	}
	if b.Third != "" {
		ids = append(ids, b.Third)
	}
	return ids
}

// baseStateFrom synthesizes a state from an occupancy pattern using the
// placeholder runner ids R1, R2, R3 by base. Matrix advancement tracks
// occupancy only, so identities do not survive it.
func baseStateFrom(occ [3]bool) BaseState {
	var b BaseState
	if occ[0] {
		b.First = "R1"
	}
	if occ[1] {
		b.Second = "R2"
	}
	if occ[2] {
		b.Third = "R3"
	}
	return b
}

// occupancyIndex packs the pattern into a 3-bit matrix index: first
// base is the low bit.
func occupancyIndex(occ [3]bool) int {
	idx := 0
	if occ[0] {
		idx |= 1
	}
	if occ[1] {
		idx |= 2
	}
	if occ[2] {
		idx |= 4
	}
	return idx
}
