package sim

// Event identifies one of the seven modeled plate-appearance events.
type Event string

const (
	EventStrikeout  Event = "strikeout"
	EventWalk       Event = "walk"
	EventHitByPitch Event = "hbp"
	EventSingle     Event = "single"
	EventDouble     Event = "double"
	EventTriple     Event = "triple"
	EventHomeRun    Event = "home_run"
)

// Events returns the canonical event order. Every place that iterates an
// EventProbabilities map walks this slice so iteration stays deterministic.
func Events() []Event {
	return []Event{
		EventStrikeout,
		EventWalk,
		EventHitByPitch,
		EventSingle,
		EventDouble,
		EventTriple,
		EventHomeRun,
	}
}

// EventProbabilities maps events to probabilities in [0, 1].
//
// A missing key and an explicit zero are different inputs: CombineAll
// substitutes the league value for a missing batter or pitcher key but
// combines an explicit zero as zero. The total may legitimately stay below
// 1.0; the remainder is the implicit batted-ball-out probability and must
// not be normalized away before outcome resolution.
type EventProbabilities map[Event]float64

// Total sums all event probabilities.
func (p EventProbabilities) Total() float64 {
	var total float64
	for _, value := range p {
		total += value
	}
	return total
}

// ImpliedOutProbability returns the probability mass the map leaves to
// batted-ball outs, clamped at zero when the events already sum past 1.
func (p EventProbabilities) ImpliedOutProbability() float64 {
	if remainder := 1 - p.Total(); remainder > 0 {
		return remainder
	}
	return 0
}

// Clone returns an independent copy.
func (p EventProbabilities) Clone() EventProbabilities {
	out := make(EventProbabilities, len(p))
	for event, value := range p {
		out[event] = value
	}
	return out
}
