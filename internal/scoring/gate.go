package scoring

// DefaultMinResponses is the floor of collected answers below which a
// survey is not scored. The per-survey min_responses field is advisory
// metadata for the owner; the engine enforces this floor.
const DefaultMinResponses = 5

// Gate decides whether a survey has collected enough answers to be
// scored at all.
type Gate struct {
	Min int
}

// NewGate returns a gate with the given floor, falling back to
// DefaultMinResponses for non-positive values.
func NewGate(min int) Gate {
	if min <= 0 {
		min = DefaultMinResponses
	}
	return Gate{Min: min}
}

// Eligible reports whether a survey with the given stored answer count
// may be scored.
func (g Gate) Eligible(answerCount int) bool {
	return answerCount >= g.Min
}
