package wheel

import "math"

// Accumulator turns a stream of continuous rotary deltas into whole ticks.
//
// The running position is rounded to the nearest integer (half away from
// zero) and Add reports how many ticks that rounded position moved since the
// previous call. Fractions are carried forward, so many small deltas add up
// the same as one large one.
type Accumulator struct {
	pos  float64
	last int
}

// Add feeds delta and returns the whole-tick movement it produced.
func (a *Accumulator) Add(delta float64) int {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0
	}
	a.pos += delta
	n := int(math.Round(a.pos))
	ticks := n - a.last
	a.last = n
	return ticks
}

// Reset drops any carried fraction.
func (a *Accumulator) Reset() {
	a.pos = 0
	a.last = 0
}
