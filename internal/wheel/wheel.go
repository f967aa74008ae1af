// Package wheel holds the counter arithmetic shared by the time and date
// engines: modular normalization of unbounded counters and half-open value
// ranges that can wrap or clamp a counter.
package wheel

// Normalize reduces raw into [0, modulus). Negative raw values wrap from the
// top (raw=-1, modulus=60 => 59). A non-positive modulus yields 0.
func Normalize(raw, modulus int) int {
	if modulus <= 0 {
		return 0
	}
	return ((raw % modulus) + modulus) % modulus
}

// Range is the half-open interval [Lo, Hi).
type Range struct {
	Lo int
	Hi int
}

// Closed builds the range covering min..max inclusive.
func Closed(min, max int) Range {
	return Range{Lo: min, Hi: max + 1}
}

func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

func (r Range) Empty() bool { return r.Len() == 0 }

// Min is the smallest value in the range.
func (r Range) Min() int { return r.Lo }

// Max is the largest value in the range (Hi-1).
func (r Range) Max() int { return r.Hi - 1 }

func (r Range) Contains(v int) bool {
	return v >= r.Lo && v < r.Hi
}

// Clamp pulls v into the range. Values above the range land on Max, values
// below on Min. An empty range returns v unchanged.
func (r Range) Clamp(v int) int {
	if r.Empty() {
		return v
	}
	if v < r.Lo {
		return r.Lo
	}
	if v > r.Max() {
		return r.Max()
	}
	return v
}

// Wrap maps v onto the range by normalizing relative to the range width, so
// stepping past Max lands on Min and vice versa.
func (r Range) Wrap(v int) int {
	if r.Empty() {
		return v
	}
	return r.Lo + Normalize(v-r.Lo, r.Len())
}

// Direction is a discrete step on a wheel.
type Direction int

const (
	Decrement Direction = -1
	Increment Direction = 1
)

func (d Direction) String() string {
	if d < 0 {
		return "decrement"
	}
	return "increment"
}
