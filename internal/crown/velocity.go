package crown

import (
	"sync"
	"time"
)

const (
	DefaultVelocityWindow     = 200 * time.Millisecond
	DefaultVelocityThreshold  = 4
	DefaultVelocityMultiplier = 3.0
)

// Velocity scales detents during a fast spin. Once Threshold detents in the
// same direction land inside Window, each further detent counts Multiplier
// times.
//
// Thread-safe: the reader goroutine and the host may both feed it.
type Velocity struct {
	Window     time.Duration
	Threshold  int
	Multiplier float64
	Now        func() time.Time

	mu     sync.Mutex
	recent []velocityStep
}

type velocityStep struct {
	at        time.Time
	direction int
}

func NewVelocity() *Velocity {
	return &Velocity{
		Window:     DefaultVelocityWindow,
		Threshold:  DefaultVelocityThreshold,
		Multiplier: DefaultVelocityMultiplier,
	}
}

// Scale records detents and returns them scaled for the current spin speed.
func (v *Velocity) Scale(detents int) float64 {
	if detents == 0 {
		return 0
	}
	dir := 1
	if detents < 0 {
		dir = -1
	}
	count := v.addSteps(dir, detents*dir)
	mult := v.Multiplier
	if mult <= 0 {
		mult = 1
	}
	if v.Threshold > 0 && count >= v.Threshold {
		return float64(detents) * mult
	}
	return float64(detents)
}

// addSteps records n steps in direction dir and returns the count of recent
// steps in that direction within the window.
func (v *Velocity) addSteps(dir, n int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	if v.Now != nil {
		now = v.Now()
	}
	window := v.Window
	if window <= 0 {
		window = DefaultVelocityWindow
	}
	cutoff := now.Add(-window)

	filtered := v.recent[:0]
	for _, s := range v.recent {
		if s.at.After(cutoff) {
			filtered = append(filtered, s)
		}
	}
	for i := 0; i < n; i++ {
		filtered = append(filtered, velocityStep{at: now, direction: dir})
	}
	v.recent = filtered

	sameDir := 0
	for _, s := range filtered {
		if s.direction == dir {
			sameDir++
		}
	}
	return sameDir
}

// Sensitivity is how many picker ticks one crown detent is worth.
type Sensitivity float64

const (
	Low    Sensitivity = 0.5
	Medium Sensitivity = 1
	High   Sensitivity = 2
)

// FieldSensitivity is the per-field sensitivity of the clock face and date
// wheels. Hours turn slower than minutes so a spin does not skip past the
// intended hour.
func FieldSensitivity(field string) Sensitivity {
	switch field {
	case "hour":
		return Low
	default:
		return Medium
	}
}
