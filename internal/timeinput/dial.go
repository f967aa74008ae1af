package timeinput

import "fmt"

// Dial is the clock face for the focused field: twelve labels evenly spaced
// from the top, a ring of tick marks and the selection position.
type Dial struct {
	Field  Field
	Labels [12]string
	// Marks is the number of ticks in the ring; every HeavyEvery-th tick is
	// drawn heavy.
	Marks      int
	HeavyEvery int
	// Selected is the tick under the selection indicator.
	Selected int
	// Angle is the selection position in degrees clockwise from 12 o'clock.
	Angle float64
}

// Heavy reports whether tick i is a major tick.
func (d Dial) Heavy(i int) bool {
	return d.HeavyEvery > 0 && i%d.HeavyEvery == 0
}

func (e *Engine) Dial() Dial {
	d := Dial{Field: e.focus, Marks: 60, HeavyEvery: 5}

	switch {
	case e.focus == Hour && e.twentyFourHour:
		for i := range d.Labels {
			d.Labels[i] = fmt.Sprintf("%02d", i*2)
		}
		d.Marks, d.HeavyEvery = 48, 4
		h := e.NormalizedHour()
		d.Selected = h * 2
		d.Angle = float64(h) * 360 / 24
	case e.focus == Hour:
		d.Labels[0] = "12"
		for i := 1; i < len(d.Labels); i++ {
			d.Labels[i] = fmt.Sprintf("%d", i)
		}
		h := e.NormalizedHour()
		d.Selected = h * 5
		d.Angle = float64(h) * 360 / 12
	default:
		for i := range d.Labels {
			d.Labels[i] = fmt.Sprintf("%02d", i*5)
		}
		m := e.NormalizedMinute()
		d.Selected = m
		d.Angle = float64(m) * 360 / 60
	}
	return d
}
