package tui

import (
	"math"
	"strings"

	"crownpick/internal/timeinput"
)

// renderDial draws d as a character grid of 2*radius+1 lines. Cells are
// twice as tall as they are wide, so x distances are doubled. The twelve
// labels sit on the rim, the hand runs from the hub toward d.Angle and ends
// in a tip.
func renderDial(d timeinput.Dial, radius int) []string {
	if radius < 2 {
		radius = 2
	}
	rows, cols := 2*radius+1, 4*radius+3
	cx, cy := 2*radius+1, radius
	grid := make([][]string, rows)
	for y := range grid {
		grid[y] = make([]string, cols)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	put := func(x, y int, s string) {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = s
		}
	}
	at := func(deg float64, r float64) (int, int) {
		rad := deg * math.Pi / 180
		return cx + int(math.Round(2*r*math.Sin(rad))), cy - int(math.Round(r*math.Cos(rad)))
	}

	// Hand.
	for s := 1; s < radius; s++ {
		x, y := at(d.Angle, float64(s))
		g := glyphHand()
		if s == radius-1 {
			g = glyphHandTip()
		}
		put(x, y, g)
	}
	put(cx, cy, glyphHub())

	// Labels overwrite the hand.
	for i, label := range d.Labels {
		x, y := at(float64(i)*30, float64(radius))
		n := len([]rune(label))
		start := x - n/2
		if start < 0 {
			start = 0
		}
		if start+n > cols {
			start = cols - n
		}
		for j, r := range []rune(label) {
			put(start+j, y, string(r))
		}
	}

	lines := make([]string, rows)
	for y := range grid {
		lines[y] = strings.Join(grid[y], "")
	}
	return lines
}
