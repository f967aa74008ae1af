package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to exactly width columns (ANSI-aware) and height
// lines so columns line up under lipgloss.JoinHorizontal. Content is centered
// vertically; a negative height keeps the line count.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")

	if height >= 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		if pad := height - len(lines); pad > 0 {
			top := make([]string, pad/2, height)
			lines = append(top, lines...)
			for len(lines) < height {
				lines = append(lines, "")
			}
		}
	}

	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			switch {
			case width <= 0:
				ln = ""
			case width == 1:
				ln = xansi.Cut(ln, 0, 1)
			default:
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			left := (width - w) / 2
			ln = strings.Repeat(" ", left) + ln + strings.Repeat(" ", width-w-left)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}
