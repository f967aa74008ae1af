package tui

import (
	"strings"
	"sync"
)

// Some fonts render box and bullet glyphs badly, so every glyph the picker
// draws has an ASCII fallback.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference selects the glyph set by its configured name.
// Unknown names keep the current set.
func applyGlyphPreference(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphCursor() string  { return pick("▸", ">") }
func glyphArrow() string   { return pick("→", "->") }
func glyphHRule() string   { return pick("─", "-") }
func glyphHub() string     { return pick("●", "o") }
func glyphHand() string    { return pick("·", ".") }
func glyphHandTip() string { return pick("•", "*") }
