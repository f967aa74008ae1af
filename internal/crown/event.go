// Package crown reads a physical rotary crown (or any Linux evdev dial or
// scroll wheel) and turns its detents into picker input.
package crown

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"
)

// Linux input event types and codes (from <linux/input.h>)
const (
	evKey = 0x01
	evRel = 0x02

	relHWheel = 0x06
	relDial   = 0x07
	relWheel  = 0x08

	keyEsc    = 1
	keyEnter  = 28
	keyBack   = 158
	keySelect = 0x161
	btnLeft   = 0x110
	btnRight  = 0x111

	evValuePress = 1
)

var ErrUnsupported = errors.New("crown input is not supported on this platform")

// inputEvent represents a Linux input event structure
// struct input_event { struct timeval time; __u16 type; __u16 code; __s32 value; };
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

var eventSize = binary.Size(inputEvent{})

type Kind int

const (
	Turn Kind = iota
	// Press is a click of the crown; hosts treat it as confirm.
	Press
	// Back is a dedicated back/escape button.
	Back
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Back:
		return "back"
	default:
		return "turn"
	}
}

// Input is one decoded crown event.
type Input struct {
	Kind Kind
	// Detents is the signed number of detents turned; positive is clockwise.
	Detents int
	At      time.Time
}

func decode(ev inputEvent) (Input, bool) {
	at := time.Unix(ev.Sec, ev.Usec*int64(time.Microsecond))
	switch ev.Type {
	case evRel:
		switch ev.Code {
		case relDial, relWheel, relHWheel:
			if ev.Value == 0 {
				return Input{}, false
			}
			return Input{Kind: Turn, Detents: int(ev.Value), At: at}, true
		}
	case evKey:
		if ev.Value != evValuePress {
			return Input{}, false
		}
		switch ev.Code {
		case keyEnter, keySelect, btnLeft:
			return Input{Kind: Press, At: at}, true
		case keyEsc, keyBack, btnRight:
			return Input{Kind: Back, At: at}, true
		}
	}
	return Input{}, false
}

// decodeRecord decodes one raw input_event record. It reports false for
// malformed records and for events that are not crown input.
func decodeRecord(buf []byte) (Input, bool) {
	var ev inputEvent
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &ev); err != nil {
		return Input{}, false
	}
	return decode(ev)
}
