// Package quadrature decodes the two channels of a mechanical rotary encoder
// into signed rotation steps.
//
// The decoder is fed on both edges of channel A. At every edge the level of
// both channels is sampled; when they differ the shaft moved clockwise, when
// they match it moved counter-clockwise. A report whose channel A level equals
// the previously processed one carries no transition and is ignored, which
// filters duplicate notifications from a bouncing contact.
package quadrature

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Direction is the sense of one detent of rotation.
type Direction int

const (
	CCW Direction = -1 // Counter-clockwise
	CW  Direction = 1  // Clockwise
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Decoder holds the encoder state between edges.
//
// It is not safe for concurrent use.
type Decoder struct {
	lastA    gpio.Level
	position int64
}

// New returns a Decoder primed with the channel A level read at startup.
func New(a gpio.Level) *Decoder {
	return &Decoder{lastA: a}
}

// Decode processes one edge report. It returns the rotation direction and
// true when the report is a transition of channel A.
func (d *Decoder) Decode(a, b gpio.Level) (Direction, bool) {
	if a == d.lastA {
		return 0, false
	}
	d.lastA = a

	dir := CCW
	if a != b {
		dir = CW
	}
	d.position += int64(dir)
	return dir, true
}

// Position returns the net number of detents decoded so far.
// It is informational only.
func (d *Decoder) Position() int64 {
	return d.position
}
