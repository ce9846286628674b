// Package vfo is the control logic of a variable-frequency oscillator.
//
// A rotary encoder tunes the frequency of a clock generator, a push button
// selects the tuning step, and a small OLED shows the frequency with the
// digit being tuned underlined.
//
// # Components
//
// The Controller ties together three pieces of state, each in its own
// package:
//
//   - quadrature.Decoder turns encoder channel levels into detents.
//   - debounce.Button turns button edges into presses.
//   - tuning.StateMachine owns the frequency and the step size.
//
// After every accepted event the Controller programs its OutputSink and
// redraws its DisplaySink, in that order. The si5351 and oled packages
// provide both sinks for real hardware.
//
// # Hardware Connection
//
//	Encoder Pin → System Pin
//	GND         → GND
//	+           → 3.3V
//	SW          → GPIO (button, pulled up)
//	CLK         → GPIO (channel A, pulled up)
//	DT          → GPIO (channel B, pulled up)
//
// The Si5351A and the SSD1306 or SH1106 OLED share one I²C bus.
//
// # Events
//
// GPIO edges arrive on their own goroutines. They are not applied where they
// arrive; the watcher samples the pins and queues an Event:
//
//	ctrl, _ := vfo.New(output, canvas, nil)
//	go ctrl.Run(ctx)
//
//	ctrl.Submit(ctx, vfo.EncoderEdge{A: a.Read(), B: b.Read()})
//	ctrl.Submit(ctx, vfo.ButtonEdge{At: time.Now()})
//
// Run applies queued events one at a time, in arrival order, so the
// decoder, the debounce window and the tuning state are only ever touched
// by one goroutine. Handle takes the same lock as Run and can be called
// directly when events are produced synchronously.
//
// # Encoder Decoding
//
// Channel A is watched on both edges. At each edge, channel A differing from
// channel B is a clockwise detent and matching is counter-clockwise. Every
// edge of channel A is one step; two steps per full quadrature cycle.
//
// # Display
//
// The frequency is drawn in Hz with a fixed-width font. The underline sits
// under the digit worth 10^StepPower, see UnderlineX. It is computed from
// the frequency on every redraw, so it moves by one glyph when the number of
// digits changes.
//
// # Failures
//
// A frequency outside the range of the output, or too wide for the display,
// is not programmed; the display shows it with an "OUT OF RANGE" line.
// Errors from the sinks are logged and counted in Stats, and the next event
// programs and redraws everything again.
package vfo
