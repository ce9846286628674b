// Package vfo is the control logic of a variable-frequency oscillator tuned
// with a rotary encoder and a push button.
//
// See doc.go for wiring and usage.
package vfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/flavioheleno/vfo/debounce"
	"github.com/flavioheleno/vfo/quadrature"
	"github.com/flavioheleno/vfo/tuning"
)

// ErrOutOfRange is reported when the tuned frequency cannot be generated or
// displayed. The output keeps its previous frequency.
var ErrOutOfRange = errors.New("vfo: frequency out of range")

// OutputSink programs the oscillator output.
type OutputSink interface {
	Program(hz int64) error
}

// DisplaySink draws on a text display. Nothing is visible until Flush.
type DisplaySink interface {
	Clear()
	DrawText(s string, x, y int)
	DrawHorizontalLine(x, y, w int)
	Flush() error
}

// Event is a raw edge notification handed to the Controller.
type Event interface {
	event()
}

// EncoderEdge reports the level of both encoder channels sampled at an edge
// of channel A.
type EncoderEdge struct {
	A, B gpio.Level
}

// ButtonEdge reports a falling edge of the push button.
type ButtonEdge struct {
	At time.Time
}

func (EncoderEdge) event() {}
func (ButtonEdge) event()  {}

// Layout positions the frequency readout on the display, in pixels.
type Layout struct {
	X, Y       int // Top-left corner of the frequency text
	UnderlineY int // Row of the step indicator
	StatusY    int // Top of the status line shown when out of range
	GlyphWidth int // Advance of one digit
}

// Opts is the configuration for the Controller.
type Opts struct {
	Tuning         tuning.Opts
	DebounceWindow time.Duration
	InitialA       gpio.Level // Level of encoder channel A at startup

	// Frequencies the output can generate. Zero disables the check.
	MinFrequency, MaxFrequency int64
	// Widest frequency readout the display can show. Zero disables the check.
	MaxDigits int

	Layout    Layout
	QueueSize int

	Logger *slog.Logger
}

// DefaultOpts matches a 128x64 panel with 7x13 glyphs and a Si5351 output.
var DefaultOpts = Opts{
	Tuning:         tuning.DefaultOpts,
	DebounceWindow: debounce.DefaultWindow,
	InitialA:       gpio.High,
	MinFrequency:   4000,
	MaxFrequency:   112000000,
	MaxDigits:      18,
	Layout: Layout{
		X:          0,
		Y:          0,
		UnderlineY: 14,
		StatusY:    30,
		GlyphWidth: 7,
	},
	QueueSize: 64,
}

const outOfRangeText = "OUT OF RANGE"

// Stats counts what the Controller has done since it was created.
type Stats struct {
	Rotations         uint64
	Presses           uint64
	Bounces           uint64 // Button edges rejected by the debounce window
	OutOfRange        uint64
	TransportFailures uint64
}

// Controller turns edge events into tuning changes and pushes every change
// to the output and the display.
type Controller struct {
	out    OutputSink
	disp   DisplaySink
	layout Layout
	log    *slog.Logger

	minFreq, maxFreq int64
	maxDigits        int

	events chan Event

	mu      sync.Mutex
	decoder *quadrature.Decoder
	button  *debounce.Button
	tuning  *tuning.StateMachine
	stats   Stats
}

// New creates a Controller driving out and disp.
//
// opts can be nil to use DefaultOpts.
func New(out OutputSink, disp DisplaySink, opts *Opts) (*Controller, error) {
	if out == nil || disp == nil {
		return nil, errors.New("vfo: output and display are required")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Layout.GlyphWidth <= 0 {
		return nil, errors.New("vfo: glyph width must be positive")
	}
	if opts.MaxFrequency != 0 && opts.MinFrequency > opts.MaxFrequency {
		return nil, errors.New("vfo: minimum frequency above maximum")
	}

	sm, err := tuning.New(&opts.Tuning)
	if err != nil {
		return nil, fmt.Errorf("vfo: %w", err)
	}
	btn, err := debounce.New(opts.DebounceWindow)
	if err != nil {
		return nil, fmt.Errorf("vfo: %w", err)
	}

	size := opts.QueueSize
	if size <= 0 {
		size = DefaultOpts.QueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		out:       out,
		disp:      disp,
		layout:    opts.Layout,
		log:       logger,
		minFreq:   opts.MinFrequency,
		maxFreq:   opts.MaxFrequency,
		maxDigits: opts.MaxDigits,
		events:    make(chan Event, size),
		decoder:   quadrature.New(opts.InitialA),
		button:    btn,
		tuning:    sm,
	}, nil
}

// Submit queues a raw edge for Run. It blocks while the queue is full and
// never drops an event.
func (c *Controller) Submit(ctx context.Context, ev Event) error {
	select {
	case c.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run shows the initial state, then handles queued events in arrival order
// until ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	c.Refresh()
	for {
		select {
		case ev := <-c.events:
			c.Handle(ev)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Handle processes one event synchronously. Accepted events update the state,
// program the output and redraw the display before Handle returns.
func (c *Controller) Handle(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var st tuning.State
	switch e := ev.(type) {
	case EncoderEdge:
		dir, ok := c.decoder.Decode(e.A, e.B)
		if !ok {
			return
		}
		c.stats.Rotations++
		st = c.tuning.ApplyRotation(dir)
		c.log.Debug("rotation", "direction", dir, "position", c.decoder.Position(), "frequency", st.Frequency)
	case ButtonEdge:
		if !c.button.Press(e.At) {
			c.stats.Bounces++
			return
		}
		c.stats.Presses++
		st = c.tuning.AdvanceStep()
		c.log.Debug("step changed", "step", st.Step())
	default:
		c.log.Warn("unknown event", "event", fmt.Sprintf("%T", ev))
		return
	}
	c.publish(st)
}

// Refresh programs the output and redraws the display from the current state.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publish(c.tuning.State())
}

// State returns the current tuning snapshot.
func (c *Controller) State() tuning.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tuning.State()
}

// Stats returns the event counters.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// publish must be called with c.mu held.
func (c *Controller) publish(st tuning.State) {
	rangeErr := c.checkRange(st.Frequency)
	if rangeErr != nil {
		c.stats.OutOfRange++
		c.log.Warn("not programming output", "frequency", st.Frequency, "error", rangeErr)
	} else if err := c.out.Program(st.Frequency); err != nil {
		c.stats.TransportFailures++
		c.log.Warn("programming output failed", "frequency", st.Frequency, "error", err)
	}

	if err := c.render(st, rangeErr != nil); err != nil {
		c.stats.TransportFailures++
		c.log.Warn("updating display failed", "error", err)
	}
}

func (c *Controller) checkRange(freq int64) error {
	if c.maxFreq != 0 && (freq < c.minFreq || freq > c.maxFreq) {
		return fmt.Errorf("%w: %dHz outside [%d, %d]", ErrOutOfRange, freq, c.minFreq, c.maxFreq)
	}
	if n := len(strconv.FormatInt(freq, 10)); c.maxDigits != 0 && n > c.maxDigits {
		return fmt.Errorf("%w: %d characters wider than display", ErrOutOfRange, n)
	}
	return nil
}

func (c *Controller) render(st tuning.State, degraded bool) error {
	l := c.layout
	c.disp.Clear()
	c.disp.DrawText(strconv.FormatInt(st.Frequency, 10), l.X, l.Y)
	if degraded {
		c.disp.DrawText(outOfRangeText, l.X, l.StatusY)
	}
	c.disp.DrawHorizontalLine(l.X+UnderlineX(st.Frequency, st.StepPower, l.GlyphWidth), l.UnderlineY, l.GlyphWidth)
	if err := c.disp.Flush(); err != nil {
		return fmt.Errorf("vfo: flush: %w", err)
	}
	return nil
}

// UnderlineX returns the offset, from the left of the rendered frequency, of
// the digit worth 10^stepPower. The sign of a negative frequency counts as a
// glyph. The result is negative when the frequency has fewer digits than the
// step.
func UnderlineX(freq int64, stepPower, glyphWidth int) int {
	n := len(strconv.FormatInt(freq, 10))
	return (n - stepPower - 1) * glyphWidth
}
