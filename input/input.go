// Package input watches the encoder and button GPIO pins for edges.
//
// Each watcher blocks on WaitForEdge in its own goroutine, samples the pins
// as soon as an edge is reported and hands the sample to a callback. It
// holds no state of its own; decoding and debouncing happen downstream.
package input

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// pollInterval bounds how long a watcher takes to notice cancellation.
const pollInterval = 100 * time.Millisecond

// Encoder is the pair of quadrature channels of a rotary encoder.
type Encoder struct {
	A, B gpio.PinIn
}

// Init enables the pull-ups and edge detection on both edges of channel A.
// It returns the level of channel A at rest.
func (e *Encoder) Init() (gpio.Level, error) {
	if err := e.A.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return gpio.Low, fmt.Errorf("input: encoder channel A %s: %w", e.A, err)
	}
	if err := e.B.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return gpio.Low, fmt.Errorf("input: encoder channel B %s: %w", e.B, err)
	}
	return e.A.Read(), nil
}

// Watch calls fn with the level of both channels after each edge of channel
// A, until ctx is done or fn fails. Init must be called first.
func (e *Encoder) Watch(ctx context.Context, fn func(a, b gpio.Level) error) error {
	return watch(ctx, e.A, func() error {
		return fn(e.A.Read(), e.B.Read())
	})
}

// Button is a push button shorting its pin to ground.
type Button struct {
	Pin gpio.PinIn
	Now func() time.Time // Clock, time.Now when nil
}

// Init enables the pull-up and edge detection on the falling edge.
func (b *Button) Init() error {
	if err := b.Pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return fmt.Errorf("input: button %s: %w", b.Pin, err)
	}
	return nil
}

// Watch calls fn with the time of each falling edge, until ctx is done or
// fn fails. Init must be called first.
func (b *Button) Watch(ctx context.Context, fn func(at time.Time) error) error {
	now := b.Now
	if now == nil {
		now = time.Now
	}
	return watch(ctx, b.Pin, func() error {
		return fn(now())
	})
}

func watch(ctx context.Context, p gpio.PinIn, edge func() error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !p.WaitForEdge(pollInterval) {
			continue
		}
		if err := edge(); err != nil {
			return err
		}
	}
}
