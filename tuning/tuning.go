// Package tuning holds the frequency and step size of the oscillator.
package tuning

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/vfo/quadrature"
)

// maxPower keeps 10^power inside an int64.
const maxPower = 18

// Opts is the startup configuration of a StateMachine.
type Opts struct {
	Frequency    int64 // Initial frequency in Hz
	MinStepPower int   // Smallest step is 10^MinStepPower Hz
	MaxStepPower int   // Largest step is 10^MaxStepPower Hz
	StepPower    int   // Initial step power
}

// DefaultOpts tunes the 40m band in 1kHz steps.
var DefaultOpts = Opts{
	Frequency:    7100000,
	MinStepPower: 1,
	MaxStepPower: 6,
	StepPower:    3,
}

// State is a snapshot of the tuning.
type State struct {
	Frequency int64 // Hz
	StepPower int
}

// Step returns the step size in Hz.
func (s State) Step() int64 {
	return pow10(s.StepPower)
}

func (s State) String() string {
	return fmt.Sprintf("%dHz step=%dHz", s.Frequency, s.Step())
}

// StateMachine owns the tuning state.
//
// It is not safe for concurrent use.
type StateMachine struct {
	minPower, maxPower int
	state              State
}

// New returns a StateMachine. opts can be nil to use DefaultOpts.
func New(opts *Opts) (*StateMachine, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.MinStepPower < 0 || opts.MaxStepPower > maxPower || opts.MinStepPower > opts.MaxStepPower {
		return nil, fmt.Errorf("tuning: step powers must satisfy 0 <= min <= max <= %d", maxPower)
	}
	if opts.StepPower < opts.MinStepPower || opts.StepPower > opts.MaxStepPower {
		return nil, errors.New("tuning: initial step power out of range")
	}
	return &StateMachine{
		minPower: opts.MinStepPower,
		maxPower: opts.MaxStepPower,
		state:    State{Frequency: opts.Frequency, StepPower: opts.StepPower},
	}, nil
}

// ApplyRotation moves the frequency one step in direction dir.
// The frequency is not bounded.
func (m *StateMachine) ApplyRotation(dir quadrature.Direction) State {
	m.state.Frequency += int64(dir) * m.state.Step()
	return m.state
}

// AdvanceStep selects the next larger step, wrapping from the largest to the
// smallest.
func (m *StateMachine) AdvanceStep() State {
	m.state.StepPower++
	if m.state.StepPower > m.maxPower {
		m.state.StepPower = m.minPower
	}
	return m.state
}

// State returns the current snapshot.
func (m *StateMachine) State() State {
	return m.state
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
