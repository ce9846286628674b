package tuning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/vfo/quadrature"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"defaults", &Opts{Frequency: 7100000, MinStepPower: 1, MaxStepPower: 6, StepPower: 3}, false},
		{"single step", &Opts{MinStepPower: 2, MaxStepPower: 2, StepPower: 2}, false},
		{"negative min", &Opts{MinStepPower: -1, MaxStepPower: 6, StepPower: 3}, true},
		{"max too large", &Opts{MinStepPower: 1, MaxStepPower: 19, StepPower: 3}, true},
		{"min above max", &Opts{MinStepPower: 5, MaxStepPower: 4, StepPower: 4}, true},
		{"initial below min", &Opts{MinStepPower: 1, MaxStepPower: 6, StepPower: 0}, true},
		{"initial above max", &Opts{MinStepPower: 1, MaxStepPower: 6, StepPower: 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScenario(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, State{Frequency: 7101000, StepPower: 3}, m.ApplyRotation(quadrature.CW))
	assert.Equal(t, State{Frequency: 7101000, StepPower: 4}, m.AdvanceStep())
	assert.Equal(t, State{Frequency: 7111000, StepPower: 4}, m.ApplyRotation(quadrature.CW))
}

func TestAdvanceStepWrapsAtMax(t *testing.T) {
	m, err := New(&Opts{Frequency: 7100000, MinStepPower: 1, MaxStepPower: 6, StepPower: 6})
	require.NoError(t, err)

	assert.Equal(t, State{Frequency: 7100000, StepPower: 1}, m.AdvanceStep())
}

func TestAdvanceStepClosure(t *testing.T) {
	opts := DefaultOpts
	m, err := New(&opts)
	require.NoError(t, err)

	before := m.State()
	for i := 0; i < opts.MaxStepPower-opts.MinStepPower+1; i++ {
		st := m.AdvanceStep()
		assert.GreaterOrEqual(t, st.StepPower, opts.MinStepPower)
		assert.LessOrEqual(t, st.StepPower, opts.MaxStepPower)
	}
	assert.Equal(t, before, m.State())
}

func TestRotationUsesStepAtTimeOfEvent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m, err := New(nil)
	require.NoError(t, err)

	want := DefaultOpts.Frequency
	for i := 0; i < 500; i++ {
		if rng.Intn(4) == 0 {
			m.AdvanceStep()
			continue
		}
		dir := quadrature.CW
		if rng.Intn(2) == 0 {
			dir = quadrature.CCW
		}
		want += int64(dir) * m.State().Step()
		m.ApplyRotation(dir)
	}
	assert.Equal(t, want, m.State().Frequency)
}

func TestRotationIsUnbounded(t *testing.T) {
	m, err := New(&Opts{Frequency: 500, MinStepPower: 1, MaxStepPower: 6, StepPower: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(-500), m.ApplyRotation(quadrature.CCW).Frequency)
}

func TestStep(t *testing.T) {
	tests := []struct {
		power int
		want  int64
	}{
		{0, 1},
		{1, 10},
		{3, 1000},
		{6, 1000000},
		{18, 1000000000000000000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, State{StepPower: tt.power}.Step())
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "7100000Hz step=1000Hz", State{Frequency: 7100000, StepPower: 3}.String())
}
