package race

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestModeNextWraps verifies that advancing past the last mode wraps to zero
// and never produces a value outside the selectable range.
func TestModeNextWraps(t *testing.T) {
	t.Parallel()

	m := Mode(0)
	for i := 0; i < Count; i++ {
		require.True(t, m.Valid())
		m = m.Next()
	}

	// Full cycle returns to the first mode.
	require.Equal(t, ModeAppendixS, m)
	require.Equal(t, Mode(0), Mode(Count-1).Next())
}

// TestModeRolling checks the rolling classification of every mode.
func TestModeRolling(t *testing.T) {
	t.Parallel()

	rolling := map[Mode]bool{
		ModeAppendixS:             false,
		ModeAppendixSRolling:      true,
		ModePursuit:               true,
		ModeRuleTwoSix:            false,
		ModeRuleTwoSixRolling:     true,
		ModeRuleTwoNineTwo:        false,
		ModeRuleTwoNineTwoRolling: true,
	}
	for m, want := range rolling {
		require.Equal(t, want, m.Rolling(), "mode %s", m)
	}
}

// TestModePattern ensures every mode has a distinct, populated indicator pattern
// and that rolling modes light the yellow lamp.
func TestModePattern(t *testing.T) {
	t.Parallel()

	for m := Mode(0); m.Valid(); m = m + 1 {
		p := m.Pattern()
		require.Positive(t, p.RedBlinks, "mode %s", m)
		require.Equal(t, m.Rolling(), p.YellowOn, "mode %s", m)
	}

	// Out-of-range modes have no presentation.
	require.Zero(t, Mode(42).Pattern())
	require.Equal(t, "invalid", Mode(42).String())
	require.False(t, Mode(7).Valid())
}
