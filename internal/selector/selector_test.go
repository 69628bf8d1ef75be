package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	race "github.com/oshokin/regatta-starter/internal/domain/race"
	repo "github.com/oshokin/regatta-starter/internal/repository/mode"
)

var errTestLoad = errors.New("test load error")

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// mode is returned from Load operations.
	mode race.Mode
	// loadErr is the error to return from Load operations.
	loadErr error
	// saved stores the modes passed to Save operations.
	saved []race.Mode
}

// Load retrieves the persisted mode.
func (m *memoryRepository) Load(context.Context) (race.Mode, error) {
	return m.mode, m.loadErr
}

// Save records the persisted mode.
func (m *memoryRepository) Save(_ context.Context, s race.Mode) error {
	m.saved = append(m.saved, s)

	return nil
}

// TestNewLoadsValidMode restores a valid persisted selection.
func TestNewLoadsValidMode(t *testing.T) {
	t.Parallel()

	s := New(context.Background(), &memoryRepository{mode: race.ModeRuleTwoNineTwo})
	require.Equal(t, race.ModeRuleTwoNineTwo, s.Current())

	// Idempotent reads.
	require.Equal(t, s.Current(), s.Current())
}

// TestNewResetsInvalidOrMissingMode verifies out-of-range, missing and
// unreadable selections all reset to the first mode.
func TestNewResetsInvalidOrMissingMode(t *testing.T) {
	t.Parallel()

	// Out of range: reset and re-persist.
	m := &memoryRepository{mode: race.Mode(42)}
	s := New(context.Background(), m)

	require.Equal(t, race.ModeAppendixS, s.Current())
	require.Equal(t, []race.Mode{race.ModeAppendixS}, m.saved)

	// Missing file: default without persisting.
	m = &memoryRepository{loadErr: repo.ErrNotFound}
	s = New(context.Background(), m)

	require.Equal(t, race.ModeAppendixS, s.Current())
	require.Empty(t, m.saved)

	// Unreadable file: default and re-persist.
	m = &memoryRepository{loadErr: errTestLoad}
	s = New(context.Background(), m)

	require.Equal(t, race.ModeAppendixS, s.Current())
	require.Equal(t, []race.Mode{race.ModeAppendixS}, m.saved)
}

// TestAdvanceWrapsAndPersists verifies the wrap at the last mode and that
// every change is persisted.
func TestAdvanceWrapsAndPersists(t *testing.T) {
	t.Parallel()

	m := &memoryRepository{mode: race.ModeRuleTwoNineTwoRolling}
	s := New(context.Background(), m)

	require.Equal(t, race.ModeAppendixS, s.Advance(context.Background()))
	require.Equal(t, []race.Mode{race.ModeAppendixS}, m.saved)

	// A full cycle returns to the first mode without ever leaving the range.
	for i := 0; i < race.Count; i++ {
		require.True(t, s.Advance(context.Background()).Valid())
	}

	require.Equal(t, race.ModeAppendixS, s.Current())
	require.Len(t, m.saved, race.Count+1)
}

// TestSelectValidatesRange verifies explicit overrides reject invalid modes.
func TestSelectValidatesRange(t *testing.T) {
	t.Parallel()

	m := new(memoryRepository)
	s := New(context.Background(), m)

	require.ErrorIs(t, s.Select(context.Background(), race.Mode(9)), ErrInvalidMode)
	require.Equal(t, race.ModeAppendixS, s.Current())

	require.NoError(t, s.Select(context.Background(), race.ModePursuit))
	require.Equal(t, race.ModePursuit, s.Current())
}
