package mode

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	race "github.com/oshokin/regatta-starter/internal/domain/race"
)

// TestSaveLoadRoundtrip verifies the mode survives a save/load cycle.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mode.json")
	repo := NewFileRepository(path)

	require.NoError(t, repo.Save(context.Background(), race.ModeRuleTwoSixRolling))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, race.ModeRuleTwoSixRolling, loaded)
}

// TestLoadMissingFile returns ErrNotFound for a fresh device.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "mode.json"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

// TestLoadCorruptFile surfaces a decode error rather than a silent default.
func TestLoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mode.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileRepository(path).Load(context.Background())
	require.Error(t, err)
}
