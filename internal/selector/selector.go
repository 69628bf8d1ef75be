package selector

import (
	"context"
	"errors"

	race "github.com/oshokin/regatta-starter/internal/domain/race"
	"github.com/oshokin/regatta-starter/internal/logger"
	repo "github.com/oshokin/regatta-starter/internal/repository/mode"
)

// Selector owns the mode selection during the idle phase. The sequencing core
// reads the mode once at run start and always sees a validated value.
type Selector struct {
	// repo persists the selection; nil keeps it in memory only.
	repo repo.Repository
	// current is the validated selection.
	current race.Mode
}

// New loads the persisted selection. A missing, unreadable or out-of-range
// selection is reset to the first mode; the controller must come up
// signalling-capable on any mode file state.
func New(ctx context.Context, repository repo.Repository) *Selector {
	s := &Selector{repo: repository}

	if repository == nil {
		return s
	}

	m, err := repository.Load(ctx)
	switch {
	case err == nil:
		if m.Valid() {
			s.current = m

			return s
		}

		logger.WarnKV(ctx, "Persisted mode out of range, resetting", "mode", uint8(m))
	case errors.Is(err, repo.ErrNotFound):
		// Fresh device, keep the first mode.
		return s
	default:
		logger.ErrorKV(ctx, "Failed to load persisted mode, resetting", "error", err)
	}

	s.persist(ctx)

	return s
}

// ErrInvalidMode is returned when an explicit selection is out of range.
var ErrInvalidMode = errors.New("mode out of range")

// Select replaces the selection with an explicit mode, used for host-side
// overrides in the idle phase.
func (s *Selector) Select(ctx context.Context, m race.Mode) error {
	if !m.Valid() {
		return ErrInvalidMode
	}

	s.current = m
	s.persist(ctx)

	return nil
}

// Current returns the selection. Repeated reads between mode-change events
// return the same value.
func (s *Selector) Current() race.Mode {
	return s.current
}

// Advance selects the next mode, wrapping after the last, and persists it.
func (s *Selector) Advance(ctx context.Context) race.Mode {
	s.current = s.current.Next()
	s.persist(ctx)

	logger.InfoKV(ctx, "Mode selected", "mode", s.current.String(), "rolling", s.current.Rolling())

	return s.current
}

// persist saves the selection; persistence failures are logged and do not
// disturb the in-memory selection.
func (s *Selector) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}

	if err := s.repo.Save(ctx, s.current); err != nil {
		logger.ErrorKV(ctx, "Failed to persist mode", "error", err)
	}
}
