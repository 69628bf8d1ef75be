package sequence

import (
	"context"

	race "github.com/oshokin/regatta-starter/internal/domain/race"
	"github.com/oshokin/regatta-starter/internal/logger"
)

// Orchestrator executes a mode's program: once for single-start modes,
// indefinitely for rolling modes. It is the sole owner of the roll flag.
type Orchestrator struct {
	// runner executes the protocol scripts.
	runner *Runner
}

// NewOrchestrator returns an orchestrator over the provided runner.
func NewOrchestrator(r *Runner) *Orchestrator {
	return &Orchestrator{runner: r}
}

// Run executes the selected program to completion (non-rolling) or until the
// context is canceled (rolling). The context is examined only between
// iterations: a started sequence always runs to completion, so a race
// committee never observes a signal sequence aborting mid-stream.
func (o *Orchestrator) Run(ctx context.Context, m race.Mode) {
	logger.InfoKV(ctx, "Signal sequence starting", "mode", m.String(), "rolling", m.Rolling())

	program := o.runner.ProgramFor(m)
	if !m.Rolling() {
		program(false)
		logger.InfoKV(ctx, "Signal sequence finished", "mode", m.String())

		return
	}

	o.loop(ctx, program)
}

// loop invokes the program with roll=false first, then roll=true forever.
// The roll flag only ever transitions false to true, once per full iteration.
func (o *Orchestrator) loop(ctx context.Context, program Program) {
	for roll := false; ; roll = true {
		program(roll)

		if ctx.Err() != nil {
			logger.Info(ctx, "Rolling sequence stopped between iterations")

			return
		}

		logger.Debug(ctx, "Rolling into next start")
	}
}
