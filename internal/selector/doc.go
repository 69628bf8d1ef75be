// Package selector manages the starting-mode selection: loading the persisted
// mode at startup, validating it, and advancing it with wrap-around on mode
// button presses. The mode only ever changes in the idle phase.
package selector
