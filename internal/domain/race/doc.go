// Package race contains core domain types for the starting-signal business logic.
//
// It defines Mode (which protocol program runs and whether it rolls),
// the per-mode indicator presentation, and SignalEvent (one emitted pulse
// or indicator transition).
package race
