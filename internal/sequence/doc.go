// Package sequence implements the starting-signal engine: the
// drift-compensated SignalClock, the ToneEmitter driving the claxon and
// beeper lines, the four protocol programs (Appendix S, its final minute,
// Rule 26 and Rule 29.2) and the rolling orchestrator.
//
// Timing convention: a timing anchor is captured immediately before each
// emission block and the following wait subtracts the time already consumed
// by emission. A block that does not explicitly re-anchor inherits the
// anchor in force, including across rolling iterations.
//
// Everything here runs on a single logical thread; every wait is a blocking
// sleep and no error escapes a running sequence.
package sequence
