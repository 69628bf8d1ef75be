// Package schedule renders the nominal timeline of a signal program without
// touching hardware. Programs run against a virtual clock and a recording
// emitter, so a full six-minute sequence prints instantly with exact offsets.
package schedule
