// Package output abstracts the controller's binary physical outputs.
//
// Line is the single-method contract shared by the claxon relay, the cue
// beeper and the indicator lamps. SysfsLine drives real pins through the
// Linux sysfs GPIO interface; ConsoleLine renders transitions for
// simulation runs; Nop discards them.
package output
