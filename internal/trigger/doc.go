// Package trigger converts raw button levels into debounced, hold-qualified
// edge events.
//
// Button implements debounce by persistence: a press qualifies only when the
// level still holds after a fixed hold duration, and the caller regains
// control only after release. Watcher multiplexes the start and mode buttons
// into one synchronous idle-phase poll loop on the controller's single
// logical thread.
package trigger
