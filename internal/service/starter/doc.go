// Package starter hosts the controller process: it loads the configuration,
// builds the output lines and buttons, restores the persisted mode and runs
// the idle consumer loop that dispatches mode changes and start sequences.
//
// The loop observes the buttons only between sequences. Once a sequence
// starts it runs to completion; there is no in-band cancellation.
package starter
