// Package indicator drives the committee's visual cues: the idle mode
// display (yellow steady, red blink count) and the final-minute lamp lit
// during the last sixty seconds before a start signal.
package indicator
