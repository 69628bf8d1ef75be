// Package config defines controller settings used by the regatta binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the mode file path, the GPIO pin assignments, button
// debounce parameters and the nominal signal durations.
package config
