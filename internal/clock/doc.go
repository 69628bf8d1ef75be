// Package clock abstracts time for the sequencing engine.
//
// System wraps the wall clock; Virtual advances instantly on Sleep so that
// multi-minute signal programs can be exercised deterministically in tests
// and in the schedule dry-run command.
package clock
