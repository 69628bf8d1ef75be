// Package metrics exposes the controller's Prometheus collectors.
//
// Collection is pull-based and touches nothing on the sequencing thread
// beyond counter increments, so scrapes cannot disturb signal timing.
package metrics
