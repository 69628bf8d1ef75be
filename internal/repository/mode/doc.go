// Package mode persists the selected starting mode across power cycles.
//
// FileRepository stores the mode index and change timestamp as a small JSON
// file; ErrNotFound signals a freshly imaged device with no selection yet.
package mode
