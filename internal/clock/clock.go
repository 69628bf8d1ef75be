package clock

import "time"

// Clock abstracts wall-clock time so the sequence engine can be driven by a
// deterministic clock in tests and dry runs.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep blocks for the provided duration. Non-positive durations return
	// immediately.
	Sleep(d time.Duration)
}

// System is the wall clock used on a real device.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d.
func (System) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	time.Sleep(d)
}

// Virtual is a deterministic clock whose Sleep advances Now instantly.
// It is not safe for concurrent use, matching the controller's single-threaded
// execution model.
type Virtual struct {
	// now is the current virtual time.
	now time.Time
}

// NewVirtual returns a virtual clock starting at the provided instant.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the current virtual time.
func (v *Virtual) Now() time.Time {
	return v.now
}

// Sleep advances the virtual time by d without blocking.
func (v *Virtual) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	v.now = v.now.Add(d)
}
