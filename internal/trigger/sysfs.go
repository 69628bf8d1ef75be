package trigger

import (
	"os"
	"path/filepath"
	"strings"
)

// SysfsInput reads a button level from a Linux sysfs GPIO value file.
type SysfsInput struct {
	// path is the value file of the exported pin.
	path string
	// activeLow inverts the read level for buttons wired to ground.
	activeLow bool
}

// NewSysfsInput returns an input reading the provided GPIO value file.
func NewSysfsInput(path string, activeLow bool) *SysfsInput {
	return &SysfsInput{
		path:      filepath.Clean(path),
		activeLow: activeLow,
	}
}

// Pressed implements Input. A read failure reads as released so that a
// disconnected pin can never fire a start sequence.
func (i *SysfsInput) Pressed() bool {
	contents, err := os.ReadFile(i.path)
	if err != nil {
		return false
	}

	level := strings.TrimSpace(string(contents)) == "1"

	return level != i.activeLow
}
