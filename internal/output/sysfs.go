package output

import (
	"context"
	"os"
	"path/filepath"

	"github.com/oshokin/regatta-starter/internal/logger"
)

// valueFilePermissions matches the permissions udev applies to exported pins.
const valueFilePermissions = 0o644

// SysfsLine drives a Linux sysfs GPIO pin through its exported value file
// (for example /sys/class/gpio/gpio17/value).
type SysfsLine struct {
	// path is the value file of the exported pin.
	path string
	// activeLow inverts the written level for pins wired active-low.
	activeLow bool
}

// NewSysfsLine returns a line writing to the provided GPIO value file.
func NewSysfsLine(path string, activeLow bool) *SysfsLine {
	return &SysfsLine{
		path:      filepath.Clean(path),
		activeLow: activeLow,
	}
}

// Set writes the level to the value file. Write failures are logged and
// swallowed: output lines never fail by contract.
func (l *SysfsLine) Set(active bool) {
	level := "0"
	if active != l.activeLow {
		level = "1"
	}

	if err := os.WriteFile(l.path, []byte(level), valueFilePermissions); err != nil {
		logger.ErrorKV(context.Background(), "GPIO write failed", "path", l.path, "error", err)
	}
}
