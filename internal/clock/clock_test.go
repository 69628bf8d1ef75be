package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestVirtualAdvancesOnSleep verifies that Sleep moves virtual time forward
// without blocking and ignores non-positive durations.
func TestVirtualAdvancesOnSleep(t *testing.T) {
	t.Parallel()

	start := time.Unix(1000, 0)
	v := NewVirtual(start)

	require.Equal(t, start, v.Now())

	v.Sleep(90 * time.Second)
	require.Equal(t, start.Add(90*time.Second), v.Now())

	v.Sleep(0)
	v.Sleep(-time.Second)
	require.Equal(t, start.Add(90*time.Second), v.Now())
}

// TestSystemSleepIgnoresNegative ensures the wall clock does not block on
// non-positive durations.
func TestSystemSleepIgnoresNegative(t *testing.T) {
	t.Parallel()

	before := time.Now()
	System{}.Sleep(-time.Hour)
	require.Less(t, time.Since(before), time.Second)
}
