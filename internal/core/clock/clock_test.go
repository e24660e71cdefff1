package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemEveryStops(t *testing.T) {
	var count atomic.Int32
	handle := System.Every(5*time.Millisecond, func() { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 2 }, time.Second, time.Millisecond)

	handle.Stop()
	handle.Stop()
	stopped := count.Load()
	time.Sleep(30 * time.Millisecond)
	require.LessOrEqual(t, count.Load(), stopped+1)
}

func TestSystemNowIsMonotonic(t *testing.T) {
	first := System.Now()
	second := System.Now()
	require.False(t, second.Before(first))
}
