package logger

import "time"

// TickSource returns a monotonically non-decreasing tick count.
type TickSource interface {
	Now() uint32
}

// TickFunc adapts a function to TickSource.
type TickFunc func() uint32

// Now calls f.
func (f TickFunc) Now() uint32 {
	return f()
}

var processStart = time.Now()

// SystemTicks returns a 1 kHz tick counter starting at process start. It
// wraps after about 49.7 days, like a 32-bit RTOS kernel tick.
func SystemTicks() TickSource {
	return TickFunc(func() uint32 {
		return uint32(time.Since(processStart) / time.Millisecond)
	})
}
