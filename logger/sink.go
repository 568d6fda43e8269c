package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// Sink is the single output primitive records are written through. It gets
// the composed format string and the forwarded arguments of one record.
// Implementations must not report failures back to the caller.
type Sink interface {
	Printf(format string, args ...any)
}

// SinkFunc adapts a printf-like function to Sink.
type SinkFunc func(format string, args ...any)

// Printf calls f(format, args...).
func (f SinkFunc) Printf(format string, args ...any) {
	f(format, args...)
}

// WriterSink formats records onto an io.Writer, one Write per record.
// Thread-safe for concurrent use. Write errors are counted and passed to the
// OnError hook, never returned.
type WriterSink struct {
	mu       sync.Mutex
	w        io.Writer
	onError  func(error)
	failures atomic.Uint64
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// OnError installs fn as the write-failure hook and returns s.
func (s *WriterSink) OnError(fn func(error)) *WriterSink {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
	return s
}

func (s *WriterSink) errorHook() func(error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onError
}

// Printf implements Sink.
func (s *WriterSink) Printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.failures.Add(1)
		if s.onError != nil {
			s.onError(err)
		}
	}
}

// Failures returns the number of records whose write failed.
func (s *WriterSink) Failures() uint64 {
	return s.failures.Load()
}

// plainFileWriter wraps a file writer to strip ANSI color codes before writing.
type plainFileWriter struct {
	w io.Writer
}

func (p *plainFileWriter) Write(data []byte) (int, error) {
	if _, err := io.WriteString(p.w, stripANSI(string(data))); err != nil {
		return 0, err
	}
	// Report the unstripped length so io.MultiWriter does not see a short write.
	return len(data), nil
}

// stripANSI removes CSI sequences such as \x1b[1;31m and \x1b[0m.
func stripANSI(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
