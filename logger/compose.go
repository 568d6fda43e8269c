package logger

import (
	"fmt"
)

// --- Formatted logging methods (fmt.Sprintf style) ---

// Errorf logs an error message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (m *Module) Errorf(format string, args ...any) {
	m.logf(ErrorLevel, format, args)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (m *Module) Warnf(format string, args ...any) {
	m.logf(WarnLevel, format, args)
}

// Infof logs an informational message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (m *Module) Infof(format string, args ...any) {
	m.logf(InfoLevel, format, args)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (m *Module) Debugf(format string, args ...any) {
	m.logf(DebugLevel, format, args)
}

// Logf logs at an explicit level. OffLevel records are always dropped.
func (m *Module) Logf(level Level, format string, args ...any) {
	m.logf(level, format, args)
}

func (m *Module) logf(level Level, format string, args []any) {
	if !compiledIn {
		return
	}
	s := m.reg.cur.Load()
	if !allows(Effective(m.declared(s), s.thresholds), level) {
		return
	}
	s.sink.Printf(s.compose(level, m.tag, format), args...)
}

// compose builds the record format string:
//
//	[tick "[%9d] - "] [color] "[name] LEVEL: " format [reset] "\n"
//
// The tick is rendered in place and the tag is pre-escaped, so the caller's
// args are forwarded to the sink unchanged.
func (s *settings) compose(level Level, tag, format string) string {
	color := ""
	if s.enableColors {
		color = level.color()
	}

	buf := make([]byte, 0, 32+len(tag)+len(format))
	if s.includeTick {
		buf = fmt.Appendf(buf, "[%9d] - ", s.ticks.Now())
	}
	buf = append(buf, color...)
	buf = append(buf, '[')
	buf = append(buf, tag...)
	buf = append(buf, "] "...)
	buf = append(buf, level.String()...)
	buf = append(buf, ": "...)
	buf = append(buf, format...)
	if color != "" {
		buf = append(buf, colorReset...)
	}
	buf = append(buf, '\n')
	return string(buf)
}
