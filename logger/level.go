package logger

import (
	"strconv"
	"strings"
)

// Level defines log severity. Higher values are more verbose.
type Level uint8

const (
	// OffLevel disables logging. It is never an enabling threshold.
	OffLevel Level = iota
	// ErrorLevel enables error logging.
	ErrorLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// DebugLevel enables debug logging.
	DebugLevel
)

// ANSI escapes used for colored records. They match the bright text colors
// of the SEGGER RTT control sequences.
const (
	colorError = "\x1b[1;31m"
	colorWarn  = "\x1b[1;33m"
	colorReset = "\x1b[0m"
)

// AllLevels returns every level in ascending rank, OffLevel first.
func AllLevels() []Level {
	return []Level{OffLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel}
}

// String returns the tag word written in records.
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "OFF"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Rank returns the numeric rank of the level (OFF=0 ... DEBUG=4).
func (l Level) Rank() int {
	return int(l)
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l <= DebugLevel
}

// color returns the escape that opens a colored record, or "" for levels
// that are never colored.
func (l Level) color() string {
	switch l {
	case ErrorLevel:
		return colorError
	case WarnLevel:
		return colorWarn
	default:
		return ""
	}
}

// ParseLevel parses a level name or rank, case-insensitively.
func ParseLevel(s string) (Level, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "off", "none":
		return OffLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "warning", "warn", "wrn":
		return WarnLevel, nil
	case "info", "inf":
		return InfoLevel, nil
	case "debug", "dbg":
		return DebugLevel, nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= int(DebugLevel) {
		return Level(n), nil
	}
	return OffLevel, &ParseError{Input: s}
}

// ParseError reports an unrecognized level string.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "invalid log level: " + strconv.Quote(e.Input)
}
