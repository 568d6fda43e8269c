package logger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel is returned for levels above DebugLevel.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrEmptyModuleName is returned when a module is declared without a name.
	ErrEmptyModuleName = errors.New("module name must not be empty")
	// ErrDuplicateModule is returned when a module name is declared twice.
	ErrDuplicateModule = errors.New("module already declared")
	// ErrAlreadyInitialized is returned by Init after the first call.
	ErrAlreadyInitialized = errors.New("logger already initialized")
)

// Config defines the options a Registry is built from. Once a Registry is
// created its configuration is frozen.
// Start from DefaultConfig: the zero Config has MaxLevel OffLevel and logs nothing.
type Config struct {
	// IncludeTick prefixes every record with the current tick count.
	// Default: true
	IncludeTick bool
	// EnableColors wraps ERROR and WARNING records in ANSI color escapes.
	// Default: true
	EnableColors bool
	// MinLevel is the global floor. It overrides a less verbose module declaration.
	// Default: WarnLevel
	MinLevel Level
	// MaxLevel is the global ceiling. It overrides the module declaration and MinLevel.
	// Default: DebugLevel
	MaxLevel Level
	// DefaultModuleLevel is used by DeclareDefault.
	// Default: WarnLevel
	DefaultModuleLevel Level
	// Sink receives composed records; nil writes to stdout.
	// Default: nil (stdout)
	Sink Sink
	// Ticks supplies the tick prefix; nil uses SystemTicks.
	// Default: nil (SystemTicks)
	Ticks TickSource
	// FilePath mirrors records to this file (created/appended) with colors stripped.
	// When Sink is a *WriterSink, mirror write failures go to its OnError hook;
	// otherwise they are dropped.
	// Default: "" (file mirror disabled)
	FilePath string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		IncludeTick:        true,
		EnableColors:       true,
		MinLevel:           WarnLevel,
		MaxLevel:           DebugLevel,
		DefaultModuleLevel: WarnLevel,
	}
}

// Thresholds returns the configured floor and ceiling, not yet normalized.
func (c Config) Thresholds() Thresholds {
	return Thresholds{Floor: c.MinLevel, Ceiling: c.MaxLevel}
}

func (c Config) validate() error {
	for _, f := range []struct {
		name  string
		level Level
	}{
		{"MinLevel", c.MinLevel},
		{"MaxLevel", c.MaxLevel},
		{"DefaultModuleLevel", c.DefaultModuleLevel},
	} {
		if !f.level.Valid() {
			return fmt.Errorf("%s %d: %w", f.name, f.level, ErrInvalidLevel)
		}
	}
	return nil
}

// Thresholds is the process-wide verbosity window every module is clamped to.
type Thresholds struct {
	Floor   Level
	Ceiling Level
}

// Normalize coerces Floor down to Ceiling when it lies above it. The ceiling
// is authoritative. The second result reports whether coercion happened.
func (t Thresholds) Normalize() (Thresholds, bool) {
	if t.Floor > t.Ceiling {
		return Thresholds{Floor: t.Ceiling, Ceiling: t.Ceiling}, true
	}
	return t, false
}
