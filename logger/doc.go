// Package logger provides a per-module leveled logger for debug channels,
// with optional tick prefixes and optional colors for errors and warnings.
//
// # Modules
//
// Every package declares its own module once, with a name and the most
// verbose level it wants to log at:
//
//	var log = logger.MustDeclare("storage", logger.WarnLevel)
//
//	log.Warnf("disk at %d%%", 90)
//
// Declaring the same name twice in a Registry fails with ErrDuplicateModule.
//
// # Level Resolution
//
// Config.MinLevel and Config.MaxLevel form a global window. A module logs at
//
//	min(MaxLevel, max(declared, MinLevel))
//
// so MaxLevel always wins and MinLevel forces at least some output. If
// MinLevel is above MaxLevel it is lowered to MaxLevel at init time and a
// warning is written to stderr.
//
// Filtered calls return after a single comparison: no tick query, no
// formatting and no sink call. Building with -tags nolog removes logging
// entirely.
//
// # Output
//
// Records are written through a Sink in one call each:
//
//	[       42] - [storage] WARNING: disk at 90%
//
// The tick prefix is controlled by Config.IncludeTick. With Config.EnableColors,
// ERROR records are bright red and WARNING records bright yellow; INFO and
// DEBUG are never colored. Config.FilePath mirrors records to a file with
// colors stripped.
//
// Sink failures are not reported to callers. WriterSink counts them and
// exposes an OnError hook.
//
// # Usage
//
// Initialize once at startup:
//
//	if err := logger.Init(logger.DefaultConfig()); err != nil {
//	    ...
//	}
//	defer logger.Close()
//
// Or build an independent Registry with New.
package logger
